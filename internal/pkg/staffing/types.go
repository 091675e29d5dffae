package staffing

// School is a classroom managed by the staffing system.
type School struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Kana          string  `json:"kana"`
	Student       int     `json:"student"`
	ManagedLesson int     `json:"managed_lesson"`
	IsOpened      bool    `json:"is_opened"`
	OpenedOn      string  `json:"opened_on"`
	ClosedOn      *string `json:"closed_on"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// Staff is the account returned by a successful login.
type Staff struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email"`
	LastName       string  `json:"last_name"`
	FirstName      string  `json:"first_name"`
	LastNameKana   string  `json:"last_name_kana"`
	FirstNameKana  string  `json:"first_name_kana"`
	RoleID         int     `json:"role_id"`
	Authority      int     `json:"authority"`
	Status         int     `json:"status"`
	CommutingCosts int     `json:"commuting_costs"`
	BornOn         string  `json:"born_on"`
	EnteredOn      string  `json:"entered_on"`
	RetiredOn      *string `json:"retired_on"`
}

// DisplayName joins the staff member's family and given names.
func (s *Staff) DisplayName() string {
	switch {
	case s.LastName == "":
		return s.FirstName
	case s.FirstName == "":
		return s.LastName
	default:
		return s.LastName + " " + s.FirstName
	}
}

// Lesson is one lesson slot attached to an attendance.
type Lesson struct {
	ID   int64  `json:"id"`
	Time string `json:"time"`
}

// Attendance is an attendance record as stored by the staffing system.
type Attendance struct {
	ID                  int64    `json:"id"`
	StaffID             int64    `json:"staff_id"`
	WorkDay             string   `json:"work_day"`
	SchoolID            int64    `json:"school_id"`
	SchoolName          string   `json:"school_name"`
	CommutingCosts      int      `json:"commuting_costs"`
	AnotherTime         float64  `json:"another_time"`
	TotalLesson         int      `json:"total_lesson"`
	TotalTrainingLesson int      `json:"total_training_lesson"`
	DeductionTime       float64  `json:"deduction_time"`
	Note                string   `json:"note"`
	Lessons             []Lesson `json:"lessons"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// AttendanceInput is the attendance body of a register request.
type AttendanceInput struct {
	StaffID             int64   `json:"staff_id"`
	WorkDay             string  `json:"work_day"`
	SchoolID            int64   `json:"school_id"`
	CommutingCosts      int     `json:"commuting_costs"`
	AnotherTime         float64 `json:"another_time"`
	TotalLesson         int     `json:"total_lesson"`
	TotalTrainingLesson int     `json:"total_training_lesson"`
	DeductionTime       float64 `json:"deduction_time"`
	Note                string  `json:"note"`
}

// RegisterAttendanceRequest is the payload of POST /attendances.
type RegisterAttendanceRequest struct {
	Attendance          AttendanceInput `json:"attendance"`
	LessonIDs           []int64         `json:"lesson_ids"`
	TotalTrainingLesson int             `json:"total_training_lesson"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type schoolsEnvelope struct {
	Schools []School `json:"schools"`
}

type schoolEnvelope struct {
	School *School `json:"school"`
}

type attendanceEnvelope struct {
	Attendance *Attendance `json:"attendance"`
}
