package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/app/repositories"
	"github.com/stapro/nfc-attendance/internal/pkg/staffing"
)

var errBoom = errors.New("boom")

type fakeEmployees struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*models.Employee
}

func newFakeEmployees(employees ...*models.Employee) *fakeEmployees {
	f := &fakeEmployees{rows: map[int64]*models.Employee{}}
	for _, e := range employees {
		f.rows[e.ID] = e
		if e.ID > f.nextID {
			f.nextID = e.ID
		}
	}
	return f
}

func (f *fakeEmployees) Create(_ context.Context, employee *models.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if employee.ExternalStaffID != nil {
		for _, e := range f.rows {
			if e.ExternalStaffID != nil && *e.ExternalStaffID == *employee.ExternalStaffID {
				return repositories.ErrExternalStaffLinked
			}
		}
	}
	f.nextID++
	employee.ID = f.nextID
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = employee.CreatedAt
	f.rows[employee.ID] = employee
	return nil
}

func (f *fakeEmployees) GetByID(_ context.Context, id int64) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.rows[id]; ok {
		return e, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeEmployees) GetByExternalStaffID(_ context.Context, staffID int64) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.rows {
		if e.ExternalStaffID != nil && *e.ExternalStaffID == staffID {
			return e, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeEmployees) GetAll(context.Context) ([]*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Employee{}
	for _, e := range f.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCards struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]*models.Card
	employees *fakeEmployees
	createErr error
}

func newFakeCards(employees *fakeEmployees, cards ...*models.Card) *fakeCards {
	f := &fakeCards{rows: map[int64]*models.Card{}, employees: employees}
	for _, c := range cards {
		f.rows[c.ID] = c
		if c.ID > f.nextID {
			f.nextID = c.ID
		}
	}
	return f
}

func (f *fakeCards) Create(_ context.Context, card *models.Card) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, c := range f.rows {
		if c.CardID == card.CardID {
			return repositories.ErrCardIDTaken
		}
	}
	f.nextID++
	card.ID = f.nextID
	card.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Millisecond)
	card.UpdatedAt = card.CreatedAt
	f.rows[card.ID] = card
	return nil
}

func (f *fakeCards) GetByCardID(ctx context.Context, cardID string) (*models.Card, error) {
	f.mu.Lock()
	var found *models.Card
	for _, c := range f.rows {
		if c.CardID == cardID {
			cp := *c
			found = &cp
		}
	}
	f.mu.Unlock()
	if found == nil {
		return nil, repositories.ErrNotFound
	}
	if f.employees != nil {
		found.Employee, _ = f.employees.GetByID(ctx, found.EmployeeID)
	}
	return found, nil
}

func (f *fakeCards) GetForEmployee(_ context.Context, employeeID, id int64) (*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.rows[id]; ok && c.EmployeeID == employeeID {
		return c, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCards) ListByEmployee(_ context.Context, employeeID int64) ([]*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Card{}
	for _, c := range f.rows {
		if c.EmployeeID == employeeID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCards) Update(_ context.Context, id int64, update repositories.CardUpdate) (*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if update.Name != nil {
		c.Name = update.Name
	}
	if update.IsActive != nil {
		c.IsActive = *update.IsActive
	}
	return c, nil
}

func (f *fakeCards) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeTemplates struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]*models.CommuteTemplate
	listErr   error
	createErr error
}

func newFakeTemplates(templates ...*models.CommuteTemplate) *fakeTemplates {
	f := &fakeTemplates{rows: map[int64]*models.CommuteTemplate{}}
	for _, t := range templates {
		f.rows[t.ID] = t
		if t.ID > f.nextID {
			f.nextID = t.ID
		}
	}
	return f
}

func (f *fakeTemplates) Create(_ context.Context, template *models.CommuteTemplate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	template.ID = f.nextID
	f.rows[template.ID] = template
	return nil
}

func (f *fakeTemplates) GetByID(_ context.Context, id int64) (*models.CommuteTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.rows[id]; ok {
		return t, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeTemplates) ListByEmployee(_ context.Context, employeeID int64) ([]*models.CommuteTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.CommuteTemplate{}
	for _, t := range f.rows {
		if t.EmployeeID == employeeID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTemplates) Update(_ context.Context, id int64, update repositories.CommuteTemplateUpdate) (*models.CommuteTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if update.Name != nil {
		t.Name = *update.Name
	}
	if update.Cost != nil {
		t.Cost = *update.Cost
	}
	if update.RouteDescription != nil {
		t.RouteDescription = update.RouteDescription
	}
	return t, nil
}

func (f *fakeTemplates) Delete(_ context.Context, id int64) (*models.CommuteTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(f.rows, id)
	return t, nil
}

type fakeAttendances struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]*models.Attendance
	createErr error
}

func newFakeAttendances(attendances ...*models.Attendance) *fakeAttendances {
	f := &fakeAttendances{rows: map[int64]*models.Attendance{}}
	for _, a := range attendances {
		f.rows[a.ID] = a
		if a.ID > f.nextID {
			f.nextID = a.ID
		}
	}
	return f
}

func (f *fakeAttendances) Create(_ context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	cp := *attendance
	cp.ID = f.nextID
	f.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeAttendances) GetByID(_ context.Context, id int64) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.rows[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAttendances) FindByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.rows {
		// DATE equality: each side's calendar day in its own location.
		if a.EmployeeID == employeeID && a.Date.Format(models.DateLayout) == date.Format(models.DateLayout) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAttendances) UpdateClockOut(_ context.Context, id int64, update repositories.ClockOutUpdate) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := update.ClockOutTime
	a.ClockOutTime = &out
	a.CommuteInfo = update.CommuteInfo
	a.TotalLesson = update.TotalLesson
	a.TotalTrainingLesson = update.TotalTrainingLesson
	a.ExternalAttendanceID = update.ExternalAttendanceID
	cp := *a
	return &cp, nil
}

func (f *fakeAttendances) RevertClockOut(_ context.Context, id int64) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	a.ClockOutTime = nil
	a.CommuteInfo = nil
	a.TotalLesson = nil
	a.TotalTrainingLesson = nil
	a.ExternalAttendanceID = nil
	cp := *a
	return &cp, nil
}

func (f *fakeAttendances) Delete(_ context.Context, id int64) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(f.rows, id)
	return a, nil
}

func (f *fakeAttendances) ListByEmployee(_ context.Context, employeeID int64, offset, limit uint64) ([]*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := []*models.Attendance{}
	for _, a := range f.rows {
		if a.EmployeeID == employeeID {
			all = append(all, a)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	if offset >= uint64(len(all)) {
		return []*models.Attendance{}, nil
	}
	end := offset + limit
	if end > uint64(len(all)) {
		end = uint64(len(all))
	}
	return all[offset:end], nil
}

func (f *fakeAttendances) CountByEmployee(_ context.Context, employeeID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.rows {
		if a.EmployeeID == employeeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendances) get(id int64) *models.Attendance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id]
}

type fakeStaffing struct {
	mu          sync.Mutex
	staff       *staffing.Staff
	loginErr    error
	schools     []staffing.School
	schoolsErr  error
	registerID  int64
	registerErr error
	deleteErr   error

	registered    []staffing.RegisterAttendanceRequest
	deleted       []int64
	schoolLookups []int64
}

func (f *fakeStaffing) Login(_ context.Context, _, _ string) (*staffing.Staff, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.staff, nil
}

func (f *fakeStaffing) GetSchools(context.Context) ([]staffing.School, error) {
	if f.schoolsErr != nil {
		return nil, f.schoolsErr
	}
	return f.schools, nil
}

func (f *fakeStaffing) GetSchool(_ context.Context, id int64) (*staffing.School, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.schoolLookups = append(f.schoolLookups, id)
	if f.schoolsErr != nil {
		return nil, f.schoolsErr
	}
	for i := range f.schools {
		if f.schools[i].ID == id {
			school := f.schools[i]
			return &school, nil
		}
	}
	return nil, &staffing.APIError{Method: "GET", Path: "/schools", StatusCode: 404}
}

func (f *fakeStaffing) RegisterAttendance(_ context.Context, req staffing.RegisterAttendanceRequest) (*staffing.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, req)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &staffing.Attendance{ID: f.registerID, StaffID: req.Attendance.StaffID, WorkDay: req.Attendance.WorkDay}, nil
}

func (f *fakeStaffing) DeleteAttendance(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }
