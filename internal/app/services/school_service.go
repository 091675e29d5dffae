package services

import (
	"context"

	"github.com/stapro/nfc-attendance/internal/pkg/staffing"
)

// SchoolService exposes the staffing system's school list
type SchoolService interface {
	ListSchools(ctx context.Context) ([]staffing.School, error)
}

type schoolServiceImpl struct {
	staffing staffing.Client
}

// NewSchoolService creates a new school service instance
func NewSchoolService(staff staffing.Client) SchoolService {
	return &schoolServiceImpl{staffing: staff}
}

// ListSchools returns every school. Staffing failures propagate as ErrExternalService.
func (s *schoolServiceImpl) ListSchools(ctx context.Context) ([]staffing.School, error) {
	return s.staffing.GetSchools(ctx)
}
