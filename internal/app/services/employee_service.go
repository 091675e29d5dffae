package services

import (
	"context"
	"fmt"

	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
)

// EmployeeService defines the interface for employee lookups
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)
}

type employeeServiceImpl struct {
	employees employeeStore
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employees employeeStore) EmployeeService {
	return &employeeServiceImpl{employees: employees}
}

// ListEmployees retrieves all employees ordered by ID
func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}
	return employees, nil
}

// GetEmployee retrieves an employee by ID
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}
	return getEmployee(ctx, s.employees, id)
}
