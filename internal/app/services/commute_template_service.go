package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/repositories"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
)

// CommuteTemplateService defines the interface for commute preset operations
type CommuteTemplateService interface {
	CreateTemplate(ctx context.Context, req dto.CreateCommuteTemplateRequest) (*models.CommuteTemplate, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*models.CommuteTemplate, error)
	GetTemplate(ctx context.Context, id int64) (*models.CommuteTemplate, error)
	UpdateTemplate(ctx context.Context, id int64, req dto.UpdateCommuteTemplateRequest) (*models.CommuteTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) (*models.CommuteTemplate, error)
}

type commuteTemplateServiceImpl struct {
	templates commuteTemplateStore
	employees employeeStore
}

// NewCommuteTemplateService creates a new commute template service instance
func NewCommuteTemplateService(templates commuteTemplateStore, employees employeeStore) CommuteTemplateService {
	return &commuteTemplateServiceImpl{
		templates: templates,
		employees: employees,
	}
}

// CreateTemplate creates a commute preset for an existing employee.
func (s *commuteTemplateServiceImpl) CreateTemplate(ctx context.Context, req dto.CreateCommuteTemplateRequest) (*models.CommuteTemplate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Cost < 0 {
		return nil, fmt.Errorf("%w: cost cannot be negative", apperrors.ErrValidationFailed)
	}

	if _, err := getEmployee(ctx, s.employees, req.EmployeeID); err != nil {
		return nil, err
	}

	template := &models.CommuteTemplate{
		EmployeeID:       req.EmployeeID,
		Name:             name,
		Cost:             req.Cost,
		RouteDescription: req.RouteDescription,
	}
	if err := s.templates.Create(ctx, template); err != nil {
		if errors.Is(err, repositories.ErrUnknownEmployee) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error creating commute template: %w", err)
	}
	return template, nil
}

// ListByEmployee lists an employee's templates, oldest first.
func (s *commuteTemplateServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]*models.CommuteTemplate, error) {
	templates, err := s.templates.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving commute templates: %w", err)
	}
	return templates, nil
}

// GetTemplate retrieves a template by ID
func (s *commuteTemplateServiceImpl) GetTemplate(ctx context.Context, id int64) (*models.CommuteTemplate, error) {
	template, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, mapTemplateError(err, "retrieving")
	}
	return template, nil
}

// UpdateTemplate changes name, cost or route description. The owning employee is immutable.
func (s *commuteTemplateServiceImpl) UpdateTemplate(ctx context.Context, id int64, req dto.UpdateCommuteTemplateRequest) (*models.CommuteTemplate, error) {
	update := repositories.CommuteTemplateUpdate{
		Cost:             req.Cost,
		RouteDescription: req.RouteDescription,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		update.Name = &name
	}
	if req.Cost != nil && *req.Cost < 0 {
		return nil, fmt.Errorf("%w: cost cannot be negative", apperrors.ErrValidationFailed)
	}

	template, err := s.templates.Update(ctx, id, update)
	if err != nil {
		return nil, mapTemplateError(err, "updating")
	}
	return template, nil
}

// DeleteTemplate removes a template and returns it.
func (s *commuteTemplateServiceImpl) DeleteTemplate(ctx context.Context, id int64) (*models.CommuteTemplate, error) {
	template, err := s.templates.Delete(ctx, id)
	if err != nil {
		return nil, mapTemplateError(err, "deleting")
	}
	return template, nil
}

func mapTemplateError(err error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrCommuteTemplateNotFound
	}
	return fmt.Errorf("error %s commute template: %w", action, err)
}
