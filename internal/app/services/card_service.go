package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/repositories"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
	"github.com/stapro/nfc-attendance/internal/pkg/staffing"
)

// CardService defines the interface for NFC card operations
type CardService interface {
	ListCards(ctx context.Context, employeeID int64) ([]*models.Card, error)
	CreateCard(ctx context.Context, employeeID int64, req dto.CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, employeeID, id int64, req dto.UpdateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, employeeID, id int64) error
	RegisterCardWithAuth(ctx context.Context, req dto.RegisterCardWithAuthRequest) (*dto.RegisterCardResponse, error)
}

type cardServiceImpl struct {
	cards     cardStore
	employees employeeStore
	staffing  staffing.Client
	logger    zerolog.Logger
}

// NewCardService creates a new card service instance
func NewCardService(cards cardStore, employees employeeStore, staff staffing.Client, logger zerolog.Logger) CardService {
	return &cardServiceImpl{
		cards:     cards,
		employees: employees,
		staffing:  staff,
		logger:    logger.With().Str("component", "card").Logger(),
	}
}

// ListCards lists an employee's cards, newest first.
func (s *cardServiceImpl) ListCards(ctx context.Context, employeeID int64) ([]*models.Card, error) {
	if _, err := getEmployee(ctx, s.employees, employeeID); err != nil {
		return nil, err
	}
	cards, err := s.cards.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cards: %w", err)
	}
	return cards, nil
}

// CreateCard binds a new card to an employee. Any existing card_id is a conflict.
func (s *cardServiceImpl) CreateCard(ctx context.Context, employeeID int64, req dto.CreateCardRequest) (*models.Card, error) {
	if _, err := getEmployee(ctx, s.employees, employeeID); err != nil {
		return nil, err
	}

	existing, err := s.cards.GetByCardID(ctx, req.CardID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("error checking card: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCardAlreadyExists
	}

	return s.insertCard(ctx, employeeID, req.CardID, req.Name)
}

func (s *cardServiceImpl) insertCard(ctx context.Context, employeeID int64, cardID string, name *string) (*models.Card, error) {
	card := &models.Card{
		CardID:     cardID,
		Name:       name,
		IsActive:   true,
		EmployeeID: employeeID,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		if errors.Is(err, repositories.ErrCardIDTaken) {
			return nil, apperrors.ErrCardAlreadyExists
		}
		if errors.Is(err, repositories.ErrUnknownEmployee) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error creating card: %w", err)
	}

	s.logger.Info().Int64("employeeID", employeeID).Str("cardID", cardID).Msg("Card registered")
	return card, nil
}

// UpdateCard changes the label or activation flag of a card owned by the employee.
func (s *cardServiceImpl) UpdateCard(ctx context.Context, employeeID, id int64, req dto.UpdateCardRequest) (*models.Card, error) {
	if err := s.ensureOwned(ctx, employeeID, id); err != nil {
		return nil, err
	}

	card, err := s.cards.Update(ctx, id, repositories.CardUpdate{Name: req.Name, IsActive: req.IsActive})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, fmt.Errorf("error updating card: %w", err)
	}
	return card, nil
}

// DeleteCard removes a card owned by the employee.
func (s *cardServiceImpl) DeleteCard(ctx context.Context, employeeID, id int64) error {
	if err := s.ensureOwned(ctx, employeeID, id); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCardNotFound
		}
		return fmt.Errorf("error deleting card: %w", err)
	}

	s.logger.Info().Int64("employeeID", employeeID).Int64("id", id).Msg("Card deleted")
	return nil
}

func (s *cardServiceImpl) ensureOwned(ctx context.Context, employeeID, id int64) error {
	if _, err := s.cards.GetForEmployee(ctx, employeeID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCardNotFound
		}
		return fmt.Errorf("error retrieving card: %w", err)
	}
	return nil
}

// RegisterCardWithAuth logs into the staffing system and binds the card to the matching
// employee, creating the employee on first login.
func (s *cardServiceImpl) RegisterCardWithAuth(ctx context.Context, req dto.RegisterCardWithAuthRequest) (*dto.RegisterCardResponse, error) {
	staff, err := s.staffing.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	employee, err := s.findOrCreateEmployee(ctx, staff)
	if err != nil {
		return nil, err
	}

	existing, err := s.cards.GetByCardID(ctx, req.CardID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("error checking card: %w", err)
	}
	if existing != nil {
		if existing.EmployeeID != employee.ID {
			s.logger.Warn().
				Str("cardID", req.CardID).
				Int64("ownerID", existing.EmployeeID).
				Int64("employeeID", employee.ID).
				Msg("Card already bound to another employee")
			return nil, apperrors.ErrCardAlreadyExists
		}
		existing.Employee = nil
		return &dto.RegisterCardResponse{Card: existing, Employee: employee}, nil
	}

	card, err := s.insertCard(ctx, employee.ID, req.CardID, nil)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterCardResponse{Card: card, Employee: employee}, nil
}

func (s *cardServiceImpl) findOrCreateEmployee(ctx context.Context, staff *staffing.Staff) (*models.Employee, error) {
	employee, err := s.employees.GetByExternalStaffID(ctx, staff.ID)
	if err == nil {
		return employee, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	staffID := staff.ID
	employee = &models.Employee{Name: staff.DisplayName(), ExternalStaffID: &staffID}
	if err := s.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, repositories.ErrExternalStaffLinked) {
			// Another request created it first.
			return s.employees.GetByExternalStaffID(ctx, staff.ID)
		}
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	s.logger.Info().Int64("employeeID", employee.ID).Int64("staffID", staffID).Msg("Employee created from staffing login")
	return employee, nil
}
