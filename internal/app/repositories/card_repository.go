package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/pkg/dberrors"
	"github.com/stapro/nfc-attendance/internal/pkg/logger"
)

// ErrCardIDTaken is returned when the physical card_id is already registered.
var ErrCardIDTaken = errors.New("card id already registered")

var cardColumns = []string{"c.id", "c.card_id", "c.name", "c.is_active", "c.employee_id", "c.created_at", "c.updated_at"}

// CardUpdate lists the card fields that may change. Nil fields are left as is.
type CardUpdate struct {
	Name     *string
	IsActive *bool
}

// CardRepository handles card database operations
type CardRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db DBTX) *CardRepository {
	return &CardRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanCard(row pgx.Row) (*models.Card, error) {
	c := &models.Card{}
	if err := row.Scan(&c.ID, &c.CardID, &c.Name, &c.IsActive, &c.EmployeeID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a card and fills in its generated fields.
func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	sql, args, err := r.sb.Insert("cards").
		Columns("card_id", "name", "is_active", "employee_id").
		Values(card.CardID, card.Name, card.IsActive, card.EmployeeID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create card SQL")
		return fmt.Errorf("failed to build create card query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.CardsCardIDKey) {
			return ErrCardIDTaken
		}
		if dberrors.IsForeignKeyError(err) {
			return ErrUnknownEmployee
		}
		logger.Error().Err(err).Str("cardID", card.CardID).Msg("Error executing create card query")
		return fmt.Errorf("error creating card: %w", err)
	}
	return nil
}

// GetByCardID retrieves a card by its physical identifier together with its employee.
func (r *CardRepository) GetByCardID(ctx context.Context, cardID string) (*models.Card, error) {
	columns := append(append([]string{}, cardColumns...),
		"e.id", "e.name", "e.external_staff_id", "e.created_at", "e.updated_at")

	sql, args, err := r.sb.Select(columns...).
		From("cards c").
		Join("employees e ON e.id = c.employee_id").
		Where(squirrel.Eq{"c.card_id": cardID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get card by card ID SQL")
		return nil, fmt.Errorf("failed to build get card query: %w", err)
	}

	c := &models.Card{}
	e := &models.Employee{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.CardID, &c.Name, &c.IsActive, &c.EmployeeID, &c.CreatedAt, &c.UpdatedAt,
		&e.ID, &e.Name, &e.ExternalStaffID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("cardID", cardID).Msg("Error scanning card row")
		return nil, fmt.Errorf("error getting card by card ID: %w", err)
	}
	c.Employee = e
	return c, nil
}

// GetForEmployee retrieves a card by primary key, scoped to its owner.
func (r *CardRepository) GetForEmployee(ctx context.Context, employeeID, id int64) (*models.Card, error) {
	sql, args, err := r.sb.Select(cardColumns...).
		From("cards c").
		Where(squirrel.Eq{"c.id": id, "c.employee_id": employeeID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get card SQL")
		return nil, fmt.Errorf("failed to build get card query: %w", err)
	}

	card, err := scanCard(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("cardID", id).Msg("Error scanning card row")
		return nil, fmt.Errorf("error getting card: %w", err)
	}
	return card, nil
}

// ListByEmployee lists an employee's cards, newest first.
func (r *CardRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*models.Card, error) {
	sql, args, err := r.sb.Select(cardColumns...).
		From("cards c").
		Where(squirrel.Eq{"c.employee_id": employeeID}).
		OrderBy("c.created_at DESC", "c.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list cards SQL")
		return nil, fmt.Errorf("failed to build list cards query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("employeeID", employeeID).Msg("Error executing list cards query")
		return nil, fmt.Errorf("error querying cards: %w", err)
	}
	defer rows.Close()

	cards := []*models.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}
	return cards, nil
}

// Update applies a partial update and returns the stored card.
func (r *CardRepository) Update(ctx context.Context, id int64, update CardUpdate) (*models.Card, error) {
	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	sql, args, err := r.sb.Update("cards").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, card_id, name, is_active, employee_id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update card SQL")
		return nil, fmt.Errorf("failed to build update card query: %w", err)
	}

	card, err := scanCard(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("cardID", id).Msg("Error executing update card query")
		return nil, fmt.Errorf("error updating card: %w", err)
	}
	return card, nil
}

// Delete removes a card by primary key.
func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("cards").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete card SQL")
		return fmt.Errorf("failed to build delete card query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("cardID", id).Msg("Error executing delete card query")
		return fmt.Errorf("error deleting card: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
