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

const commuteTemplateReturning = "RETURNING id, employee_id, name, cost, route_description, created_at, updated_at"

var commuteTemplateColumns = []string{"id", "employee_id", "name", "cost", "route_description", "created_at", "updated_at"}

// CommuteTemplateUpdate lists the template fields that may change. Nil fields are left as is.
type CommuteTemplateUpdate struct {
	Name             *string
	Cost             *int
	RouteDescription *string
}

// CommuteTemplateRepository handles commute template database operations
type CommuteTemplateRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCommuteTemplateRepository creates a new CommuteTemplateRepository
func NewCommuteTemplateRepository(db DBTX) *CommuteTemplateRepository {
	return &CommuteTemplateRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanCommuteTemplate(row pgx.Row) (*models.CommuteTemplate, error) {
	t := &models.CommuteTemplate{}
	if err := row.Scan(&t.ID, &t.EmployeeID, &t.Name, &t.Cost, &t.RouteDescription, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a commute template.
func (r *CommuteTemplateRepository) Create(ctx context.Context, template *models.CommuteTemplate) error {
	sql, args, err := r.sb.Insert("commute_templates").
		Columns("employee_id", "name", "cost", "route_description").
		Values(template.EmployeeID, template.Name, template.Cost, template.RouteDescription).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create commute template SQL")
		return fmt.Errorf("failed to build create commute template query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return ErrUnknownEmployee
		}
		logger.Error().Err(err).Int64("employeeID", template.EmployeeID).Msg("Error executing create commute template query")
		return fmt.Errorf("error creating commute template: %w", err)
	}
	return nil
}

// GetByID retrieves a commute template by ID.
func (r *CommuteTemplateRepository) GetByID(ctx context.Context, id int64) (*models.CommuteTemplate, error) {
	sql, args, err := r.sb.Select(commuteTemplateColumns...).
		From("commute_templates").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get commute template query: %w", err)
	}

	template, err := scanCommuteTemplate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("templateID", id).Msg("Error scanning commute template row")
		return nil, fmt.Errorf("error getting commute template: %w", err)
	}
	return template, nil
}

// ListByEmployee lists an employee's templates, oldest first.
func (r *CommuteTemplateRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*models.CommuteTemplate, error) {
	sql, args, err := r.sb.Select(commuteTemplateColumns...).
		From("commute_templates").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list commute templates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("employeeID", employeeID).Msg("Error executing list commute templates query")
		return nil, fmt.Errorf("error querying commute templates: %w", err)
	}
	defer rows.Close()

	templates := []*models.CommuteTemplate{}
	for rows.Next() {
		template, err := scanCommuteTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning commute template row: %w", err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commute template rows: %w", err)
	}
	return templates, nil
}

// Update applies a partial update and returns the stored template.
func (r *CommuteTemplateRepository) Update(ctx context.Context, id int64, update CommuteTemplateUpdate) (*models.CommuteTemplate, error) {
	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Cost != nil {
		set["cost"] = *update.Cost
	}
	if update.RouteDescription != nil {
		set["route_description"] = *update.RouteDescription
	}

	sql, args, err := r.sb.Update("commute_templates").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(commuteTemplateReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update commute template query: %w", err)
	}

	template, err := scanCommuteTemplate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("templateID", id).Msg("Error executing update commute template query")
		return nil, fmt.Errorf("error updating commute template: %w", err)
	}
	return template, nil
}

// Delete removes a template and returns the deleted row.
func (r *CommuteTemplateRepository) Delete(ctx context.Context, id int64) (*models.CommuteTemplate, error) {
	sql, args, err := r.sb.Delete("commute_templates").
		Where(squirrel.Eq{"id": id}).
		Suffix(commuteTemplateReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete commute template query: %w", err)
	}

	template, err := scanCommuteTemplate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("templateID", id).Msg("Error executing delete commute template query")
		return nil, fmt.Errorf("error deleting commute template: %w", err)
	}
	return template, nil
}
