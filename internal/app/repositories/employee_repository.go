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

// ErrExternalStaffLinked is returned when another employee already carries the external staff id.
var ErrExternalStaffLinked = errors.New("external staff id already linked to an employee")

var employeeColumns = []string{"id", "name", "external_staff_id", "created_at", "updated_at"}

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db DBTX) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	e := &models.Employee{}
	if err := row.Scan(&e.ID, &e.Name, &e.ExternalStaffID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts an employee and fills in its generated fields.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	sql, args, err := r.sb.Insert("employees").
		Columns("name", "external_staff_id").
		Values(employee.Name, employee.ExternalStaffID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create employee SQL")
		return fmt.Errorf("failed to build create employee query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.EmployeesExternalStaffIDKey) {
			return ErrExternalStaffLinked
		}
		logger.Error().Err(err).Msg("Error executing create employee query")
		return fmt.Errorf("error creating employee: %w", err)
	}
	return nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	sql, args, err := r.sb.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get employee by ID SQL")
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	employee, err := scanEmployee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("employeeID", id).Msg("Error scanning employee row")
		return nil, fmt.Errorf("error getting employee by ID: %w", err)
	}
	return employee, nil
}

// GetByExternalStaffID retrieves the employee linked to a staffing system account.
func (r *EmployeeRepository) GetByExternalStaffID(ctx context.Context, staffID int64) (*models.Employee, error) {
	sql, args, err := r.sb.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"external_staff_id": staffID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get employee by staff ID SQL")
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	employee, err := scanEmployee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("externalStaffID", staffID).Msg("Error scanning employee row")
		return nil, fmt.Errorf("error getting employee by external staff ID: %w", err)
	}
	return employee, nil
}

// GetByName retrieves the first employee with the given name.
func (r *EmployeeRepository) GetByName(ctx context.Context, name string) (*models.Employee, error) {
	sql, args, err := r.sb.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"name": name}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get employee by name query: %w", err)
	}

	employee, err := scanEmployee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting employee by name: %w", err)
	}
	return employee, nil
}

// GetAll retrieves all employees ordered by ID
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	sql, args, err := r.sb.Select(employeeColumns...).
		From("employees").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all employees SQL")
		return nil, fmt.Errorf("failed to build get all employees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all employees query")
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning employee row during get all")
			return nil, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating employee rows")
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// Exists reports whether an employee with the ID exists.
func (r *EmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("employees").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building employee exists SQL")
		return false, fmt.Errorf("failed to build employee existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("employeeID", id).Msg("Error checking employee existence")
		return false, fmt.Errorf("error checking employee existence: %w", err)
	}
	return exists, nil
}
