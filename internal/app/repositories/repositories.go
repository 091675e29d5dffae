package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownEmployee is returned when an insert references an employee that no longer exists.
	ErrUnknownEmployee = errors.New("referenced employee does not exist")
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx, so repositories run inside or
// outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	EmployeeRepository        *EmployeeRepository
	CardRepository            *CardRepository
	CommuteTemplateRepository *CommuteTemplateRepository
	AttendanceRepository      *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		EmployeeRepository:        NewEmployeeRepository(db),
		CardRepository:            NewCardRepository(db),
		CommuteTemplateRepository: NewCommuteTemplateRepository(db),
		AttendanceRepository:      NewAttendanceRepository(db),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
