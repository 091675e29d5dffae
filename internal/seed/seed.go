package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/stapro/nfc-attendance/internal/app/models"
	appRepos "github.com/stapro/nfc-attendance/internal/app/repositories"
	"github.com/stapro/nfc-attendance/internal/db"
)

// DemoEmployee is an employee created with one card and a set of commute templates.
type DemoEmployee struct {
	Name      string
	CardID    string
	Templates []appModels.CommuteTemplate
}

// DemoEmployees returns the demo data inserted by CreateDefaultData.
func DemoEmployees() []DemoEmployee {
	route := "Shinjuku -> Tokyo"
	return []DemoEmployee{
		{
			Name:   "Taro Yamada",
			CardID: "12345678",
			Templates: []appModels.CommuteTemplate{
				{Name: "Train (Home -> Office)", Cost: 500, RouteDescription: &route},
				{Name: "Bus (Station -> Office)", Cost: 220},
			},
		},
		{
			Name:   "Hanako Suzuki",
			CardID: "87654321",
			Templates: []appModels.CommuteTemplate{
				{Name: "Subway", Cost: 180},
			},
		},
	}
}

// CreateDefaultData inserts the demo employees in one transaction. Employees whose
// card is already registered are skipped, so running it twice is harmless.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (employees, cards, commute templates)...")

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx)
		for _, demo := range DemoEmployees() {
			created, err := seedEmployee(ctx, repos, demo)
			if err != nil {
				lgr.Error().Err(err).Str("employee", demo.Name).Msg("Error creating demo employee")
				return err
			}
			if created {
				lgr.Info().Str("employee", demo.Name).Str("cardID", demo.CardID).Msg("Demo employee created")
			} else {
				lgr.Debug().Str("cardID", demo.CardID).Msg("Demo card already registered, skipping")
			}
		}
		return nil
	})
}

func seedEmployee(ctx context.Context, repos *appRepos.Repositories, demo DemoEmployee) (bool, error) {
	_, err := repos.CardRepository.GetByCardID(ctx, demo.CardID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, appRepos.ErrNotFound) {
		return false, fmt.Errorf("error checking demo card %s: %w", demo.CardID, err)
	}

	employee := &appModels.Employee{Name: demo.Name}
	if err := repos.EmployeeRepository.Create(ctx, employee); err != nil {
		return false, fmt.Errorf("error creating demo employee: %w", err)
	}

	card := &appModels.Card{CardID: demo.CardID, IsActive: true, EmployeeID: employee.ID}
	if err := repos.CardRepository.Create(ctx, card); err != nil {
		return false, fmt.Errorf("error creating demo card: %w", err)
	}

	for _, tpl := range demo.Templates {
		tpl.EmployeeID = employee.ID
		if err := repos.CommuteTemplateRepository.Create(ctx, &tpl); err != nil {
			return false, fmt.Errorf("error creating demo commute template: %w", err)
		}
	}
	return true, nil
}
