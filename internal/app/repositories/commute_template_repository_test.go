package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stapro/nfc-attendance/internal/app/models"
)

func TestCommuteTemplateRepository_Update(t *testing.T) {
	cost := 640
	route := "Shibuya - Shinjuku"

	tests := []struct {
		name     string
		update   CommuteTemplateUpdate
		wantSet  string
		wantArgs []any
		unset    []string
	}{
		{
			name:     "cost only",
			update:   CommuteTemplateUpdate{Cost: &cost},
			wantSet:  "UPDATE commute_templates SET cost = $1, updated_at = NOW() WHERE id = $2",
			wantArgs: []any{640, int64(5)},
			unset:    []string{"name = ", "route_description = "},
		},
		{
			name:     "cost and route",
			update:   CommuteTemplateUpdate{Cost: &cost, RouteDescription: &route},
			wantSet:  "UPDATE commute_templates SET cost = $1, route_description = $2, updated_at = NOW() WHERE id = $3",
			wantArgs: []any{640, route, int64(5)},
			unset:    []string{"name = "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &recordingDB{}

			_, err := NewCommuteTemplateRepository(db).Update(context.Background(), 5, tt.update)

			assert.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, db.sql, tt.wantSet)
			assert.Contains(t, db.sql, commuteTemplateReturning)
			assert.Equal(t, tt.wantArgs, db.args)
			for _, column := range tt.unset {
				assert.NotContains(t, db.sql, column)
			}
		})
	}
}

func TestCommuteTemplateRepository_CreateForMissingEmployee(t *testing.T) {
	db := &recordingDB{rowErr: foreignKeyViolation()}

	err := NewCommuteTemplateRepository(db).Create(context.Background(), &models.CommuteTemplate{
		EmployeeID: 99, Name: "Train", Cost: 500,
	})

	assert.ErrorIs(t, err, ErrUnknownEmployee)
	assert.Contains(t, db.sql, "INSERT INTO commute_templates (employee_id,name,cost,route_description) VALUES ($1,$2,$3,$4)")
}
