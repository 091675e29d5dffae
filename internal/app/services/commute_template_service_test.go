package services

import (
	"context"
	"testing"

	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/repositories"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
	"github.com/stapro/nfc-attendance/internal/pkg/staffing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateFixture() (CommuteTemplateService, *fakeTemplates) {
	employees := newFakeEmployees(&models.Employee{ID: 1, Name: "Yamada Taro"})
	templates := newFakeTemplates(&models.CommuteTemplate{ID: 1, EmployeeID: 1, Name: "Train", Cost: 500})
	return NewCommuteTemplateService(templates, employees), templates
}

func TestCreateTemplate(t *testing.T) {
	svc, _ := newTemplateFixture()

	tpl, err := svc.CreateTemplate(context.Background(), dto.CreateCommuteTemplateRequest{
		EmployeeID: 1, Name: "  Bus ", Cost: 220, RouteDescription: strPtr("Station -> Office"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Bus", tpl.Name)
	assert.Equal(t, 220, tpl.Cost)
	assert.NotZero(t, tpl.ID)
}

func TestCreateTemplate_Validation(t *testing.T) {
	svc, _ := newTemplateFixture()
	ctx := context.Background()

	_, err := svc.CreateTemplate(ctx, dto.CreateCommuteTemplateRequest{EmployeeID: 1, Name: " "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateTemplate(ctx, dto.CreateCommuteTemplateRequest{EmployeeID: 1, Name: "Bus", Cost: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateTemplate(ctx, dto.CreateCommuteTemplateRequest{EmployeeID: 9, Name: "Bus"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCreateTemplate_EmployeeDeletedConcurrently(t *testing.T) {
	svc, templates := newTemplateFixture()
	templates.createErr = repositories.ErrUnknownEmployee

	_, err := svc.CreateTemplate(context.Background(), dto.CreateCommuteTemplateRequest{EmployeeID: 1, Name: "Bus", Cost: 220})

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "employee_not_found", apperrors.Message(err, ""))
}

func TestUpdateTemplate_PartialFields(t *testing.T) {
	svc, _ := newTemplateFixture()

	tpl, err := svc.UpdateTemplate(context.Background(), 1, dto.UpdateCommuteTemplateRequest{Cost: intPtr(600)})

	require.NoError(t, err)
	assert.Equal(t, "Train", tpl.Name)
	assert.Equal(t, 600, tpl.Cost)
	assert.Equal(t, int64(1), tpl.EmployeeID)
}

func TestTemplate_NotFound(t *testing.T) {
	svc, _ := newTemplateFixture()
	ctx := context.Background()

	_, err := svc.GetTemplate(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "commute_template_not_found", apperrors.Message(err, ""))

	_, err = svc.UpdateTemplate(ctx, 404, dto.UpdateCommuteTemplateRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.DeleteTemplate(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteTemplate(t *testing.T) {
	svc, templates := newTemplateFixture()

	tpl, err := svc.DeleteTemplate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Train", tpl.Name)
	remaining, err := templates.ListByEmployee(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestEmployeeService(t *testing.T) {
	employees := newFakeEmployees(
		&models.Employee{ID: 2, Name: "Suzuki Hanako"},
		&models.Employee{ID: 1, Name: "Yamada Taro"},
	)
	svc := NewEmployeeService(employees)
	ctx := context.Background()

	all, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)

	_, err = svc.GetEmployee(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetEmployee(ctx, 3)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSchoolService(t *testing.T) {
	staff := &fakeStaffing{schools: []staffing.School{{ID: 1, Name: "Shinjuku"}}}
	svc := NewSchoolService(staff)

	schools, err := svc.ListSchools(context.Background())
	require.NoError(t, err)
	assert.Len(t, schools, 1)

	staff.schoolsErr = apperrors.ErrExternalService
	_, err = svc.ListSchools(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
}
