package dto

import "github.com/stapro/nfc-attendance/internal/app/models"

// CreateCardRequest registers a card for an existing employee.
type CreateCardRequest struct {
	CardID string  `json:"cardId" binding:"required,cardid" example:"CARD12345678"`
	Name   *string `json:"name" example:"Main Card"`
}

// UpdateCardRequest changes a card's label or activation flag.
type UpdateCardRequest struct {
	Name     *string `json:"name" example:"Backup Card"`
	IsActive *bool   `json:"is_active" example:"true"`
}

// RegisterCardWithAuthRequest binds a card to the employee behind staffing system credentials.
type RegisterCardWithAuthRequest struct {
	CardID   string `json:"cardId" binding:"required,cardid" example:"CARD12345678"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RegisterCardResponse carries the card and the employee it was bound to.
type RegisterCardResponse struct {
	Card     *models.Card     `json:"card"`
	Employee *models.Employee `json:"employee"`
}
