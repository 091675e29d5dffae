package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/services"
	"github.com/stapro/nfc-attendance/internal/middleware"
)

// CardController handles NFC card management
type CardController struct {
	cardService services.CardService
}

// NewCardController creates a new CardController
func NewCardController(cardService services.CardService) *CardController {
	return &CardController{cardService: cardService}
}

// ListCards lists an employee's cards
// @Summary List employee cards
// @Tags cards
// @Produce json
// @Param employeeId path int true "Employee ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Card} "Cards, newest first"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employeeId}/cards [get]
func (c *CardController) ListCards(ctx *gin.Context) {
	employeeID, ok := middleware.ParseIDParam(ctx, "employeeId")
	if !ok {
		return
	}

	cards, err := c.cardService.ListCards(ctx.Request.Context(), employeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cards))
}

// CreateCard registers a card for an employee
// @Summary Register a card
// @Tags cards
// @Accept json
// @Produce json
// @Param employeeId path int true "Employee ID" Format(int64) minimum(1)
// @Param request body dto.CreateCardRequest true "Card data"
// @Success 201 {object} dto.APIResponse{data=models.Card} "Card registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Card already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employeeId}/cards [post]
func (c *CardController) CreateCard(ctx *gin.Context) {
	employeeID, ok := middleware.ParseIDParam(ctx, "employeeId")
	if !ok {
		return
	}
	var req dto.CreateCardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	card, err := c.cardService.CreateCard(ctx.Request.Context(), employeeID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(card))
}

// UpdateCard changes a card's label or activation flag
// @Summary Update a card
// @Tags cards
// @Accept json
// @Produce json
// @Param employeeId path int true "Employee ID" Format(int64) minimum(1)
// @Param cardId path int true "Card ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCardRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Card} "Card updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Card not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employeeId}/cards/{cardId} [patch]
func (c *CardController) UpdateCard(ctx *gin.Context) {
	employeeID, ok := middleware.ParseIDParam(ctx, "employeeId")
	if !ok {
		return
	}
	id, ok := middleware.ParseIDParam(ctx, "cardId")
	if !ok {
		return
	}
	var req dto.UpdateCardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	card, err := c.cardService.UpdateCard(ctx.Request.Context(), employeeID, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(card))
}

// DeleteCard removes a card
// @Summary Delete a card
// @Tags cards
// @Produce json
// @Param employeeId path int true "Employee ID" Format(int64) minimum(1)
// @Param cardId path int true "Card ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Card deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Card not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employeeId}/cards/{cardId} [delete]
func (c *CardController) DeleteCard(ctx *gin.Context) {
	employeeID, ok := middleware.ParseIDParam(ctx, "employeeId")
	if !ok {
		return
	}
	id, ok := middleware.ParseIDParam(ctx, "cardId")
	if !ok {
		return
	}

	if err := c.cardService.DeleteCard(ctx.Request.Context(), employeeID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Card deleted successfully"}))
}

// RegisterCardWithAuth binds a card using staffing system credentials
// @Summary Register a card with staffing login
// @Description Logs into the staffing system, creates the employee on first login and binds the card
// @Tags cards
// @Accept json
// @Produce json
// @Param request body dto.RegisterCardWithAuthRequest true "Card and credentials"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterCardResponse} "Card registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 409 {object} dto.ErrorResponse "Card bound to another employee"
// @Failure 502 {object} dto.ErrorResponse "Staffing system unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cards/register-auth [post]
func (c *CardController) RegisterCardWithAuth(ctx *gin.Context) {
	var req dto.RegisterCardWithAuthRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.cardService.RegisterCardWithAuth(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}
