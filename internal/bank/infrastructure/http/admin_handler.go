package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlipski/schoolbank/internal/bank/application"
	"github.com/mlipski/schoolbank/internal/bank/domain"
)

type ProvisionService interface {
	CreateStudent(ctx context.Context, username, password string) (domain.User, error)
}

type AdjustService interface {
	SetBalance(ctx context.Context, userID, targetBalance int64, description string) (application.AdjustmentResult, error)
}

type createStudentRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type adjustRequestBody struct {
	UserID      int64  `json:"userId" binding:"required"`
	Balance     *int64 `json:"balance" binding:"required"`
	Description string `json:"description"`
}

type AdminHandler struct {
	provision ProvisionService
	adjust    AdjustService
	history   HistoryService
}

func NewAdminHandler(provision ProvisionService, adjust AdjustService, history HistoryService) *AdminHandler {
	return &AdminHandler{
		provision: provision,
		adjust:    adjust,
		history:   history,
	}
}

func (h *AdminHandler) CreateStudent(c *gin.Context) {
	var body createStudentRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	student, err := h.provision.CreateStudent(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       student.ID,
		"username": student.Username,
	})
}

func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	var body adjustRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	result, err := h.adjust.SetBalance(c.Request.Context(), body.UserID, *body.Balance, body.Description)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"previousBalance": result.PreviousBalance,
		"currentBalance":  result.CurrentBalance,
		"difference":      result.Difference,
	})
}

func (h *AdminHandler) GetAllTransactions(c *gin.Context) {
	transactions, err := h.history.ListAll(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": toTransactionResponses(transactions)})
}
