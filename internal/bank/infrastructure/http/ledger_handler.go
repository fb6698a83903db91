package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mlipski/schoolbank/internal/bank/application"
	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/jwt"
)

type TransferService interface {
	Transfer(ctx context.Context, fromUserID, toUserID, amount int64, description string) (int64, error)
}

type PurchaseService interface {
	PurchaseCourse(ctx context.Context, userID, courseID int64, voucherCode string) (application.PurchaseResult, error)
}

type OverviewService interface {
	GetOverview(ctx context.Context, userID int64) (application.AccountOverview, error)
	GetBalance(ctx context.Context, userID int64) (domain.Account, error)
}

type HistoryService interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
	ListAll(ctx context.Context) ([]domain.Transaction, error)
}

type transferRequestBody struct {
	ToUserID    int64  `json:"toUserId" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description"`
}

type purchaseRequestBody struct {
	CourseID    int64  `json:"courseId" binding:"required"`
	VoucherCode string `json:"voucherCode"`
}

type transactionResponse struct {
	ID          int64     `json:"id"`
	FromUserID  *int64    `json:"fromUserId"`
	ToUserID    *int64    `json:"toUserId"`
	Amount      int64     `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type voucherResponse struct {
	Code    string `json:"code"`
	Percent int    `json:"percent"`
}

type LedgerHandler struct {
	transfers TransferService
	purchases PurchaseService
	overview  OverviewService
	history   HistoryService
}

func NewLedgerHandler(
	transfers TransferService,
	purchases PurchaseService,
	overview OverviewService,
	history HistoryService,
) *LedgerHandler {
	return &LedgerHandler{
		transfers: transfers,
		purchases: purchases,
		overview:  overview,
		history:   history,
	}
}

func (h *LedgerHandler) GetBalance(c *gin.Context) {
	account, err := h.overview.GetBalance(c.Request.Context(), c.GetInt64(jwt.UserIDContextKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":  account.Balance,
		"currency": account.Currency,
	})
}

func (h *LedgerHandler) Transfer(c *gin.Context) {
	var body transferRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	balance, err := h.transfers.Transfer(c.Request.Context(), c.GetInt64(jwt.UserIDContextKey), body.ToUserID, body.Amount, body.Description)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

func (h *LedgerHandler) Purchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	result, err := h.purchases.PurchaseCourse(c.Request.Context(), c.GetInt64(jwt.UserIDContextKey), body.CourseID, body.VoucherCode)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courseId": result.Enrollment.CourseID,
		"paid":     result.PricePaid,
		"balance":  result.RemainingBalance,
	})
}

func (h *LedgerHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.history.ListByUser(c.Request.Context(), c.GetInt64(jwt.UserIDContextKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": toTransactionResponses(transactions)})
}

func (h *LedgerHandler) GetOverview(c *gin.Context) {
	overview, err := h.overview.GetOverview(c.Request.Context(), c.GetInt64(jwt.UserIDContextKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	vouchers := make([]voucherResponse, 0, len(overview.Vouchers))
	for _, voucher := range overview.Vouchers {
		vouchers = append(vouchers, voucherResponse{
			Code:    voucher.Code,
			Percent: voucher.Percent,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":      overview.Account.Balance,
		"currency":     overview.Account.Currency,
		"transactions": toTransactionResponses(overview.Transactions),
		"vouchers":     vouchers,
	})
}

func toTransactionResponses(transactions []domain.Transaction) []transactionResponse {
	responses := make([]transactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, transactionResponse{
			ID:          transaction.ID,
			FromUserID:  transaction.FromUserID,
			ToUserID:    transaction.ToUserID,
			Amount:      transaction.Amount,
			Type:        string(transaction.Type),
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt,
		})
	}

	return responses
}
