package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlipski/schoolbank/internal/bank/domain"
)

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.InvalidCredentialsError{}):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.InsufficientFundsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.UserNotFoundError{}),
		errors.Is(err, &domain.AccountNotFoundError{}),
		errors.Is(err, &domain.CourseNotFoundError{}),
		errors.Is(err, &domain.VoucherNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.UserExistsError{}),
		errors.Is(err, &domain.AccountExistsError{}),
		errors.Is(err, &domain.AlreadyEnrolledError{}),
		errors.Is(err, &domain.VoucherUsedError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
