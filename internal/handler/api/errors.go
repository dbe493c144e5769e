package api

import (
	"errors"
	"net/http"

	"booking-core/internal/handler/httperr"
	"booking-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Sentinels wrap one another only through errs.Mark, so the first match wins.
var errorMappings = []errorMapping{
	{commands.ErrValidation, http.StatusBadRequest, httperr.CodeValidationFailed, "Invalid request"},
	{commands.ErrUnitNotFound, http.StatusNotFound, httperr.CodeResourceNotFound, "Unit not found"},
	{commands.ErrOrderNotFound, http.StatusNotFound, httperr.CodeOrderNotFound, "Order not found"},
	{commands.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden, "Operation not permitted"},
	{commands.ErrUnitUnavailable, http.StatusConflict, httperr.CodeUnitUnavailable, "Unit is not open for booking"},
	{commands.ErrCapacityExceeded, http.StatusConflict, httperr.CodeCapacityExceeded, "Requested quantity exceeds availability"},
	{commands.ErrOrderExpired, http.StatusGone, httperr.CodeOrderExpired, "Order hold has expired"},
	{commands.ErrAlreadyTerminal, http.StatusConflict, httperr.CodeAlreadyTerminal, "Order is already final"},
	{commands.ErrAmountMismatch, http.StatusUnprocessableEntity, httperr.CodeAmountMismatch, "Amount does not match order total"},
	{commands.ErrVerificationFailed, http.StatusPaymentRequired, httperr.CodeVerificationFailed, "Payment could not be verified"},
	{commands.ErrProofAlreadyUsed, http.StatusConflict, httperr.CodeProofAlreadyUsed, "Payment proof has already been used"},
	{commands.ErrNotTransferable, http.StatusConflict, httperr.CodeNotTransferable, "Order cannot be transferred"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.code, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal error", nil)
}

func abortInvalid(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, msg, nil)
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Unauthorized", nil)
}
