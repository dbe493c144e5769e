package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Reason codes returned in every error body. Clients branch on these, so
// they never change once published.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeUnitUnavailable    = "UNIT_UNAVAILABLE"
	CodeCapacityExceeded   = "CAPACITY_EXCEEDED"
	CodeOrderNotFound      = "ORDER_NOT_FOUND"
	CodeOrderExpired       = "ORDER_EXPIRED"
	CodeAlreadyTerminal    = "ALREADY_TERMINAL"
	CodeAmountMismatch     = "AMOUNT_MISMATCH"
	CodeVerificationFailed = "VERIFICATION_FAILED"
	CodeProofAlreadyUsed   = "PROOF_ALREADY_USED"
	CodeNotTransferable    = "NOT_TRANSFERABLE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string) Response {
	return Response{Status: status, Error: Body{Code: code, Message: msg}}
}

// AbortWithError records err on the context for logging and writes the
// coded error body.
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := NewResponse(status, code, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
