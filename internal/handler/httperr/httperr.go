package httperr

import (
	"errors"
	"net/http"

	"staybook/internal/domain/auth"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidRequest = "Invalid request"
	MsgUnauthorized   = "Unauthorized"
	MsgInternal       = "Internal server error"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an outcome to its HTTP status. Unclassified errors are 500.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrExpiredToken):
		return http.StatusUnauthorized
	}
	switch errs.Kind(err) {
	case errs.ErrInvalidInput:
		return http.StatusBadRequest
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Abort answers err with its mapped status. Classified errors expose their own
// message; anything else is reported as a generic internal error.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := MsgInternal
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, nil)
}

// AbortBinding answers request binding and validation failures with 400.
func AbortBinding(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, err.Error())
}
