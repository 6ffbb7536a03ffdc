package middleware

import (
	"log/slog"
	"net/http"

	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler writes the response for handlers that recorded an error without
// writing one, and logs every unclassified error with a shortened stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, ge := range c.Errors {
			if httperr.StatusOf(ge.Err) == http.StatusInternalServerError {
				slog.Error("unhandled error",
					"request_id", GetRequestID(c),
					"path", c.FullPath(),
					"error", ge.Err.Error(),
					"stack", errs.ExtractStackLines(ge.Err, stackLines))
			}
		}
		if c.Writer.Written() {
			return
		}

		// the last public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if resp, ok := ge.Meta.(httperr.Response); ok && ge.IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		c.JSON(http.StatusInternalServerError, internalResponse())
	}
}

// CustomRecovery turns a panic into a 500. It must be the outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = cr.Newf("panic: %v", rec)
			}
			err = cr.WithStack(err)

			slog.Error("recovered from panic",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, stackLines))

			c.AbortWithStatusJSON(http.StatusInternalServerError, internalResponse())
		}()
		c.Next()
	}
}

func internalResponse() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = httperr.MsgInternal
	return resp
}
