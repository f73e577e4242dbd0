package middleware

import (
	"log/slog"
	"net/http"

	"vehicle-booking/internal/handler/httperr"
	"vehicle-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLogLines = 12

// ErrorHandler turns errors recorded on the gin context into the public JSON
// body. Handlers abort with httperr, so by the time this runs the response is
// usually written already; this is the fallback for anything that slipped
// through.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logInternalErrors(c)

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// lastPublicResponse scans backward so the most recent public error wins.
func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		ginErr := c.Errors[i]
		if !ginErr.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := ginErr.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func logInternalErrors(c *gin.Context) {
	if c.Writer.Status() < http.StatusInternalServerError || len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	slog.Error("request failed",
		"request_id", GetRequestID(c),
		"path", c.Request.URL.Path,
		"error", last.Err.Error(),
		"stack", errs.ExtractStackLines(last.Err, stackLogLines),
	)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic",
					"panic", r,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
