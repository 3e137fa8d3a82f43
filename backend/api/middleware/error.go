package middleware

import (
	"fmt"

	"article-hub/backend/common"
	"article-hub/backend/common/httperr"

	"github.com/gin-gonic/gin"
)

// errorEnvelope is the wire format every failure is rendered as. The status
// label is a fixed literal, kept verbatim for client compatibility.
type errorEnvelope struct {
	Code    int      `json:"code"`
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

const errorStatusLabel = "BAD REQUEST"

// ErrorHandler renders any error attached to the context. Handlers report
// failures with c.Error(err) and abort; nothing here runs for clean requests.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		httpErr := httperr.From(c.Errors.Last().Err)
		common.SysError(fmt.Sprintf("[%s] %s >> StatusCode:: %d, Code:: %s, Message:: %s",
			c.Request.Method, c.Request.URL.Path, httpErr.Status, httpErr.Code, httpErr.Message))

		details := httpErr.Errors
		if details == nil {
			details = []string{}
		}
		c.JSON(httpErr.Status, errorEnvelope{
			Code:    httpErr.Status,
			Status:  errorStatusLabel,
			Message: httpErr.Message,
			Errors:  details,
		})
	}
}
