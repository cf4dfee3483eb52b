package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the single failure shape of the API: {error: true, message}.
type ErrorBody struct {
	Error     bool        `json:"error"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

// MessageBody is used for informational, non-error replies such as
// "user already exists".
type MessageBody struct {
	Message string `json:"message"`
}

func Error(ctx *gin.Context, message string, details interface{}) ErrorBody {
	return ErrorBody{
		Error:     true,
		Message:   message,
		RequestID: ctx.GetString("request_id"),
		Details:   details,
	}
}

// Abort writes an ErrorBody with the given status and stops the handler chain.
func Abort(ctx *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, Error(ctx, message, details))
}

// JSON writes a success payload verbatim; persistence results are not wrapped.
func JSON(ctx *gin.Context, status int, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

func Message(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, MessageBody{Message: message})
}
