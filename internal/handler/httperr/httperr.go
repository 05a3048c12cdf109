package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of every error body the API emits. Handlers
// that write errors inline use the same flat {"error": "..."} form.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// Abort records the original error on the gin error stack and writes the
// public response. The recorded error is what the logging middleware sees.
func Abort(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
