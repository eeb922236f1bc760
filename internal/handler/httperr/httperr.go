package httperr

import (
	"github.com/gin-gonic/gin"

	"loyalty-coupon-api/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AbortWithError records the original error on the context for the
// error middleware and monitoring, then writes the public response.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
