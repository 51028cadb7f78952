package handler

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Result is what every handler returns, the wrapper writes it as json
type Result struct {
	Status int
	Body   any
}

// Error is the body used for every failed request
type Error struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"error" example:"Note not found"`
}

// Fail builds a failed Result with the given status and message
func Fail(status int, message string) Result {
	return Result{
		Status: status,
		Body:   Error{Message: message},
	}
}

// Wrapper adapts a Result returning handler into a gin.HandlerFunc
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}

// BodyLimit caps the size of request bodies, reads beyond the limit fail while binding
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Body != nil {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)
		}
		ctx.Next()
	}
}

// errTooLarge is the text of the error http.MaxBytesReader returns past its limit, go 1.18 has no typed error for it
const errTooLarge = "http: request body too large"

// BindFail maps a failed body bind to a 413 when the body went past BodyLimit and to a 400 otherwise
func BindFail(err error) Result {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if e.Error() == errTooLarge {
			return Fail(http.StatusRequestEntityTooLarge, "request body too large")
		}
	}
	return Fail(http.StatusBadRequest, "invalid body")
}
