package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bundle-service/internal/domain/dto"
	"github.com/guttosm/bundle-service/internal/i18n"
	"github.com/guttosm/bundle-service/internal/middleware"
)

// Response envelope pools. Every bundle endpoint answers through one of
// these, and the widget polls while a toggle settles, so the envelopes are
// worth recycling. Envelopes are zeroed before going back so a recycled one
// can never leak another shopper's payload.
var (
	successPool = sync.Pool{New: func() interface{} { return new(dto.SuccessResponse) }}
	errorPool   = sync.Pool{New: func() interface{} { return new(dto.ErrorResponse) }}
)

// ResponseBuilder renders the standard response envelopes for one request:
// success payloads wrapped in dto.SuccessResponse, failures as localized
// dto.ErrorResponse values.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in the success envelope with the given status.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := successPool.Get().(*dto.SuccessResponse)
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the envelope can go back to the pool
	// as soon as JSON returns.
	b.c.JSON(statusCode, resp)

	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

// SuccessOK sends a 200 response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessAccepted sends a 202 response with the given data. Toggle answers
// use it while the mutation is still in its latency window.
func (b *ResponseBuilder) SuccessAccepted(data interface{}) {
	b.Success(http.StatusAccepted, data)
}

// Error sends a localized error response; the error code is derived from the
// HTTP status. A non-nil err is attached to the context for the error
// handler middleware to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorCode(statusCode, dto.ErrCodeFromStatus(statusCode), messageKey, err)
}

// ErrorCode sends a localized error response with an explicit domain error
// code, for statuses shared by several failures (404 unknown_product vs
// not_found, 409 toggle_in_flight vs bundle_full vs checkout_not_ready).
func (b *ResponseBuilder) ErrorCode(statusCode int, code, messageKey string, err error) {
	resp := errorPool.Get().(*dto.ErrorResponse)
	resp.Error = code
	resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)

	*resp = dto.ErrorResponse{}
	errorPool.Put(resp)
}
