package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/MikeMC777/stencil-orders/internal/db"
	"github.com/MikeMC777/stencil-orders/internal/logging"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindStore
	KindInternal
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is what handlers return to the client. Kind alone decides the status.
type Error struct {
	Kind   Kind
	Op     string
	Msg    string
	Err    error
	Fields []FieldError
}

// FieldError names one failed binding rule.
// swagger:model FieldError
type FieldError struct {
	Field string `json:"field" example:"qty"`
	Rule  string `json:"rule"  example:"gt"`
	Param string `json:"param,omitempty" example:"0"`
}

// ErrorResponse is the JSON body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error  string       `json:"error" example:"order not found"`
	Fields []FieldError `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindStore:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) Response() ErrorResponse {
	switch e.Kind {
	case KindStore, KindInternal:
		return ErrorResponse{Error: fmt.Sprintf("%s failed: %v", e.Op, e.Err)}
	default:
		return ErrorResponse{Error: e.Msg, Fields: e.Fields}
	}
}

// Validation wraps a binding failure. Rule violations carry per-field detail;
// anything else (bad JSON, non-numeric query value) keeps the decoder message.
func Validation(err error) *Error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		return &Error{Kind: KindValidation, Msg: "validation failed", Err: err, Fields: fields}
	}
	return &Error{Kind: KindValidation, Msg: "invalid request: " + err.Error(), Err: err}
}

func InvalidParam(name, value string) *Error {
	return &Error{
		Kind:   KindValidation,
		Msg:    "validation failed",
		Fields: []FieldError{{Field: name, Rule: "int", Param: value}},
	}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Store is a failed mutation: the transaction was rolled back and the client
// gets the driver message.
func Store(op string, err error) *Error {
	return &Error{Kind: KindStore, Op: op, Msg: op + " failed", Err: err}
}

func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Op: op, Msg: op + " failed", Err: err}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// Abort writes err as the response and stops the handler chain.
func Abort(c *gin.Context, err error) {
	var he *Error
	if !errors.As(err, &he) {
		he = Internal("request", err)
	}
	_ = c.Error(err)

	l := logging.FromContext(c.Request.Context())
	attrs := []any{"kind", he.Kind.String(), "error", he.Error()}
	var qe *db.QueryError
	if errors.As(err, &qe) {
		attrs = append(attrs, "sqlstate", db.SQLState(qe), "query", qe.Query)
	}
	if he.Status() >= http.StatusInternalServerError {
		l.Error("request failed", attrs...)
	} else {
		l.Debug("request rejected", attrs...)
	}
	c.AbortWithStatusJSON(he.Status(), he.Response())
}
