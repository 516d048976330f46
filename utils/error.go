package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies the outcome of a failed domain operation.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindDuplicate   ErrorKind = "duplicate_identifier"
	KindValidation  ErrorKind = "validation_failure"
	KindPersistence ErrorKind = "persistence_failure"
	KindConflict    ErrorKind = "conflict"
	KindUnavailable ErrorKind = "unavailable"

	// Kinds for callers acting outside their rights, mostly written by middleware.
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindRateLimited  ErrorKind = "rate_limited"
)

// AppError is the typed failure outcome returned by repositories and services.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) *AppError {
	return &AppError{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *AppError {
	return &AppError{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Unavailable(err error, format string, args ...any) *AppError {
	return &AppError{Kind: KindUnavailable, Message: fmt.Sprintf(format, args...), Err: err}
}

// Persistence wraps a storage failure. Errors that already carry a kind are returned unchanged.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return &AppError{Kind: KindPersistence, Message: "failed to " + op, Err: err}
}

// KindOf reports the kind of err, or KindPersistence for untyped errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// StatusFor maps an error to the HTTP status returned to callers.
func StatusFor(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate, KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   ErrorKind    `json:"error"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.FullPath()))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   KindPersistence,
					Message: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// RespondError writes the failure envelope for err and logs it.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	resp := ErrorResponse{Error: KindOf(err), Message: "An unexpected error occurred"}

	var appErr *AppError
	if errors.As(err, &appErr) {
		resp.Message = appErr.Message
		resp.Details = appErr.Fields
	}

	logger := GetLogger()
	if status >= http.StatusInternalServerError {
		logger.Error(resp.Message, zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		logger.Warn(resp.Message, zap.String("path", c.FullPath()), zap.String("kind", string(resp.Error)))
	}
	c.JSON(status, resp)
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, kind ErrorKind, message string) {
	GetLogger().Warn(message, zap.Int("status", status))
	c.JSON(status, ErrorResponse{Error: kind, Message: message})
}
