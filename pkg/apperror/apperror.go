// Package apperror holds the typed domain errors surfaced to API clients.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Context names the bounded context an error belongs to.
type Context string

const (
	Auth         Context = "auth"
	Trip         Context = "trip"
	Reservation  Context = "reservation"
	Hotel        Context = "hotel"
	Media        Context = "media"
	City         Context = "city"
	Facility     Context = "facility"
	Admin        Context = "admin"
	UserProfile  Context = "user_profile"
	Verification Context = "verification"
	HeroImage    Context = "hero_image"
)

type Error struct {
	Context Context
	Status  int
	Message string
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Context, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same context, status and message so that sentinel
// values still compare equal after WithDetails or Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Context == t.Context && e.Status == t.Status && e.Message == t.Message
}

// WithDetails returns a copy of e carrying the given details.
func (e *Error) WithDetails(details map[string]any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Wrap returns a copy of e wrapping cause.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.Err = cause
	return &cp
}

func New(ctx Context, status int, message string) *Error {
	return &Error{Context: ctx, Status: status, Message: message}
}

func NotFound(ctx Context, message string) *Error {
	return New(ctx, http.StatusNotFound, message)
}

func Conflict(ctx Context, message string) *Error {
	return New(ctx, http.StatusConflict, message)
}

func Forbidden(ctx Context, message string) *Error {
	return New(ctx, http.StatusForbidden, message)
}

func Unauthorized(ctx Context, message string) *Error {
	return New(ctx, http.StatusUnauthorized, message)
}

func Unprocessable(ctx Context, message string) *Error {
	return New(ctx, http.StatusUnprocessableEntity, message)
}

func BadRequest(ctx Context, message string) *Error {
	return New(ctx, http.StatusBadRequest, message)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
