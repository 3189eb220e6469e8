package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"
	"club-coordination-backend/internal/notification"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NewValidator creates a validator that reports JSON field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs struct validation and converts the first failure into a ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), describeFieldError(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// normalizePagination applies the default page size and rejects out-of-range values
func normalizePagination(limit, offset int) (int, int, error) {
	if limit < 0 || offset < 0 || limit > maxPageSize {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	return limit, offset, nil
}

// emit hands an event to the dispatcher. Delivery failures are logged and never returned:
// by the time an event is emitted the state change has committed.
func emit(ctx context.Context, dispatcher notification.Dispatcher, event notification.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Dispatch(ctx, event); err != nil {
		logger.WithContext(ctx).WithError(err).
			WithField("event_type", event.Type).
			Warn("failed to dispatch domain event")
	}
}
