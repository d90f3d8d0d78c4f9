package cart

import (
	"errors"
	"fmt"
	"net/http"

	"go-storefront-api/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidSession = apperror.New(
		apperror.CodeInvalidInput,
		"Missing session",
		http.StatusBadRequest,
	)

	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"Item kind must be product or service",
		http.StatusBadRequest,
	)

	ErrInvalidItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid item ID",
		http.StatusBadRequest,
	)

	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidReservation = apperror.New(
		apperror.CodeInvalidInput,
		"A reservation needs both a date and a time slot",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Reservation date is in the past",
		http.StatusBadRequest,
	)

	ErrDayUnavailable = apperror.New(
		apperror.CodeInvalidInput,
		"Service is not available on that day",
		http.StatusBadRequest,
	)

	ErrSlotUnavailable = apperror.New(
		apperror.CodeInvalidInput,
		"Time slot is not offered by this service",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrServiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service not found",
		http.StatusNotFound,
	)

	ErrOutOfStock = apperror.New(
		apperror.CodeOutOfStock,
		"Not enough stock for this product",
		http.StatusConflict,
	)
)

// MapValidationError turns validator output into an INVALID_INPUT error that
// lists the failing fields.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.New(apperror.CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fmt.Sprintf("failed on %q", fe.Tag())
	}
	return apperror.New(apperror.CodeInvalidInput, "Invalid input", http.StatusBadRequest).WithDetails(fields)
}
