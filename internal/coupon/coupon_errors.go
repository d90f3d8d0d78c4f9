package coupon

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrInvalidSession = apperror.New(
		apperror.CodeInvalidInput,
		"Missing session",
		http.StatusBadRequest,
	)

	ErrMissingCode = apperror.New(
		apperror.CodeInvalidInput,
		"Ingresa un código",
		http.StatusBadRequest,
	)

	ErrCouponNotFound = apperror.New(
		apperror.CodeNotFound,
		"Código inválido",
		http.StatusNotFound,
	)
)
