package checkout

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var ErrCartEmpty = apperror.New(
	apperror.CodeConflict,
	"Cart is empty",
	http.StatusConflict,
)
