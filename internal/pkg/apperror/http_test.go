package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-storefront-api/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	apperror.Init()

	t.Run("nil_error", func(t *testing.T) {
		res := apperror.ToHTTP(nil)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Empty(t, res.Code)
	})

	t.Run("wrapped_app_error", func(t *testing.T) {
		base := apperror.New(apperror.CodeNotFound, "Product not found", http.StatusNotFound)
		res := apperror.ToHTTP(fmt.Errorf("lookup: %w", base))

		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, apperror.CodeNotFound, res.Code)
		assert.Equal(t, "Product not found", res.Message)
	})

	t.Run("status_from_code_when_missing", func(t *testing.T) {
		res := apperror.ToHTTP(&apperror.AppError{Code: apperror.CodeOutOfStock, Message: "gone"})
		assert.Equal(t, http.StatusConflict, res.Status)
	})

	t.Run("unknown_error_is_internal", func(t *testing.T) {
		res := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, apperror.CodeInternalError, res.Code)
		assert.Equal(t, "internal server error", res.Message)
	})
}

func TestAppError_WithDetails(t *testing.T) {
	base := apperror.New(apperror.CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	withDetails := base.WithDetails(map[string]string{"field": "qty"})

	assert.Nil(t, base.Details)
	assert.True(t, errors.Is(withDetails, base))
	assert.Equal(t, map[string]string{"field": "qty"}, apperror.ToHTTP(withDetails).Details)
}
