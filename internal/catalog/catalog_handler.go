package catalog

import (
	"net/http"
	"strconv"
	"time"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// DateLayout is the calendar date format accepted by the API.
const DateLayout = "2006-01-02"

type Handler struct {
	provider Provider
}

func NewHandler(p Provider) *Handler {
	return &Handler{provider: p}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// ListProducts
// GET /catalog/products?category=
func (h *Handler) ListProducts(c *gin.Context) {
	products := ProductsByCategory(h.provider.Products(), c.Query("category"))

	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	response.Success(c, http.StatusOK, res, nil)
}

// ListServices
// GET /catalog/services?category=
func (h *Handler) ListServices(c *gin.Context) {
	services := ServicesByCategory(h.provider.Services(), c.Query("category"))

	res := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		res = append(res, toServiceResponse(s))
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories := h.provider.Categories()

	res := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		res = append(res, CategoryResponse{ID: cat.ID, Name: cat.Name, Icon: cat.Icon})
	}
	response.Success(c, http.StatusOK, res, nil)
}

// ServiceSlots lists the bookable time slots of a service for a date.
// GET /catalog/services/:id/slots?date=YYYY-MM-DD
func (h *Handler) ServiceSlots(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.writeError(c, ErrInvalidServiceID)
		return
	}

	svc, ok := h.provider.FindService(id)
	if !ok {
		h.writeError(c, ErrServiceNotFound)
		return
	}

	date, err := time.Parse(DateLayout, c.Query("date"))
	if err != nil {
		h.writeError(c, ErrInvalidDate)
		return
	}

	slots := svc.SlotsFor(date)
	if slots == nil {
		slots = []string{}
	}
	response.Success(c, http.StatusOK, SlotsResponse{
		ServiceID: svc.ID,
		Date:      date.Format(DateLayout),
		Available: len(slots) > 0,
		Slots:     slots,
	}, nil)
}
