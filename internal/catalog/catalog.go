package catalog

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll is the pseudo category that matches every item.
const CategoryAll = "all"

type Product struct {
	ID            int
	Name          string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Image         string
	Description   string
	Stock         int
	Category      string
	CategoryID    string
}

// HasMarkdown reports whether the catalog lists the product below its original
// price. It is independent of coupon discounts.
func (p Product) HasMarkdown() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

// MarkdownPercent is the badge value shown for a marked-down product, rounded
// to a whole percent. Zero when there is no markdown.
func (p Product) MarkdownPercent() int64 {
	if !p.HasMarkdown() || p.OriginalPrice.IsZero() {
		return 0
	}
	return p.OriginalPrice.Sub(p.Price).
		Div(*p.OriginalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

type Service struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	Image       string
	Description string
	// Duration in minutes.
	Duration      int
	AvailableDays []string
	TimeSlots     []string
	CategoryID    string
}

// Short weekday labels used by AvailableDays, indexed by time.Weekday.
var weekdayLabels = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

func WeekdayLabel(d time.Weekday) string {
	return weekdayLabels[d]
}

// IsAvailableOn reports whether the service can be booked on date's weekday.
// An empty AvailableDays list means every day.
func (s Service) IsAvailableOn(date time.Time) bool {
	if len(s.AvailableDays) == 0 {
		return true
	}
	return slices.Contains(s.AvailableDays, WeekdayLabel(date.Weekday()))
}

func (s Service) HasTimeSlot(slot string) bool {
	return slices.Contains(s.TimeSlots, slot)
}

// SlotsFor lists the bookable slots for date, or nil when the day is closed.
func (s Service) SlotsFor(date time.Time) []string {
	if !s.IsAvailableOn(date) {
		return nil
	}
	return slices.Clone(s.TimeSlots)
}

type Category struct {
	ID   string
	Name string
	Icon string
}

// Provider is the read-only catalog the cart resolves against.
type Provider interface {
	Products() []Product
	Services() []Service
	Categories() []Category
	FindProduct(id int) (Product, bool)
	FindService(id int) (Service, bool)
}

type StaticProvider struct {
	products   []Product
	services   []Service
	categories []Category
}

func NewStaticProvider(products []Product, services []Service, categories []Category) *StaticProvider {
	return &StaticProvider{
		products:   slices.Clone(products),
		services:   slices.Clone(services),
		categories: slices.Clone(categories),
	}
}

func (p *StaticProvider) Products() []Product {
	return slices.Clone(p.products)
}

func (p *StaticProvider) Services() []Service {
	out := make([]Service, len(p.services))
	for i, s := range p.services {
		s.AvailableDays = slices.Clone(s.AvailableDays)
		s.TimeSlots = slices.Clone(s.TimeSlots)
		out[i] = s
	}
	return out
}

func (p *StaticProvider) Categories() []Category {
	return slices.Clone(p.categories)
}

func (p *StaticProvider) FindProduct(id int) (Product, bool) {
	for _, prod := range p.products {
		if prod.ID == id {
			return prod, true
		}
	}
	return Product{}, false
}

func (p *StaticProvider) FindService(id int) (Service, bool) {
	for _, svc := range p.services {
		if svc.ID == id {
			svc.AvailableDays = slices.Clone(svc.AvailableDays)
			svc.TimeSlots = slices.Clone(svc.TimeSlots)
			return svc, true
		}
	}
	return Service{}, false
}

func ProductsByCategory(products []Product, categoryID string) []Product {
	if categoryID == "" || categoryID == CategoryAll {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func ServicesByCategory(services []Service, categoryID string) []Service {
	if categoryID == "" || categoryID == CategoryAll {
		return services
	}
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out
}
