package cart

import (
	"time"

	"go-storefront-api/internal/catalog"

	"github.com/shopspring/decimal"
)

// ResolvedLineItem joins a cart line with its catalog entry. It is rebuilt
// on every read and never persisted.
type ResolvedLineItem struct {
	ID               int
	Kind             Kind
	Name             string
	UnitPrice        decimal.Decimal
	Image            string
	Quantity         int
	ReservationDate  *time.Time
	ReservationTime  string
	ReservationNotes string
}

func (i ResolvedLineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Resolve joins lines against the catalog in cart order. Lines whose catalog
// entry is missing are left out. The result depends only on the arguments.
func Resolve(lines []Line, products []catalog.Product, services []catalog.Service) []ResolvedLineItem {
	productByID := make(map[int]catalog.Product, len(products))
	for _, p := range products {
		if _, dup := productByID[p.ID]; !dup {
			productByID[p.ID] = p
		}
	}
	serviceByID := make(map[int]catalog.Service, len(services))
	for _, s := range services {
		if _, dup := serviceByID[s.ID]; !dup {
			serviceByID[s.ID] = s
		}
	}

	items := make([]ResolvedLineItem, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		item := ResolvedLineItem{
			ID:               l.ItemID,
			Kind:             l.Kind,
			Quantity:         l.Quantity,
			ReservationTime:  l.ReservationTime,
			ReservationNotes: l.ReservationNotes,
		}
		if l.ReservationDate != nil {
			d := *l.ReservationDate
			item.ReservationDate = &d
		}

		switch l.Kind {
		case KindProduct:
			p, ok := productByID[l.ItemID]
			if !ok {
				continue
			}
			item.Name, item.UnitPrice, item.Image = p.Name, p.Price, p.Image
		case KindService:
			s, ok := serviceByID[l.ItemID]
			if !ok {
				continue
			}
			item.Name, item.UnitPrice, item.Image = s.Name, s.Price, s.Image
		default:
			continue
		}
		items = append(items, item)
	}
	return items
}
