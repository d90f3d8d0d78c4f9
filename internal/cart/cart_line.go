package cart

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Kind string

const (
	KindProduct Kind = "product"
	KindService Kind = "service"
)

func (k Kind) Valid() bool {
	return k == KindProduct || k == KindService
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// LineKey identifies a cart line. Product and service ids live in separate
// id spaces, so the kind is part of the identity.
type LineKey struct {
	Kind   Kind
	ItemID int
}

func ProductKey(id int) LineKey { return LineKey{Kind: KindProduct, ItemID: id} }
func ServiceKey(id int) LineKey { return LineKey{Kind: KindService, ItemID: id} }

func (k LineKey) String() string {
	return fmt.Sprintf("%s:%d", k.Kind, k.ItemID)
}

func ParseLineKey(s string) (LineKey, error) {
	kindPart, idPart, ok := strings.Cut(s, ":")
	if !ok {
		return LineKey{}, fmt.Errorf("malformed line key %q", s)
	}
	kind, err := ParseKind(kindPart)
	if err != nil {
		return LineKey{}, err
	}
	id, err := strconv.Atoi(idPart)
	if err != nil {
		return LineKey{}, fmt.Errorf("malformed line key %q: %w", s, err)
	}
	return LineKey{Kind: kind, ItemID: id}, nil
}

// Line is one cart entry. Quantity is at least 1 while the line exists.
// Reservation fields are only ever set on service lines, and date and time
// are either both set or both empty.
type Line struct {
	ItemID           int
	Kind             Kind
	Quantity         int
	ReservationDate  *time.Time
	ReservationTime  string
	ReservationNotes string
}

func (l Line) Key() LineKey {
	return LineKey{Kind: l.Kind, ItemID: l.ItemID}
}

func (l Line) HasReservation() bool {
	return l.ReservationDate != nil
}

// valid reports whether l satisfies the line invariants.
func (l Line) valid() bool {
	if !l.Kind.Valid() || l.Quantity < 1 {
		return false
	}
	hasDate := l.ReservationDate != nil
	hasTime := l.ReservationTime != ""
	if l.Kind == KindProduct {
		return !hasDate && !hasTime && l.ReservationNotes == ""
	}
	return hasDate == hasTime
}

func (l Line) clone() Line {
	if l.ReservationDate != nil {
		d := *l.ReservationDate
		l.ReservationDate = &d
	}
	return l
}

// Reservation is a booked slot for a service line.
type Reservation struct {
	Date     time.Time
	TimeSlot string
	Notes    string
}

// dateOnly drops the clock part, keeping the calendar date as seen in t's location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
