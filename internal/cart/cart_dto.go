package cart

type AddItemRequest struct {
	ItemID int    `json:"itemId" validate:"required,min=1"`
	Kind   string `json:"kind" validate:"required,oneof=product service"`
	Qty    int    `json:"qty" validate:"omitempty,min=1"`
}

type AddReservationRequest struct {
	ServiceID int    `json:"serviceId" validate:"required,min=1"`
	Date      string `json:"date" validate:"required"`
	TimeSlot  string `json:"timeSlot" validate:"required"`
	Notes     string `json:"notes" validate:"max=500"`
}

type UpdateQtyRequest struct {
	Qty *int `json:"qty" validate:"required,min=0"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

type CartItemResponse struct {
	ID               int     `json:"id"`
	Kind             string  `json:"kind"`
	Name             string  `json:"name"`
	UnitPrice        string  `json:"unitPrice"`
	LineTotal        string  `json:"lineTotal"`
	Image            string  `json:"image,omitempty"`
	Quantity         int     `json:"quantity"`
	ReservationDate  *string `json:"reservationDate,omitempty"`
	ReservationTime  string  `json:"reservationTime,omitempty"`
	ReservationNotes string  `json:"reservationNotes,omitempty"`
}

type CartDetailResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
}

func ToItemResponses(items []ResolvedLineItem) []CartItemResponse {
	res := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		r := CartItemResponse{
			ID:               it.ID,
			Kind:             string(it.Kind),
			Name:             it.Name,
			UnitPrice:        it.UnitPrice.StringFixed(2),
			LineTotal:        it.LineTotal().StringFixed(2),
			Image:            it.Image,
			Quantity:         it.Quantity,
			ReservationTime:  it.ReservationTime,
			ReservationNotes: it.ReservationNotes,
		}
		if it.ReservationDate != nil {
			d := it.ReservationDate.Format(recordDateLayout)
			r.ReservationDate = &d
		}
		res = append(res, r)
	}
	return res
}
