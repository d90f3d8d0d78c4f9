package catalog

type ProductResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Price           string  `json:"price"`
	OriginalPrice   *string `json:"originalPrice,omitempty"`
	MarkdownPercent int64   `json:"markdownPercent,omitempty"`
	Image           string  `json:"image,omitempty"`
	Description     string  `json:"description"`
	Stock           int     `json:"stock"`
	Category        string  `json:"category"`
	CategoryID      string  `json:"categoryId"`
	Type            string  `json:"type"`
}

type ServiceResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	Image         string   `json:"image,omitempty"`
	Description   string   `json:"description"`
	Duration      int      `json:"duration"`
	AvailableDays []string `json:"availableDays"`
	TimeSlots     []string `json:"timeSlots"`
	CategoryID    string   `json:"categoryId"`
	Type          string   `json:"type"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type SlotsResponse struct {
	ServiceID int      `json:"serviceId"`
	Date      string   `json:"date"`
	Available bool     `json:"available"`
	Slots     []string `json:"slots"`
}

func toProductResponse(p Product) ProductResponse {
	res := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Image:       p.Image,
		Description: p.Description,
		Stock:       p.Stock,
		Category:    p.Category,
		CategoryID:  p.CategoryID,
		Type:        "product",
	}
	if p.OriginalPrice != nil {
		orig := p.OriginalPrice.StringFixed(2)
		res.OriginalPrice = &orig
		res.MarkdownPercent = p.MarkdownPercent()
	}
	return res
}

func toServiceResponse(s Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Price:         s.Price.StringFixed(2),
		Image:         s.Image,
		Description:   s.Description,
		Duration:      s.Duration,
		AvailableDays: s.AvailableDays,
		TimeSlots:     s.TimeSlots,
		CategoryID:    s.CategoryID,
		Type:          "service",
	}
}
