package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

// NewDefaultProvider returns the storefront's seeded catalog.
func NewDefaultProvider() *StaticProvider {
	return NewStaticProvider(seedProducts(), seedServices(), seedCategories())
}

func seedCategories() []Category {
	return []Category{
		{ID: CategoryAll, Name: "Todos", Icon: "▦"},
		{ID: "facial", Name: "Tratamientos Faciales", Icon: "✨"},
		{ID: "corporal", Name: "Tratamientos Corporales", Icon: "❤️"},
		{ID: "suplementos", Name: "Suplementos", Icon: "🔗"},
		{ID: "cuidado-casa", Name: "Cuidado en Casa", Icon: "🏠"},
	}
}

func seedProducts() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Alivium",
			Price:         price("899.00"),
			OriginalPrice: pricePtr("1099.00"),
			Image:         "/assets/products/Alivium.jpg",
			Description:   "Suplemento regenerativo avanzado para alivio y regeneración celular profunda.",
			Stock:         45,
			Category:      "Suplementos",
			CategoryID:    "suplementos",
		},
		{
			ID:          2,
			Name:        "Aquaminerales",
			Price:       price("1299.00"),
			Image:       "/assets/products/aquaminerales.jpg",
			Description: "Minerales marinos esenciales para regeneración y salud celular óptima.",
			Stock:       32,
			Category:    "Suplementos",
			CategoryID:  "suplementos",
		},
		{
			ID:            3,
			Name:          "Nano Partículas de Cobre",
			Price:         price("1599.00"),
			OriginalPrice: pricePtr("1899.00"),
			Image:         "/assets/products/ionescobre.jpg",
			Description:   "Nanopartículas de cobre para regeneración celular avanzada y anti-envejecimiento.",
			Stock:         28,
			Category:      "Suplementos",
			CategoryID:    "suplementos",
		},
		{
			ID:          4,
			Name:        "NanoExom",
			Price:       price("1199.00"),
			Image:       "/assets/products/Nano-exom.jpg",
			Description: "Tecnología de exosomas en nanopartículas para regeneración celular profunda y rejuvenecimiento.",
			Stock:       40,
			Category:    "Suplementos",
			CategoryID:  "suplementos",
		},
		{
			ID:          5,
			Name:        "Sales Regenerativas",
			Price:       price("1099.00"),
			Image:       "/assets/products/Sales.jpg",
			Description: "Sales minerales esenciales para equilibrio y regeneración del organismo.",
			Stock:       55,
			Category:    "Suplementos",
			CategoryID:  "suplementos",
		},
		{
			ID:          6,
			Name:        "Shot 5",
			Price:       price("1899.00"),
			Image:       "/assets/products/Shot5-1.jpg",
			Description: "Complejo regenerativo premium con 5 componentes activos para máxima eficacia celular.",
			Stock:       20,
			Category:    "Suplementos",
			CategoryID:  "suplementos",
		},
	}
}

func seedServices() []Service {
	weekdays := []string{"Lun", "Mar", "Mié", "Jue", "Vie"}
	return []Service{
		{
			ID:            1,
			Name:          "Tratamiento PRP Facial",
			Price:         price("450.00"),
			Description:   "Sesión de plasma rico en plaquetas para rejuvenecimiento facial y regeneración celular.",
			Duration:      60,
			AvailableDays: weekdays,
			TimeSlots:     []string{"9:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			CategoryID:    "facial",
		},
		{
			ID:            2,
			Name:          "Mesoterapia Corporal",
			Price:         price("320.00"),
			Description:   "Tratamiento de mesoterapia para reducción de celulitis y reafirmación de la piel.",
			Duration:      45,
			AvailableDays: weekdays,
			TimeSlots:     []string{"9:00", "10:30", "12:00", "14:00", "15:30", "16:00"},
			CategoryID:    "corporal",
		},
		{
			ID:            3,
			Name:          "Peeling Regenerativo",
			Price:         price("180.00"),
			Description:   "Peeling químico con ácidos orgánicos para renovación celular y mejora de la textura.",
			Duration:      30,
			AvailableDays: []string{"Lun", "Mié", "Vie"},
			TimeSlots:     []string{"9:00", "10:00", "11:00", "14:00", "15:00"},
			CategoryID:    "facial",
		},
		{
			ID:            4,
			Name:          "Radiofrecuencia Facial",
			Price:         price("250.00"),
			Description:   "Sesión de radiofrecuencia para tensado y rejuvenecimiento facial no invasivo.",
			Duration:      45,
			AvailableDays: []string{"Mar", "Jue", "Sáb"},
			TimeSlots:     []string{"9:00", "10:30", "12:00", "14:00", "15:30"},
			CategoryID:    "facial",
		},
		{
			ID:            5,
			Name:          "Terapia con Células Madre",
			Price:         price("1200.00"),
			Description:   "Tratamiento avanzado con células madre para regeneración profunda y rejuvenecimiento.",
			Duration:      90,
			AvailableDays: []string{"Lun", "Mié", "Vie"},
			TimeSlots:     []string{"9:00", "11:00", "14:00", "16:00"},
			CategoryID:    "corporal",
		},
		{
			ID:            6,
			Name:          "Carboxiterapia Corporal",
			Price:         price("220.00"),
			Description:   "Tratamiento con dióxido de carbono para mejorar circulación y reducir grasa localizada.",
			Duration:      30,
			AvailableDays: weekdays,
			TimeSlots:     []string{"9:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			CategoryID:    "corporal",
		},
	}
}
