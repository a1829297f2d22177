package domain

// RateCard is the pricing and duration policy attached to a product class.
// When HourlyRate is positive, hourly pricing takes precedence over daily
// pricing for quoting.
type RateCard struct {
	HourlyRate float64 `json:"hourly_rate"`
	DailyRate  float64 `json:"daily_rate"`
	MinHours   int     `json:"min_hours"`
	MaxHours   *int    `json:"max_hours,omitempty"` // nil means unbounded
}

type Product struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Category    string `json:"category"`
	Published   bool   `json:"published"`
	RateCard
}

// RentableUnit is one physically trackable piece of equipment belonging to a
// product class. Location is descriptive metadata only. Units are created
// and retired by inventory management; the rental core treats them as
// read-only.
type RentableUnit struct {
	ID        int32  `json:"id"`
	ProductID int32  `json:"product_id"`
	Label     string `json:"label"`
	Location  string `json:"location"`
	Active    bool   `json:"active"`
}
