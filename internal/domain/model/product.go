package model

// MediaType enumerates product media kinds.
type MediaType string

const MediaTypeImage MediaType = "IMAGE"

// MediaItem is one picture of a product.
type MediaItem struct {
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// InstallmentPlan splits the total price into equal monthly payments.
type InstallmentPlan struct {
	Months       int   `json:"months"`
	MonthlyPrice int64 `json:"monthlyPrice"`
}

// Product is a catalog entry.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	PurchasePrice int64           `json:"purchasePrice,omitempty"`
	TotalPrice    int64           `json:"totalPrice"`
	Plan          InstallmentPlan `json:"plan"`
	Media         []MediaItem     `json:"media"`
	Features      []string        `json:"features"`
	Stock         int             `json:"stock"`
}

// Image returns the first media URL or an empty string.
func (p Product) Image() string {
	if len(p.Media) == 0 {
		return ""
	}
	return p.Media[0].URL
}

// MonthlyInstallment rounds the total price up over the plan length.
func MonthlyInstallment(total int64, months int) int64 {
	if months <= 0 {
		return total
	}
	m := int64(months)
	return (total + m - 1) / m
}
