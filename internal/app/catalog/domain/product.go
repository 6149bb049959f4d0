package domain

// Product is a remote-owned catalog record. Products are value types: they are
// never mutated locally, only referenced by id or embedded as snapshot copies.
type Product struct {
	ID                   int        `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Category             string     `json:"category"`
	Price                float64    `json:"price"`
	DiscountPercentage   float64    `json:"discountPercentage"`
	Currency             string     `json:"currency"`
	ReviewCount          int        `json:"reviewCount"`
	Rating               float64    `json:"rating"`
	InStock              bool       `json:"inStock"`
	Stock                int        `json:"stock"`
	Tags                 []string   `json:"tags"`
	Brand                string     `json:"brand"`
	SKU                  string     `json:"sku"`
	Weight               float64    `json:"weight"`
	Dimensions           Dimensions `json:"dimensions"`
	WarrantyInformation  string     `json:"warrantyInformation"`
	ShippingInformation  string     `json:"shippingInformation"`
	AvailabilityStatus   string     `json:"availabilityStatus"`
	Reviews              []Review   `json:"reviews"`
	ReturnPolicy         string     `json:"returnPolicy"`
	MinimumOrderQuantity int        `json:"minimumOrderQuantity"`
	Meta                 Meta       `json:"meta"`
	Images               []string   `json:"images"`
	ImageURL             string     `json:"imageUrl"`
}

// Dimensions holds physical product dimensions.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Review is a single customer review attached to a product.
type Review struct {
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	Date          string  `json:"date"`
	ReviewerName  string  `json:"reviewerName"`
	ReviewerEmail string  `json:"reviewerEmail"`
}

// Meta holds server-side bookkeeping fields.
type Meta struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Barcode   string `json:"barcode"`
	QRCode    string `json:"qrCode"`
}

// OriginalPrice infers the pre-discount price from the listed price and the
// discount value. The discount field is ambiguous at the source: values in
// (0,1) are treated as fractions (0.2 = 20%), values in [1,100] as percents.
// Returns false when no sensible original price can be derived. Display-only
// derivation; nothing in the synchronization core depends on it.
func OriginalPrice(p Product) (float64, bool) {
	d := p.DiscountPercentage
	if d == 0 {
		return 0, false
	}
	fraction := d
	if d >= 1 && d <= 100 {
		fraction = d / 100
	}
	if fraction <= 0 || fraction >= 1 {
		return 0, false
	}
	original := p.Price / (1 - fraction)
	if original <= p.Price {
		return 0, false
	}
	return original, true
}
