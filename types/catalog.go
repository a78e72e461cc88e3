package types

// ProductItem is a single purchasable variant of a product
// (a concrete color/storage combination with its own price and stock)
type ProductItem struct {
	ItemID      string   `json:"itemID"`
	Thumbnail   string   `json:"thump"`
	Quantity    int      `json:"quantity"`
	Price       int64    `json:"price"`
	ProductCode string   `json:"productCode"`
	Discount    float64  `json:"discount"`
	ColorName   string   `json:"colorName"`
	StorageName *string  `json:"storageName"`
	Images      []string `json:"images"`
}

// ProductAttribute is a resolved attribute value on a product
type ProductAttribute struct {
	TypeValue   string `json:"typeValue"`
	OptionValue string `json:"optionValue"`
}

// Product is a full catalog product as served by the remote admin API.
// These are read-only snapshots on this side; all changes go back
// through the remote API.
type Product struct {
	ProductID   string             `json:"productID"`
	ProductName string             `json:"productName"`
	Description string             `json:"description"`
	Height      float64            `json:"height"`
	Weight      float64            `json:"weight"`
	Length      float64            `json:"len"`
	Width       float64            `json:"width"`
	Warranty    int                `json:"warranty"`
	Category    string             `json:"categoryName"`
	Provider    string             `json:"providerName"`
	Attributes  []ProductAttribute `json:"attributes"`
	Items       []ProductItem      `json:"items"`
}

// ProductSummary is a product with its items and attributes omitted,
// used in large listings
type ProductSummary struct {
	ProductID   string  `json:"productID"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Length      float64 `json:"len"`
	Width       float64 `json:"width"`
	Warranty    int     `json:"warranty"`
	Category    string  `json:"categoryName"`
	Provider    string  `json:"providerName"`
}

// Summary strips a product down to its listing shape
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Description: p.Description,
		Height:      p.Height,
		Weight:      p.Weight,
		Length:      p.Length,
		Width:       p.Width,
		Warranty:    p.Warranty,
		Category:    p.Category,
		Provider:    p.Provider,
	}
}
