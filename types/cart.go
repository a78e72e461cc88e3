package types

// CartReference is a device-local pointer into the catalog.
// It is not authoritative data; the referenced product and item
// are resolved against a catalog snapshot at display time.
type CartReference struct {
	ProductID string `json:"productID" bson:"product_id"`
	ItemID    string `json:"itemID" bson:"item_id"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// CartLine is a display-ready cart row produced by reconciling a
// CartReference against a catalog snapshot. It is ephemeral and
// recomputed on every reconciliation pass.
type CartLine struct {
	ProductID   string  `json:"productID"`
	ItemID      string  `json:"itemID"`
	ProductName string  `json:"productName"`
	Thumbnail   string  `json:"thump"`
	Price       int64   `json:"price"`
	Discount    float64 `json:"discount"`
	Quantity    int     `json:"quantity"`
	ProductCode string  `json:"productCode"`
	ColorName   string  `json:"colorName"`
	StorageName *string `json:"storageName"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Length      float64 `json:"len"`
	Width       float64 `json:"width"`
}
