package validate

// Category validates the category creation/rename form
var Category = Schema{
	Name: "category",
	Rules: []Rule{
		{Field: "name", Kind: String},
	},
}

// Provider validates the provider creation/rename form
var Provider = Schema{
	Name: "provider",
	Rules: []Rule{
		{Field: "name", Kind: String},
	},
}

// AttributeType validates a product attribute type
var AttributeType = Schema{
	Name: "attributeType",
	Rules: []Rule{
		{Field: "typeValue", Kind: String},
	},
}

// Product validates the product form, items excluded
// (each item goes through the Item schema separately)
var Product = Schema{
	Name: "product",
	Rules: []Rule{
		{Field: "productName", Kind: String},
		{Field: "description", Kind: String, Optional: true},
		{Field: "length", Kind: Number, Positive: true},
		{Field: "width", Kind: Number, Positive: true},
		{Field: "height", Kind: Number, Positive: true},
		{Field: "weight", Kind: Number, Positive: true},
		{Field: "warranty", Kind: Integer, Positive: true},
		{Field: "categoryID", Kind: String},
		{Field: "providerID", Kind: String},
		{Field: "options", Kind: StringList, Optional: true},
	},
}

// Item validates a single product item (variant) form
var Item = Schema{
	Name: "item",
	Rules: []Rule{
		{Field: "thump", Kind: String},
		{Field: "quantity", Kind: Integer, Positive: true},
		{Field: "price", Kind: Number, Positive: true},
		{Field: "productCode", Kind: String},
		{Field: "colorName", Kind: String},
		{Field: "storageName", Kind: String, Optional: true},
		{Field: "discount", Kind: Number, Min: Float(0), Max: Float(100), Default: float64(0)},
		{Field: "images", Kind: StringList, Optional: true},
	},
}

// User validates the user form
var User = Schema{
	Name: "user",
	Rules: []Rule{
		{Field: "userName", Kind: String},
		{Field: "avatar", Kind: String, Optional: true},
		{Field: "isBanned", Kind: Bool, Default: false},
		{Field: "phoneNumber", Kind: Phone, Optional: true},
		{Field: "email", Kind: Email},
		{Field: "password", Kind: String, Min: Float(1), Max: Float(100)},
	},
}

// Invoice validates the checkout form, line items excluded
// (each line goes through the InvoiceProduct schema separately)
var Invoice = Schema{
	Name: "invoice",
	Rules: []Rule{
		{Field: "payment", Kind: String, Default: "COD"},
		{Field: "city", Kind: String},
		{Field: "ward", Kind: String},
		{Field: "province", Kind: String},
		{Field: "detailAddress", Kind: String},
		{Field: "phoneNumber", Kind: Phone},
		{Field: "userID", Kind: String},
	},
}

// InvoiceProduct validates a single invoice line
var InvoiceProduct = Schema{
	Name: "invoiceProduct",
	Rules: []Rule{
		{Field: "productID", Kind: String},
		{Field: "itemID", Kind: String, Optional: true},
		{Field: "quantity", Kind: Integer, Positive: true},
	},
}
