package types

import "time"

// Category is a product category as served by the remote admin API
type Category struct {
	CategoryID   string `json:"categoryID"`
	CategoryName string `json:"categoryName"`
	Products     int    `json:"products"`
}

// Provider is a product provider (supplier) as served by the remote admin API
type Provider struct {
	ProviderID   string `json:"providerID"`
	ProviderName string `json:"providerName"`
	Products     int    `json:"products"`
}

// Invoice is a placed order as served by the remote admin API
type Invoice struct {
	InvoiceID     string     `json:"invoiceID"`
	Status        string     `json:"status"`
	Payment       string     `json:"payment"`
	City          string     `json:"city"`
	Ward          string     `json:"ward"`
	Province      string     `json:"province"`
	PhoneNumber   string     `json:"phoneNumber"`
	DetailAddress string     `json:"detailAddress,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UserName      string     `json:"userName"`
	Products      []CartLine `json:"products"`
}
