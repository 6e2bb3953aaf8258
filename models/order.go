package models

import "strconv"

// OrderSummary is one entry of the "Your Orders" listing page.
type OrderSummary struct {
	OrderID      string
	PurchaseDate string // display text, e.g. "September 15, 2023"
	DetailURL    string
}

// OrderItem is a single purchased product on an order detail page.
type OrderItem struct {
	Name    string
	Price   float64
	ItemURL string // empty when the item link carries no href
}

// OrderLevelCharges holds the subtotal lines of an order. Lines missing
// from the page are zero.
type OrderLevelCharges struct {
	Tax      float64
	Shipping float64
	Total    float64
}

// Order is the normalized record built from one order detail page.
// It is not modified after extraction; the cleaner returns merged copies.
type Order struct {
	OrderID       string
	OrderURL      string
	PurchaseDate  string
	DeliveryDate  string
	ShippedTo     string
	Status        string
	PaymentMethod string // last 4 digits of the card, or empty
	Items         []OrderItem
	Charges       OrderLevelCharges
}

// ExportColumns is the header of the tabular export, in column order.
var ExportColumns = []string{
	"order number",
	"purchase date",
	"delivery date",
	"item name",
	"shipped to",
	"item price",
	"status",
	"payment method",
}

// ExportRow is one line of the tabular export.
type ExportRow struct {
	OrderNumber   string
	PurchaseDate  string
	DeliveryDate  string
	ItemName      string
	ShippedTo     string
	ItemPrice     float64
	Status        string
	PaymentMethod string
}

// Record renders the row in ExportColumns order. Prices use the shortest
// representation that round-trips, so 15 is written as "15" and 5.5 as "5.5".
func (r ExportRow) Record() []string {
	return []string{
		r.OrderNumber,
		r.PurchaseDate,
		r.DeliveryDate,
		r.ItemName,
		r.ShippedTo,
		strconv.FormatFloat(r.ItemPrice, 'f', -1, 64),
		r.Status,
		r.PaymentMethod,
	}
}

// ExportReport holds the computed summary over one export run.
type ExportReport struct {
	Orders               int
	FreshOrders          int
	Rows                 int
	ItemRows             int
	DeliveryRows         int
	TotalSpend           float64
	AverageItemPrice     float64
	MostExpensive        *ExportRow
	TopItems             []ExportRow
	SpendByPaymentMethod map[string]float64
}
