package services

// OrderPayload is the checkout submission body. Price and quantity fields
// are deliberately untyped: clients have sent both numbers and formatted
// strings ("1,200.50"), and the pricing normalizer handles either.
type OrderPayload struct {
	Customer       CustomerPayload `json:"customer"`
	Address        AddressPayload  `json:"address"`
	Items          []ItemPayload   `json:"items"`
	Pricing        PricingPayload  `json:"pricing"`
	PaymentMethod  string          `json:"paymentMethod"`
	ShippingRegion string          `json:"shippingRegion"`
}

type CustomerPayload struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	SubscribeToOffers bool   `json:"subscribeToOffers"`
}

type AddressPayload struct {
	Street     string  `json:"street"`
	Building   string  `json:"building"`
	Apartment  *string `json:"apartment"`
	City       string  `json:"city"`
	PostalCode *string `json:"postalCode"`
	Notes      *string `json:"notes"`
}

type ItemPayload struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Price    any            `json:"price"`
	Quantity any            `json:"quantity"`
	Image    string         `json:"image"`
	Variant  VariantPayload `json:"variant"`
}

type VariantPayload struct {
	Size  *string `json:"size"`
	Color *string `json:"color"`
}

// PricingPayload is advisory. Subtotal and total are always recomputed
// server-side; discount and shipping fee are normalized inputs.
type PricingPayload struct {
	Subtotal    any `json:"subtotal"`
	Discount    any `json:"discount"`
	ShippingFee any `json:"shippingFee"`
	Total       any `json:"total"`
}
