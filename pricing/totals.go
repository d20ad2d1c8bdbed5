package pricing

import "math"

type LineItem struct {
	UnitPrice float64
	Quantity  int
}

type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	ShippingFee float64 `json:"shippingFee"`
	Total       float64 `json:"total"`
}

// ComputeTotals derives the authoritative order totals from normalized line
// items. Discount is capped at the subtotal so the total never goes negative
// from a discount alone.
func ComputeTotals(items []LineItem, discount, shippingFee float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	subtotal = Round2(subtotal)

	discount = Round2(clamp(discount))
	if discount > subtotal {
		discount = subtotal
	}
	shippingFee = Round2(clamp(shippingFee))

	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		ShippingFee: shippingFee,
		Total:       Round2(math.Max(0, subtotal-discount) + shippingFee),
	}
}

// Round2 rounds to two decimal places, the precision orders are stored at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
