package checkout

import (
	"math"
	"regexp"
	"strings"

	"github.com/sisies/sisies-api/models"
	"github.com/sisies/sisies-api/pricing"
)

type Step string

const (
	StepContact      Step = "contact"
	StepAddress      Step = "address"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Egyptian mobile numbers: 01 followed by 8 or 9 digits.
	phonePattern = regexp.MustCompile(`^01\d{8,9}$`)
)

type FormData struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	Building      string `json:"building"`
	Apartment     string `json:"apartment"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	DeliveryNotes string `json:"deliveryNotes"`
}

type CartLine struct {
	ProductID    int     `json:"productId"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
	VariantSize  string  `json:"variantSize"`
	VariantColor string  `json:"variantColor"`
	ImageRef     string  `json:"imageRef"`
}

// Policy carries the pricing knobs the checkout needs: flat regional
// shipping fees, the free-shipping threshold, and the single active promo
// code with its percentage.
type Policy struct {
	CairoGizaFee      float64
	OtherFee          float64
	FreeShippingAbove float64
	PromoCode         string
	PromoPercent      float64
}

type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	ShippingFee float64 `json:"shippingFee"`
	Total       float64 `json:"total"`
	PromoCode   string  `json:"promoCode,omitempty"`
}

// Checkout is the linear four-step checkout session. Forward transitions
// require the current step to validate; backward transitions keep all
// entered data. Confirmation is terminal.
type Checkout struct {
	step    Step
	policy  Policy
	cart    []CartLine
	Form    FormData
	Errors  map[string]string
	Region  string
	Payment string

	appliedPromo  string
	promoDiscount float64
	PromoError    string
}

func New(cart []CartLine, policy Policy) *Checkout {
	return &Checkout{
		step:   StepContact,
		policy: policy,
		cart:   cart,
		Errors: map[string]string{},
		Region: models.ShippingRegionCairoGiza,
	}
}

func (c *Checkout) Step() Step { return c.step }

// RequiresCartRedirect reports whether the routing layer should bounce the
// visitor out of checkout: the cart is empty and no order has completed.
func (c *Checkout) RequiresCartRedirect() bool {
	return len(c.cart) == 0 && c.step != StepConfirmation
}

// Next validates the current step and advances. The payment step does not
// advance through Next; it completes via Complete after order submission.
func (c *Checkout) Next() bool {
	if !c.validate(c.step) {
		return false
	}
	switch c.step {
	case StepContact:
		c.step = StepAddress
	case StepAddress:
		c.step = StepPayment
	default:
		return false
	}
	return true
}

// Back moves one step backwards without clearing entered data.
func (c *Checkout) Back() bool {
	switch c.step {
	case StepAddress:
		c.step = StepContact
	case StepPayment:
		c.step = StepAddress
	default:
		return false
	}
	return true
}

// Complete transitions payment → confirmation after a successful order
// submission. The payment step must validate; confirmation is one-way.
func (c *Checkout) Complete() bool {
	if c.step != StepPayment || !c.validate(StepPayment) {
		return false
	}
	c.step = StepConfirmation
	return true
}

func (c *Checkout) validate(step Step) bool {
	errs := map[string]string{}

	switch step {
	case StepContact:
		if c.Form.FirstName == "" {
			errs["firstName"] = "First name is required"
		}
		if c.Form.LastName == "" {
			errs["lastName"] = "Last name is required"
		}
		if c.Form.Email == "" {
			errs["email"] = "Email is required"
		} else if !emailPattern.MatchString(c.Form.Email) {
			errs["email"] = "Invalid email"
		}
		phone := strings.ReplaceAll(c.Form.Phone, " ", "")
		if phone == "" {
			errs["phone"] = "Phone number is required"
		} else if !phonePattern.MatchString(phone) {
			errs["phone"] = "Invalid Egyptian mobile number"
		}
	case StepAddress:
		if c.Form.Street == "" {
			errs["street"] = "Street address is required"
		}
		if c.Form.Building == "" {
			errs["building"] = "Building/House number is required"
		}
		if c.Form.City == "" {
			errs["city"] = "City is required"
		} else if !ValidCity(c.Form.City) {
			errs["city"] = "Select a valid city"
		}
	case StepPayment:
		if c.Payment != models.PaymentInstapay && c.Payment != models.PaymentCashOnDelivery {
			errs["paymentMethod"] = "Please select a payment method"
		}
	}

	c.Errors = errs
	return len(errs) == 0
}

// ApplyPromo applies the active promo code as a percentage discount on the
// pre-discount subtotal. An empty code clears any applied discount; an
// unknown code clears it and sets a visible error.
func (c *Checkout) ApplyPromo(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	c.PromoError = ""

	if code == "" {
		c.promoDiscount = 0
		c.appliedPromo = ""
		return
	}

	if code != strings.ToUpper(c.policy.PromoCode) {
		c.promoDiscount = 0
		c.appliedPromo = ""
		c.PromoError = "Invalid promo code"
		return
	}

	subtotal := c.subtotal()
	c.promoDiscount = math.Min(subtotal*c.policy.PromoPercent, subtotal)
	c.appliedPromo = code
}

func (c *Checkout) AppliedPromo() string { return c.appliedPromo }

func (c *Checkout) subtotal() float64 {
	var subtotal float64
	for _, line := range c.cart {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	return pricing.Round2(subtotal)
}

// ShippingFee is the flat regional fee, waived entirely once the subtotal
// reaches the free-shipping threshold.
func (c *Checkout) ShippingFee() float64 {
	if c.subtotal() >= c.policy.FreeShippingAbove {
		return 0
	}
	if c.Region == models.ShippingRegionCairoGiza {
		return c.policy.CairoGizaFee
	}
	return c.policy.OtherFee
}

// Summary computes the local order preview. It is display-only; the server
// recomputes everything at submission time.
func (c *Checkout) Summary() Summary {
	items := make([]pricing.LineItem, 0, len(c.cart))
	for _, line := range c.cart {
		items = append(items, pricing.LineItem{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
	}
	totals := pricing.ComputeTotals(items, c.promoDiscount, c.ShippingFee())
	return Summary{
		Subtotal:    totals.Subtotal,
		Discount:    totals.Discount,
		ShippingFee: totals.ShippingFee,
		Total:       totals.Total,
		PromoCode:   c.appliedPromo,
	}
}
