package checkout

import (
	"testing"

	"github.com/sisies/sisies-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	return Policy{
		CairoGizaFee:      70,
		OtherFee:          90,
		FreeShippingAbove: 2500,
		PromoCode:         "SISIES10",
		PromoPercent:      0.10,
	}
}

func testCart() []CartLine {
	return []CartLine{
		{ProductID: 1, Name: "Linen Dress", UnitPrice: 800, Quantity: 1, VariantSize: "M"},
		{ProductID: 2, Name: "Tote Bag", UnitPrice: 200, Quantity: 2},
	}
}

func validContact(c *Checkout) {
	c.Form.FirstName = "Nour"
	c.Form.LastName = "Hassan"
	c.Form.Email = "nour@example.com"
	c.Form.Phone = "0101234567 8"
}

func validAddress(c *Checkout) {
	c.Form.Street = "12 Tahrir St"
	c.Form.Building = "4"
	c.Form.City = "Cairo"
}

func TestForwardTransitionBlockedOnEmptyEmail(t *testing.T) {
	c := New(testCart(), testPolicy())
	validContact(c)
	c.Form.Email = ""

	assert.False(t, c.Next())
	assert.Equal(t, StepContact, c.Step())
	assert.Equal(t, "Email is required", c.Errors["email"])
	// Other fields stay intact.
	assert.Equal(t, "Nour", c.Form.FirstName)
}

func TestContactValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Checkout)
		errField string
	}{
		{"missing first name", func(c *Checkout) { c.Form.FirstName = "" }, "firstName"},
		{"missing last name", func(c *Checkout) { c.Form.LastName = "" }, "lastName"},
		{"malformed email", func(c *Checkout) { c.Form.Email = "not-an-email" }, "email"},
		{"phone without 01 prefix", func(c *Checkout) { c.Form.Phone = "0212345678" }, "phone"},
		{"phone too short", func(c *Checkout) { c.Form.Phone = "0112345" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testCart(), testPolicy())
			validContact(c)
			tt.mutate(c)

			assert.False(t, c.Next())
			assert.Equal(t, StepContact, c.Step())
			assert.Contains(t, c.Errors, tt.errField)
		})
	}
}

func TestLinearFlowAndBackTransitions(t *testing.T) {
	c := New(testCart(), testPolicy())
	validContact(c)
	require.True(t, c.Next())
	assert.Equal(t, StepAddress, c.Step())

	validAddress(c)
	require.True(t, c.Next())
	assert.Equal(t, StepPayment, c.Step())

	// Backward transitions keep entered data.
	require.True(t, c.Back())
	assert.Equal(t, StepAddress, c.Step())
	assert.Equal(t, "12 Tahrir St", c.Form.Street)
	require.True(t, c.Back())
	assert.Equal(t, StepContact, c.Step())
	assert.False(t, c.Back())
}

func TestAddressRequiresKnownCity(t *testing.T) {
	c := New(testCart(), testPolicy())
	validContact(c)
	require.True(t, c.Next())

	validAddress(c)
	c.Form.City = "Atlantis"

	assert.False(t, c.Next())
	assert.Contains(t, c.Errors, "city")
}

func TestPaymentStepRequiresMethod(t *testing.T) {
	c := New(testCart(), testPolicy())
	validContact(c)
	require.True(t, c.Next())
	validAddress(c)
	require.True(t, c.Next())

	assert.False(t, c.Complete())
	assert.Contains(t, c.Errors, "paymentMethod")

	c.Payment = models.PaymentCashOnDelivery
	assert.True(t, c.Complete())
	assert.Equal(t, StepConfirmation, c.Step())

	// Confirmation is terminal.
	assert.False(t, c.Back())
	assert.False(t, c.Next())
}

func TestRequiresCartRedirect(t *testing.T) {
	c := New(nil, testPolicy())
	assert.True(t, c.RequiresCartRedirect())

	c = New(testCart(), testPolicy())
	assert.False(t, c.RequiresCartRedirect())
}

func TestApplyPromo(t *testing.T) {
	c := New(testCart(), testPolicy()) // subtotal 1200

	c.ApplyPromo("WRONGCODE")
	assert.Equal(t, "Invalid promo code", c.PromoError)
	assert.Equal(t, 0.0, c.Summary().Discount)

	c.ApplyPromo("sisies10")
	assert.Empty(t, c.PromoError)
	assert.Equal(t, "SISIES10", c.AppliedPromo())
	assert.Equal(t, 120.0, c.Summary().Discount)

	// Empty code clears the applied discount.
	c.ApplyPromo("")
	assert.Empty(t, c.AppliedPromo())
	assert.Equal(t, 0.0, c.Summary().Discount)
}

func TestShippingFeeByRegion(t *testing.T) {
	c := New(testCart(), testPolicy())
	assert.Equal(t, 70.0, c.ShippingFee())

	c.Region = models.ShippingRegionOther
	assert.Equal(t, 90.0, c.ShippingFee())
}

func TestShippingWaivedAboveThreshold(t *testing.T) {
	cart := []CartLine{{ProductID: 1, Name: "Coat", UnitPrice: 2500, Quantity: 1}}

	for _, region := range []string{models.ShippingRegionCairoGiza, models.ShippingRegionOther} {
		c := New(cart, testPolicy())
		c.Region = region
		assert.Equal(t, 0.0, c.ShippingFee(), "region %s", region)
	}
}

func TestSummary(t *testing.T) {
	c := New(testCart(), testPolicy())
	c.ApplyPromo("SISIES10")

	summary := c.Summary()
	assert.Equal(t, 1200.0, summary.Subtotal)
	assert.Equal(t, 120.0, summary.Discount)
	assert.Equal(t, 70.0, summary.ShippingFee)
	assert.Equal(t, 1150.0, summary.Total)
}

func TestCitiesSortedAndValid(t *testing.T) {
	require.True(t, len(EgyptianCities) > 0)
	for i := 1; i < len(EgyptianCities); i++ {
		assert.Less(t, EgyptianCities[i-1], EgyptianCities[i])
	}
	assert.True(t, ValidCity("Giza"))
	assert.False(t, ValidCity("giza"))
}
