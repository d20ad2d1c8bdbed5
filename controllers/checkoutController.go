package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/checkout"
	"github.com/sisies/sisies-api/config"
	"github.com/sisies/sisies-api/models"
)

// CheckoutController exposes the checkout session machine over HTTP so the
// storefront validates steps and previews totals against the server's
// pricing policy instead of a copy baked into the client.
type CheckoutController struct {
	policy checkout.Policy
}

func NewCheckoutController(shipping config.ShippingConfig, promo config.PromoConfig) *CheckoutController {
	return &CheckoutController{policy: checkout.Policy{
		CairoGizaFee:      shipping.CairoGizaFee,
		OtherFee:          shipping.OtherFee,
		FreeShippingAbove: shipping.FreeShippingAbove,
		PromoCode:         promo.Code,
		PromoPercent:      promo.Percent,
	}}
}

// GetCheckoutPolicy handles GET /api/checkout/policy: the shipping fees,
// payment methods, and deliverable cities the checkout UI renders.
func (cc *CheckoutController) GetCheckoutPolicy(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"shipping": gin.H{
			"cairoGizaFee":      cc.policy.CairoGizaFee,
			"otherFee":          cc.policy.OtherFee,
			"freeShippingAbove": cc.policy.FreeShippingAbove,
		},
		"paymentMethods": []string{models.PaymentInstapay, models.PaymentCashOnDelivery},
		"cities":         checkout.EgyptianCities,
	})
}

type checkoutPreviewRequest struct {
	Form          checkout.FormData   `json:"form"`
	Cart          []checkout.CartLine `json:"cart"`
	Region        string              `json:"region"`
	PaymentMethod string              `json:"paymentMethod"`
	PromoCode     string              `json:"promoCode"`
}

// PreviewCheckout handles POST /api/checkout/preview. It replays the
// submitted session against the server's policy: advances through the steps
// while they validate, then reports where it stopped, the field errors
// there, and the authoritative order summary.
func (cc *CheckoutController) PreviewCheckout(ctx *gin.Context) {
	var body checkoutPreviewRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	session := checkout.New(body.Cart, cc.policy)
	session.Form = body.Form
	if body.Region != "" {
		session.Region = body.Region
	}
	session.Payment = body.PaymentMethod
	session.ApplyPromo(body.PromoCode)

	for session.Next() {
	}

	response := gin.H{
		"step":                 session.Step(),
		"errors":               session.Errors,
		"summary":              session.Summary(),
		"requiresCartRedirect": session.RequiresCartRedirect(),
	}
	if session.PromoError != "" {
		response["promoError"] = session.PromoError
	}

	ctx.JSON(http.StatusOK, response)
}
