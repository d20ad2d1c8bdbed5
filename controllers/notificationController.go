package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/models"
	"github.com/sisies/sisies-api/pricing"
	"github.com/sisies/sisies-api/services"
	"gorm.io/gorm"
)

// ConfirmationSender is the synchronous send used by the notification
// endpoint; satisfied by the notification dispatcher.
type ConfirmationSender interface {
	SendNow(order *models.Order) (string, error)
}

type NotificationController struct {
	sender ConfirmationSender
	repo   services.OrderRepository
}

func NewNotificationController(sender ConfirmationSender, repo services.OrderRepository) *NotificationController {
	return &NotificationController{sender: sender, repo: repo}
}

// confirmationPayload accepts either just an order id (details re-fetched)
// or a full order snapshot. Older clients sent "email" instead of
// "customerEmail", so both are read.
type confirmationPayload struct {
	OrderID          string              `json:"orderId"`
	OrderNumber      string              `json:"orderNumber"`
	CustomerEmail    string              `json:"customerEmail"`
	Email            string              `json:"email"`
	CustomerFullName string              `json:"customerFullName"`
	CustomerPhone    string              `json:"customerPhone"`
	DeliveryAddress  confirmationAddress `json:"deliveryAddress"`
	Items            []confirmationItem  `json:"items"`
	Subtotal         any                 `json:"subtotal"`
	Discount         any                 `json:"discount"`
	ShippingFee      any                 `json:"shippingFee"`
	Total            any                 `json:"total"`
	PaymentMethod    string              `json:"paymentMethod"`
}

type confirmationAddress struct {
	Street     string  `json:"street"`
	Building   string  `json:"building"`
	Apartment  *string `json:"apartment"`
	City       string  `json:"city"`
	PostalCode *string `json:"postalCode"`
	Country    string  `json:"country"`
	Notes      *string `json:"notes"`
}

type confirmationItem struct {
	Name     string                  `json:"name"`
	Quantity any                     `json:"quantity"`
	Price    any                     `json:"price"`
	Variant  services.VariantPayload `json:"variant"`
}

// SendConfirmationEmail handles POST /api/send-confirmation-email. Email
// failure is reported as a warning, never as a request failure: by the time
// this runs the order is already durably persisted.
func (nc *NotificationController) SendConfirmationEmail(ctx *gin.Context) {
	var payload confirmationPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var order *models.Order
	if payload.OrderID != "" {
		fetched, err := nc.repo.GetOrderByID(ctx.Request.Context(), payload.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			} else {
				log.Println("Failed to fetch order for confirmation email:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			}
			return
		}
		order = fetched
	} else {
		email := payload.CustomerEmail
		if email == "" {
			email = payload.Email
		}
		if payload.OrderNumber == "" || email == "" || len(payload.Items) == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Missing email or orderNumber")
			return
		}
		order = orderFromSnapshot(&payload, email)
	}

	emailID, err := nc.sender.SendNow(order)
	if err != nil {
		log.Printf("Warning: confirmation email for order %s failed: %v", order.OrderNumber, err)
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"warning": "Confirmation email could not be sent and may be delayed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"emailId": emailID,
	})
}

func orderFromSnapshot(payload *confirmationPayload, email string) *models.Order {
	items := make([]models.OrderItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, models.OrderItem{
			ProductName:  item.Name,
			VariantSize:  item.Variant.Size,
			VariantColor: item.Variant.Color,
			Quantity:     pricing.NormalizeQuantity(item.Quantity),
			UnitPrice:    pricing.Normalize(item.Price),
		})
	}

	country := payload.DeliveryAddress.Country
	if country == "" {
		country = "Egypt"
	}

	return &models.Order{
		OrderNumber:       payload.OrderNumber,
		CustomerFullName:  payload.CustomerFullName,
		CustomerEmail:     email,
		CustomerPhone:     payload.CustomerPhone,
		DeliveryCountry:   country,
		DeliveryCity:      payload.DeliveryAddress.City,
		DeliveryStreet:    payload.DeliveryAddress.Street,
		DeliveryBuilding:  payload.DeliveryAddress.Building,
		DeliveryApartment: payload.DeliveryAddress.Apartment,
		DeliveryNotes:     payload.DeliveryAddress.Notes,
		Subtotal:          pricing.Normalize(payload.Subtotal),
		Discount:          pricing.Normalize(payload.Discount),
		ShippingFee:       pricing.Normalize(payload.ShippingFee),
		Total:             pricing.Normalize(payload.Total),
		PaymentMethod:     payload.PaymentMethod,
		OrderItems:        items,
	}
}
