package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/sisies/sisies-api/models"
	"github.com/sisies/sisies-api/pricing"
	"gorm.io/gorm"
)

// How many fresh order numbers to try before giving up on a unique one.
const orderNumberAttempts = 5

type Notifier interface {
	Enqueue(order *models.Order)
}

type SubmitResult struct {
	OrderID     string
	OrderNumber string
}

// OrderService owns the checkout submission pipeline: validate, normalize,
// recompute totals, persist header then items, then hand the order to the
// notification dispatcher without letting its outcome touch the response.
type OrderService struct {
	repo     OrderRepository
	notifier Notifier
}

func NewOrderService(repo OrderRepository, notifier Notifier) *OrderService {
	return &OrderService{repo: repo, notifier: notifier}
}

func (s *OrderService) Submit(ctx context.Context, payload *OrderPayload) (*SubmitResult, error) {
	if strings.TrimSpace(payload.Customer.Email) == "" {
		return nil, &ValidationError{Msg: "Missing required order information: customer email"}
	}
	if len(payload.Items) == 0 {
		return nil, &ValidationError{Msg: "Missing required order information: no items"}
	}

	items := make([]models.OrderItem, 0, len(payload.Items))
	lines := make([]pricing.LineItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		unitPrice := pricing.Normalize(item.Price)
		quantity := pricing.NormalizeQuantity(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID:    item.ID,
			ProductName:  item.Name,
			VariantSize:  item.Variant.Size,
			VariantColor: item.Variant.Color,
			Quantity:     quantity,
			UnitPrice:    unitPrice,
		})
		lines = append(lines, pricing.LineItem{UnitPrice: unitPrice, Quantity: quantity})
	}

	// Client subtotal/total are display-only and discarded here.
	totals := pricing.ComputeTotals(
		lines,
		pricing.Normalize(payload.Pricing.Discount),
		pricing.Normalize(payload.Pricing.ShippingFee),
	)

	order := &models.Order{
		CustomerFullName:  strings.TrimSpace(payload.Customer.FirstName + " " + payload.Customer.LastName),
		CustomerEmail:     payload.Customer.Email,
		CustomerPhone:     payload.Customer.Phone,
		DeliveryCountry:   "Egypt",
		DeliveryCity:      payload.Address.City,
		DeliveryStreet:    payload.Address.Street,
		DeliveryBuilding:  payload.Address.Building,
		DeliveryApartment: payload.Address.Apartment,
		DeliveryNotes:     payload.Address.Notes,
		Subtotal:          totals.Subtotal,
		ShippingFee:       totals.ShippingFee,
		Discount:          totals.Discount,
		Total:             totals.Total,
		PaymentMethod:     payload.PaymentMethod,
		Status:            models.OrderStatusPending,
		Source:            "checkout",
		SubscribeToOffers: payload.Customer.SubscribeToOffers,
	}

	if err := s.createWithUniqueNumber(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := s.repo.CreateOrderItems(ctx, items); err != nil {
		return nil, &PartialPersistenceError{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Err:         err,
		}
	}
	order.OrderItems = items

	s.notifier.Enqueue(order)

	return &SubmitResult{OrderID: order.ID, OrderNumber: order.OrderNumber}, nil
}

// createWithUniqueNumber inserts the order header, regenerating the order
// number on a unique-constraint conflict. Collisions on a 6-digit code are
// rare but real once order volume grows.
func (s *OrderService) createWithUniqueNumber(ctx context.Context, order *models.Order) error {
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order.OrderNumber = generateOrderNumber()
		err = s.repo.CreateOrder(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		log.Printf("Order number %s already taken, retrying", order.OrderNumber)
	}
	return err
}

// generateOrderNumber returns the short human-facing reference shown to
// customers, a 6-digit code like "483921".
func generateOrderNumber() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
