package services

import (
	"context"

	"github.com/sisies/sisies-api/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit("OrderItems").Create(order).Error
}

func (r *gormOrderRepository) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *gormOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Preload("OrderItems").First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
