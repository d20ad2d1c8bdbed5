package controllers

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/initializers"
	"github.com/sisies/sisies-api/models"
	"github.com/sisies/sisies-api/services"
	"gorm.io/gorm"
)

// OrderSubmitter is what the checkout endpoint needs from the order
// service; kept as an interface so tests can substitute it.
type OrderSubmitter interface {
	Submit(ctx context.Context, payload *services.OrderPayload) (*services.SubmitResult, error)
}

type OrderController struct {
	service OrderSubmitter
}

func NewOrderController(service OrderSubmitter) *OrderController {
	return &OrderController{service: service}
}

// CreateOrder handles POST /api/checkout.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var payload services.OrderPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		log.Printf("JSON binding error: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required order information",
			"error":   msgInvalidInput,
		})
		return
	}

	result, err := oc.service.Submit(ctx.Request.Context(), &payload)
	if err != nil {
		var validationErr *services.ValidationError
		var partialErr *services.PartialPersistenceError

		switch {
		case errors.As(err, &validationErr):
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required order information",
				"error":   validationErr.Msg,
			})
		case errors.As(err, &partialErr):
			log.Printf("Partial order persistence: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"success":     false,
				"message":     "Order created but items failed",
				"error":       partialErr.Err.Error(),
				"orderId":     partialErr.OrderID,
				"orderNumber": partialErr.OrderNumber,
			})
		default:
			log.Printf("Checkout error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to create order",
				"error":   err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"orderId":     result.OrderID,
		"orderNumber": result.OrderNumber,
		"message":     "Order created successfully",
	})
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("order_number LIKE ?", "%"+search+"%")
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("order_number LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrderById(ctx *gin.Context) {
	orderId := ctx.Param("orderId")

	var order models.Order
	result := initializers.DB.Preload("OrderItems").First(&order, "id = ? OR order_number = ?", orderId, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"order": order,
	})
}

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusConfirmed: true,
	models.OrderStatusShipped:   true,
	models.OrderStatusDelivered: true,
	models.OrderStatusCancelled: true,
}

func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status"`
	}
	err := ctx.ShouldBindJSON(&orderStatusData)
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !validOrderStatuses[orderStatusData.Status] {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	orderId := ctx.Param("orderId")
	result := initializers.DB.Model(&models.Order{}).Where("id = ?", orderId).Update("status", orderStatusData.Status)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
	})
}

func DeleteOrder(ctx *gin.Context) {
	orderId := ctx.Param("orderId")

	if result := initializers.DB.Delete(&models.Order{}, "id = ?", orderId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.OrderStatusDelivered, models.OrderStatusCancelled}).
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count undelivered orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
