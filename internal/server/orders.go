package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bellecroissant/backoffice/internal/models"
)

type orderItemRequest struct {
	OrderID    int64           `json:"order_id"`
	ProductID  int64           `json:"product_id" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type orderRequest struct {
	OrderNumber    string             `json:"order_number"`
	CustomerID     *int64             `json:"customer_id"`
	OrderType      string             `json:"order_type" binding:"omitempty,oneof=in_store online delivery"`
	Status         string             `json:"status" binding:"omitempty,oneof=pending preparing ready completed cancelled"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	FinalAmount    decimal.Decimal    `json:"final_amount"`
	Notes          string             `json:"notes"`
	CompletedAt    *time.Time         `json:"completed_at"`
	Items          []orderItemRequest `json:"items" binding:"omitempty,dive"`
}

type orderUpdateRequest struct {
	OrderNumber    *string          `json:"order_number" binding:"omitempty,min=1"`
	CustomerID     *int64           `json:"customer_id"`
	OrderType      *string          `json:"order_type" binding:"omitempty,oneof=in_store online delivery"`
	Status         *string          `json:"status" binding:"omitempty,oneof=pending preparing ready completed cancelled"`
	TotalAmount    *decimal.Decimal `json:"total_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	FinalAmount    *decimal.Decimal `json:"final_amount"`
	Notes          *string          `json:"notes"`
	CompletedAt    *time.Time       `json:"completed_at"`
}

func (s *Server) createOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order := models.Order{
		OrderNumber:    req.OrderNumber,
		CustomerID:     req.CustomerID,
		OrderType:      req.OrderType,
		Status:         req.Status,
		TotalAmount:    req.TotalAmount,
		DiscountAmount: req.DiscountAmount,
		FinalAmount:    req.FinalAmount,
		Notes:          req.Notes,
		CompletedAt:    req.CompletedAt,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	if err := s.orders.Create(c.Request.Context(), &order); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.List(c.Request.Context(), s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := s.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) updateOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req orderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := s.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if req.OrderNumber != nil {
		order.OrderNumber = *req.OrderNumber
	}
	if req.CustomerID != nil {
		order.CustomerID = req.CustomerID
	}
	if req.OrderType != nil {
		order.OrderType = *req.OrderType
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.DiscountAmount != nil {
		order.DiscountAmount = *req.DiscountAmount
	}
	if req.FinalAmount != nil {
		order.FinalAmount = *req.FinalAmount
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	if req.CompletedAt != nil {
		order.CompletedAt = req.CompletedAt
	}

	if err := s.orders.Update(c.Request.Context(), &order); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.orders.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createOrderItem(c *gin.Context) {
	var req orderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item := models.OrderItem{
		OrderID:    req.OrderID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		TotalPrice: req.TotalPrice,
	}
	if err := s.orderItems.Create(c.Request.Context(), &item); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) listOrderItems(c *gin.Context) {
	items, err := s.orderItems.List(c.Request.Context(), s.pageFromQuery(c))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getOrderItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := s.orderItems.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) updateOrderItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req orderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := s.orderItems.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if req.OrderID != 0 {
		item.OrderID = req.OrderID
	}
	item.ProductID = req.ProductID
	item.Quantity = req.Quantity
	item.UnitPrice = req.UnitPrice
	item.TotalPrice = req.TotalPrice

	if err := s.orderItems.Update(c.Request.Context(), &item); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteOrderItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.orderItems.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
