package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resto-app/resto-backend/internal/account"
	"github.com/resto-app/resto-backend/internal/httpx"
	"github.com/resto-app/resto-backend/internal/order"
)

// requireCustomer resolves the caller's customer profile, writing 403 when the
// caller is not a customer.
func requireCustomer(c *gin.Context, repo account.Repository) (*account.Customer, bool) {
	u, ok := httpx.CurrentUser(c)
	if !ok || u.Role != account.RoleCustomer {
		c.JSON(http.StatusForbidden, gin.H{"error": "customer account required"})
		return nil, false
	}
	p, err := repo.CustomerByUserID(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "customer account required"})
		return nil, false
	}
	return p, true
}

// callerOwnsOrder reports whether the caller is the order's customer or its
// restaurant.
func callerOwnsOrder(c *gin.Context, repo account.Repository, o *order.Order) bool {
	u, ok := httpx.CurrentUser(c)
	if !ok {
		return false
	}
	switch u.Role {
	case account.RoleCustomer:
		p, err := repo.CustomerByUserID(c.Request.Context(), u.ID)
		return err == nil && p.ID == o.CustomerID
	case account.RoleRestaurant:
		p, err := repo.RestaurantByUserID(c.Request.Context(), u.ID)
		return err == nil && p.ID == o.RestaurantID
	}
	return false
}

// OrderResponse is an order with its line items.
// swagger:model OrderResponse
type OrderResponse struct {
	order.Order
	Items []order.Item `json:"items"`
}

// createOrderHandler places an order for the calling customer.
//
// @Summary  Create an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.CreateOrderRequest true "order payload"
// @Success  201 {object} OrderResponse
// @Failure  400 {object} map[string]string
// @Failure  403 {object} map[string]string
// @Router   /orders [post]
func createOrderHandler(svc *order.Service, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cust, ok := requireCustomer(c, accRepo)
		if !ok {
			return
		}
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		o, items, err := svc.Create(c.Request.Context(), cust.ID, req)
		if err != nil {
			if order.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, OrderResponse{Order: *o, Items: items})
	}
}

// listOrdersHandler lists the caller's orders: a customer sees the orders
// they placed, a restaurant the orders it received.
//
// @Summary  List the caller's orders
// @Tags     orders
// @Produce  json
// @Param    limit query int false "page size"
// @Param    offset query int false "page offset"
// @Success  200 {array} order.Order
// @Router   /orders [get]
func listOrdersHandler(repo order.Repository, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := httpx.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		limit, offset := queryInt(c, "limit"), queryInt(c, "offset")

		var out []order.Order
		var err error
		switch u.Role {
		case account.RoleCustomer:
			var p *account.Customer
			if p, err = accRepo.CustomerByUserID(c.Request.Context(), u.ID); err == nil {
				out, err = repo.ListByCustomer(c.Request.Context(), p.ID, limit, offset)
			}
		case account.RoleRestaurant:
			var p *account.Restaurant
			if p, err = accRepo.RestaurantByUserID(c.Request.Context(), u.ID); err == nil {
				out, err = repo.ListByRestaurant(c.Request.Context(), p.ID, limit, offset)
			}
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if out == nil {
			out = []order.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get an order with its items
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} OrderResponse
// @Failure  403 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /orders/{id} [get]
func getOrderHandler(svc *order.Service, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, items, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !callerOwnsOrder(c, accRepo, o) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your order"})
			return
		}
		c.JSON(http.StatusOK, OrderResponse{Order: *o, Items: items})
	}
}

// @Summary  List an order's items
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {array} order.Item
// @Router   /orders/{id}/items [get]
func getOrderItemsHandler(svc *order.Service, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, items, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !callerOwnsOrder(c, accRepo, o) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your order"})
			return
		}
		if items == nil {
			items = []order.Item{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// updateOrderStatusHandler moves an order along its lifecycle. Rejections
// carry the current status and the legal next states.
//
// @Summary  Update an order's status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "order id"
// @Param    body body order.UpdateStatusRequest true "requested status"
// @Success  200 {object} order.Order
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /orders/{id}/status [patch]
func updateOrderStatusHandler(svc *order.Service, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, _, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !callerOwnsOrder(c, accRepo, o) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your order"})
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := svc.UpdateStatus(c.Request.Context(), o.ID, order.Status(req.Status))
		if err != nil {
			switch {
			case order.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, order.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
