package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resto-app/resto-backend/internal/account"
	"github.com/resto-app/resto-backend/internal/httpx"
)

// RegisterRequest payload for user registration.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"owner@pizzeria.io"`
	Password  string `json:"password" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required"`
	UserType  string `json:"user_type" binding:"required" example:"restaurant"`
	Name      string `json:"name" example:"Luigi's"`
}

// LoginRequest payload for login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// registerHandler creates the user and exactly one typed profile in a single
// transaction. The role is fixed here; nothing downstream ever infers it.
//
// @Summary  Register a restaurant or customer account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body RegisterRequest true "registration payload"
// @Success  201 {object} account.User
// @Failure  400 {object} map[string]string
// @Failure  409 {object} map[string]string
// @Router   /auth/register [post]
func registerHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Password != req.Password2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password fields didn't match"})
			return
		}
		role := account.Role(req.UserType)
		if !role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_type must be 'restaurant' or 'customer'"})
			return
		}

		hash, err := account.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		u := &account.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
		}
		rest := &account.Restaurant{ID: uuid.NewString(), UserID: u.ID, Name: req.Name}
		cust := &account.Customer{ID: uuid.NewString(), UserID: u.ID}

		if err := repo.CreateWithProfile(c.Request.Context(), u, rest, cust); err != nil {
			if err == account.ErrEmailTaken {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// loginHandler verifies credentials and issues an opaque bearer token.
//
// @Summary  Log in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body LoginRequest true "credentials"
// @Success  200 {object} map[string]any
// @Failure  401 {object} map[string]string
// @Router   /auth/login [post]
func loginHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		u, err := repo.GetByEmail(c.Request.Context(), req.Email)
		if err != nil || !account.CheckPassword(u.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		key := uuid.NewString()
		if err := repo.CreateToken(c.Request.Context(), key, u.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": key, "user": u})
	}
}

// @Summary  Report the caller's role
// @Tags     auth
// @Produce  json
// @Success  200 {object} map[string]bool
// @Router   /auth/user-type [get]
func userTypeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := httpx.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"is_restaurant": u.Role == account.RoleRestaurant,
			"is_customer":   u.Role == account.RoleCustomer,
		})
	}
}

// @Summary  Get the caller's restaurant profile
// @Tags     auth
// @Produce  json
// @Success  200 {object} account.Restaurant
// @Failure  404 {object} map[string]string
// @Router   /auth/restaurant/profile [get]
func getRestaurantProfileHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := httpx.CurrentUser(c)
		p, err := repo.RestaurantByUserID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant profile not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// UpdateRestaurantProfileRequest partial profile update.
// swagger:model UpdateRestaurantProfileRequest
type UpdateRestaurantProfileRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
}

// @Summary  Update the caller's restaurant profile
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body UpdateRestaurantProfileRequest true "fields to change"
// @Success  200 {object} account.Restaurant
// @Router   /auth/restaurant/profile [put]
func updateRestaurantProfileHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := httpx.CurrentUser(c)
		p, err := repo.RestaurantByUserID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant profile not found"})
			return
		}
		var req UpdateRestaurantProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p.Name, p.Location, p.PhoneNumber = req.Name, req.Location, req.PhoneNumber
		if err := repo.UpdateRestaurant(c.Request.Context(), p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		out, err := repo.RestaurantByUserID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get the caller's customer profile
// @Tags     auth
// @Produce  json
// @Success  200 {object} account.Customer
// @Failure  404 {object} map[string]string
// @Router   /auth/customer/profile [get]
func getCustomerProfileHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := httpx.CurrentUser(c)
		p, err := repo.CustomerByUserID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer profile not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// UpdateCustomerProfileRequest partial profile update.
// swagger:model UpdateCustomerProfileRequest
type UpdateCustomerProfileRequest struct {
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// @Summary  Update the caller's customer profile
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body UpdateCustomerProfileRequest true "fields to change"
// @Success  200 {object} account.Customer
// @Router   /auth/customer/profile [put]
func updateCustomerProfileHandler(repo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, _ := httpx.CurrentUser(c)
		p, err := repo.CustomerByUserID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer profile not found"})
			return
		}
		var req UpdateCustomerProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p.PhoneNumber, p.Address = req.PhoneNumber, req.Address
		if err := repo.UpdateCustomer(c.Request.Context(), p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		out, err := repo.CustomerByUserID(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
