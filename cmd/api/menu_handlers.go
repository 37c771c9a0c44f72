package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resto-app/resto-backend/internal/account"
	"github.com/resto-app/resto-backend/internal/httpx"
	"github.com/resto-app/resto-backend/internal/menu"
)

// requireRestaurant resolves the caller's restaurant profile, writing 403 when
// the caller is not a restaurant.
func requireRestaurant(c *gin.Context, repo account.Repository) (*account.Restaurant, bool) {
	u, ok := httpx.CurrentUser(c)
	if !ok || u.Role != account.RoleRestaurant {
		c.JSON(http.StatusForbidden, gin.H{"error": "restaurant account required"})
		return nil, false
	}
	p, err := repo.RestaurantByUserID(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "restaurant account required"})
		return nil, false
	}
	return p, true
}

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}

// @Summary  List menu categories
// @Tags     menu
// @Produce  json
// @Param    restaurant_id query string false "filter by restaurant"
// @Success  200 {array} menu.Category
// @Router   /menu/categories [get]
func listCategoriesHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListCategories(c.Request.Context(), c.Query("restaurant_id"),
			queryInt(c, "limit"), queryInt(c, "offset"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if out == nil {
			out = []menu.Category{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create a menu category
// @Tags     menu
// @Accept   json
// @Produce  json
// @Param    body body menu.CreateCategoryRequest true "category payload"
// @Success  201 {object} menu.Category
// @Failure  403 {object} map[string]string
// @Router   /menu/categories [post]
func createCategoryHandler(repo menu.Repository, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := requireRestaurant(c, accRepo)
		if !ok {
			return
		}
		var req menu.CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cat := &menu.Category{
			ID:           uuid.NewString(),
			RestaurantID: owner.ID,
			Name:         req.Name,
			Description:  req.Description,
			IsActive:     true,
		}
		if err := repo.CreateCategory(c.Request.Context(), cat); err != nil {
			if err == menu.ErrDuplicateName {
				c.JSON(http.StatusConflict, gin.H{"error": "category name already used"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

// @Summary  Get a menu category
// @Tags     menu
// @Produce  json
// @Param    id path string true "category id"
// @Success  200 {object} menu.Category
// @Failure  404 {object} map[string]string
// @Router   /menu/categories/{id} [get]
func getCategoryHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := repo.GetCategoryByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

// @Summary  Update a menu category (owner only)
// @Tags     menu
// @Accept   json
// @Produce  json
// @Param    id path string true "category id"
// @Param    body body menu.UpdateCategoryRequest true "fields to change"
// @Success  200 {object} menu.Category
// @Router   /menu/categories/{id} [put]
func updateCategoryHandler(repo menu.Repository, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := requireRestaurant(c, accRepo)
		if !ok {
			return
		}
		cat, err := repo.GetCategoryByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		if cat.RestaurantID != owner.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your category"})
			return
		}
		var req menu.UpdateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cat.Name, cat.Description = req.Name, req.Description
		if err := repo.UpdateCategory(c.Request.Context(), cat, req.IsActive); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		out, err := repo.GetCategoryByID(c.Request.Context(), cat.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete a menu category (owner only)
// @Tags     menu
// @Param    id path string true "category id"
// @Success  204
// @Router   /menu/categories/{id} [delete]
func deleteCategoryHandler(repo menu.Repository, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := requireRestaurant(c, accRepo)
		if !ok {
			return
		}
		cat, err := repo.GetCategoryByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		if cat.RestaurantID != owner.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your category"})
			return
		}
		if _, err := repo.DeleteCategory(c.Request.Context(), cat.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  List menu items
// @Tags     menu
// @Produce  json
// @Param    restaurant_id query string false "filter by restaurant"
// @Param    category_id query string false "filter by category"
// @Success  200 {array} menu.Item
// @Router   /menu/items [get]
func listItemsHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListItems(c.Request.Context(), menu.Query{
			RestaurantID: c.Query("restaurant_id"),
			CategoryID:   c.Query("category_id"),
			Limit:        queryInt(c, "limit"),
			Offset:       queryInt(c, "offset"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if out == nil {
			out = []menu.Item{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create a menu item
// @Tags     menu
// @Accept   json
// @Produce  json
// @Param    body body menu.CreateItemRequest true "item payload"
// @Success  201 {object} menu.Item
// @Failure  403 {object} map[string]string
// @Router   /menu/items [post]
func createItemHandler(repo menu.Repository, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := requireRestaurant(c, accRepo)
		if !ok {
			return
		}
		var req menu.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}
		if req.CategoryID != "" {
			cat, err := repo.GetCategoryByID(c.Request.Context(), req.CategoryID)
			if err != nil || cat.RestaurantID != owner.ID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "category does not belong to your restaurant"})
				return
			}
		}
		it := &menu.Item{
			ID:              uuid.NewString(),
			RestaurantID:    owner.ID,
			CategoryID:      req.CategoryID,
			Name:            req.Name,
			Description:     req.Description,
			Price:           price.Round(2),
			IsAvailable:     true,
			IsVegetarian:    req.IsVegetarian,
			IsVegan:         req.IsVegan,
			IsGlutenFree:    req.IsGlutenFree,
			PreparationTime: req.PreparationTime,
		}
		if it.PreparationTime <= 0 {
			it.PreparationTime = 15
		}
		if err := repo.CreateItem(c.Request.Context(), it); err != nil {
			if err == menu.ErrDuplicateName {
				c.JSON(http.StatusConflict, gin.H{"error": "item name already used"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, it)
	}
}

// @Summary  Get a menu item
// @Tags     menu
// @Produce  json
// @Param    id path string true "item id"
// @Success  200 {object} menu.Item
// @Failure  404 {object} map[string]string
// @Router   /menu/items/{id} [get]
func getItemHandler(repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		it, err := repo.GetItemByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

// @Summary  Update a menu item (owner only)
// @Tags     menu
// @Accept   json
// @Produce  json
// @Param    id path string true "item id"
// @Param    body body menu.UpdateItemRequest true "fields to change"
// @Success  200 {object} menu.Item
// @Router   /menu/items/{id} [put]
func updateItemHandler(repo menu.Repository, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := requireRestaurant(c, accRepo)
		if !ok {
			return
		}
		it, err := repo.GetItemByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if it.RestaurantID != owner.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your menu item"})
			return
		}
		var req menu.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updatePrice := false
		if req.Price != "" {
			price, err := decimal.NewFromString(req.Price)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
				return
			}
			it.Price = price.Round(2)
			updatePrice = true
		}
		if req.CategoryID != "" {
			cat, err := repo.GetCategoryByID(c.Request.Context(), req.CategoryID)
			if err != nil || cat.RestaurantID != owner.ID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "category does not belong to your restaurant"})
				return
			}
		}
		it.Name, it.Description = req.Name, req.Description
		it.CategoryID = req.CategoryID
		it.PreparationTime = req.PreparationTime
		if err := repo.UpdateItem(c.Request.Context(), it, updatePrice, req.IsAvailable); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		out, err := repo.GetItemByID(c.Request.Context(), it.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete a menu item (owner only)
// @Tags     menu
// @Param    id path string true "item id"
// @Success  204
// @Router   /menu/items/{id} [delete]
func deleteItemHandler(repo menu.Repository, accRepo account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := requireRestaurant(c, accRepo)
		if !ok {
			return
		}
		it, err := repo.GetItemByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if it.RestaurantID != owner.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your menu item"})
			return
		}
		if _, err := repo.DeleteItem(c.Request.Context(), it.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
