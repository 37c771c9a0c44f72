package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/resto-app/resto-backend/docs"
	"github.com/resto-app/resto-backend/internal/account"
	"github.com/resto-app/resto-backend/internal/config"
	"github.com/resto-app/resto-backend/internal/httpx"
	"github.com/resto-app/resto-backend/internal/menu"
	"github.com/resto-app/resto-backend/internal/order"
)

// @title        Resto Backend API
// @version      1.0
// @description  Restaurant ordering backend: accounts, menu catalog and order lifecycle.
// @BasePath     /
func main() {
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[api] postgres connect: %v", err)
	}
	defer pool.Close()

	accRepo := account.NewPGRepo(pool)
	menuRepo := menu.NewPGRepo(pool)
	orderRepo := order.NewPGRepo(pool)
	orderSvc := order.NewService(orderRepo, menuRepo, accRepo)

	r := newRouter(accRepo, menuRepo, orderRepo, orderSvc)

	log.Printf("[api] listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}

func newRouter(accRepo account.Repository, menuRepo menu.Repository, orderRepo order.Repository, orderSvc *order.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/register", registerHandler(accRepo))
	r.POST("/auth/login", loginHandler(accRepo))

	auth := r.Group("/", httpx.Auth(accRepo))
	{
		auth.GET("/auth/user-type", userTypeHandler())
		auth.GET("/auth/restaurant/profile", getRestaurantProfileHandler(accRepo))
		auth.PUT("/auth/restaurant/profile", updateRestaurantProfileHandler(accRepo))
		auth.GET("/auth/customer/profile", getCustomerProfileHandler(accRepo))
		auth.PUT("/auth/customer/profile", updateCustomerProfileHandler(accRepo))

		auth.GET("/menu/categories", listCategoriesHandler(menuRepo))
		auth.POST("/menu/categories", createCategoryHandler(menuRepo, accRepo))
		auth.GET("/menu/categories/:id", getCategoryHandler(menuRepo))
		auth.PUT("/menu/categories/:id", updateCategoryHandler(menuRepo, accRepo))
		auth.DELETE("/menu/categories/:id", deleteCategoryHandler(menuRepo, accRepo))

		auth.GET("/menu/items", listItemsHandler(menuRepo))
		auth.POST("/menu/items", createItemHandler(menuRepo, accRepo))
		auth.GET("/menu/items/:id", getItemHandler(menuRepo))
		auth.PUT("/menu/items/:id", updateItemHandler(menuRepo, accRepo))
		auth.DELETE("/menu/items/:id", deleteItemHandler(menuRepo, accRepo))

		auth.POST("/orders", createOrderHandler(orderSvc, accRepo))
		auth.GET("/orders", listOrdersHandler(orderRepo, accRepo))
		auth.GET("/orders/:id", getOrderHandler(orderSvc, accRepo))
		auth.GET("/orders/:id/items", getOrderItemsHandler(orderSvc, accRepo))
		auth.PATCH("/orders/:id/status", updateOrderStatusHandler(orderSvc, accRepo))
	}

	return r
}
