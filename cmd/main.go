package main

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"shawarma-storefront/internal/admin"
	"shawarma-storefront/internal/api"
	"shawarma-storefront/internal/cart"
	"shawarma-storefront/internal/catalog"
	"shawarma-storefront/internal/checkout"
	"shawarma-storefront/internal/config"
	"shawarma-storefront/internal/repository"
)

func main() {
	cfg := config.Load()

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter("order-submitted")

	catalogClient := catalog.NewClient(cfg.CatalogAPIURL)
	cartRepo := repository.NewRedisCartRepository(rdb)
	cartStore := cart.NewStore(cartRepo)
	checkoutService := checkout.NewService(cartStore, catalogClient, catalogClient, checkout.NewRedisSubmissionGuard(rdb), kafkaWriter)
	adminService := admin.NewService(catalogClient, []byte(cfg.JWTSecret), cfg.AdminUser, cfg.AdminPass)

	storefrontHandler := api.NewStorefrontHandler(catalogClient, cartStore, checkoutService)
	adminHandler := api.NewAdminHandler(adminService, catalogClient)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.GET("/menu", storefrontHandler.GetMenu)
	e.GET("/menu/:id/addons", storefrontHandler.GetProductAddons)

	e.GET("/cart", storefrontHandler.GetCart)
	e.POST("/cart/items", storefrontHandler.AddCartItem)
	e.PUT("/cart/items/:key", storefrontHandler.UpdateCartItemQuantity)
	e.PUT("/cart/items/:key/instructions", storefrontHandler.UpdateCartItemInstructions)
	e.DELETE("/cart/items/:key", storefrontHandler.RemoveCartItem)
	e.DELETE("/cart", storefrontHandler.ClearCart)

	e.POST("/checkout", storefrontHandler.SubmitOrder)

	e.POST("/admin/login", adminHandler.Login)

	adminGroup := e.Group("/admin")
	adminGroup.Use(echojwt.JWT([]byte(cfg.JWTSecret)))
	adminGroup.GET("/shawarma", adminHandler.ListProducts)
	adminGroup.POST("/shawarma", adminHandler.CreateProduct)
	adminGroup.PUT("/shawarma/:id", adminHandler.UpdateProduct)
	adminGroup.DELETE("/shawarma/:id", adminHandler.DeleteProduct)
	adminGroup.PATCH("/shawarma/:id/availability", adminHandler.ToggleAvailability)
	adminGroup.PUT("/shawarma/:id/position", adminHandler.MoveProduct)
	adminGroup.GET("/shawarma/:id/images", adminHandler.ListImages)
	adminGroup.POST("/shawarma/:id/images", adminHandler.UploadImage)
	adminGroup.POST("/images/:id/crop", adminHandler.CropImage)
	adminGroup.PATCH("/images/:id/primary", adminHandler.SetPrimaryImage)
	adminGroup.DELETE("/images/:id", adminHandler.DeleteImage)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "shawarma-storefront",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", cfg.Port)))
}
