package routes

import (
	"cafe-storefront/config"
	"cafe-storefront/controllers"
	"cafe-storefront/middleware"
	"cafe-storefront/repositories"
	"cafe-storefront/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	catalogService := services.NewCatalogService()
	cartService := services.NewCartService()
	checkoutService := services.NewCheckoutService(
		repositories.NewPaymentMethodRepository(),
		config.AppConfig.MessengerPage,
		config.AppConfig.DeliveryMinimum,
	)

	catalogCtrl := controllers.NewCatalogController(catalogService)
	cartCtrl := controllers.NewCartController(cartService, catalogService)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService, cartService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/categories", catalogCtrl.GetAllCategories)
	router.GET("/menu", catalogCtrl.GetMenu)
	router.GET("/menu/:id", catalogCtrl.GetMenuItemByID)
	router.GET("/payment-methods", checkoutCtrl.GetPaymentMethods)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		session.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		session.DELETE("/cart", cartCtrl.ClearCart)

		session.GET("/checkout", checkoutCtrl.GetCheckout)
		session.DELETE("/checkout", checkoutCtrl.ResetCheckout)
		session.POST("/checkout/details", checkoutCtrl.SubmitDetails)
		session.POST("/checkout/back", checkoutCtrl.BackToDetails)
		session.POST("/checkout/order", checkoutCtrl.PlaceOrder)
	}
}
