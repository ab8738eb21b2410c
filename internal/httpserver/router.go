package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authmw "github.com/thepKz/gender-care-sub009/internal/middleware/auth"
)

type Deps struct {
	AuthHandler        *AuthHTTP
	CatalogHandler     *CatalogHTTP
	SearchHandler      *SearchHTTP
	CareHandler        *CareHTTP
	PromotionHandler   *PromotionHTTP
	OrderHandler       *OrderHTTP
	PaymentHandler     *PaymentHTTP
	ReviewHandler      *ReviewHTTP
	AppointmentHandler *AppointmentHTTP
	JWTSecret          []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	mw := authmw.New(d.JWTSecret)

	auth := e.Group("/api/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)

	products := e.Group("/api/products")
	products.GET("", d.CatalogHandler.GetProducts)
	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.SearchProducts)
	}
	products.GET("/featured", d.CatalogHandler.GetFeaturedProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)
	products.GET("/:id/reviews", d.ReviewHandler.GetProductReviews)
	products.POST("/:id/reviews", d.ReviewHandler.CreateReview, mw.RequireLogin)

	productsAdmin := products.Group("", mw.RequireAdmin)
	productsAdmin.POST("", d.CatalogHandler.CreateProduct)
	productsAdmin.PUT("/:id", d.CatalogHandler.PatchProduct)
	productsAdmin.PATCH("/:id", d.CatalogHandler.PatchProduct)
	productsAdmin.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	categories := e.Group("/api/categories")
	categories.GET("", d.CatalogHandler.GetCategories)
	categories.GET("/:id", d.CatalogHandler.GetCategory)

	categoriesAdmin := categories.Group("", mw.RequireAdmin)
	categoriesAdmin.POST("", d.CatalogHandler.CreateCategory)
	categoriesAdmin.PUT("/:id", d.CatalogHandler.PatchCategory)
	categoriesAdmin.PATCH("/:id", d.CatalogHandler.PatchCategory)
	categoriesAdmin.DELETE("/:id", d.CatalogHandler.DeleteCategory)

	services := e.Group("/api/services")
	services.GET("", d.CareHandler.GetServices)
	services.GET("/:id", d.CareHandler.GetService)

	servicesAdmin := services.Group("", mw.RequireAdmin)
	servicesAdmin.POST("", d.CareHandler.CreateService)
	servicesAdmin.PUT("/:id", d.CareHandler.PatchService)
	servicesAdmin.PATCH("/:id", d.CareHandler.PatchService)
	servicesAdmin.DELETE("/:id", d.CareHandler.DeleteService)

	packages := e.Group("/api/service-packages")
	packages.GET("", d.CareHandler.GetPackages)
	packages.GET("/:id", d.CareHandler.GetPackage)

	packagesAdmin := packages.Group("", mw.RequireAdmin)
	packagesAdmin.POST("", d.CareHandler.CreatePackage)
	packagesAdmin.PUT("/:id", d.CareHandler.PatchPackage)
	packagesAdmin.PATCH("/:id", d.CareHandler.PatchPackage)
	packagesAdmin.DELETE("/:id", d.CareHandler.DeletePackage)

	promotions := e.Group("/api/promotions")
	promotions.GET("", d.PromotionHandler.GetPromotions)
	promotions.GET("/:id", d.PromotionHandler.GetPromotion)

	promotionsAdmin := promotions.Group("", mw.RequireAdmin)
	promotionsAdmin.POST("", d.PromotionHandler.CreatePromotion)
	promotionsAdmin.PUT("/:id", d.PromotionHandler.PatchPromotion)
	promotionsAdmin.PATCH("/:id", d.PromotionHandler.PatchPromotion)
	promotionsAdmin.DELETE("/:id", d.PromotionHandler.DeletePromotion)

	orders := e.Group("/api/orders", mw.RequireLogin)
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/search", d.OrderHandler.SearchOrders)
	orders.GET("/user/:userId", d.OrderHandler.GetOrdersByUser)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.GET("/:id/payments", d.PaymentHandler.GetOrderPayments)
	orders.POST("/user/:userId", d.OrderHandler.CreateOrder)
	orders.PUT("/:id/status", d.OrderHandler.UpdateStatus)

	payments := e.Group("/api/payments", mw.RequireLogin)
	payments.POST("", d.PaymentHandler.CreatePayment)
	payments.GET("/:id", d.PaymentHandler.GetPayment)
	payments.PUT("/:id/status", d.PaymentHandler.UpdateStatus)

	e.DELETE("/api/reviews/:id", d.ReviewHandler.DeleteReview, mw.RequireLogin)

	appointments := e.Group("/api/appointments", mw.RequireLogin)
	appointments.POST("", d.AppointmentHandler.CreateAppointment)
	appointments.GET("/:id", d.AppointmentHandler.GetAppointment)
	appointments.GET("/user/:userId", d.AppointmentHandler.GetAppointmentsByUser)
	appointments.PUT("/:id/status", d.AppointmentHandler.UpdateStatus)
}
