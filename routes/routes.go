package routes

import (
	"net/http"
	"time"

	"terravista/handlers"
	"terravista/middleware"
	"terravista/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public property listing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.GET("", hb.Catalog.ListProperties)
		api.GET("/:id", hb.Catalog.GetProperty)
	}
}

// RegisterBookingRoutes registers the consultation wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", hb.Booking.StartSession)
		api.GET("/session/:sessionID", hb.Booking.GetSession)
		api.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		api.PUT("/session/:sessionID/time", hb.Booking.SelectTime)
		api.PUT("/session/:sessionID/details", hb.Booking.SaveDetails)
		api.PUT("/session/:sessionID/back", hb.Booking.Back)
		api.POST("/session/:sessionID/submit", hb.Booking.Submit)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		api.GET("/properties", hb.Booking.SearchProperties)
	}
}

// RegisterContentRoutes registers the public hero slide and blog endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/hero-slides", hb.Content.ListHeroSlides)
	blog := r.Group("/api/blog")
	{
		blog.GET("", hb.Content.ListBlogPosts)
		blog.GET("/:slug", hb.Content.GetBlogPost)
	}
}

// RegisterNotifyRoutes registers the transactional email endpoints.
func RegisterNotifyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/send-notification", hb.Notify.SendNotification)
	r.POST("/api/send-confirmation", hb.Notify.SendConfirmation)
	r.POST("/api/send-rejection", hb.Notify.SendRejection)
	r.POST("/api/contact", hb.Notify.Contact)
}

// RegisterAdminRoutes registers the back office. Login is public; everything
// else requires a valid admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminAuth.Login)

		adminGroup.Use(middleware.AdminAuthMiddleware(hb.AuthSvc))

		adminGroup.GET("/reservations", hb.Reservations.List)
		adminGroup.GET("/reservations/:id", hb.Reservations.Get)
		adminGroup.PUT("/reservations/:id/confirm", hb.Reservations.Confirm)
		adminGroup.PUT("/reservations/:id/reject", hb.Reservations.Reject)
		adminGroup.DELETE("/reservations/:id", hb.Reservations.Delete)

		adminGroup.POST("/properties", hb.Properties.Create)
		adminGroup.PUT("/properties/:id", hb.Properties.Update)
		adminGroup.DELETE("/properties/:id", hb.Properties.Delete)
		adminGroup.PUT("/properties/:id/cover", hb.Properties.SetCover)

		adminGroup.GET("/availability", hb.Availability.List)
		adminGroup.PUT("/availability", hb.Availability.Upsert)
		adminGroup.DELETE("/availability/:date", hb.Availability.Delete)

		adminGroup.GET("/hero-slides", hb.AdminContent.ListSlides)
		adminGroup.POST("/hero-slides", hb.AdminContent.CreateSlide)
		adminGroup.PUT("/hero-slides/:id", hb.AdminContent.UpdateSlide)
		adminGroup.DELETE("/hero-slides/:id", hb.AdminContent.DeleteSlide)

		adminGroup.GET("/blog", hb.AdminContent.ListPosts)
		adminGroup.POST("/blog", hb.AdminContent.CreatePost)
		adminGroup.PUT("/blog/:id", hb.AdminContent.UpdatePost)
		adminGroup.DELETE("/blog/:id", hb.AdminContent.DeletePost)

		adminGroup.POST("/storage/upload/:folder", hb.Storage.UploadFileHandler)
		adminGroup.DELETE("/storage", hb.Storage.DeleteFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterNotifyRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
