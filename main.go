package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"terravista/config"
	"terravista/cron"
	"terravista/database"
	adminRepoPkg "terravista/database/repository/admin"
	availabilityRepoPkg "terravista/database/repository/availability"
	contentRepoPkg "terravista/database/repository/content"
	propertyRepoPkg "terravista/database/repository/property"
	reservationRepoPkg "terravista/database/repository/reservation"
	"terravista/handlers"
	"terravista/routes"
	"terravista/services/admin"
	"terravista/services/booking"
	"terravista/services/catalog"
	"terravista/services/content"
	"terravista/services/notification"
	"terravista/services/reservation"
	"terravista/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	heroSlideRepo := contentRepoPkg.NewMongoHeroSlideRepo()
	blogPostRepo := contentRepoPkg.NewMongoBlogPostRepo()
	adminRepo := adminRepoPkg.NewMongoAdminUserRepo()

	// email delivery: handlers and services enqueue, the worker sends.
	mailer := notification.NewSendGridMailer()
	queue := notification.NewAsynqQueue()
	defer queue.Close()
	cron.InitEmailWorker(mailer)

	// services.
	resolver := &booking.AvailabilityResolver{
		Availability: availabilityRepo,
		Reservations: reservationRepo,
	}
	bookingService := &booking.DefaultBookingSessionService{
		Resolver:        resolver,
		ReservationRepo: reservationRepo,
		PropertyRepo:    propertyRepo,
		Sessions:        booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Queue:           queue,
		SessionTTL:      time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		HorizonDays:     config.AppConfig.BookingHorizonDays,
	}
	lifecycleService := &reservation.DefaultLifecycleService{
		Repo:  reservationRepo,
		Queue: queue,
	}
	catalogService := &catalog.DefaultCatalogService{Repo: propertyRepo}
	contentService := &content.DefaultContentService{
		Slides: heroSlideRepo,
		Posts:  blogPostRepo,
	}
	authService := &admin.DefaultAuthService{Repo: adminRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthSvc:      authService,
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Catalog:      handlers.NewCatalogHandler(catalogService, logger),
		Content:      handlers.NewContentHandler(contentService, logger),
		Notify:       handlers.NewNotifyHandler(queue, mailer, logger),
		AdminAuth:    handlers.NewAdminAuthHandler(authService, logger),
		Reservations: handlers.NewReservationHandler(lifecycleService, logger),
		Properties:   handlers.NewAdminPropertyHandler(catalogService, logger),
		AdminContent: handlers.NewAdminContentHandler(contentService, logger),
		Availability: handlers.NewAdminAvailabilityHandler(availabilityRepo, logger),
		Storage:      handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background maintenance and health monitoring.
	maintenance := cron.StartMaintenance(availabilityRepo)
	defer maintenance.Stop()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
