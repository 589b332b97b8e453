package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Abh4y369/ServNex-App/config"
	"github.com/Abh4y369/ServNex-App/controllers"
	"github.com/Abh4y369/ServNex-App/routes"
	"github.com/Abh4y369/ServNex-App/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("⚠️  Redis unavailable; catalog caching disabled")
	} else {
		log.Println("✅ Redis connected; catalog caching enabled")
	}

	authService := services.NewAuthService(db)
	resetService := services.NewPasswordResetService(db)
	hotelService := services.NewHotelService(db)
	restaurantService := services.NewRestaurantService(db)
	bookingService := services.NewBookingService(db)
	reservationService := services.NewReservationService(db)
	roomInventory := services.NewRoomInventory()

	authController := controllers.NewAuthController(authService)
	passwordController := controllers.NewPasswordController(resetService)
	hotelController := controllers.NewHotelController(hotelService)
	restaurantController := controllers.NewRestaurantController(restaurantService)
	bookingController := controllers.NewBookingController(bookingService)
	reservationController := controllers.NewReservationController(reservationService)
	adminController := controllers.NewAdminController(roomInventory)

	router := routes.SetupRouter(
		authController,
		passwordController,
		hotelController,
		restaurantController,
		bookingController,
		reservationController,
		adminController,
		rdb,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	log.Println("✅ Server stopped gracefully")
}
