package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Abh4y369/ServNex-App/controllers"
	"github.com/Abh4y369/ServNex-App/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	pc *controllers.PasswordController,
	hc *controllers.HotelController,
	rc *controllers.RestaurantController,
	bc *controllers.BookingController,
	resc *controllers.ReservationController,
	adc *controllers.AdminController,
	rdb *redis.Client,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalogCache := middleware.CatalogCache(rdb, 5*time.Minute)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/token/refresh", ac.RefreshToken)
			auth.POST("/logout", ac.Logout)
			auth.POST("/forgot-password/send-otp", pc.SendOTP)
			auth.POST("/forgot-password/verify-otp", pc.VerifyOTP)
			auth.POST("/forgot-password/reset", pc.ResetPassword)

			auth.PATCH("/update-role", middleware.AuthRequired(), ac.UpdateRole)
			auth.POST("/business-profile", middleware.AuthRequired(), middleware.BusinessOnly(), ac.CreateBusinessProfile)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", catalogCache, hc.List)
			hotels.GET("/:id", catalogCache, hc.Get)
			hotels.GET("/:id/check_availability", bc.CheckAvailability)
		}

		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", catalogCache, rc.List)
			restaurants.GET("/:id", catalogCache, rc.Get)
		}

		bookings := api.Group("/bookings", middleware.AuthRequired())
		{
			bookings.GET("", bc.MyBookings)
			bookings.POST("", bc.Create)
		}

		reservations := api.Group("/reservations", middleware.AuthRequired())
		{
			reservations.GET("", resc.MyReservations)
			reservations.POST("", resc.Create)
		}

		admin := api.Group("/admin", middleware.AuthRequired(), middleware.BusinessOnly())
		{
			admin.GET("/rooms", adc.ListRooms)
			admin.POST("/rooms", adc.AddRoom)
			admin.GET("/rooms/:id", adc.GetRoomForm)
			admin.PUT("/rooms/:id", adc.UpdateRoom)
			admin.DELETE("/rooms/:id", adc.DeleteRoom)

			admin.GET("/bookings", adc.ListBookings)

			admin.GET("/gallery", adc.ListGallery)
			admin.POST("/gallery", adc.AddGalleryImage)
			admin.DELETE("/gallery/:index", adc.RemoveGalleryImage)
		}
	}

	return r
}
