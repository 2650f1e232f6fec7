package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/handler/http/middleware"
	usecasecontract "stayhub/internal/usecase/contract"
)

type Router struct {
	authHandler       *AuthHandler
	homestayHandler   *HomestayHandler
	bookingHandler    *BookingHandler
	attractionHandler *AttractionHandler
	reviewHandler     *ReviewHandler
	adminHandler      *AdminHandler
	authUsecase       usecasecontract.IAuthUsecase
	rateLimit         float64
}

func NewRouter(
	authUsecase usecasecontract.IAuthUsecase,
	homestayUsecase usecasecontract.IHomestayUsecase,
	bookingUsecase usecasecontract.IBookingUsecase,
	attractionUsecase usecasecontract.IAttractionUsecase,
	reviewUsecase usecasecontract.IReviewUsecase,
	statsUsecase usecasecontract.IStatsUsecase,
	userRepo contract.IUserRepository,
	rateLimit float64,
) *Router {
	return &Router{
		authHandler:       NewAuthHandler(authUsecase),
		homestayHandler:   NewHomestayHandler(homestayUsecase, bookingUsecase),
		bookingHandler:    NewBookingHandler(bookingUsecase),
		attractionHandler: NewAttractionHandler(attractionUsecase),
		reviewHandler:     NewReviewHandler(reviewUsecase),
		adminHandler:      NewAdminHandler(statsUsecase, userRepo),
		authUsecase:       authUsecase,
		rateLimit:         rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
	}

	// Public browse routes: the landing page shows listings and
	// attractions before login.
	v1.GET("/homestays", r.homestayHandler.List)
	v1.GET("/homestays/:id", r.homestayHandler.Get)
	v1.GET("/homestays/:id/reviews", r.reviewHandler.ListByHomestay)
	v1.GET("/attractions", r.attractionHandler.List)
	v1.GET("/attractions/:id", r.attractionHandler.Get)

	// Protected routes (session required)
	protected := v1.Group("/")
	protected.Use(middleware.SessionAuth(r.authUsecase))
	{
		protected.GET("/me", r.authHandler.Me)
		protected.PUT("/me", r.authHandler.UpdateProfile)

		protected.POST("/reviews", r.reviewHandler.Create)
		protected.DELETE("/reviews/:id", r.reviewHandler.Delete)

		// Host routes
		host := protected.Group("/")
		host.Use(middleware.RequireRoles(entity.UserRoleHost, entity.UserRoleAdmin))
		{
			host.POST("/homestays", r.homestayHandler.Create)
			host.PUT("/homestays/:id", r.homestayHandler.Update)
			host.DELETE("/homestays/:id", r.homestayHandler.Delete)
			host.GET("/host/homestays", r.homestayHandler.MyListings)
			host.GET("/host/bookings", r.bookingHandler.HostBookings)
			host.GET("/host/summary", r.homestayHandler.HostSummary)
			host.PUT("/bookings/:id/status", r.bookingHandler.UpdateStatus)
		}

		// Tourist routes
		tourist := protected.Group("/")
		tourist.Use(middleware.RequireRoles(entity.UserRoleTourist))
		{
			tourist.POST("/bookings", r.bookingHandler.Create)
			tourist.GET("/bookings/me", r.bookingHandler.MyBookings)
		}

		// Guide routes
		guide := protected.Group("/")
		guide.Use(middleware.RequireRoles(entity.UserRoleGuide, entity.UserRoleAdmin))
		{
			guide.POST("/attractions", r.attractionHandler.Create)
			guide.PUT("/attractions/:id", r.attractionHandler.Update)
			guide.DELETE("/attractions/:id", r.attractionHandler.Delete)
		}

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRoles(entity.UserRoleAdmin))
		{
			admin.GET("/stats", r.adminHandler.Stats)
			admin.GET("/users", r.adminHandler.ListUsers)
			admin.DELETE("/users/:id", r.adminHandler.DeleteUser)
			admin.GET("/bookings", r.bookingHandler.List)
		}
	}
}
