package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fausse-reservations/config"
	"github.com/yeremiapane/fausse-reservations/controllers"
	"github.com/yeremiapane/fausse-reservations/floor"
	"github.com/yeremiapane/fausse-reservations/middlewares"
	"github.com/yeremiapane/fausse-reservations/models"
	"github.com/yeremiapane/fausse-reservations/services"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the routes need. Everything is built by
// the caller, so tests can swap the picker or the hub.
type Dependencies struct {
	Config       *config.Config
	Reservations *services.ReservationService
	Newsletter   *services.NewsletterService
	Staff        *services.StaffService
	Hub          *floor.Hub
	RateLimiter  *middlewares.RateLimiter
	LoginLimiter *middlewares.LoginRateLimiter
}

// NewDependencies wires the default services on top of db.
func NewDependencies(db *gorm.DB, cfg *config.Config) Dependencies {
	hub := floor.NewHub()
	allocator := services.NewAllocator(cfg.TableCapacity, services.RandomPicker())

	return Dependencies{
		Config:       cfg,
		Reservations: services.NewReservationService(db, allocator, cfg.MaxAllocationAttempts, hub),
		Newsletter:   services.NewNewsletterService(db, cfg.MaxAllocationAttempts),
		Staff:        services.NewStaffService(db, cfg.JWT.Secret, cfg.TokenTTL()),
		Hub:          hub,
		RateLimiter:  middlewares.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow()),
		LoginLimiter: middlewares.NewLoginRateLimiter(12*time.Second, 5),
	}
}

func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders(cfg.GinMode == gin.ReleaseMode))
	r.Use(middlewares.CORSMiddlewares(cfg.CORS.AllowedOrigin))

	reservationCtrl := controllers.NewReservationController(deps.Reservations)
	newsletterCtrl := controllers.NewNewsletterController(deps.Newsletter)
	staffCtrl := controllers.NewStaffController(deps.Staff, deps.Reservations)
	floorCtrl := controllers.NewFloorController(deps.Hub, cfg.CORS.AllowedOrigin)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.GET("/health", controllers.Health)

	public := api.Group("")
	if deps.RateLimiter != nil {
		public.Use(deps.RateLimiter.RateLimit())
	}
	{
		public.POST("/newsletter", newsletterCtrl.Subscribe)
		public.POST("/reservations", reservationCtrl.CreateReservation)
		public.GET("/reservations/:id", reservationCtrl.GetReservation)
		public.GET("/availability", reservationCtrl.GetAvailability)
	}

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	loginLimiter := deps.LoginLimiter
	if loginLimiter == nil {
		loginLimiter = middlewares.NewLoginRateLimiter(12*time.Second, 5)
	}
	api.POST("/staff/login", loginLimiter.Limit(), staffCtrl.Login)

	staff := api.Group("/staff")
	staff.Use(middlewares.StaffAuth([]byte(cfg.JWT.Secret)))
	staff.Use(middlewares.RequireRole(models.RoleStaff))
	{
		staff.GET("/reservations", staffCtrl.ListReservations)
		staff.GET("/floor/ws", floorCtrl.Stream)
	}

	return r
}
