package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fausse-reservations/config"
	"github.com/yeremiapane/fausse-reservations/database"
	"github.com/yeremiapane/fausse-reservations/models"
	"github.com/yeremiapane/fausse-reservations/router"
	"github.com/yeremiapane/fausse-reservations/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	utils.InitLogger(cfg.LogLevel)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}

	deps := router.NewDependencies(db, cfg)

	if cfg.JWT.Secret == "" {
		utils.InfoLogger.Warn("JWT_SECRET not set, staff routes will reject every request")
	}
	if cfg.Staff.Email != "" && cfg.Staff.Password != "" {
		if _, err := deps.Staff.EnsureStaff(context.Background(), cfg.Staff.Name, cfg.Staff.Email, cfg.Staff.Password, models.RoleAdmin); err != nil {
			utils.ErrorLogger.Printf("Error seeding staff user: %v", err)
		}
	}

	stopSweeper := deps.RateLimiter.StartSweeper(time.Minute)
	defer stopSweeper()
	stopLoginSweeper := deps.LoginLimiter.StartSweeper(time.Minute)
	defer stopLoginSweeper()

	r := router.SetupRouter(deps)
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		utils.ErrorLogger.Printf("Error setting trusted proxies: %v", err)
	}

	utils.InfoLogger.Printf("Listening on port %s (store=%s, capacity=%d)", cfg.Port, cfg.DB.Driver, cfg.TableCapacity)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
