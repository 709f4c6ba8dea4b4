package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fausse-reservations/config"
	"github.com/yeremiapane/fausse-reservations/controllers"
	"github.com/yeremiapane/fausse-reservations/database"
	"github.com/yeremiapane/fausse-reservations/middlewares"
	"github.com/yeremiapane/fausse-reservations/models"
	"github.com/yeremiapane/fausse-reservations/services"
	"github.com/yeremiapane/fausse-reservations/utils"
	"gorm.io/gorm"
)

const testSecret = "controllers-test-secret"

type testApp struct {
	DB           *gorm.DB
	Router       *gin.Engine
	Reservations *services.ReservationService
	Staff        *services.StaffService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger("error")

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := config.OpenDatabase("sqlite", dsn, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupTestApp(t *testing.T, capacity int) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	allocator := services.NewAllocator(capacity, services.SeededPicker(42))
	reservations := services.NewReservationService(db, allocator, 3, nil)
	newsletter := services.NewNewsletterService(db, 3)
	staff := services.NewStaffService(db, testSecret, time.Hour)

	reservationCtrl := controllers.NewReservationController(reservations)
	newsletterCtrl := controllers.NewNewsletterController(newsletter)
	staffCtrl := controllers.NewStaffController(staff, reservations)

	router := gin.New()
	router.GET("/api/health", controllers.Health)
	router.POST("/api/newsletter", newsletterCtrl.Subscribe)
	router.POST("/api/reservations", reservationCtrl.CreateReservation)
	router.GET("/api/reservations/:id", reservationCtrl.GetReservation)
	router.GET("/api/availability", reservationCtrl.GetAvailability)
	router.POST("/api/staff/login", staffCtrl.Login)

	staffGroup := router.Group("/api/staff")
	staffGroup.Use(middlewares.StaffAuth([]byte(testSecret)), middlewares.RequireRole(models.RoleStaff))
	staffGroup.GET("/reservations", staffCtrl.ListReservations)

	return &testApp{DB: db, Router: router, Reservations: reservations, Staff: staff}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func reservationPayload(email, slot string) map[string]interface{} {
	return map[string]interface{}{
		"customer_name":     "Jane Doe",
		"email":             email,
		"phone_number":      "555-0100",
		"newsletter_signup": false,
		"time_slot":         slot,
		"number_of_guests":  4,
	}
}
