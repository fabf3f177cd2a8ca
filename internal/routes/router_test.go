package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/seacatering/backend/internal/config"
	"github.com/seacatering/backend/internal/database"
	"github.com/seacatering/backend/internal/handlers"
	"github.com/seacatering/backend/internal/models"
	"github.com/seacatering/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedMealPlans(db))

	// the health handler pings through the package-level handle
	database.DB = db

	cfg := &config.Config{
		JWTSecret:        "router-test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: time.Hour,
		CORSOrigins:      "*",
	}

	authService := services.NewAuthService(db, cfg)
	subscriptionService := services.NewSubscriptionService(db)
	catalogService := services.NewCatalogService(db)
	testimonialService := services.NewTestimonialService(db)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewSubscriptionHandler(subscriptionService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewTestimonialHandler(testimonialService),
		handlers.NewHealthHandler(),
	)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerAndLogin(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		AccessToken string `json:"accessToken"`
	}
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}

func TestRegisterEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user map[string]interface{}
	decodeBody(t, resp, &user)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "password")

	// duplicate email
	resp = doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"name": "Alice Again", "email": "alice@example.com", "password": "other-pass",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// validation failure
	resp = doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"name": "Al", "email": "al@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestSubscriptionEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "Budi", "budi@example.com")

	createBody := fiber.Map{
		"planName":     "Protein Plan",
		"mealTypes":    []string{"breakfast", "dinner"},
		"deliveryDays": []string{"Monday", "Wednesday"},
		"totalPrice":   210000,
		"allergies":    "peanuts",
	}

	t.Run("requires a session", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/subscriptions", "", createBody)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	var subID string
	t.Run("create", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/subscriptions", token, createBody)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var sub map[string]interface{}
		decodeBody(t, resp, &sub)
		assert.Equal(t, "ACTIVE", sub["status"])
		assert.Equal(t, float64(210000), sub["totalPrice"])
		subID = sub["id"].(string)
	})

	t.Run("create rejects missing fields", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/subscriptions", token, fiber.Map{
			"planName": "Protein Plan",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("list own subscriptions", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/subscriptions", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var subs []map[string]interface{}
		decodeBody(t, resp, &subs)
		require.Len(t, subs, 1)
		assert.Equal(t, subID, subs[0]["id"])
	})

	t.Run("pause stores the window", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/subscriptions/"+subID+"/pause", token, fiber.Map{
			"pauseStartDate": "2026-09-01",
			"pauseEndDate":   "2026-09-15",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var sub map[string]interface{}
		decodeBody(t, resp, &sub)
		assert.Equal(t, "PAUSED", sub["status"])
		assert.NotNil(t, sub["pauseStartDate"])
		assert.NotNil(t, sub["pauseEndDate"])
	})

	t.Run("pause rejects malformed dates", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/subscriptions/"+subID+"/pause", token, fiber.Map{
			"pauseStartDate": "next tuesday",
			"pauseEndDate":   "2026-09-15",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp := doJSON(t, app, http.MethodPost, "/api/subscriptions/"+subID+"/cancel", token, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var sub map[string]interface{}
			decodeBody(t, resp, &sub)
			assert.Equal(t, "CANCELLED", sub["status"], "call %d", i+1)
		}
	})

	t.Run("resume reactivates", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/subscriptions/"+subID+"/resume", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var sub map[string]interface{}
		decodeBody(t, resp, &sub)
		assert.Equal(t, "ACTIVE", sub["status"])
		assert.NotNil(t, sub["reactivatedAt"])
	})
}

func TestAdminMetricsEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	userToken := registerAndLogin(t, app, "Budi", "budi@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/subscriptions", userToken, fiber.Map{
		"planName":     "Diet Plan",
		"mealTypes":    []string{"lunch"},
		"deliveryDays": []string{"Monday"},
		"totalPrice":   105000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("forbidden for regular users", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet,
			"/api/admin/subscription-metrics?start=2024-01-01&end=2030-12-31", userToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})

	// Promote an admin and log in so the role claim is fresh.
	resp = doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"name": "Admin", "email": "admin@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "admin@example.com").
		Update("role", models.RoleAdmin).Error)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "admin@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"accessToken"`
	}
	decodeBody(t, resp, &login)
	adminToken := login.AccessToken

	t.Run("missing dates", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/admin/subscription-metrics?start=2024-01-01", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("ok", func(t *testing.T) {
		now := time.Now().UTC()
		path := fmt.Sprintf("/api/admin/subscription-metrics?start=%s&end=%s",
			now.AddDate(0, 0, -1).Format("2006-01-02"),
			now.AddDate(0, 0, 1).Format("2006-01-02"))

		resp := doJSON(t, app, http.MethodGet, path, adminToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var m map[string]interface{}
		decodeBody(t, resp, &m)
		assert.Equal(t, float64(1), m["newSubscriptions"])
		assert.Equal(t, float64(105000), m["mrr"])
		assert.Equal(t, float64(0), m["reactivations"])
		assert.Equal(t, float64(1), m["totalActive"])
	})
}

func TestPublicEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("meal plans with nested meals", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/meal-plans", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var plans []map[string]interface{}
		decodeBody(t, resp, &plans)
		require.Len(t, plans, 3)
		for _, plan := range plans {
			meals := plan["meals"].([]interface{})
			assert.Len(t, meals, 3)
		}
	})

	t.Run("testimonial validation", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/testimonials", "", fiber.Map{
			"customerName": "Al", "reviewMessage": "too short", "rating": 9,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("anonymous testimonial", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/testimonials", "", fiber.Map{
			"customerName":  "Alice",
			"reviewMessage": "Great food and always on time",
			"rating":        5,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created map[string]interface{}
		decodeBody(t, resp, &created)
		assert.Equal(t, "Alice", created["customerName"])
		assert.Nil(t, created["userId"])

		resp = doJSON(t, app, http.MethodGet, "/api/testimonials", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var list []map[string]interface{}
		decodeBody(t, resp, &list)
		assert.Len(t, list, 1)
	})

	t.Run("health", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var health map[string]interface{}
		decodeBody(t, resp, &health)
		assert.Equal(t, "ok", health["status"])
	})
}
