package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/seacatering/backend/internal/config"
	"github.com/seacatering/backend/internal/handlers"
	"github.com/seacatering/backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	catalogHandler *handlers.CatalogHandler,
	testimonialHandler *handlers.TestimonialHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public catalog and testimonials
	api.Get("/meal-plans", catalogHandler.ListMealPlans)
	api.Get("/testimonials", testimonialHandler.List)
	api.Post("/testimonials", middleware.OptionalJWT(cfg), testimonialHandler.Create)

	// Registration and login get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/register", authLimiter, authHandler.Register)

	auth := api.Group("/auth", authLimiter)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Subscriptions require a user session
	subs := api.Group("/subscriptions", middleware.JWTProtected(cfg))
	subs.Post("/", subscriptionHandler.Create)
	subs.Get("/", subscriptionHandler.List)
	subs.Post("/:id/pause", subscriptionHandler.Pause)
	subs.Post("/:id/cancel", subscriptionHandler.Cancel)
	subs.Post("/:id/resume", subscriptionHandler.Resume)

	// Admin dashboard
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/subscription-metrics", subscriptionHandler.Metrics)
}
