package routes

import (
	"NutriPlan-Backend/internal/api/handlers"
	"NutriPlan-Backend/internal/middleware"
	"NutriPlan-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	NutritionHandler    handlers.NutritionHandler
	ProductHandler      handlers.ProductHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Admin()
	c.Products()
	c.Subscriptions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/user")
	// user routes
	{
		user.Post("/signup", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetMe)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/calculate-calories", c.Middleware.AuthMiddleware(c.JWTService), c.NutritionHandler.CalculateCalories)
		user.Post("/address", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateAddress)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin")
	{
		admin.Post("/signup", c.UserHandler.AdminSignup)
		admin.Post("/login", c.UserHandler.AdminLogin)

		guarded := admin.Group("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly())
		guarded.Get("/users", c.UserHandler.GetAllUsers)
		guarded.Get("/users/count", c.UserHandler.CountUsers)
	}
}

func (c *Config) Products() {
	product := c.App.Group("/api/v1/product")
	{
		product.Get("", c.ProductHandler.GetProducts)
		product.Post("/suggest", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.ProductHandler.SuggestMeals)

		admin := product.Group("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly())
		admin.Post("", c.ProductHandler.AddProduct)
		admin.Post("/bulk", c.ProductHandler.BulkAddProducts)
		admin.Post("/image", c.ProductHandler.UploadProductImage)
	}
}

func (c *Config) Subscriptions() {
	sample := c.App.Group("/api/v1/sampleSubscription")
	{
		sample.Get("/:id", c.SubscriptionHandler.GetSamplePlan)
		sample.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.SubscriptionHandler.AddSamplePlan)
	}

	sub := c.App.Group("/api/v1/subscription", c.Middleware.AuthMiddleware(c.JWTService))
	{
		sub.Post("/purchase", c.SubscriptionHandler.Purchase)
		sub.Get("/:id", c.SubscriptionHandler.GetSubscription)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
