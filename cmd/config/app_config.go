package config

import (
	"os"
	"time"

	"NutriPlan-Backend/internal/api/handlers"
	"NutriPlan-Backend/internal/api/routes"
	"NutriPlan-Backend/internal/middleware"
	"NutriPlan-Backend/internal/utils"
	"NutriPlan-Backend/internal/utils/storage"
	"NutriPlan-Backend/pkg/jwt"
	"NutriPlan-Backend/pkg/mealplan"
	"NutriPlan-Backend/pkg/nutrition"
	"NutriPlan-Backend/pkg/payment"
	"NutriPlan-Backend/pkg/product"
	"NutriPlan-Backend/pkg/subscription"
	"NutriPlan-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, appLogger zerolog.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	paymentService := payment.NewPaymentService()
	userService := user.NewUserService(userRepository, jwtService)
	nutritionService := nutrition.NewNutritionService(userRepository)
	productService := product.NewProductService(productRepository, s3)
	mealPlanService := mealplan.NewMealPlanService(productRepository, userRepository)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, userRepository, paymentService, appLogger)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, validator)
	productHandler := handlers.NewProductHandler(productService, mealPlanService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		NutritionHandler:    nutritionHandler,
		ProductHandler:      productHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
