package routes

import (
	"learntrack/backend/config"
	"learntrack/backend/controllers"
	"learntrack/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/signup", authController.Signup)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Category routes
	categoryController := controllers.NewCategoryController(db, cfg)
	categories := app.Group("/api/categories", authMiddleware)
	categories.Get("/", categoryController.GetCategories)
	categories.Post("/", categoryController.CreateCategory)

	// Resource routes
	resourceController := controllers.NewResourceController(db, cfg)
	summaryController := controllers.NewSummaryController(db, cfg)
	resources := app.Group("/api/resources", authMiddleware)
	resources.Get("/", resourceController.GetAllResources)
	resources.Post("/", resourceController.CreateResource)
	// Registered before /:id so the path segment is not parsed as an id.
	resources.Get("/summary/data", summaryController.GetSummary)
	resources.Get("/:id", resourceController.GetResourceByID)
	resources.Put("/:id", resourceController.UpdateResource)
	resources.Delete("/:id", resourceController.DeleteResource)
	resources.Post("/:id/mark-complete", resourceController.MarkResourceComplete)
}
