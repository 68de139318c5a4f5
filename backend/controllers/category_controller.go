package controllers

import (
	"errors"

	"learntrack/backend/config"
	"learntrack/backend/middleware"
	"learntrack/backend/models"
	"learntrack/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCategoryController(db *gorm.DB, cfg *config.Config) *CategoryController {
	return &CategoryController{DB: db, Cfg: cfg}
}

// GetCategories returns all categories owned by the caller.
func (cc *CategoryController) GetCategories(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	categories := []models.Category{}
	if err := cc.DB.Where("owner_id = ?", userID).Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(categories)
}

// CreateCategory creates a category for the caller. Creation is idempotent
// on (owner, name): an existing category is returned unchanged.
func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	type categoryInput struct {
		Name string `json:"name"`
	}
	var input categoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" {
		return utils.BadRequest(c, "Name is required")
	}

	var category models.Category
	err := cc.DB.Where("name = ? AND owner_id = ?", input.Name, userID).First(&category).Error
	if err == nil {
		return c.JSON(category)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	category = models.Category{Name: input.Name, OwnerID: userID}
	if err := cc.DB.Create(&category).Error; err != nil {
		// The unique index on (owner_id, name) turns a lost race into an
		// idempotent success: re-read the row the other request inserted.
		if readErr := cc.DB.Where("name = ? AND owner_id = ?", input.Name, userID).
			First(&category).Error; readErr == nil {
			return c.JSON(category)
		}
		return utils.InternalServerError(c, "Could not create category")
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}
