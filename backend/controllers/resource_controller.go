package controllers

import (
	"errors"
	"strconv"
	"time"

	"learntrack/backend/config"
	"learntrack/backend/middleware"
	"learntrack/backend/models"
	"learntrack/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ResourceController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewResourceController(db *gorm.DB, cfg *config.Config) *ResourceController {
	return &ResourceController{DB: db, Cfg: cfg}
}

type resourceInput struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	CategoryID  *uint  `json:"category_id"`
}

// validate checks the enum and ownership rules for create and update. The
// category, when given, must belong to the caller.
func (rc *ResourceController) validate(input *resourceInput, userID uint) (string, bool) {
	if input.Title == "" {
		return "Title is required", false
	}
	if !models.ValidResourceType(input.Type) {
		return "Type must be one of: article, video, quiz", false
	}
	if input.CategoryID != nil {
		var category models.Category
		err := rc.DB.Where("id = ? AND owner_id = ?", *input.CategoryID, userID).
			First(&category).Error
		if err != nil {
			return "Invalid category", false
		}
	}
	return "", true
}

// GetAllResources returns the caller's resources grouped by category name,
// each entry enriched with the latest progress log.
func (rc *ResourceController) GetAllResources(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var resources []models.Resource
	if err := rc.DB.Where("owner_id = ?", userID).Find(&resources).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var categories []models.Category
	if err := rc.DB.Where("owner_id = ?", userID).Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	categoryNames := make(map[uint]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	var logs []models.ProgressLog
	if err := rc.DB.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	logByResource := make(map[uint]models.ProgressLog, len(logs))
	for _, pl := range logs {
		logByResource[pl.ResourceID] = pl
	}

	grouped := make(map[string][]models.ResourceWithProgress)
	for _, resource := range resources {
		entry := models.ResourceWithProgress{Resource: resource}

		groupName := "Uncategorized"
		if resource.CategoryID != nil {
			if name, ok := categoryNames[*resource.CategoryID]; ok {
				groupName = name
				entry.CategoryName = name
			}
		}

		if pl, ok := logByResource[resource.ID]; ok {
			entry.IsCompleted = pl.CompletionStatus == models.StatusCompleted
			entry.TimeSpent = pl.TimeSpent
			entry.CompletionDate = pl.CompletionDate
		}

		grouped[groupName] = append(grouped[groupName], entry)
	}

	return c.JSON(grouped)
}

// CreateResource creates a resource owned by the caller.
func (rc *ResourceController) CreateResource(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input resourceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if msg, ok := rc.validate(&input, userID); !ok {
		return utils.BadRequest(c, msg)
	}

	resource := models.Resource{
		OwnerID:     userID,
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	}
	if err := rc.DB.Create(&resource).Error; err != nil {
		return utils.InternalServerError(c, "Could not create resource")
	}

	return c.Status(fiber.StatusCreated).JSON(resource)
}

// findOwned looks up a resource scoped to the caller. Foreign and missing
// ids are indistinguishable to the caller.
func (rc *ResourceController) findOwned(c *fiber.Ctx, userID uint) (*models.Resource, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	var resource models.Resource
	if err := rc.DB.Where("id = ? AND owner_id = ?", id, userID).First(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetResourceByID returns one resource with its resolved category name.
func (rc *ResourceController) GetResourceByID(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resource, err := rc.findOwned(c, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Resource not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	detail := models.ResourceWithProgress{Resource: *resource}
	if resource.CategoryID != nil {
		var category models.Category
		if err := rc.DB.Where("id = ? AND owner_id = ?", *resource.CategoryID, userID).
			First(&category).Error; err == nil {
			detail.CategoryName = category.Name
		}
	}

	var pl models.ProgressLog
	if err := rc.DB.Where("user_id = ? AND resource_id = ?", userID, resource.ID).
		First(&pl).Error; err == nil {
		detail.IsCompleted = pl.CompletionStatus == models.StatusCompleted
		detail.TimeSpent = pl.TimeSpent
		detail.CompletionDate = pl.CompletionDate
	}

	return c.JSON(detail)
}

// UpdateResource overwrites the mutable fields of an owned resource.
func (rc *ResourceController) UpdateResource(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input resourceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if msg, ok := rc.validate(&input, userID); !ok {
		return utils.BadRequest(c, msg)
	}

	resource, err := rc.findOwned(c, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Resource not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	resource.Title = input.Title
	resource.Type = input.Type
	resource.Description = input.Description
	resource.CategoryID = input.CategoryID
	if err := rc.DB.Save(resource).Error; err != nil {
		return utils.InternalServerError(c, "Could not update resource")
	}

	return c.JSON(resource)
}

// DeleteResource removes an owned resource.
func (rc *ResourceController) DeleteResource(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resource, err := rc.findOwned(c, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Resource not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := rc.DB.Delete(resource).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete resource")
	}

	return c.JSON(fiber.Map{"message": "Resource deleted successfully"})
}

// MarkResourceComplete upserts the caller's progress log for a resource.
// The (user_id, resource_id) unique index backs the find-or-create so two
// concurrent calls converge on a single row.
func (rc *ResourceController) MarkResourceComplete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	type markCompleteInput struct {
		TimeSpent int `json:"time_spent"`
	}
	var input markCompleteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.TimeSpent < 0 {
		return utils.BadRequest(c, "time_spent must be >= 0")
	}

	resource, err := rc.findOwned(c, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Resource not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	now := time.Now()
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		var pl models.ProgressLog
		findErr := tx.Where("user_id = ? AND resource_id = ?", userID, resource.ID).First(&pl).Error
		if findErr == nil {
			pl.CompletionStatus = models.StatusCompleted
			pl.TimeSpent = input.TimeSpent
			pl.CompletionDate = &now
			return tx.Save(&pl).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		pl = models.ProgressLog{
			UserID:           userID,
			ResourceID:       resource.ID,
			CompletionStatus: models.StatusCompleted,
			TimeSpent:        input.TimeSpent,
			CompletionDate:   &now,
		}
		return tx.Create(&pl).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not record progress")
	}

	return c.JSON(fiber.Map{"message": "Marked as completed"})
}
