package controllers

import (
	"fmt"

	"learntrack/backend/config"
	"learntrack/backend/middleware"
	"learntrack/backend/models"
	"learntrack/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SummaryController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSummaryController(db *gorm.DB, cfg *config.Config) *SummaryController {
	return &SummaryController{DB: db, Cfg: cfg}
}

// CategoryStats is the completion tuple computed per category group.
type CategoryStats struct {
	TotalResources     int    `json:"totalResources"`
	CompletedResources int    `json:"completedResources"`
	CompletionPercent  string `json:"completionPercent"`
	TimeSpent          int    `json:"timeSpent"`
}

// SummaryData is the response body of the summary endpoint.
type SummaryData struct {
	TotalResources int                      `json:"totalResources"`
	TotalTimeSpent int                      `json:"totalTimeSpent"`
	CategoryStats  map[string]CategoryStats `json:"categoryStats"`
}

// GetSummary computes per-category and overall completion statistics for
// the caller.
func (sc *SummaryController) GetSummary(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var categories []models.Category
	if err := sc.DB.Where("owner_id = ?", userID).Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var resources []models.Resource
	if err := sc.DB.Where("owner_id = ?", userID).Find(&resources).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var logs []models.ProgressLog
	if err := sc.DB.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(buildSummary(categories, resources, logs))
}

// buildSummary groups resources by category, counts completions and sums
// minutes. Only completed logs contribute to timeSpent; a started-but-
// unfinished log adds nothing. Categories with no resources still appear
// with a zeroed tuple; the Uncategorized bucket appears only when some
// resource has no category.
func buildSummary(categories []models.Category, resources []models.Resource, logs []models.ProgressLog) SummaryData {
	summary := SummaryData{
		CategoryStats: make(map[string]CategoryStats, len(categories)+1),
	}

	byCategory := make(map[uint][]models.Resource)
	var uncategorized []models.Resource
	for _, resource := range resources {
		if resource.CategoryID == nil {
			uncategorized = append(uncategorized, resource)
			continue
		}
		byCategory[*resource.CategoryID] = append(byCategory[*resource.CategoryID], resource)
	}

	logByResource := make(map[uint]models.ProgressLog, len(logs))
	for _, pl := range logs {
		logByResource[pl.ResourceID] = pl
	}

	for _, category := range categories {
		stats := groupStats(byCategory[category.ID], logByResource)
		summary.TotalResources += stats.TotalResources
		summary.TotalTimeSpent += stats.TimeSpent
		summary.CategoryStats[category.Name] = stats
	}

	if len(uncategorized) > 0 {
		stats := groupStats(uncategorized, logByResource)
		summary.TotalResources += stats.TotalResources
		summary.TotalTimeSpent += stats.TimeSpent
		summary.CategoryStats["Uncategorized"] = stats
	}

	return summary
}

func groupStats(resources []models.Resource, logByResource map[uint]models.ProgressLog) CategoryStats {
	stats := CategoryStats{
		TotalResources:    len(resources),
		CompletionPercent: "0.00",
	}

	for _, resource := range resources {
		pl, ok := logByResource[resource.ID]
		if !ok || pl.CompletionStatus != models.StatusCompleted {
			continue
		}
		stats.CompletedResources++
		stats.TimeSpent += pl.TimeSpent
	}

	if stats.TotalResources > 0 {
		percent := float64(stats.CompletedResources) / float64(stats.TotalResources) * 100
		stats.CompletionPercent = fmt.Sprintf("%.2f", percent)
	}

	return stats
}
