package controllers_test

import (
	"testing"

	"learntrack/backend/controllers"
	"learntrack/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	token, userID := signupUser(t, "summary@example.com")

	goCategory := createCategory(t, token, "Go")
	createCategory(t, token, "Empty Shelf")

	completed := createResource(t, token, "Tour of Go", "article", &goCategory)
	started := createResource(t, token, "Go Talk", "video", &goCategory)
	loose := createResource(t, token, "Loose Quiz", "quiz", nil)

	markComplete(t, token, completed, 20)
	markComplete(t, token, loose, 15)

	// a merely started log must not contribute minutes
	db.Create(&models.ProgressLog{
		UserID:           userID,
		ResourceID:       started,
		CompletionStatus: models.StatusInProgress,
		TimeSpent:        10,
	})

	resp, err := app.Test(jsonRequest("GET", "/api/resources/summary/data", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary controllers.SummaryData
	decodeBody(resp, &summary)

	goStats := summary.CategoryStats["Go"]
	assert.Equal(t, 2, goStats.TotalResources)
	assert.Equal(t, 1, goStats.CompletedResources)
	assert.Equal(t, "50.00", goStats.CompletionPercent)
	assert.Equal(t, 20, goStats.TimeSpent)

	emptyStats, ok := summary.CategoryStats["Empty Shelf"]
	assert.True(t, ok, "zero-resource categories must be reported")
	assert.Equal(t, 0, emptyStats.TotalResources)
	assert.Equal(t, "0.00", emptyStats.CompletionPercent)

	looseStats := summary.CategoryStats["Uncategorized"]
	assert.Equal(t, 1, looseStats.TotalResources)
	assert.Equal(t, 1, looseStats.CompletedResources)
	assert.Equal(t, "100.00", looseStats.CompletionPercent)
	assert.Equal(t, 15, looseStats.TimeSpent)

	assert.Equal(t, 3, summary.TotalResources)
	assert.Equal(t, 35, summary.TotalTimeSpent)
}

func TestSummaryEmptyAccount(t *testing.T) {
	token, _ := signupUser(t, "summary-empty@example.com")

	resp, err := app.Test(jsonRequest("GET", "/api/resources/summary/data", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary controllers.SummaryData
	decodeBody(resp, &summary)
	assert.Equal(t, 0, summary.TotalResources)
	assert.Equal(t, 0, summary.TotalTimeSpent)
	assert.Empty(t, summary.CategoryStats)
}
