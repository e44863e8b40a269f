package Controllers

import (
	"log"
	"time"

	"RoutineMaster/Compliance"
	"RoutineMaster/Insights"
	"RoutineMaster/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InsightsController handles the AI action-plan endpoint
type InsightsController struct {
	DB *gorm.DB
}

// NewInsightsController creates a new InsightsController
func NewInsightsController(db *gorm.DB) *InsightsController {
	return &InsightsController{DB: db}
}

// GenerateActionPlan folds logs and completions into the insight
// counters and asks the text-generation collaborator for a plan.
// Admin only; the call is slow and billed.
func (i *InsightsController) GenerateActionPlan(ctx *fiber.Ctx) error {
	var input struct {
		Language string `json:"language"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var logs []Models.OperationalLog
	if err := i.DB.Order("timestamp ASC").Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load logs"})
	}
	var completions []Models.TaskCompletion
	if err := i.DB.Find(&completions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load completions"})
	}

	data := Compliance.InsightCounters(logs, completions)

	content, err := Insights.GenerateActionPlan(data, input.Language)
	if err != nil {
		log.Printf("Error generating action plan: %v", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Error connecting to AI. Please check API Key."})
	}

	return ctx.JSON(fiber.Map{
		"title":        "Action Plan",
		"content":      content,
		"generated_at": time.Now(),
		"counters":     data,
	})
}
