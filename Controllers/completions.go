package Controllers

import (
	"strconv"
	"time"

	"RoutineMaster/Compliance"
	"RoutineMaster/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CompletionController handles the act of completing a task
type CompletionController struct {
	DB *gorm.DB
}

// NewCompletionController creates a new CompletionController
func NewCompletionController(db *gorm.DB) *CompletionController {
	return &CompletionController{DB: db}
}

type completionInput struct {
	MeasuredValue *float64 `json:"measured_value"`
	Notes         string   `json:"notes"`
}

// CompleteTask appends a COMPLETED record for the acting user, stamped
// with the server clock. Measurement tasks without a numeric value are
// rejected before anything is persisted.
func (cc *CompletionController) CompleteTask(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := cc.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	if !task.IsAssignedTo(user.ID) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Task is not assigned to you"})
	}

	var input completionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if task.Kind == Models.KindMeasurement && input.MeasuredValue == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A numeric measured value is required for measurement tasks",
		})
	}

	completion := Models.TaskCompletion{
		TaskID:        task.ID,
		UserID:        user.ID,
		CompletedAt:   time.Now(),
		Status:        Models.StatusCompleted,
		MeasuredValue: input.MeasuredValue,
		Notes:         input.Notes,
	}

	if err := cc.DB.Create(&completion).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record completion"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"completion":   completion,
		"range_status": Compliance.CompletionRange(task, &completion),
	})
}

// GetCompletions lists completion history: everything for admins, own
// records for operators.
func (cc *CompletionController) GetCompletions(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	var completions []Models.TaskCompletion
	query := cc.DB.Order("completed_at ASC")
	if !user.IsAdmin() {
		query = query.Where("user_id = ?", user.ID)
	}
	if err := query.Find(&completions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve completions"})
	}
	return ctx.JSON(completions)
}
