package Controllers

import (
	"strconv"

	"RoutineMaster/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TaskController handles task definition endpoints
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

type taskInput struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Frequency     string   `json:"frequency" validate:"required,oneof=HOURLY DAILY WEEKLY MONTHLY YEARLY"`
	Kind          string   `json:"kind" validate:"required,oneof=CHECKLIST MEASUREMENT"`
	DueTime       string   `json:"due_time" validate:"omitempty,datetime=15:04"`
	Unit          string   `json:"unit"`
	MinVal        *float64 `json:"min_val"`
	MaxVal        *float64 `json:"max_val"`
	AssignedToIDs []uint   `json:"assigned_to_ids" validate:"required,min=1"`
}

// checkBounds rejects inverted acceptance ranges at data entry; the
// classifier itself never validates them.
func (in *taskInput) checkBounds() string {
	if in.Kind != Models.KindMeasurement {
		return ""
	}
	if in.MinVal != nil && in.MaxVal != nil && *in.MinVal > *in.MaxVal {
		return "min_val must not exceed max_val"
	}
	return ""
}

// GetTasks lists all task definitions
func (t *TaskController) GetTasks(ctx *fiber.Ctx) error {
	var tasks []Models.Task
	if err := t.DB.Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}
	return ctx.JSON(tasks)
}

// GetTask retrieves a single task by ID
func (t *TaskController) GetTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := t.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	return ctx.JSON(task)
}

// CreateTask creates a new task definition. Admin only.
func (t *TaskController) CreateTask(ctx *fiber.Ctx) error {
	var input taskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := input.checkBounds(); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	task := Models.Task{
		Title:       input.Title,
		Description: input.Description,
		Frequency:   input.Frequency,
		Kind:        input.Kind,
		DueTime:     input.DueTime,
		Unit:        input.Unit,
		MinVal:      input.MinVal,
		MaxVal:      input.MaxVal,
	}
	if err := task.SetAssignedIDs(input.AssignedToIDs); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment list"})
	}

	if err := t.DB.Create(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask replaces a task definition by ID. Admin only.
func (t *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := t.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var input taskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := input.checkBounds(); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Frequency = input.Frequency
	task.Kind = input.Kind
	task.DueTime = input.DueTime
	task.Unit = input.Unit
	task.MinVal = input.MinVal
	task.MaxVal = input.MaxVal
	if err := task.SetAssignedIDs(input.AssignedToIDs); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment list"})
	}

	if err := t.DB.Save(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	return ctx.JSON(task)
}

// DeleteTask soft deletes a task definition. Admin only. Completion
// history is kept; old records simply stop matching any task.
func (t *TaskController) DeleteTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := t.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	t.DB.Delete(&task)

	return ctx.JSON(fiber.Map{"message": "Task deleted successfully"})
}
