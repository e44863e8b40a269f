package Controllers

import (
	"strconv"
	"time"

	"RoutineMaster/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LogController handles operational log endpoints
type LogController struct {
	DB *gorm.DB
}

// NewLogController creates a new LogController
func NewLogController(db *gorm.DB) *LogController {
	return &LogController{DB: db}
}

type logInput struct {
	LogType     string  `json:"log_type" validate:"required,oneof=PRODUCTION SCRAP DOWNTIME OCCURRENCE"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// CreateLog appends an operational log entry authored by the acting
// user, stamped with the server clock.
func (l *LogController) CreateLog(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	var input logInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry := Models.OperationalLog{
		UserID:      user.ID,
		LogType:     input.LogType,
		Value:       input.Value,
		Description: input.Description,
		Timestamp:   time.Now(),
	}

	if err := l.DB.Create(&entry).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create log"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(entry)
}

// GetLogs lists operational logs in chronological order.
func (l *LogController) GetLogs(ctx *fiber.Ctx) error {
	var logs []Models.OperationalLog
	if err := l.DB.Order("timestamp ASC").Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve logs"})
	}
	return ctx.JSON(logs)
}

// DeleteLog removes a log entry by ID. Authors may delete their own
// entries; admins may delete any.
func (l *LogController) DeleteLog(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid log ID"})
	}

	var entry Models.OperationalLog
	if err := l.DB.First(&entry, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Log not found"})
	}

	if entry.UserID != user.ID && !user.IsAdmin() {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only delete your own logs"})
	}

	l.DB.Delete(&entry)

	return ctx.JSON(fiber.Map{"message": "Log deleted successfully"})
}
