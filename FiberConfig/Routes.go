package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"RoutineMaster/Controllers"
	"RoutineMaster/Models"
	"RoutineMaster/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	taskController := Controllers.NewTaskController(db)
	completionController := Controllers.NewCompletionController(db)
	logController := Controllers.NewLogController(db)
	dashboardController := Controllers.NewDashboardController(db)
	insightsController := Controllers.NewInsightsController(db)

	// Auth
	app.Post("/api/Login", Controllers.Login)
	app.Post("/api/Logout", Controllers.Logout)
	app.Get("/api/validate-token", Controllers.ValidateToken)
	app.Get("/api/User", middleware.Verify(""), Controllers.CurrentUser)

	// User administration
	app.Post("/api/RegisterUser", middleware.Verify(Models.RoleAdmin), Controllers.RegisterUser)
	app.Patch("/api/UpdateUser", middleware.Verify(Models.RoleAdmin), Controllers.UpdateUser)
	app.Get("/api/FetchUsers", middleware.Verify(Models.RoleAdmin), Controllers.FetchUsers)
	app.Delete("/api/DeleteUser", middleware.Verify(Models.RoleAdmin), Controllers.DeleteUser)

	// API group
	api := app.Group("/api", middleware.Verify(""))

	// Task routes
	tasks := api.Group("/tasks")
	tasks.Get("/", taskController.GetTasks)
	tasks.Post("/", middleware.Verify(Models.RoleAdmin), taskController.CreateTask)
	tasks.Get("/:id", taskController.GetTask)
	tasks.Put("/:id", middleware.Verify(Models.RoleAdmin), taskController.UpdateTask)
	tasks.Delete("/:id", middleware.Verify(Models.RoleAdmin), taskController.DeleteTask)
	tasks.Post("/:id/complete", completionController.CompleteTask)

	// Completion history
	api.Get("/completions", completionController.GetCompletions)

	// Operational logs
	logs := api.Group("/logs")
	logs.Get("/", logController.GetLogs)
	logs.Post("/", logController.CreateLog)
	logs.Delete("/:id", logController.DeleteLog)

	// Routine work list and dashboard
	api.Get("/routine", dashboardController.GetRoutine)
	api.Get("/dashboard", dashboardController.GetDashboard)
	api.Get("/dashboard/export", dashboardController.ExportScoreboard)

	// AI action plan
	api.Post("/insights", middleware.Verify(Models.RoleAdmin), insightsController.GenerateActionPlan)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
