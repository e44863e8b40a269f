package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"RoutineMaster/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp builds a Fiber app over a fresh in-memory database with
// the acting user injected, bypassing the cookie auth.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB, Models.User) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Models.User{}, &Models.Task{}, &Models.TaskCompletion{}, &Models.OperationalLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	user := Models.User{Name: "Test Operator", Username: "operator", Role: Models.RoleOperator, Shift: "Morning", Department: "Production"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", user)
		return c.Next()
	})

	completionController := NewCompletionController(db)
	dashboardController := NewDashboardController(db)
	app.Post("/api/tasks/:id/complete", completionController.CompleteTask)
	app.Get("/api/routine", dashboardController.GetRoutine)
	app.Get("/api/dashboard", dashboardController.GetDashboard)

	return app, db, user
}

func createTestTask(t *testing.T, db *gorm.DB, kind string, userID uint) Models.Task {
	t.Helper()
	task := Models.Task{Title: "Check pressure", Frequency: Models.FrequencyDaily, Kind: kind}
	if err := task.SetAssignedIDs([]uint{userID}); err != nil {
		t.Fatalf("failed to set assignment: %v", err)
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestCompleteMeasurementTaskRequiresValue(t *testing.T) {
	app, db, user := setupTestApp(t)
	task := createTestTask(t, db, Models.KindMeasurement, user.ID)

	resp := postJSON(t, app, fmt.Sprintf("/api/tasks/%d/complete", task.ID), map[string]interface{}{
		"notes": "forgot the reading",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	// Nothing persisted on rejection.
	var count int64
	db.Model(&Models.TaskCompletion{}).Count(&count)
	if count != 0 {
		t.Errorf("completion count = %d, want 0 after rejection", count)
	}
}

func TestCompleteMeasurementTaskReportsRange(t *testing.T) {
	app, db, user := setupTestApp(t)
	task := createTestTask(t, db, Models.KindMeasurement, user.ID)
	minVal, maxVal := 10.0, 15.0
	db.Model(&task).Updates(map[string]interface{}{"min_val": minVal, "max_val": maxVal})

	resp := postJSON(t, app, fmt.Sprintf("/api/tasks/%d/complete", task.ID), map[string]interface{}{
		"measured_value": 20.0,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var result struct {
		RangeStatus string `json:"range_status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.RangeStatus != "HIGH" {
		t.Errorf("range status = %s, want HIGH", result.RangeStatus)
	}
}

func TestCompleteChecklistTaskAndRoutine(t *testing.T) {
	app, db, user := setupTestApp(t)
	task := createTestTask(t, db, Models.KindChecklist, user.ID)

	resp := postJSON(t, app, fmt.Sprintf("/api/tasks/%d/complete", task.ID), map[string]interface{}{
		"notes": "all greased",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/routine", nil)
	routineResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("routine request failed: %v", err)
	}
	var routine struct {
		Completed int `json:"completed"`
		Total     int `json:"total"`
		Entries   []struct {
			Satisfied bool `json:"satisfied"`
			Overdue   bool `json:"overdue"`
		} `json:"entries"`
	}
	if err := json.NewDecoder(routineResp.Body).Decode(&routine); err != nil {
		t.Fatalf("failed to decode routine: %v", err)
	}
	if routine.Completed != 1 || routine.Total != 1 {
		t.Errorf("routine completed/total = %d/%d, want 1/1", routine.Completed, routine.Total)
	}
	if len(routine.Entries) != 1 || !routine.Entries[0].Satisfied || routine.Entries[0].Overdue {
		t.Errorf("routine entry = %+v, want satisfied and not overdue", routine.Entries)
	}
}

func TestCompleteTaskNotAssigned(t *testing.T) {
	app, db, _ := setupTestApp(t)
	task := createTestTask(t, db, Models.KindChecklist, 999)

	resp := postJSON(t, app, fmt.Sprintf("/api/tasks/%d/complete", task.ID), map[string]interface{}{})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestDashboardPendingCount(t *testing.T) {
	app, db, user := setupTestApp(t)
	createTestTask(t, db, Models.KindChecklist, user.ID)
	createTestTask(t, db, Models.KindChecklist, user.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("dashboard request failed: %v", err)
	}
	var dashboard struct {
		PendingCount int `json:"pending_count"`
		OverallRate  int `json:"overall_rate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dashboard); err != nil {
		t.Fatalf("failed to decode dashboard: %v", err)
	}
	if dashboard.PendingCount != 2 {
		t.Errorf("pending count = %d, want 2", dashboard.PendingCount)
	}
	if dashboard.OverallRate != 0 {
		t.Errorf("overall rate = %d, want 0 with nothing completed", dashboard.OverallRate)
	}
}
