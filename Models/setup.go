package Models

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	// 1. Users first, nothing depends on them structurally
	DB.AutoMigrate(&User{})

	// 2. Tasks carry their assignment list inline, no join table
	DB.AutoMigrate(&Task{})

	// 3. Append-only records referencing users/tasks by id
	DB.AutoMigrate(
		&TaskCompletion{},
		&OperationalLog{},
	)

	if err := SeedDefaults(DB); err != nil {
		log.Printf("Error seeding default data: %v", err)
	}
}

// SeedDefaults creates the default accounts and example tasks on an
// empty database so a fresh install is immediately usable. Existing
// data is never touched.
func SeedDefaults(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "123456"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []User{
		{Name: "Carlos Gestor", Username: "admin", Email: "admin@empresa.com", Password: hash, Role: RoleAdmin, Title: "Gerente Industrial", Shift: "Geral", Department: "Gestão"},
		{Name: "João Silva", Username: "tecnico", Email: "tecnico@empresa.com", Password: hash, Role: RoleOperator, Title: "Técnico de Processo", Shift: "Manhã", Department: "Produção"},
		{Name: "Pedro Santos", Username: "mecanico", Email: "mecanico@empresa.com", Password: hash, Role: RoleOperator, Title: "Mecânico Sr", Shift: "Tarde", Department: "Manutenção"},
		{Name: "Ana Costa", Username: "eletricista", Email: "eletro@empresa.com", Password: hash, Role: RoleOperator, Title: "Eletricista", Shift: "Noite", Department: "Manutenção"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	minPressure, maxPressure := 10.0, 15.0
	minTemp, maxTemp := 180.0, 220.0

	tasks := []Task{
		{
			Title:       "Verificar Pressão Hidráulica",
			Description: "Conferir manômetros da linha 1. Deve estar entre 10 e 15 bar.",
			Frequency:   FrequencyDaily,
			Kind:        KindMeasurement,
			Unit:        "bar",
			MinVal:      &minPressure,
			MaxVal:      &maxPressure,
			DueTime:     "08:00",
		},
		{
			Title:       "Lubrificação de Eixos",
			Description: "Aplicar graxa nos pontos vermelhos",
			Frequency:   FrequencyWeekly,
			Kind:        KindChecklist,
			DueTime:     "10:00",
		},
		{
			Title:       "Temperatura do Forno",
			Description: "Registrar temperatura da zona 3",
			Frequency:   FrequencyHourly,
			Kind:        KindMeasurement,
			Unit:        "°C",
			MinVal:      &minTemp,
			MaxVal:      &maxTemp,
		},
	}
	tasks[0].SetAssignedIDs([]uint{users[1].ID, users[2].ID})
	tasks[1].SetAssignedIDs([]uint{users[2].ID, users[3].ID})
	tasks[2].SetAssignedIDs([]uint{users[1].ID})

	if err := db.Create(&tasks).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d users and %d tasks at %s", len(users), len(tasks), time.Now().Format("2006-01-02 15:04:05"))
	return nil
}
