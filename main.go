package main

import (
	"log"

	"RoutineMaster/CronJobs"
	"RoutineMaster/FiberConfig"
	"RoutineMaster/Models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	Models.Connect()

	complianceChecker := CronJobs.NewComplianceChecker(false)
	if err := complianceChecker.Start(); err != nil {
		log.Printf("Failed to start compliance checker: %v", err)
	}
	defer complianceChecker.Stop()

	FiberConfig.FiberConfig()
}
