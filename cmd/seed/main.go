package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"

	"attendly.com/attendly/config"
	"attendly.com/attendly/core"
	"attendly.com/attendly/storage"
	"attendly.com/attendly/utils"
)

// Creates the attendance tables and loads the sample employee directory.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.Open(cfg.DSN, logger.Info)
	if err != nil {
		log.Fatal(err)
	}

	if err := storage.Migrate(db); err != nil {
		log.Fatal(err)
	}

	employees := []core.Employee{
		{ID: "EMP001", Name: "John Doe", Email: utils.Ptr("john.doe@attendly.com")},
		{ID: "EMP002", Name: "Jane Smith", Email: utils.Ptr("jane.smith@attendly.com")},
		{ID: "EMP003", Name: "Mike Johnson"},
		{ID: "EMP004", Name: "Sarah Williams"},
		{ID: "EMP005", Name: "David Brown"},
	}

	store := storage.NewStore(db)
	if err := store.UpsertEmployees(context.Background(), employees); err != nil {
		log.Fatalf("failed to seed employees: %v", err)
	}

	fmt.Printf("seeded %d employees\n", len(employees))
}
