package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/irsyadst/nutri-balance-backend/config"
	"github.com/irsyadst/nutri-balance-backend/models"
)

// Imports the food catalog from data/food_data.json.
//
//	go run ./cmd/seeder -i   import (replaces existing rows)
//	go run ./cmd/seeder -d   destroy
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: seeder -i (import) | -d (destroy)")
	}

	config.InitDB()

	switch os.Args[1] {
	case "-i":
		importData()
	case "-d":
		destroyData()
	default:
		log.Fatal("usage: seeder -i (import) | -d (destroy)")
	}
}

func importData() {
	raw, err := os.ReadFile("data/food_data.json")
	if err != nil {
		log.Fatalf("read food data: %v", err)
	}
	var foods []models.FoodItem
	if err := json.Unmarshal(raw, &foods); err != nil {
		log.Fatalf("parse food data: %v", err)
	}

	if err := config.DB.Unscoped().Where("1 = 1").Delete(&models.FoodItem{}).Error; err != nil {
		log.Fatalf("clear catalog: %v", err)
	}
	if err := config.DB.Create(&foods).Error; err != nil {
		log.Fatalf("insert catalog: %v", err)
	}
	log.Printf("imported %d foods", len(foods))
}

func destroyData() {
	if err := config.DB.Unscoped().Where("1 = 1").Delete(&models.FoodItem{}).Error; err != nil {
		log.Fatalf("clear catalog: %v", err)
	}
	log.Println("catalog destroyed")
}
