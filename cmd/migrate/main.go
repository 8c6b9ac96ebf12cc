package main

import (
	"log"

	"condoadmin/internal/repositories/sqlconnect"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := sqlconnect.ConnectDb(); err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	defer sqlconnect.DB.Close()

	if err := sqlconnect.RunMigrations(); err != nil {
		log.Fatal("Migrations failed: ", err)
	}

	log.Println("Migrations applied")
}
