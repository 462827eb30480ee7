package main

import (
	_ "konfirmasi_pembayaran/docs"
	"konfirmasi_pembayaran/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Konfirmasi Pembayaran API
// @version         1.0
// @description     Payment confirmation flow (invoice lookup, transfer validation, proof upload) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
