package main

import (
	_ "dealcost/docs"
	"dealcost/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           DealCost API
// @version         1.0
// @description     Dealership record-keeping backend (inventory, reconditioning reports, ledgers, tasks, profitability dashboard) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
