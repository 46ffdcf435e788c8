package main

import (
	_ "balanca_xpto/docs"
	"balanca_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Weighbridge Service API
// @version         1.0
// @description     Weighbridge ticketing and product price timeline service backed by PostgreSQL.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
