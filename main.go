package main

import "estatecrm/internal/app"

// @title           EstateCRM API
// @version         1.0
// @description     Sales pipeline CRM for off-plan real estate projects.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
