package main

import "autocare/internal/app"

// @title           AutoCare24 Back Office API
// @version         1.0
// @description     Leads, bookings, customers and store management for the AutoCare24 service network.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
