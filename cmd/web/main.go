// @title           blogmarket API
// @version         1.0
// @description     API маркетплейса блогеров и рекламодателей.
// @host            localhost:8000
// @BasePath        /api

package main

import "blogmarket_backend/internal/app"

func main() {
	app.Run()
}
