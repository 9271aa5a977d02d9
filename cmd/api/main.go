// Package main Progression API
//
// Progression is the player advancement service for our platform. It owns each
// player's level, experience, win/loss record, skill points, and unlocked
// skills, and exposes them two ways:
//
//  1. A REST API used by the client for login, profile reads, and spending
//     skill points on new skills.
//
//  2. A persistent WebSocket channel on which the game server reports match
//     results and receives level-up events back.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
package main

import (
	"context"

	_ "github.com/gridfall/progression/docs"
	"github.com/gridfall/progression/internal/app"
)

// @title Progression API Service
// @version 1.0
// @description Progression is the player advancement service that tracks levels, experience, win/loss records, and skill unlocks.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
