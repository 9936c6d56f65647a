package docs

import "github.com/swaggo/swag"

// @title           Taskboard API
// @version         1.0
// @description     Personal Kanban board API: one board per user, fixed TODO / IN_PROGRESS / DONE columns.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description Registration and login

// @tag.name Board
// @tag.description Board read and bulk operations

// @tag.name Tasks
// @tag.description Task lifecycle operations

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}
