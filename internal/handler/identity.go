package handler

import (
	"talentops/internal/core"
	cErr "talentops/internal/pkg/error"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentEmployee 讀取 Auth middleware 寫入的身分
func currentEmployee(c *gin.Context) (primitive.ObjectID, core.EmployeeRole, error) {
	id, ok := c.Get(core.ContextEmployeeIDKey)
	if !ok {
		return primitive.NilObjectID, "", cErr.Unauthorized("missing employee identity")
	}
	employeeID, ok := id.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, "", cErr.InvalidToken("malformed employee identity")
	}
	role, _ := c.Get(core.ContextRoleKey)
	employeeRole, _ := role.(core.EmployeeRole)
	return employeeID, employeeRole, nil
}
