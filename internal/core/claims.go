package core

import "github.com/golang-jwt/jwt/v4"

// Claims 績效 API 的 bearer token 內容
type Claims struct {
	EmployeeID string       `json:"employee_id"`
	Role       EmployeeRole `json:"role"`
	jwt.RegisteredClaims
}

const (
	ContextEmployeeIDKey = "employeeID"
	ContextRoleKey       = "employeeRole"
)
