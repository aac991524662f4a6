package middleware

import (
	"errors"
	"fmt"
	"strings"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database"
	cErr "talentops/internal/pkg/error"
	"talentops/internal/pkg/response"
	"talentops/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Auth 驗證 HS256 bearer token，並確認員工仍為 active
type Auth struct {
	logger       *zap.Logger
	trace        *telemetry.Trace
	secret       []byte
	repositories *database.Repositories
}

func NewAuth(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	repositories *database.Repositories,
) *Auth {
	return &Auth{
		logger:       logger,
		trace:        trace,
		secret:       []byte(config.App.SecretKey),
		repositories: repositories,
	}
}

func (m *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))
		fail := func(status string, err *cErr.Error) {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{Status: status})
			response.AbortWithError(c, err)
			end(err)
		}

		raw := c.GetHeader("Authorization")
		if raw == "" {
			fail("missing_token", cErr.Unauthorized("missing bearer token"))
			return
		}
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			fail("malformed_header", cErr.InvalidToken("authorization header must be Bearer {token}"))
			return
		}

		claims, err := m.ParseToken(strings.TrimSpace(token))
		if err != nil {
			fail("invalid_token", cErr.InvalidToken(err.Error()))
			return
		}
		employeeID, err := primitive.ObjectIDFromHex(claims.EmployeeID)
		if err != nil {
			fail("invalid_employee_id", cErr.InvalidToken("invalid employee_id claim"))
			return
		}

		employee, err := m.repositories.Employees.GetByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				fail("employee_not_found", cErr.Unauthorized("employee not found"))
				return
			}
			m.logger.Error("auth employee lookup failed", zap.String("employeeId", claims.EmployeeID), zap.Error(err))
			fail("employee_lookup_failed", cErr.DatabaseError(err.Error()))
			return
		}
		if employee.Status != core.EmployeeActive {
			fail("inactive_employee", cErr.Unauthorized("employee is not active"))
			return
		}

		// 角色以資料庫為準，token 內的 role 僅供參考
		m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
			EmployeeID: employeeID.Hex(),
			Role:       string(employee.Role),
			Status:     "success",
		})
		c.Set(core.ContextEmployeeIDKey, employeeID)
		c.Set(core.ContextRoleKey, employee.Role)
		end(nil)
		c.Next()
	}
}

// ErrEmptySecret 未設定簽章金鑰時拒絕所有 token
var ErrEmptySecret = errors.New("token verification disabled: empty secret key")

// ParseToken 只接受 HS256
func (m *Auth) ParseToken(token string) (*core.Claims, error) {
	if len(m.secret) == 0 {
		return nil, ErrEmptySecret
	}
	claims := &core.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// RequireRole 需放在 Handler() 之後
func RequireRole(roles ...core.EmployeeRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, _ := c.Get(core.ContextRoleKey)
		role, _ := value.(core.EmployeeRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.AbortWithError(c, cErr.Forbidden(fmt.Sprintf("role %q is not allowed", role)))
	}
}
