package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/database"
	"talentops/internal/database/client"
	"talentops/internal/database/fluentd/repository"
	"talentops/internal/database/memory"
	"talentops/internal/database/mongodb/model"
	cErr "talentops/internal/pkg/error"
	"talentops/internal/pkg/response"
	"talentops/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSecret = "unit-test-secret"

type authSuite struct {
	repositories *database.Repositories
	engine       *gin.Engine
	auth         *Auth
}

func newAuthSuite(t *testing.T) *authSuite {
	return newAuthSuiteWithSecret(t, testSecret)
}

func newAuthSuiteWithSecret(t *testing.T, secret string) *authSuite {
	gin.SetMode(gin.TestMode)
	conf := &config.Configuration{}
	conf.App.Name = "talentops"
	conf.App.SecretKey = secret

	logger := zap.NewNop()
	trace := &telemetry.Trace{}
	logRepository := repository.NewLogRepository(conf, &client.NoopClient{})
	repositories := memory.NewRepositories()
	auth := NewAuth(logger, trace, conf, repositories)

	engine := gin.New()
	engine.Use(
		NewRecovery(logger, trace, conf, logRepository).ErrorHandler(),
		NewResponse(logger, trace, conf, logRepository).FormatHandler(),
	)
	group := engine.Group("/performance", auth.Handler())
	group.GET("/me", func(c *gin.Context) {
		id, _ := c.Get(core.ContextEmployeeIDKey)
		role, _ := c.Get(core.ContextRoleKey)
		response.Success(c, gin.H{"employeeId": id.(primitive.ObjectID).Hex(), "role": role})
	})
	group.POST("/admin", RequireRole(core.RoleAdmin), func(c *gin.Context) {
		response.Create(c, gin.H{"ok": true})
	})
	return &authSuite{repositories: repositories, engine: engine, auth: auth}
}

func (s *authSuite) employee(t *testing.T, role core.EmployeeRole, status core.EmployeeStatus) primitive.ObjectID {
	created, err := s.repositories.Employees.Create(context.Background(), &model.Employee{DisplayName: "someone", Role: role, Status: status})
	require.NoError(t, err)
	return created.ID
}

func signToken(t *testing.T, method jwt.SigningMethod, secret any, claims core.Claims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func claimsFor(id primitive.ObjectID, role core.EmployeeRole, expiresIn time.Duration) core.Claims {
	return core.Claims{
		EmployeeID: id.Hex(),
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
}

func (s *authSuite) do(method, path, authorization string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	s.engine.ServeHTTP(recorder, req)
	var body response.Response
	_ = json.Unmarshal(recorder.Body.Bytes(), &body)
	return recorder, body
}

func TestAuth_Handler(t *testing.T) {
	s := newAuthSuite(t)
	active := s.employee(t, core.RoleRecruiter, core.EmployeeActive)
	inactive := s.employee(t, core.RoleRecruiter, core.EmployeeInactive)

	testCases := []struct {
		name          string
		authorization string
		wantStatus    int
		wantCode      int
	}{
		{
			name:          "有效 token",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(active, core.RoleRecruiter, time.Hour)),
			wantStatus:    http.StatusOK,
		},
		{
			name:       "缺少 header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   cErr.UNAUTHORIZED,
		},
		{
			name:          "非 Bearer 格式",
			authorization: "Token abc",
			wantStatus:    http.StatusUnauthorized,
			wantCode:      cErr.INVALID_TOKEN,
		},
		{
			name:          "簽章錯誤",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), claimsFor(active, core.RoleRecruiter, time.Hour)),
			wantStatus:    http.StatusUnauthorized,
			wantCode:      cErr.INVALID_TOKEN,
		},
		{
			name:          "已過期",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(active, core.RoleRecruiter, -time.Minute)),
			wantStatus:    http.StatusUnauthorized,
			wantCode:      cErr.INVALID_TOKEN,
		},
		{
			name:          "非 HS256",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), claimsFor(active, core.RoleRecruiter, time.Hour)),
			wantStatus:    http.StatusUnauthorized,
			wantCode:      cErr.INVALID_TOKEN,
		},
		{
			name:          "員工已停用",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(inactive, core.RoleRecruiter, time.Hour)),
			wantStatus:    http.StatusUnauthorized,
			wantCode:      cErr.UNAUTHORIZED,
		},
		{
			name:          "員工不存在",
			authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(primitive.NewObjectID(), core.RoleRecruiter, time.Hour)),
			wantStatus:    http.StatusUnauthorized,
			wantCode:      cErr.UNAUTHORIZED,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder, body := s.do(http.MethodGet, "/performance/me", tc.authorization)
			assert.Equal(t, tc.wantStatus, recorder.Code)
			assert.Equal(t, tc.wantCode, body.Code)
			if tc.wantStatus == http.StatusOK {
				data, ok := body.Data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, active.Hex(), data["employeeId"])
				assert.Equal(t, string(core.RoleRecruiter), data["role"])
			} else {
				assert.NotEmpty(t, body.RequestID)
			}
		})
	}
}

func TestAuth_RoleFromDatabase(t *testing.T) {
	s := newAuthSuite(t)
	recruiter := s.employee(t, core.RoleRecruiter, core.EmployeeActive)
	admin := s.employee(t, core.RoleAdmin, core.EmployeeActive)

	// token 宣稱 admin 但資料庫為 recruiter
	forged := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(recruiter, core.RoleAdmin, time.Hour))
	recorder, body := s.do(http.MethodPost, "/performance/admin", "Bearer "+forged)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, cErr.FORBIDDEN, body.Code)

	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(admin, core.RoleAdmin, time.Hour))
	recorder, _ = s.do(http.MethodPost, "/performance/admin", "Bearer "+valid)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestAuth_ParseToken(t *testing.T) {
	s := newAuthSuite(t)
	id := primitive.NewObjectID()
	claims, err := s.auth.ParseToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(id, core.RoleTeamLeader, time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), claims.EmployeeID)
	assert.Equal(t, core.RoleTeamLeader, claims.Role)

	_, err = s.auth.ParseToken("not.a.jwt")
	assert.Error(t, err)
}

func TestAuth_EmptySecretRejectsEveryToken(t *testing.T) {
	s := newAuthSuiteWithSecret(t, "")
	admin := s.employee(t, core.RoleAdmin, core.EmployeeActive)

	// 以空金鑰簽出的 admin token 也必須被拒
	forged := signToken(t, jwt.SigningMethodHS256, []byte(""), claimsFor(admin, core.RoleAdmin, time.Hour))
	recorder, body := s.do(http.MethodPost, "/performance/admin", "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, cErr.INVALID_TOKEN, body.Code)
	assert.Nil(t, body.Data)

	_, err := s.auth.ParseToken(forged)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
