//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/operator"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/api"
	reqdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/request"
	resdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/response"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"
	"github.com/ranjayd-harvard/venue-management-system-sub003/tests/common/httptest"
	"github.com/ranjayd-harvard/venue-management-system-sub003/tests/common/testutil"
	commandsmock "github.com/ranjayd-harvard/venue-management-system-sub003/tests/mock/commands"
	queriesmock "github.com/ranjayd-harvard/venue-management-system-sub003/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockOperatorReadStore
	handler      *api.AuthHandler
	operatorID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOperatorReadStore(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.operatorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("operator_id", s.operatorID)
		c.Set("operator_role", operator.RoleViewer)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Email: "admin@example.com", Password: "password123"}

	s.Run("success: returns 200 OK with access token", func() {
		result := &commands.LoginResult{OperatorID: s.operatorID, AccessToken: "signed-token"}
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin@example.com", "password123").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.operatorID, response.OperatorID)
		s.Equal("signed-token", response.AccessToken)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing field: password", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", "short")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: credential failures collapse into one 401 message", func() {
		testCases := []struct {
			name          string
			commandsError error
		}{
			{name: "unknown operator", commandsError: commands.ErrOperatorNotFound},
			{name: "wrong password", commandsError: commands.ErrInvalidCredentials},
			{name: "authentication failed", commandsError: commands.ErrAuthenticationFailed},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), "admin@example.com", "password123").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
			})
		}
	})

	s.Run("error: 403 Forbidden for inactive operator", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin@example.com", "password123").
			Return(nil, commands.ErrOperatorInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin@example.com", "password123").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestLogout
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("success: returns 204 No Content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns 200 OK with the operator view", func() {
		view := &queries.OperatorView{
			ID:       s.operatorID,
			Email:    "admin@example.com",
			Role:     "admin",
			IsActive: true,
		}
		s.mockQueries.EXPECT().FindByID(gomock.Any(), s.operatorID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.OperatorView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.operatorID, response.ID)
		s.Equal("admin@example.com", response.Email)
	})

	s.Run("error: 404 when the operator row is gone", func() {
		s.mockQueries.EXPECT().FindByID(gomock.Any(), s.operatorID).
			Return(nil, errors.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Operator not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
