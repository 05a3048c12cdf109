//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/request"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/response"
	"github.com/ranjayd-harvard/venue-management-system-sub003/tests/common/dbtest"
	"github.com/ranjayd-harvard/venue-management-system-sub003/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginOperator(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	httptest.DecodeResponse(t, w, &body)
	require.NotEmpty(t, body.AccessToken, "access token missing from login response")

	return body.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestOperator(t, db, email, role)
	return LoginOperator(t, router, email, "password123")
}

func LogoutOperator(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
