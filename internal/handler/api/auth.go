package api

import (
	"net/http"

	reqdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/request"
	resdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/response"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/httperr"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/middleware"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands    commands.AuthCommands
	operatorQueries queries.OperatorReadStore
}

func NewAuthHandler(authCommands commands.AuthCommands, operatorQueries queries.OperatorReadStore) *AuthHandler {
	return &AuthHandler{
		authCommands:    authCommands,
		operatorQueries: operatorQueries,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials),
			errs.Is(err, commands.ErrOperatorNotFound),
			errs.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errs.Is(err, commands.ErrOperatorInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		OperatorID:  result.OperatorID,
		AccessToken: result.AccessToken,
	})
}

// Logout is stateless; clients discard the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Operator not authenticated",
		})
		return
	}

	view, err := h.operatorQueries.FindByID(c.Request.Context(), operatorID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Operator not found",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}
