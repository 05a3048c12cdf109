package api

import (
	"net/http"
	"strings"

	reqdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/request"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/httperr"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DefaultsHandler struct {
	defaultsCommands commands.DefaultsCommands
}

func NewDefaultsHandler(defaultsCommands commands.DefaultsCommands) *DefaultsHandler {
	return &DefaultsHandler{defaultsCommands: defaultsCommands}
}

// Set stores an entity's fallback rate and capacity bundle, consulted only
// when no rule sheet matches an hour.
func (h *DefaultsHandler) Set(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("entityId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entity ID format",
		})
		return
	}

	var req reqdto.SetDefaultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	level := strings.ToUpper(c.Param("level"))
	if err := h.defaultsCommands.Set(c.Request.Context(), req.ToRecord(level, entityID)); err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidSheetLevel):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid hierarchy level",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid default values",
			})
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
