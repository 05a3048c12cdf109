package api

import (
	"net/http"
	"strconv"

	reqdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/request"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/httperr"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OverrideHandler struct {
	overrideCommands commands.OverrideCommands
	overrideQueries  queries.OverrideQueries
}

func NewOverrideHandler(overrideCommands commands.OverrideCommands, overrideQueries queries.OverrideQueries) *OverrideHandler {
	return &OverrideHandler{
		overrideCommands: overrideCommands,
		overrideQueries:  overrideQueries,
	}
}

func (h *OverrideHandler) UpsertHour(c *gin.Context) {
	subLocationID, ok := h.subLocationID(c)
	if !ok {
		return
	}

	var req reqdto.UpsertHourOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.overrideCommands.UpsertHour(c.Request.Context(), subLocationID, req.Date, *req.Hour, req.ToValues())
	if err != nil {
		h.writeOverrideError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpsertDay fans one value set out to all 24 hours of the date.
func (h *OverrideHandler) UpsertDay(c *gin.Context) {
	subLocationID, ok := h.subLocationID(c)
	if !ok {
		return
	}

	var req reqdto.UpsertDayOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.overrideCommands.UpsertDay(c.Request.Context(), subLocationID, req.Date, req.ToValues())
	if err != nil {
		h.writeOverrideError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OverrideHandler) Delete(c *gin.Context) {
	subLocationID, ok := h.subLocationID(c)
	if !ok {
		return
	}

	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hour",
		})
		return
	}

	err = h.overrideCommands.Delete(c.Request.Context(), subLocationID, c.Param("date"), hour)
	if err != nil {
		h.writeOverrideError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OverrideHandler) List(c *gin.Context) {
	subLocationID, ok := h.subLocationID(c)
	if !ok {
		return
	}

	days, err := h.overrideQueries.ListBySubLocation(c.Request.Context(), subLocationID)
	if err != nil {
		h.writeOverrideError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *OverrideHandler) subLocationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sublocation ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *OverrideHandler) writeOverrideError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrOverrideNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hourly override not found",
		})
	case errs.Is(err, errs.ErrInvalidOverride):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid hourly override",
		})
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
