package api

import (
	"net/http"

	reqdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/request"
	resdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/response"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/httperr"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RuleSheetHandler struct {
	sheetCommands commands.RuleSheetCommands
	sheetQueries  queries.RuleSheetQueries
}

func NewRuleSheetHandler(sheetCommands commands.RuleSheetCommands, sheetQueries queries.RuleSheetQueries) *RuleSheetHandler {
	return &RuleSheetHandler{
		sheetCommands: sheetCommands,
		sheetQueries:  sheetQueries,
	}
}

func (h *RuleSheetHandler) Create(c *gin.Context) {
	var req reqdto.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.sheetCommands.Create(c.Request.Context(), req.ToRecord())
	if err != nil {
		h.writeSheetError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedSheetResponse{ID: id})
}

func (h *RuleSheetHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sheet ID format",
		})
		return
	}

	var req reqdto.UpdateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.sheetCommands.Update(c.Request.Context(), req.ToRecord(id)); err != nil {
		h.writeSheetError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate retires a sheet without deleting it; historical quotes stay
// explainable from the stored definition.
func (h *RuleSheetHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sheet ID format",
		})
		return
	}

	if err := h.sheetCommands.Deactivate(c.Request.Context(), id); err != nil {
		h.writeSheetError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RuleSheetHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sheet ID format",
		})
		return
	}

	view, err := h.sheetQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeSheetError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *RuleSheetHandler) ListByEntity(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("entityId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid entity ID format",
		})
		return
	}

	items, err := h.sheetQueries.ListByEntity(c.Request.Context(), c.Query("level"), entityID)
	if err != nil {
		h.writeSheetError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *RuleSheetHandler) writeSheetError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrSheetNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Rule sheet not found",
		})
	case errs.Is(err, errs.ErrInvalidSheetLevel),
		errs.Is(err, errs.ErrInvalidSheetType),
		errs.Is(err, errs.ErrInvalidWindow),
		errs.Is(err, errs.ErrInvalidEffectivity),
		errs.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
