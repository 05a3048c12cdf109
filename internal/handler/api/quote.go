package api

import (
	"net/http"

	reqdto "github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/dto/request"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/httperr"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/middleware"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	priceQueries    queries.PriceQuoteQueries
	capacityQueries queries.CapacityQuoteQueries
}

func NewQuoteHandler(priceQueries queries.PriceQuoteQueries, capacityQueries queries.CapacityQuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		priceQueries:    priceQueries,
		capacityQueries: capacityQueries,
	}
}

// QuotePrice resolves an hourly price quote for a booking span. The engine
// output, decision log included, is returned verbatim.
func (h *QuoteHandler) QuotePrice(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.priceQueries.Quote(c.Request.Context(), req.ToParams())
	middleware.CountQuoteResolution("price", err)
	if err != nil {
		h.writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// QuoteCapacity resolves an hourly capacity quote for a booking span.
func (h *QuoteHandler) QuoteCapacity(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.capacityQueries.Quote(c.Request.Context(), req.ToParams())
	middleware.CountQuoteResolution("capacity", err)
	if err != nil {
		h.writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) writeQuoteError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidBookingSpan):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Booking end must be after booking start",
		})
	case errs.Is(err, queries.ErrSpanTooLong):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Booking span exceeds the maximum quotable length",
		})
	case errs.Is(err, errs.ErrUnknownTimezone):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown timezone",
		})
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
