package api

import (
	"errors"
	"net/http"
	"time"

	resdto "library-circulation/internal/handler/dto/response"
	"library-circulation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	reads *queries.AuditQueries
}

func NewAuditHandler(reads *queries.AuditQueries) *AuditHandler {
	return &AuditHandler{reads: reads}
}

// @Summary Search the audit trail
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param actor_email query string false "Actor email"
// @Param entity query string false "Entity type"
// @Param from query string false "Recorded at or after (RFC3339)"
// @Param to query string false "Recorded before (RFC3339)"
// @Success 200 {array} resdto.AuditResponse
// @Failure 400 {object} map[string]string
// @Router /audit [get]
func (h *AuditHandler) SearchAuditTrail(c *gin.Context) {
	filter, err := parseAuditFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	views, err := h.reads.SearchAuditTrail(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromAuditViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseAuditFilter(c *gin.Context) (queries.AuditSearchFilter, error) {
	var filter queries.AuditSearchFilter

	filter.ActorEmail = c.Query("actor_email")
	filter.Entity = c.Query("entity")
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid from timestamp")
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid to timestamp")
		}
		filter.To = &t
	}
	filter.Limit, filter.Offset = parsePaging(c)

	return filter, nil
}
