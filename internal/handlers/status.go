package handlers

import (
	"net/http"
	"strconv"

	"poolbridge/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK    = "ok"
	errGetState = "failed to load state"
	errGetLogs  = "failed to load logs"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get demo state
// @Description  Snapshot of the demo backend: circuit states and body setpoints.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /state [get]
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.Snapshot(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("get_state_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errGetState})
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      List recent commands
// @Tags         system
// @Produce      json
// @Param        type   query  string  false  "CIRCUIT or TEMP"
// @Param        limit  query  int     false  "max entries"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	events, err := h.services.EventLog.List(c.Request.Context(), service.LogFilter{
		Type:  c.Query("type"),
		Limit: limit,
	})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("get_logs_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errGetLogs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}
