package handlers

import (
	"net/http"
	"strconv"

	"poolbridge"
	"poolbridge/internal/service"

	"github.com/gin-gonic/gin"
)

// Validation and failure messages. The wording of the client errors is part
// of the API surface; the UI displays them verbatim.
const (
	errStateNotBool   = "state must be a boolean"
	errCircuitNotInt  = "circuit id must be an integer"
	errTempOutOfRange = "temp must be a number between 40 and 104"
	errUnknownBody    = "body must be pool, spa, or a numeric index"

	errSetCircuit = "Failed to set circuit state"
	errSetTemp    = "Failed to set temperature"
)

// Request DTOs. State/Temp are pointers so a missing field is detectable;
// credentials are untyped on purpose — malformed values downgrade to demo
// mode instead of failing the bind (see service.ResolveAuth).
type circuitRequest struct {
	State      *bool `json:"state"`
	SystemName any   `json:"systemName"`
	Password   any   `json:"password"`
}

type tempRequest struct {
	Temp       *float64 `json:"temp"`
	SystemName any      `json:"systemName"`
	Password   any      `json:"password"`
}

// SetCircuitRequest is an exported model for Swagger docs of the setCircuit payload.
type SetCircuitRequest struct {
	// Desired circuit state
	State bool `json:"state" example:"true"`
	// ScreenLogic system name; omit for demo mode
	SystemName string `json:"systemName,omitempty" example:"Pentair: 00-00-00"`
	// Gateway password; omit for demo mode
	Password string `json:"password,omitempty"`
}

// SetTempRequest is an exported model for Swagger docs of the setTemp payload.
type SetTempRequest struct {
	// Target temperature in °F (40–104)
	Temp float64 `json:"temp" example:"85"`
	// ScreenLogic system name; omit for demo mode
	SystemName string `json:"systemName,omitempty" example:"Pentair: 00-00-00"`
	// Gateway password; omit for demo mode
	Password string `json:"password,omitempty"`
}

// bridgeFailure logs a failed gateway command and writes the server-error
// envelope: user-facing summary plus the underlying message for diagnostics.
func (h *Handler) bridgeFailure(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": userMsg, "message": err.Error()})
}

// @Summary      Set circuit state
// @Description  Turns a circuit on or off. Without credentials the command runs against the demo backend.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        id    path   int                true  "Circuit id"
// @Param        body  body   SetCircuitRequest  true  "Command payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /circuit/{id} [post]
func (h *Handler) setCircuit(c *gin.Context) {
	circuitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errCircuitNotInt})
		return
	}

	var req circuitRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.State == nil {
		// A non-boolean state fails the bind; either way the constraint is the same.
		c.JSON(http.StatusBadRequest, gin.H{"error": errStateNotBool})
		return
	}

	mode := service.ResolveAuth(req.SystemName, req.Password)
	res, err := h.services.Commands.SetCircuit(c.Request.Context(), mode, circuitID, *req.State)
	if err != nil {
		h.bridgeFailure(c, errSetCircuit, "set_circuit_failed", err, "circuit_id", circuitID)
		return
	}

	resp := gin.H{"success": true, "circuitId": circuitID, "state": *req.State}
	if res.Demo {
		resp["demo"] = true
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Set body temperature
// @Description  Sets the target temperature for pool, spa, or a numeric body index. Without credentials the command runs against the demo backend.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        body  path   string          true  "pool, spa, or body index"
// @Param        req   body   SetTempRequest  true  "Command payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /temp/{body} [post]
func (h *Handler) setTemp(c *gin.Context) {
	bodyParam := c.Param("body")
	bodyIndex, ok := parseBodyRef(bodyParam)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUnknownBody})
		return
	}

	var req tempRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Temp == nil ||
		*req.Temp < poolbridge.MinSetPointF || *req.Temp > poolbridge.MaxSetPointF {
		c.JSON(http.StatusBadRequest, gin.H{"error": errTempOutOfRange})
		return
	}

	mode := service.ResolveAuth(req.SystemName, req.Password)
	res, err := h.services.Commands.SetTemperature(c.Request.Context(), mode, bodyIndex, *req.Temp)
	if err != nil {
		h.bridgeFailure(c, errSetTemp, "set_temp_failed", err, "body", bodyParam)
		return
	}

	resp := gin.H{"success": true, "body": bodyParam, "temp": *req.Temp}
	if res.Demo {
		resp["demo"] = true
	}
	c.JSON(http.StatusOK, resp)
}

// parseBodyRef maps the path segment to a gateway body index: the names pool
// and spa, or an explicit non-negative index.
func parseBodyRef(s string) (int, bool) {
	switch s {
	case "pool":
		return poolbridge.BodyPool, true
	case "spa":
		return poolbridge.BodySpa, true
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
