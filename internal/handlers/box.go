package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"isolated_box/internal/control"
	"isolated_box/internal/models"
	"isolated_box/internal/service"
)

const (
	statusOK         = "ok"
	statusConfigured = "configured"
	statusQueued     = "queued"

	errGetState        = "failed to load state"
	errConfigure       = "failed to configure setpoints"
	errSetTarget       = "failed to set target"
	errCompensate      = "failed to compensate"
	errListSamples     = "failed to load samples"
	errInvalidBodyPref = "invalid body: "
	errInvalidLimit    = "invalid 'limit'; use a positive integer"
)

// SetpointsRequest configures the MIN/MAX band in °C.
type SetpointsRequest struct {
	MinC *float64 `json:"min_c" binding:"required" example:"25"`
	MaxC *float64 `json:"max_c" binding:"required" example:"50"`
}

// TargetRequest selects the active setpoint.
type TargetRequest struct {
	// Allowed: MIN, MAX
	Point string `json:"point" binding:"required" example:"MAX"`
}

// CompensateRequest carries one reading. Unit defaults to C.
type CompensateRequest struct {
	Temp *float64 `json:"temp" binding:"required" example:"51"`
	Unit string   `json:"unit,omitempty" example:"C"`
}

// SampleRequest queues a reading for the pipeline. Value may be a number or
// a numeric string.
type SampleRequest struct {
	Value  any    `json:"value" binding:"required" swaggertype:"string" example:"77"`
	Unit   string `json:"unit" binding:"required" example:"F"`
	Source string `json:"source,omitempty" example:"probe-1"`
}

// statusFor maps service errors to HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidSetpoints),
		errors.Is(err, service.ErrInvalidPoint),
		errors.Is(err, service.ErrInvalidSample),
		errors.Is(err, service.ErrUnknownUnit):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotInitialized):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// @Summary      Configure setpoints
// @Description  min_c < max_c, both within the physical limits [20, 100] °C
// @Tags         box
// @Accept       json
// @Produce      json
// @Param        body  body      SetpointsRequest  true  "Setpoints"
// @Success      200   {object}  map[string]interface{}  "status, setpoints"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/box/setpoints [post]
// @Security     BearerAuth
func (h *Handler) configure(c *gin.Context) {
	var req SetpointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Box.Configure(c.Request.Context(), *req.MinC, *req.MaxC); err != nil {
		code := statusFor(err)
		if code == http.StatusBadRequest {
			c.JSON(code, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, code, errConfigure, "box_configure_failed", err, "min_c", *req.MinC, "max_c", *req.MaxC)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    statusConfigured,
		"setpoints": h.services.Box.Setpoints(),
	})
}

// @Summary      Get setpoints
// @Tags         box
// @Produce      json
// @Success      200  {object}  service.Setpoints
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/box/setpoints [get]
// @Security     BearerAuth
func (h *Handler) getSetpoints(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Box.Setpoints())
}

// @Summary      Set target point
// @Tags         box
// @Accept       json
// @Produce      json
// @Param        body  body      TargetRequest  true  "Target"
// @Success      200   {object}  map[string]interface{}  "point, target_c"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/box/target [post]
// @Security     BearerAuth
func (h *Handler) setTarget(c *gin.Context) {
	var req TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	p, ok := control.ParsePoint(req.Point)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidPoint.Error()})
		return
	}
	v, err := h.services.Box.SetTarget(c.Request.Context(), p)
	if err != nil {
		code := statusFor(err)
		if code != http.StatusInternalServerError {
			c.JSON(code, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, code, errSetTarget, "box_set_target_failed", err, "point", p.String())
		return
	}
	c.JSON(http.StatusOK, gin.H{"point": p.String(), "target_c": v})
}

// @Summary      Get box state
// @Tags         box
// @Produce      json
// @Success      200  {object}  models.BoxState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/box/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "box_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Compensate a reading
// @Description  Returns target_c 65535 when the reading is inside the band
// @Tags         box
// @Accept       json
// @Produce      json
// @Param        body  body      CompensateRequest  true  "Reading"
// @Success      200   {object}  service.Decision
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/box/compensate [post]
// @Security     BearerAuth
func (h *Handler) compensate(c *gin.Context) {
	var req CompensateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	unit := req.Unit
	if unit == "" {
		unit = control.Celsius.String()
	}
	scale, err := control.ParseScale(unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrUnknownUnit.Error() + ": " + unit})
		return
	}

	d, err := h.services.Box.Compensate(c.Request.Context(), control.ToCelsius(*req.Temp, scale))
	if err != nil {
		code := statusFor(err)
		if code != http.StatusInternalServerError {
			c.JSON(code, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, code, errCompensate, "box_compensation_failed", err, "temp", *req.Temp, "unit", unit)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Queue a sample
// @Description  The sample is converted to °C and compensated asynchronously
// @Tags         box
// @Accept       json
// @Produce      json
// @Param        body  body      SampleRequest  true  "Sample"
// @Success      202   {object}  map[string]interface{}  "status, id, queue_depth"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/box/samples [post]
// @Security     BearerAuth
func (h *Handler) ingestSample(c *gin.Context) {
	var req SampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	rec := models.NewSampleRecord(req.Value, req.Unit)
	rec.Source = req.Source

	if err := h.services.Pipeline.Ingest(c.Request.Context(), rec); err != nil {
		if h.log != nil {
			h.log.Infow("sample_ingest_rejected", "value", rec.Value, "unit", rec.Unit, "err", err)
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"status":      statusQueued,
		"queue_depth": h.services.Pipeline.QueueDepth(),
	})
}

// @Summary      Recent samples
// @Tags         box
// @Produce      json
// @Param        limit  query     int  false  "Max samples, newest first"  example(50)
// @Success      200    {object}  map[string]interface{}  "count, samples"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/box/samples [get]
// @Security     BearerAuth
func (h *Handler) listSamples(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit})
			return
		}
		limit = v
	}
	samples, err := h.services.Pipeline.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListSamples, "samples_list_failed", err, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(samples), "samples": samples})
}
