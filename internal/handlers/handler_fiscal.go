package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fiscalHandler handles HTTP requests for the fiscal calendar.
type fiscalHandler struct {
	fiscalService portssvc.FiscalPeriodSvcFacade
}

func newFiscalHandler(fs portssvc.FiscalPeriodSvcFacade) *fiscalHandler {
	return &fiscalHandler{fiscalService: fs}
}

// registerFiscalRoutes registers routes related to fiscal periods.
func registerFiscalRoutes(rg *gin.RouterGroup, fiscalService portssvc.FiscalPeriodSvcFacade) {
	h := newFiscalHandler(fiscalService)

	periods := rg.Group("/fiscal-periods")
	{
		periods.GET("/resolve", h.resolvePeriod)
		periods.GET("/:id", h.getPeriod)
		periods.POST("/:id/lock", h.lockPeriod)
		periods.POST("/:id/unlock", h.unlockPeriod)
	}
	rg.GET("/fiscal-years/:id/periods", h.listPeriods)
}

func (h *fiscalHandler) resolvePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ResolvePeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ResolvePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	_, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	period, err := h.fiscalService.ResolvePeriod(c.Request.Context(), tenantID, params.Date)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve fiscal period")
		return
	}

	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}

func (h *fiscalHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("id")

	_, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	period, err := h.fiscalService.GetPeriodByID(c.Request.Context(), tenantID, periodID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve fiscal period")
		return
	}

	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}

func (h *fiscalHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYearID := c.Param("id")

	_, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	periods, err := h.fiscalService.ListPeriods(c.Request.Context(), tenantID, fiscalYearID)
	if err != nil {
		respondError(c, logger, err, "Failed to list fiscal periods")
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": dto.ToFiscalPeriodResponses(periods)})
}

func (h *fiscalHandler) lockPeriod(c *gin.Context) {
	h.setLock(c, true)
}

func (h *fiscalHandler) unlockPeriod(c *gin.Context) {
	h.setLock(c, false)
}

func (h *fiscalHandler) setLock(c *gin.Context, lock bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("id")

	userID, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("fiscal_period_id", periodID), slog.Bool("lock", lock))
	logger.Info("Received request to change fiscal period lock")

	if lock {
		updated, lockErr := h.fiscalService.LockPeriod(c.Request.Context(), tenantID, periodID, userID)
		if lockErr != nil {
			respondError(c, logger, lockErr, "Failed to lock fiscal period")
			return
		}
		logger.Info("Fiscal period locked")
		c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(updated))
		return
	}

	updated, unlockErr := h.fiscalService.UnlockPeriod(c.Request.Context(), tenantID, periodID, userID)
	if unlockErr != nil {
		respondError(c, logger, unlockErr, "Failed to unlock fiscal period")
		return
	}
	logger.Info("Fiscal period unlocked")
	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(updated))
}
