package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for the journal lifecycle.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes related to journals.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:id", h.getJournal)
		journals.PUT("/:id", h.updateJournal)
		journals.PUT("/:id/lines", h.updateJournalLines)
		journals.DELETE("/:id", h.deleteJournal)
		journals.POST("/:id/submit", h.submitJournal)
		journals.POST("/:id/approve", h.approveJournal)
		journals.POST("/:id/post", h.postJournal)
		journals.POST("/:id/reverse", h.reverseJournal)
	}
}

func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	var branchID *string
	if b, found := middleware.GetBranchIDFromContext(c); found {
		branchID = &b
	}

	logger = logger.With(slog.String("tenant_id", tenantID), slog.String("journal_type", string(req.JournalType)))
	logger.Info("Received request to create journal")

	journal, err := h.journalService.CreateJournal(c.Request.Context(), tenantID, req, userID, branchID)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal")
		return
	}

	logger.Info("Journal created successfully",
		slog.String("journal_id", journal.JournalID),
		slog.String("journal_number", journal.JournalNumber))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	_, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("journal_id", journalID))

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), tenantID, journalID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	_, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	resp, err := h.journalService.ListJournals(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list journals")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *journalHandler) updateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("journal_id", journalID))
	logger.Info("Received request to update journal")

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), tenantID, journalID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update journal")
		return
	}

	logger.Info("Journal updated successfully")
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

func (h *journalHandler) updateJournalLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	var req dto.UpdateJournalLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJournalLines", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("journal_id", journalID))
	logger.Info("Received request to replace journal lines")

	journal, err := h.journalService.UpdateJournalLines(c.Request.Context(), tenantID, journalID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to replace journal lines")
		return
	}

	logger.Info("Journal lines replaced successfully")
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

func (h *journalHandler) deleteJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	_, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("journal_id", journalID))
	logger.Info("Received request to delete journal")

	if err := h.journalService.DeleteJournal(c.Request.Context(), tenantID, journalID); err != nil {
		respondError(c, logger, err, "Failed to delete journal")
		return
	}

	logger.Info("Journal deleted successfully")
	c.Status(http.StatusNoContent)
}

// lifecycle runs one of the status transition verbs and writes the response.
func (h *journalHandler) lifecycle(c *gin.Context, action string,
	fn func(ctx context.Context, tenantID, journalID, actorUserID string) (*domain.Journal, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("id")

	userID, tenantID, ok := identity(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("journal_id", journalID), slog.String("action", action))
	logger.Info("Received journal lifecycle request")

	journal, err := fn(c.Request.Context(), tenantID, journalID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to "+action+" journal")
		return
	}

	logger.Info("Journal lifecycle request applied", slog.String("status", string(journal.Status)))
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

func (h *journalHandler) submitJournal(c *gin.Context) {
	h.lifecycle(c, "submit", h.journalService.SubmitJournal)
}

func (h *journalHandler) approveJournal(c *gin.Context) {
	h.lifecycle(c, "approve", h.journalService.ApproveJournal)
}

func (h *journalHandler) postJournal(c *gin.Context) {
	h.lifecycle(c, "post", h.journalService.PostJournal)
}

func (h *journalHandler) reverseJournal(c *gin.Context) {
	h.lifecycle(c, "reverse", h.journalService.ReverseJournal)
}
