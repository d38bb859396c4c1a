package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/intentradar/intent-radar/app/cfg"
	"github.com/intentradar/intent-radar/app/config"
	"github.com/intentradar/intent-radar/app/database"
	"github.com/intentradar/intent-radar/app/tasks"
)

const (
	defaultSignalLimit = 50
	maxSignalLimit     = 500
)

type Handler struct {
	repo      database.SignalRepositoryInterface
	watch     *config.WatchConfig
	scheduler tasks.TaskSchedulerInterface
}

func NewHandler(repo database.SignalRepositoryInterface, watch *config.WatchConfig,
	scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		repo:      repo,
		watch:     watch,
		scheduler: scheduler,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	// The count query doubles as a store reachability check.
	if _, err := h.repo.GetSignalCount(c.Request.Context()); err != nil {
		slog.Error("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: cfg.Get().Version})
}

func (h *Handler) GetStats(c *gin.Context) {
	count, err := h.repo.GetSignalCount(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "get_signal_count", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	stats, err := h.repo.GetCompanyStats(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "get_company_stats", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	perCompany := make([]CompanyStatResponse, 0, len(stats))
	for _, stat := range stats {
		perCompany = append(perCompany, CompanyStatResponse{
			Company:  stat.Company,
			Signals:  stat.Signals,
			MaxScore: stat.MaxScore,
			LastSeen: stat.LastSeen,
		})
	}

	c.JSON(http.StatusOK, StatsResponse{
		Signals:    count,
		Companies:  len(h.watch.Companies),
		PerCompany: perCompany,
	})
}

func (h *Handler) GetSignals(c *gin.Context) {
	company := c.Query("company")

	limit := defaultSignalLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > maxSignalLimit {
		limit = maxSignalLimit
	}

	signals, err := h.repo.GetSignals(c.Request.Context(), company, limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_signals", "company", company, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]SignalResponse, 0, len(signals))
	for _, s := range signals {
		response = append(response, SignalResponse{
			ID:          s.ID,
			Company:     s.Company,
			SignalType:  s.SignalType,
			Title:       s.Title,
			URL:         s.URL,
			PublishedAt: s.PublishedAt,
			Source:      s.Source,
			Score:       s.Score,
			CreatedAt:   s.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"signals": response, "count": len(response)})
}

func (h *Handler) ListCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"companies": h.watch.Companies})
}

func (h *Handler) TriggerScan(c *gin.Context) {
	if err := h.scheduler.EnqueueScanPass(); err != nil {
		slog.Error("Failed to enqueue scan pass", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scan could not be queued"})
		return
	}

	slog.Info("Scan pass triggered via API", "companies", len(h.watch.Companies))
	c.JSON(http.StatusAccepted, gin.H{"status": "scan queued", "companies": len(h.watch.Companies)})
}
