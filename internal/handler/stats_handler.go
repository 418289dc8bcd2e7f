package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/quizroom-api/internal/service"
)

// StatsHandler обрабатывает запросы агрегированной статистики
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler создает новый обработчик статистики
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// AdminStats возвращает сводную статистику для панели администратора
func (h *StatsHandler) AdminStats(c *gin.Context) {
	stats, err := h.statsService.GetAdminStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SystemStatus возвращает состояние сервиса и базовые счетчики
func (h *StatsHandler) SystemStatus(c *gin.Context) {
	status, err := h.statsService.GetSystemStatus()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
