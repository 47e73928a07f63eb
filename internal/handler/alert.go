// 영속화된 진단 알람 조회 핸들러
// alert store가 설정되지 않은 degraded 모드에서는 503을 반환

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grid-twin/backend/internal/db"
	"github.com/grid-twin/backend/internal/model"
)

// AlertReader - 알람 조회 인터페이스 (degraded 모드에서 nil)
type AlertReader interface {
	GetAlertList(ctx context.Context) ([]model.AlertListResponse, error)
	GetAlertDetail(ctx context.Context, alertID string) (*model.DiagnosticAlert, error)
}

// Alert 핸들러 구조체 정의
type AlertHandler struct {
	store AlertReader
}

// Alert 핸들러 객체 생성
func NewAlertHandler(store *db.Postgres) *AlertHandler {
	h := &AlertHandler{}
	if store != nil {
		h.store = store
	}
	return h
}

// GetAlerts godoc
// @Summary List persisted diagnostic alerts
// @Tags alerts
// @Produce json
// @Success 200 {array} model.AlertListResponse
// @Failure 500 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/alerts [get]
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert store unavailable"})
		return
	}

	res, err := h.store.GetAlertList(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAlertDetail godoc
// @Summary Get diagnostic alert detail
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} model.DiagnosticAlert
// @Failure 404 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/alerts/{id} [get]
func (h *AlertHandler) GetAlertDetail(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert store unavailable"})
		return
	}

	res, err := h.store.GetAlertDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}
