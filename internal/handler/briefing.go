// 운영자 브리핑 생성 핸들러
// 생성 클라이언트(AI_API_KEY)가 설정되지 않았으면 503을 반환

package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grid-twin/backend/internal/model"
	"github.com/grid-twin/backend/internal/service"
)

// Briefing 핸들러 구조체 정의
type BriefingHandler struct {
	briefingService *service.BriefingService
}

// Briefing 핸들러 객체 생성
func NewBriefingHandler(briefingService *service.BriefingService) *BriefingHandler {
	return &BriefingHandler{briefingService: briefingService}
}

// Generate godoc
// @Summary Generate an operator briefing for a diagnosis
// @Tags diagnosis
// @Accept json
// @Produce json
// @Param request body model.BriefingRequest true "Diagnosis context"
// @Success 200 {object} model.BriefingResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/diagnosis/briefing [post]
func (h *BriefingHandler) Generate(c *gin.Context) {
	if !h.briefingService.IsConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "briefing generator not configured"})
		return
	}

	var req model.BriefingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.briefingService.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBriefingRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Briefing generation failed (component=%s): %v", req.Component, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, res)
}
