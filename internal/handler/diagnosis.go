// 진단 평가 요청을 처리하는 핸들러
//
// 요청 흐름:
//  1. POST /api/v1/diagnosis 로 JSON 페이로드 수신
//  2. DiagnosisRequest 구조체로 파싱 (실패 시 400)
//  3. areaCode 필수 검증 (누락 시 400, 구체적 메시지)
//  4. service 레이어의 오케스트레이터 호출
//  5. 내부 실패는 로깅 후 일반화된 500만 노출 (내부 상세 비노출)

package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/grid-twin/backend/internal/model"
	"github.com/grid-twin/backend/internal/service"
)

// Diagnosis 핸들러 구조체 정의
type DiagnosisHandler struct {
	diagnosisService *service.DiagnosisService
}

// Diagnosis 핸들러 객체 생성
func NewDiagnosisHandler(diagnosisService *service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisService: diagnosisService,
	}
}

// Evaluate godoc
// @Summary Run a diagnostic evaluation
// @Tags diagnosis
// @Accept json
// @Produce json
// @Param request body model.DiagnosisRequest true "Evaluation target"
// @Success 200 {object} model.DiagnosisResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/diagnosis [post]
func (h *DiagnosisHandler) Evaluate(c *gin.Context) {
	var req model.DiagnosisRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Failed to parse diagnosis request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.AreaCode) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "areaCode is required"})
		return
	}

	res, err := h.diagnosisService.Evaluate(c.Request.Context(), req)
	if err != nil {
		// 내부 오류 상세는 서버 로그에만 남김
		log.Printf("Diagnosis evaluation failed (area=%s, component=%s): %v", req.AreaCode, req.ComponentType, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, res)
}
