// 설비 레지스트리 적재용 핸들러
// 레지스트리 문서(변전소 마스터/자산/유지보수 이력)를 등록/갱신

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grid-twin/backend/internal/db"
)

// Registry 핸들러 구조체 정의
type RegistryHandler struct {
	store *db.Postgres
}

// Registry 핸들러 객체 생성
func NewRegistryHandler(store *db.Postgres) *RegistryHandler {
	return &RegistryHandler{store: store}
}

// UpsertDocument godoc
// @Summary Create or replace a registry document
// @Tags registry
// @Accept json
// @Produce json
// @Param collection path string true "Registry collection (substations|stations)"
// @Param id path string true "Document ID"
// @Param document body object true "Registry document"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /api/v1/registry/{collection}/{id} [put]
func (h *RegistryHandler) UpsertDocument(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "registry store unavailable"})
		return
	}

	var document map[string]any
	if err := c.ShouldBindJSON(&document); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.store.UpsertDocument(c.Request.Context(), c.Param("collection"), c.Param("id"), document); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
