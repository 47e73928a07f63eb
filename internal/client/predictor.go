// 외부 예측기 서비스와 HTTP 통신하는 클라이언트 정의
//
// 환경변수:
//   - PREDICTOR_URL: 예측기 서비스 URL (예: http://grid-twin-predictor.grid-twin.svc:8000)
//
// 예측기에 전달하는 데이터:
//   - component, areaCode, substationId, liveReadings, assetMetadata

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/grid-twin/backend/internal/config"
	"github.com/grid-twin/backend/internal/model"
)

// PredictorClient 구조체 정의
type PredictorClient struct {
	baseURL    string
	httpClient *http.Client
}

// PredictorClient 객체 생성
func NewPredictorClient(cfg config.PredictorConfig) *PredictorClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://grid-twin-predictor.grid-twin.svc:8000"
	}

	return &PredictorClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // 모델 추론 시간 고려
		},
	}
}

// POST /predict 호출하고 예측 결과 반환 (동기)
func (c *PredictorClient) Predict(ctx context.Context, req model.PredictorRequest) (*model.PredictorResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predictor request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build predictor request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("predictor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("predictor returned status %d: %s", resp.StatusCode, string(body))
	}

	var prediction model.PredictorResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("failed to decode predictor response: %w", err)
	}
	return &prediction, nil
}
