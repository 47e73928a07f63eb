// 실시간 텔레메트리 스토어와 HTTP 통신하는 클라이언트 정의
//
// 스토어는 경로 기반 REST 스킴을 사용:
//   GET {TELEMETRY_DB_URL}/{path}.json
//   - 존재하는 노드: JSON 오브젝트
//   - 없는 노드: 본문 "null" (404가 아님)
//
// 환경변수:
//   - TELEMETRY_DB_URL: 스토어 베이스 URL

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/grid-twin/backend/internal/config"
)

// TelemetryClient 구조체 정의
type TelemetryClient struct {
	baseURL    string
	httpClient *http.Client
}

// TelemetryClient 객체 생성 (URL 미설정 시 nil 반환 - 합성 폴백만 사용)
func NewTelemetryClient(cfg config.TelemetryConfig) *TelemetryClient {
	if cfg.BaseURL == "" {
		return nil
	}
	return &TelemetryClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch - 경로의 현재 노드 조회
// found=false는 노드 미존재, err은 연결/프로토콜 장애 (호출측에서 miss로 취급)
func (c *TelemetryClient) Fetch(ctx context.Context, path string) (map[string]any, bool, error) {
	url := c.baseURL + "/" + strings.Trim(path, "/") + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build telemetry request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("telemetry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, false, fmt.Errorf("telemetry store returned status %d: %s", resp.StatusCode, string(body))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read telemetry response: %w", err)
	}

	// 없는 노드는 리터럴 null로 응답됨
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, false, nil
	}

	var readings map[string]any
	if err := json.Unmarshal(raw, &readings); err != nil {
		return nil, false, fmt.Errorf("failed to decode telemetry payload: %w", err)
	}
	return readings, true, nil
}
