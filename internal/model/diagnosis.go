// 진단 평가 파이프라인에서 사용하는 모델 정의
// handler, service, client 레이어에서 공통으로 사용하기 때문에 model 레이어에 별도로 정의
//
// 모든 평가 엔티티는 요청(사이클) 단위로 새로 생성되고 응답 생성 후 폐기됨
// 영속화되는 것은 DiagnosticAlert 뿐 (AlertDispatchGate 경유)

package model

import "time"

// DiagnosisRequest - 진단 평가 요청
// areaCode는 필수, substationId는 생략 시 areaCode로 대체,
// componentType은 미지정/미등록이면 기본 컴포넌트로 대체
type DiagnosisRequest struct {
	AreaCode      string `json:"areaCode"`
	SubstationID  string `json:"substationId"`
	ComponentType string `json:"componentType"`
}

// LiveSnapshot - 컴포넌트의 현재 측정값 스냅샷
// Source: "live"(텔레메트리 스토어) 또는 "synthetic"(합성 생성기)
type LiveSnapshot struct {
	Timestamp time.Time            `json:"timestamp"`
	Readings  map[string]any       `json:"readings"`
	History   map[string][]float64 `json:"history"`
	Source    string               `json:"source"`
}

// AssetMetadata - 설비 레지스트리 레코드
// Source: "registry"(직접 조회) | "query"(필드 질의) | "catalog"(정적 카탈로그) | "stub"
type AssetMetadata struct {
	Source   string         `json:"source"`
	Document map[string]any `json:"document"`
}

// HealthBreakdown - 건전도 점수의 구성 요소별 기여분 (설명/디버깅용)
type HealthBreakdown struct {
	MLImpact            float64 `json:"mlImpact"`
	Aging               float64 `json:"aging"`
	MaintenanceGap      float64 `json:"maintenanceGap"`
	Drift               float64 `json:"drift"`
	EnvironmentalStress float64 `json:"environmentalStress"`
	ComputedHealth      float64 `json:"computedHealth"`
}

// MaintenanceRecord - 유지보수 워크플로우 항목
// Status: open, in_progress, closed
type MaintenanceRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Severity    Severity  `json:"severity"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	Status      string    `json:"status"`
}

// MaintenancePlan - 평가 사이클의 유지보수 워크플로우 결과
type MaintenancePlan struct {
	AutomaticAlerts []MaintenanceRecord `json:"automaticAlerts"`
	PendingIssues   []MaintenanceRecord `json:"pendingIssues"`
	Suggestions     []string            `json:"suggestions"`
}

// EventLogEntry - 평가 사이클의 이벤트 로그 항목
// Source: ml, sensor, system
type EventLogEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Severity    Severity  `json:"severity"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
}

// DiagnosisResponse - 진단 평가 응답 페이로드
// 모델 출력 필드는 예측기(원본 시스템)와 동일한 snake_case 키를 유지
type DiagnosisResponse struct {
	Component    string `json:"component"`
	AreaCode     string `json:"areaCode"`
	SubstationID string `json:"substationId"`

	FaultProbability   float64   `json:"fault_probability"`
	HealthIndex        int       `json:"health_index"`
	PredictedFault     string    `json:"predicted_fault"`
	AffectedSubpart    *string   `json:"affected_subpart,omitempty"`
	Explanation        string    `json:"explanation"`
	TimelinePrediction []float64 `json:"timeline_prediction"`

	LiveReadings  map[string]any `json:"live_readings"`
	AssetMetadata AssetMetadata  `json:"asset_metadata"`
	Timestamp     time.Time      `json:"timestamp"`

	ParameterStates []ParameterState     `json:"parameter_states"`
	LiveStatus      Severity             `json:"live_status"`
	Maintenance     MaintenancePlan      `json:"maintenance"`
	HealthBreakdown HealthBreakdown      `json:"health_breakdown"`
	Events          []EventLogEntry      `json:"events"`
	TrendHistory    map[string][]float64 `json:"trend_history"`
	LiveSource      string               `json:"live_source"`

	// 예측기 서브 스코어 pass-through (보정 없이 그대로 전달)
	LSTMForecastScore       *float64 `json:"LSTM_ForecastScore,omitempty"`
	IsolationForestScore    *int     `json:"IsolationForestScore,omitempty"`
	XGBoostFaultScore       *float64 `json:"XGBoost_FaultScore,omitempty"`
	Top3HealthImpactFactors []string `json:"Top3_HealthImpactFactors,omitempty"`
}

// PredictorRequest - 외부 예측기 호출 페이로드
type PredictorRequest struct {
	Component     string         `json:"component"`
	AreaCode      string         `json:"areaCode"`
	SubstationID  string         `json:"substationId"`
	LiveReadings  map[string]any `json:"liveReadings"`
	AssetMetadata map[string]any `json:"assetMetadata"`
}

// PredictorResponse - 외부 예측기 응답
// 포인터 필드는 결측 여부 판별용 - 결측 시 orchestrator가 기본값으로 대체
type PredictorResponse struct {
	Component          string    `json:"component"`
	FaultProbability   *float64  `json:"fault_probability"`
	HealthIndex        *float64  `json:"health_index"`
	PredictedFault     string    `json:"predicted_fault"`
	AffectedSubpart    *string   `json:"affected_subpart"`
	Explanation        string    `json:"explanation"`
	TimelinePrediction []float64 `json:"timeline_prediction"`
	Timestamp          string    `json:"timestamp"`

	LSTMForecastScore       *float64 `json:"LSTM_ForecastScore"`
	IsolationForestScore    *int     `json:"IsolationForestScore"`
	XGBoostFaultScore       *float64 `json:"XGBoost_FaultScore"`
	Top3HealthImpactFactors []string `json:"Top3_HealthImpactFactors"`
}
