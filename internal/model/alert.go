// 진단 알람(디스패치 게이트 통과분) 관련 구조체를 정의
// service의 디스패치 로직과 db의 영속화 레이어에서 공통으로 사용

package model

import "time"

// DiagnosticAlert - alert store에 영속화되는 진단 알람 레코드
type DiagnosticAlert struct {
	AlertID          string    `json:"alert_id"`
	SubstationID     string    `json:"substation_id"`
	AreaCode         string    `json:"area_code"`
	Component        string    `json:"component"`
	PredictedFault   string    `json:"predicted_fault"`
	Severity         Severity  `json:"severity"`
	FaultProbability float64   `json:"fault_probability"`
	HealthIndex      int       `json:"health_index"`
	CreatedAt        time.Time `json:"created_at"`
}

// DispatchPayload - 디스패치 게이트 판정 입력
type DispatchPayload struct {
	SubstationID     string
	AreaCode         string
	Component        string
	PredictedFault   string
	Severity         Severity
	FaultProbability float64
	HealthIndex      int
}

// DispatchResult - 디스패치 결과
// 게이트 미통과 또는 store 장애 시 Persisted=false + Reason,
// 영속화 성공 시 Persisted=true + AlertID
type DispatchResult struct {
	Persisted bool   `json:"persisted"`
	AlertID   string `json:"alertId,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// AlertListResponse - 알람 목록 조회용 구조체
type AlertListResponse struct {
	AlertID        string    `json:"alert_id"`
	SubstationID   string    `json:"substation_id"`
	Component      string    `json:"component"`
	PredictedFault string    `json:"predicted_fault"`
	Severity       Severity  `json:"severity"`
	HealthIndex    int       `json:"health_index"`
	CreatedAt      time.Time `json:"created_at"`
}
