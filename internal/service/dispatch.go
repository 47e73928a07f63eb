// 알람 디스패치 게이트 정의
//
// 억제 규칙: 아래 중 하나라도 만족해야 영속화 (disjunctive gate)
//   - healthIndex < 40
//   - faultProbability > 0.7
//   - severity ∈ {alarm, trip}
//
// 디스패치는 항상 best-effort - store 장애는 결과로만 보고하고 절대 전파하지 않음

package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/grid-twin/backend/internal/model"
)

// AlertStore - 진단 알람 영속화 인터페이스
type AlertStore interface {
	SaveDiagnosticAlert(ctx context.Context, alert model.DiagnosticAlert) error
}

// DispatchService 구조체 정의
type DispatchService struct {
	store AlertStore
}

// DispatchService 객체 생성 (store가 nil이면 항상 "store unavailable")
func NewDispatchService(store AlertStore) *DispatchService {
	return &DispatchService{store: store}
}

func (s *DispatchService) Dispatch(ctx context.Context, payload model.DispatchPayload) model.DispatchResult {
	if !shouldDispatch(payload) {
		return model.DispatchResult{Persisted: false, Reason: "below dispatch thresholds"}
	}

	if s.store == nil {
		return model.DispatchResult{Persisted: false, Reason: "store unavailable"}
	}

	alert := model.DiagnosticAlert{
		AlertID:          uuid.NewString(),
		SubstationID:     payload.SubstationID,
		AreaCode:         payload.AreaCode,
		Component:        payload.Component,
		PredictedFault:   payload.PredictedFault,
		Severity:         payload.Severity,
		FaultProbability: payload.FaultProbability,
		HealthIndex:      payload.HealthIndex,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.store.SaveDiagnosticAlert(ctx, alert); err != nil {
		log.Printf("Failed to persist diagnostic alert (component=%s, substation=%s): %v", payload.Component, payload.SubstationID, err)
		return model.DispatchResult{Persisted: false, Reason: "store unavailable"}
	}

	log.Printf("Persisted diagnostic alert (alert_id=%s, component=%s, severity=%s)", alert.AlertID, alert.Component, alert.Severity)
	return model.DispatchResult{Persisted: true, AlertID: alert.AlertID}
}

// shouldDispatch - 억제 규칙 판정 (하나만 만족해도 디스패치)
func shouldDispatch(payload model.DispatchPayload) bool {
	if payload.HealthIndex < 40 {
		return true
	}
	if payload.FaultProbability > 0.7 {
		return true
	}
	return payload.Severity.AtLeast(model.SeverityAlarm)
}
