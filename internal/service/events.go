// 평가 사이클별 이벤트 로그 구성 로직 정의
//
// 구성 순서 (결정적):
//  1. 모델 판정 요약 이벤트 1건 (항상 첫 번째, source=ml)
//  2. 비정상 파라미터당 이벤트, 원본 파라미터 순서대로 최대 3건 (source=sensor)

package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grid-twin/backend/internal/model"
)

// 파라미터 이벤트 최대 건수 (모델 판정 이벤트 제외)
const maxParameterEvents = 3

// BuildEventLog - 한 평가 사이클의 이벤트 로그 생성
func BuildEventLog(component string, faultProbability float64, predictedFault string, states []model.ParameterState, now time.Time) []model.EventLogEntry {
	events := []model.EventLogEntry{
		{
			ID:          uuid.NewString(),
			Title:       "Model verdict",
			Severity:    verdictSeverity(faultProbability),
			Timestamp:   now,
			Description: fmt.Sprintf("%s: predicted %q with fault probability %.2f", component, predictedFault, faultProbability),
			Source:      "ml",
		},
	}

	for _, s := range states {
		if s.Severity == model.SeverityNormal {
			continue
		}
		events = append(events, model.EventLogEntry{
			ID:          uuid.NewString(),
			Title:       s.Label,
			Severity:    s.Severity,
			Timestamp:   now,
			Description: fmt.Sprintf("%s reported %v%s at severity %s", s.Label, s.Value, unitSuffix(s.Unit), s.Severity),
			Source:      "sensor",
		})
		if len(events) == 1+maxParameterEvents {
			break
		}
	}
	return events
}

// verdictSeverity - 고장 확률 → 모델 판정 심각도 밴드
func verdictSeverity(faultProbability float64) model.Severity {
	switch {
	case faultProbability > 0.85:
		return model.SeverityTrip
	case faultProbability > 0.7:
		return model.SeverityAlarm
	case faultProbability > 0.5:
		return model.SeverityWarning
	default:
		return model.SeverityNormal
	}
}

func unitSuffix(unit string) string {
	if unit == "" {
		return ""
	}
	return " " + unit
}
