// 파라미터 심각도 분류 로직 정의
//
// 분류 규칙 (numeric):
//  1. 결측/비수치 값 → normal
//  2. minAlarm 미달 → alarm, 히스테리시스 밴드(20%) 초과 미달 시 trip
//  3. maxAlarm 초과 → alarm, 히스테리시스 밴드(10%) 초과 시 trip
//  4. soft min/max 이탈 → warning
//  5. 그 외 → normal
//
// 분류 규칙 (status): 리터럴→심각도 테이블 조회, 미등록 리터럴은 normal

package service

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/grid-twin/backend/internal/model"
)

// ClassifyParameter - 단일 측정값을 정의에 대해 분류
func ClassifyParameter(value any, def model.ParameterDefinition) model.Severity {
	if def.Kind == model.ParameterStatus {
		literal, ok := value.(string)
		if !ok {
			return model.SeverityNormal
		}
		if sev, ok := def.StateSeverity[literal]; ok {
			return sev
		}
		return model.SeverityNormal
	}

	v, ok := asNumber(value)
	if !ok {
		// 결측/비수치 값은 normal로 분류
		// 센서 오프라인과 정상 0 판독을 구분하지 못하는 알려진 한계 (open question)
		return model.SeverityNormal
	}

	// 히스테리시스 밴드는 |threshold| 기준으로 계산
	// 음수 한계에서 곱셈 밴드(×0.8/×1.1)의 의미가 뒤집히는 것을 방지
	if def.MinAlarm != nil && v < *def.MinAlarm {
		if v < *def.MinAlarm-0.2*math.Abs(*def.MinAlarm) {
			return model.SeverityTrip
		}
		return model.SeverityAlarm
	}
	if def.MaxAlarm != nil && v > *def.MaxAlarm {
		if v > *def.MaxAlarm+0.1*math.Abs(*def.MaxAlarm) {
			return model.SeverityTrip
		}
		return model.SeverityAlarm
	}
	if (def.Min != nil && v < *def.Min) || (def.Max != nil && v > *def.Max) {
		return model.SeverityWarning
	}
	return model.SeverityNormal
}

// EvaluateParameters - 정의 목록 전체를 현재 측정값에 대해 평가
// 정의 순서를 보존하며, 사이클마다 새 ParameterState 슬라이스를 생성
func EvaluateParameters(defs []model.ParameterDefinition, readings map[string]any) []model.ParameterState {
	states := make([]model.ParameterState, 0, len(defs))
	for _, def := range defs {
		var value any
		if readings != nil {
			value = readings[def.Key]
		}
		states = append(states, model.ParameterState{
			Key:      def.Key,
			Label:    def.Label,
			Value:    value,
			Unit:     def.Unit,
			Severity: ClassifyParameter(value, def),
			MinAlarm: def.MinAlarm,
			MaxAlarm: def.MaxAlarm,
		})
	}
	return states
}

// OverallSeverity - "worst of N" 축약 (빈 목록이면 normal)
func OverallSeverity(states []model.ParameterState) model.Severity {
	overall := model.SeverityNormal
	for _, s := range states {
		overall = model.MaxSeverity(overall, s.Severity)
	}
	return overall
}

// asNumber - JSON 디코딩 결과의 다양한 수치 표현을 float64로 통일
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
