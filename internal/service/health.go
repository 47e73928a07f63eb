// 건전도 점수 집계 로직 정의
// 학습 모델이 아닌 결정적 휴리스틱이며, 수식 자체가 계약임 - 각 항은
// 명시된 상한으로 클램프된 뒤 합산되고 최종 점수는 [0,100]을 보장

package service

import (
	"math"
	"time"

	"github.com/grid-twin/backend/internal/model"
)

// 설치 연도를 모를 때 가정하는 기본 자산 연령
const defaultAssetAge = 15

// 심각도별 드리프트 가중치
var driftWeight = map[model.Severity]float64{
	model.SeverityWarning: 4,
	model.SeverityAlarm:   10,
	model.SeverityTrip:    25,
}

// HealthInput - 건전도 집계 입력
type HealthInput struct {
	PredictorHealth  float64 // 보정 후 예측기 건전도 (0-100)
	FaultProbability float64 // 보정 후 고장 확률 (0-1)
	InstallationYear *int
	MaintenanceCount int
	States           []model.ParameterState
	Temperature      *float64
	Humidity         *float64
}

// AggregateHealth - 복합 건전도 점수와 기여분 내역 계산
func AggregateHealth(in HealthInput, now time.Time) (int, model.HealthBreakdown) {
	age := float64(defaultAssetAge)
	if in.InstallationYear != nil {
		age = float64(now.Year() - *in.InstallationYear)
	}
	agingFactor := clamp(age/50*25, 0, 100)

	maintenanceGap := clamp(math.Max(0, 4-float64(in.MaintenanceCount))*6, 0, 100)

	drift := 0.0
	for _, s := range in.States {
		drift += driftWeight[s.Severity]
	}
	driftScore := clamp(drift, 0, 30)

	envStress := clamp(tempPenalty(in.Temperature)+humidityPenalty(in.Humidity), 0, 15)

	mlImpact := clamp(in.FaultProbability*100, 0, 100)

	penalty := mlImpact*0.25 + agingFactor + maintenanceGap + driftScore + envStress
	computed := clamp(100-penalty, 0, 100)

	score := int(math.Round((computed + in.PredictorHealth) / 2))
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	breakdown := model.HealthBreakdown{
		MLImpact:            round1(mlImpact),
		Aging:               round1(agingFactor),
		MaintenanceGap:      round1(maintenanceGap),
		Drift:               round1(driftScore),
		EnvironmentalStress: round1(envStress),
		ComputedHealth:      round1(computed),
	}
	return score, breakdown
}

func tempPenalty(temp *float64) float64 {
	if temp == nil {
		return 0
	}
	switch {
	case *temp > 60:
		return 20
	case *temp > 45:
		return 10
	default:
		return 0
	}
}

func humidityPenalty(humidity *float64) float64 {
	if humidity == nil {
		return 0
	}
	switch {
	case *humidity > 90:
		return 10
	case *humidity > 80:
		return 5
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
