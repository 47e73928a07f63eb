// 진단 평가 오케스트레이터 정의
//
// 처리 흐름 (요청당 1회):
//  1. 요청 정규화 (substation 기본값 = areaCode, 미등록 컴포넌트는 기본 키)
//  2. LiveSnapshot / AssetMetadata 동시 해석 (서로 의존 없음)
//  3. 외부 예측기 호출, 결측 필드 기본값 대체 후 보정 상수 적용
//  4. 파라미터 분류 → 전체 심각도 축약
//  5. 건전도 집계, 워크플로우/이벤트 로그 구성
//  6. 알람 디스패치를 백그라운드로 기동 (응답 경로와 분리, 결과는 로깅으로만 관측)
//  7. 응답 페이로드 조립

package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/grid-twin/backend/internal/catalog"
	"github.com/grid-twin/backend/internal/model"
)

// 예측기 출력 보정 상수 - 제품 차원의 캘리브레이션 값이며 재유도하지 않고
// 수치 효과를 그대로 보존해야 함 (다른 예측기/설비에 일반화된다는 보장 없음)
const (
	probabilityBias = 0.28
	healthBias      = 28
)

// 예측기 결측 필드 기본값
const (
	defaultFaultProbability = 0.3
	defaultHealthIndex      = 70.0
)

// Predictor - 외부 예측기 인터페이스
type Predictor interface {
	Predict(ctx context.Context, req model.PredictorRequest) (*model.PredictorResponse, error)
}

// DiagnosisService 구조체 정의
type DiagnosisService struct {
	live      *LiveSnapshotService
	asset     *AssetMetadataService
	predictor Predictor
	dispatch  *DispatchService
}

// DiagnosisService 객체 생성
func NewDiagnosisService(live *LiveSnapshotService, asset *AssetMetadataService, predictor Predictor, dispatch *DispatchService) *DiagnosisService {
	return &DiagnosisService{
		live:      live,
		asset:     asset,
		predictor: predictor,
		dispatch:  dispatch,
	}
}

func (s *DiagnosisService) Evaluate(ctx context.Context, req model.DiagnosisRequest) (*model.DiagnosisResponse, error) {
	// 1. 요청 정규화
	substationID := req.SubstationID
	if substationID == "" {
		substationID = req.AreaCode
	}
	component := catalog.NormalizeComponent(req.ComponentType)

	// 2. 라이브 스냅샷 / 레지스트리 메타데이터 동시 해석
	var (
		snapshot model.LiveSnapshot
		meta     model.AssetMetadata
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		snapshot = s.live.Resolve(ctx, req.AreaCode, substationID, component)
	}()
	go func() {
		defer wg.Done()
		meta = s.asset.Resolve(ctx, substationID)
	}()
	wg.Wait()

	// 3. 외부 예측기 호출 (실패 시 기본값으로 진행)
	prediction := s.predict(ctx, component, req.AreaCode, substationID, snapshot, meta)
	faultProbability, healthIndex := defaultedScores(prediction)

	// 보정 상수 적용 후 유효 범위로 재클램프
	faultProbability = calibrateProbability(faultProbability)
	healthIndex = calibrateHealth(healthIndex)

	// 4. 파라미터 분류
	defs, _ := catalog.ComponentParameters(component)
	states := EvaluateParameters(defs, snapshot.Readings)
	liveStatus := OverallSeverity(states)

	// 5. 건전도 집계 + 워크플로우 + 이벤트 로그
	now := time.Now().UTC()
	temperature, humidity := environmentalReadings(snapshot.Readings)
	score, breakdown := AggregateHealth(HealthInput{
		PredictorHealth:  healthIndex,
		FaultProbability: faultProbability,
		InstallationYear: installationYear(meta),
		MaintenanceCount: len(MaintenanceHistory(meta, component)),
		States:           states,
		Temperature:      temperature,
		Humidity:         humidity,
	}, now)

	plan := BuildMaintenancePlan(component, meta, states, faultProbability, score, now)
	events := BuildEventLog(component, faultProbability, prediction.PredictedFault, states, now)

	// 6. 알람 디스패치 (fire-and-forget - 응답을 지연시키지 않음)
	payload := model.DispatchPayload{
		SubstationID:     substationID,
		AreaCode:         req.AreaCode,
		Component:        component,
		PredictedFault:   prediction.PredictedFault,
		Severity:         model.MaxSeverity(liveStatus, verdictSeverity(faultProbability)),
		FaultProbability: faultProbability,
		HealthIndex:      score,
	}
	go func() {
		// 요청 컨텍스트와 수명을 분리
		result := s.dispatch.Dispatch(context.Background(), payload)
		if !result.Persisted {
			log.Printf("Alert not persisted (component=%s, reason=%s)", component, result.Reason)
		}
	}()

	// 7. 응답 조립
	return &model.DiagnosisResponse{
		Component:    component,
		AreaCode:     req.AreaCode,
		SubstationID: substationID,

		FaultProbability:   faultProbability,
		HealthIndex:        score,
		PredictedFault:     prediction.PredictedFault,
		AffectedSubpart:    prediction.AffectedSubpart,
		Explanation:        prediction.Explanation,
		TimelinePrediction: prediction.TimelinePrediction,

		LiveReadings:  snapshot.Readings,
		AssetMetadata: meta,
		Timestamp:     now,

		ParameterStates: states,
		LiveStatus:      liveStatus,
		Maintenance:     plan,
		HealthBreakdown: breakdown,
		Events:          events,
		TrendHistory:    snapshot.History,
		LiveSource:      snapshot.Source,

		LSTMForecastScore:       prediction.LSTMForecastScore,
		IsolationForestScore:    prediction.IsolationForestScore,
		XGBoostFaultScore:       prediction.XGBoostFaultScore,
		Top3HealthImpactFactors: prediction.Top3HealthImpactFactors,
	}, nil
}

// calibrateProbability - 확률 계열 점수 보정 (유효 범위 재클램프 포함)
func calibrateProbability(p float64) float64 {
	return clamp(p-probabilityBias, 0, 1)
}

// calibrateHealth - 건전도 지수 보정 (유효 범위 재클램프 포함)
func calibrateHealth(h float64) float64 {
	return clamp(h+healthBias, 0, 100)
}

// predict - 예측기 호출, 실패/미설정 시 빈 응답으로 대체
func (s *DiagnosisService) predict(ctx context.Context, component, areaCode, substationID string, snapshot model.LiveSnapshot, meta model.AssetMetadata) *model.PredictorResponse {
	if s.predictor == nil {
		return &model.PredictorResponse{PredictedFault: "Normal"}
	}
	resp, err := s.predictor.Predict(ctx, model.PredictorRequest{
		Component:     component,
		AreaCode:      areaCode,
		SubstationID:  substationID,
		LiveReadings:  snapshot.Readings,
		AssetMetadata: meta.Document,
	})
	if err != nil {
		log.Printf("Predictor call failed, using defaults (component=%s): %v", component, err)
		return &model.PredictorResponse{PredictedFault: "Normal"}
	}
	if resp.PredictedFault == "" {
		resp.PredictedFault = "Normal"
	}
	return resp
}

// defaultedScores - 예측기 결측 필드를 기본값으로 대체 (보정 전 단계)
func defaultedScores(prediction *model.PredictorResponse) (faultProbability, healthIndex float64) {
	faultProbability = defaultFaultProbability
	if prediction.FaultProbability != nil {
		faultProbability = *prediction.FaultProbability
	}
	healthIndex = defaultHealthIndex
	if prediction.HealthIndex != nil {
		healthIndex = *prediction.HealthIndex
	}
	return faultProbability, healthIndex
}

// installationYear - 레지스트리 문서에서 설치 연도 추출 (master 우선, 루트 폴백)
func installationYear(meta model.AssetMetadata) *int {
	for _, scope := range []any{meta.Document["master"], any(meta.Document)} {
		doc, ok := scope.(map[string]any)
		if !ok {
			continue
		}
		if year, ok := asNumber(doc["installationYear"]); ok && year > 0 {
			y := int(year)
			return &y
		}
	}
	return nil
}

// environmentalReadings - 스냅샷에서 환경 측정값 추출 (없으면 nil)
func environmentalReadings(readings map[string]any) (temperature, humidity *float64) {
	for _, key := range []string{"ambientTemperature", "temperature"} {
		if v, ok := asNumber(readings[key]); ok {
			temperature = &v
			break
		}
	}
	if v, ok := asNumber(readings["humidity"]); ok {
		humidity = &v
	}
	return temperature, humidity
}
