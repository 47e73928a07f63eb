// 라이브 스냅샷 해석 로직 정의
//
// 처리 흐름:
//  1. 후보 경로 목록 구성: {area}/{component}, {area}/{substation}/{component}, {area}/{component}/live
//  2. 순서대로 조회하여 첫 번째로 존재하는 경로 채택 (source=live)
//  3. 스토어 장애/미존재는 모두 miss로 취급하고 다음 후보로 진행 (재시도 없음)
//  4. 전부 실패하면 합성 생성기로 폴백 (source=synthetic)
//
// 호출자에게 에러를 올리지 않음 - 모든 실패는 로깅 후 폴백으로 흡수

package service

import (
	"context"
	"log"
	"time"

	"github.com/grid-twin/backend/internal/model"
)

// TelemetryStore - 텔레메트리 스토어 조회 인터페이스
// found=false는 경로 미존재(miss), err은 연결/프로토콜 장애
type TelemetryStore interface {
	Fetch(ctx context.Context, path string) (readings map[string]any, found bool, err error)
}

// LiveSnapshotService 구조체 정의
type LiveSnapshotService struct {
	store       TelemetryStore
	tierTimeout time.Duration
}

// LiveSnapshotService 객체 생성
// tier 1에서 무한 대기하면 폴백 체인 전체가 막히므로 후보당 타임아웃을 강제
func NewLiveSnapshotService(store TelemetryStore, tierTimeout time.Duration) *LiveSnapshotService {
	if tierTimeout <= 0 {
		tierTimeout = 3 * time.Second
	}
	return &LiveSnapshotService{store: store, tierTimeout: tierTimeout}
}

func (s *LiveSnapshotService) Resolve(ctx context.Context, areaCode, substationID, component string) model.LiveSnapshot {
	if s.store != nil {
		for _, path := range candidatePaths(areaCode, substationID, component) {
			tierCtx, cancel := context.WithTimeout(ctx, s.tierTimeout)
			readings, found, err := s.store.Fetch(tierCtx, path)
			cancel()
			if err != nil {
				// 스토어 장애는 miss와 동일하게 취급
				log.Printf("Telemetry fetch failed, trying next candidate (path=%s): %v", path, err)
				continue
			}
			if !found {
				continue
			}
			return model.LiveSnapshot{
				Timestamp: time.Now().UTC(),
				Readings:  readings,
				History:   map[string][]float64{},
				Source:    "live",
			}
		}
	}

	log.Printf("No live telemetry resolved, using synthetic snapshot (area=%s, component=%s)", areaCode, component)
	return SyntheticSnapshot(component)
}

// candidatePaths - 우선순위 순서의 텔레메트리 경로 후보
func candidatePaths(areaCode, substationID, component string) []string {
	paths := []string{areaCode + "/" + component}
	if substationID != "" {
		paths = append(paths, areaCode+"/"+substationID+"/"+component)
	}
	paths = append(paths, areaCode+"/"+component+"/live")
	return paths
}
