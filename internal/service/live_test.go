package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

// fakeTelemetryStore - 조회된 경로를 기록하는 테스트용 스토어
type fakeTelemetryStore struct {
	data    map[string]map[string]any
	failOn  map[string]bool
	fetched []string
}

func (f *fakeTelemetryStore) Fetch(ctx context.Context, path string) (map[string]any, bool, error) {
	f.fetched = append(f.fetched, path)
	if f.failOn[path] {
		return nil, false, errors.New("connection refused")
	}
	readings, ok := f.data[path]
	return readings, ok, nil
}

func TestLiveResolveCandidateOrder(t *testing.T) {
	store := &fakeTelemetryStore{
		data: map[string]map[string]any{
			"CHN/SS-1/transformer": {"oilTemperature": 62.0},
			"CHN/transformer/live": {"oilTemperature": 99.0},
		},
	}
	svc := NewLiveSnapshotService(store, time.Second)

	snapshot := svc.Resolve(context.Background(), "CHN", "SS-1", "transformer")

	if snapshot.Source != "live" {
		t.Fatalf("expected live source, got %s", snapshot.Source)
	}
	// 첫 후보는 miss, 두 번째 후보에서 채택 - 세 번째는 조회하지 않음
	want := []string{"CHN/transformer", "CHN/SS-1/transformer"}
	if !reflect.DeepEqual(store.fetched, want) {
		t.Fatalf("unexpected fetch order: %v", store.fetched)
	}
	if snapshot.Readings["oilTemperature"] != 62.0 {
		t.Fatalf("expected readings from second candidate, got %v", snapshot.Readings)
	}
}

func TestLiveResolveErrorAdvancesToNextCandidate(t *testing.T) {
	store := &fakeTelemetryStore{
		data: map[string]map[string]any{
			"CHN/transformer/live": {"oilTemperature": 58.0},
		},
		failOn: map[string]bool{
			"CHN/transformer":      true,
			"CHN/SS-1/transformer": true,
		},
	}
	svc := NewLiveSnapshotService(store, time.Second)

	snapshot := svc.Resolve(context.Background(), "CHN", "SS-1", "transformer")

	if snapshot.Source != "live" {
		t.Fatalf("store errors should advance, not abort: source=%s", snapshot.Source)
	}
	if len(store.fetched) != 3 {
		t.Fatalf("expected all 3 candidates tried, got %v", store.fetched)
	}
}

func TestLiveResolveFallsBackToSynthetic(t *testing.T) {
	store := &fakeTelemetryStore{}
	svc := NewLiveSnapshotService(store, time.Second)

	snapshot := svc.Resolve(context.Background(), "CHN", "SS-1", "transformer")

	if snapshot.Source != "synthetic" {
		t.Fatalf("expected synthetic fallback, got %s", snapshot.Source)
	}
	if len(snapshot.Readings) == 0 {
		t.Fatalf("synthetic snapshot must carry readings")
	}
}

func TestLiveResolveNilStoreIsSynthetic(t *testing.T) {
	svc := NewLiveSnapshotService(nil, 0)
	snapshot := svc.Resolve(context.Background(), "CHN", "", "relay")
	if snapshot.Source != "synthetic" {
		t.Fatalf("nil store must yield synthetic snapshot, got %s", snapshot.Source)
	}
}

func TestCandidatePaths(t *testing.T) {
	got := candidatePaths("CHN", "SS-1", "transformer")
	want := []string{"CHN/transformer", "CHN/SS-1/transformer", "CHN/transformer/live"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected candidates: %v", got)
	}

	// substation이 비어 있으면 중간 티어 생략
	got = candidatePaths("CHN", "", "transformer")
	want = []string{"CHN/transformer", "CHN/transformer/live"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected candidates without substation: %v", got)
	}
}

func TestSyntheticSnapshotShape(t *testing.T) {
	snapshot := SyntheticSnapshot("transformer")
	if snapshot.Source != "synthetic" {
		t.Fatalf("expected synthetic source, got %s", snapshot.Source)
	}
	if len(snapshot.Readings) == 0 {
		t.Fatalf("expected readings for every catalog parameter")
	}
	for key, series := range snapshot.History {
		if len(series) != syntheticHistoryPoints {
			t.Fatalf("history for %s has %d points, want %d", key, len(series), syntheticHistoryPoints)
		}
	}
	// 미등록 컴포넌트는 기본 카탈로그로 정규화되어야 함
	fallback := SyntheticSnapshot("hovercraft")
	if len(fallback.Readings) == 0 {
		t.Fatalf("unknown component should fall back to the default catalog")
	}
}
