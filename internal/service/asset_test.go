package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// fakeRegistryStore - 조회/질의를 기록하는 테스트용 레지스트리
type fakeRegistryStore struct {
	docs        map[string]map[string]any // "collection/id" 키
	byField     map[string]map[string]any // "field=value" 키
	failLookups bool
	lookups     []string
	queries     []string
}

func (f *fakeRegistryStore) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	f.lookups = append(f.lookups, collection+"/"+id)
	if f.failLookups {
		return nil, errors.New("connection reset")
	}
	return f.docs[collection+"/"+id], nil
}

func (f *fakeRegistryStore) FindByField(ctx context.Context, field, value string) (map[string]any, error) {
	f.queries = append(f.queries, field+"="+value)
	return f.byField[field+"="+value], nil
}

func TestAssetResolveDirectLookup(t *testing.T) {
	store := &fakeRegistryStore{
		docs: map[string]map[string]any{
			"stations/SS-42": {"displayName": "Station 42"},
		},
	}
	svc := NewAssetMetadataService(store)

	meta := svc.Resolve(context.Background(), "SS-42")

	if meta.Source != "registry" {
		t.Fatalf("expected registry source, got %s", meta.Source)
	}
	// substations 먼저, miss 후 stations에서 채택
	want := []string{"substations/SS-42", "stations/SS-42"}
	if !reflect.DeepEqual(store.lookups, want) {
		t.Fatalf("unexpected lookup order: %v", store.lookups)
	}
	if len(store.queries) != 0 {
		t.Fatalf("field queries must not run after a direct hit: %v", store.queries)
	}
}

func TestAssetResolveFieldQueryTier(t *testing.T) {
	store := &fakeRegistryStore{
		byField: map[string]map[string]any{
			"areaName=chn-482153": {"areaName": "chn-482153"},
		},
	}
	svc := NewAssetMetadataService(store)

	meta := svc.Resolve(context.Background(), "CHN-482153")

	if meta.Source != "query" {
		t.Fatalf("expected query source, got %s", meta.Source)
	}
	// substationCode의 모든 형태를 소진한 뒤 areaName으로 진행
	// (원본과 trim/upper가 같으므로 형태는 원본, lower의 2가지)
	want := []string{
		"substationCode=CHN-482153", "substationCode=chn-482153",
		"areaName=CHN-482153", "areaName=chn-482153",
	}
	if !reflect.DeepEqual(store.queries, want) {
		t.Fatalf("unexpected query order: %v", store.queries)
	}
}

func TestAssetResolveLookupErrorAdvances(t *testing.T) {
	store := &fakeRegistryStore{
		failLookups: true,
		byField: map[string]map[string]any{
			"substationCode=SS-42": {"substationCode": "SS-42"},
		},
	}
	svc := NewAssetMetadataService(store)

	meta := svc.Resolve(context.Background(), "SS-42")
	if meta.Source != "query" {
		t.Fatalf("lookup errors should advance to the next tier, got source %s", meta.Source)
	}
}

func TestAssetResolveCatalogFallback(t *testing.T) {
	svc := NewAssetMetadataService(&fakeRegistryStore{})

	// 정적 카탈로그에 있는 식별자 - 대소문자 무시
	meta := svc.Resolve(context.Background(), "chn-482153")
	if meta.Source != "catalog" {
		t.Fatalf("expected catalog source, got %s", meta.Source)
	}
	master, ok := meta.Document["master"].(map[string]any)
	if !ok || master["substationCode"] == "" {
		t.Fatalf("catalog document must carry a master block: %v", meta.Document)
	}
}

func TestAssetResolveStub(t *testing.T) {
	svc := NewAssetMetadataService(nil)

	meta := svc.Resolve(context.Background(), "ZZZ-UNKNOWN")
	if meta.Source != "stub" {
		t.Fatalf("expected stub source, got %s", meta.Source)
	}
	if meta.Document["areaName"] != "ZZZ-UNKNOWN" {
		t.Fatalf("stub must echo the identifier, got %v", meta.Document["areaName"])
	}
	if meta.Document["installationYear"] != "unknown" {
		t.Fatalf("stub must mark installation year unknown, got %v", meta.Document["installationYear"])
	}
}

func TestNormalizedForms(t *testing.T) {
	tests := []struct {
		identifier string
		want       []string
	}{
		{identifier: "SS-42", want: []string{"SS-42", "ss-42"}},
		{identifier: "Chennai", want: []string{"Chennai", "CHENNAI", "chennai"}},
		{identifier: " ss-1 ", want: []string{" ss-1 ", "ss-1", " SS-1 "}},
	}
	for _, tt := range tests {
		if got := normalizedForms(tt.identifier); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("normalizedForms(%q) = %v, want %v", tt.identifier, got, tt.want)
		}
	}
}
