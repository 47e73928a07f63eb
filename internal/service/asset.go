// 설비 레지스트리 메타데이터 해석 로직 정의
//
// 해석 순서 (첫 매칭 채택, chain-of-responsibility):
//  1. 두 최상위 레지스트리(substations, stations)에서 식별자로 직접 조회
//  2. 세 필드 경로(substationCode, areaName, displayName)에 대해
//     정규화 형태(원본/trim/upper/lower) 최대 4가지로 질의
//  3. 정적 폴백 카탈로그 (id/code/areaName, 대소문자 무시)
//  4. 스텁 레코드 {areaName: identifier, installationYear: "unknown"}
//
// 모든 티어의 스토어 에러는 miss로 취급하고 다음 티어로 진행 (재시도 없음)

package service

import (
	"context"
	"log"
	"strings"

	"github.com/grid-twin/backend/internal/catalog"
	"github.com/grid-twin/backend/internal/model"
)

// RegistryStore - 설비 레지스트리 조회 인터페이스
// 미존재 시 (nil, nil) 반환, err은 연결/질의 장애
type RegistryStore interface {
	GetDocument(ctx context.Context, collection, id string) (map[string]any, error)
	FindByField(ctx context.Context, field, value string) (map[string]any, error)
}

// 직접 조회 대상 최상위 레지스트리
var registryCollections = []string{"substations", "stations"}

// 필드 질의에 사용하는 경로 (우선순위 순)
var registryQueryFields = []string{"substationCode", "areaName", "displayName"}

// AssetMetadataService 구조체 정의
type AssetMetadataService struct {
	store RegistryStore
}

// AssetMetadataService 객체 생성
func NewAssetMetadataService(store RegistryStore) *AssetMetadataService {
	return &AssetMetadataService{store: store}
}

func (s *AssetMetadataService) Resolve(ctx context.Context, identifier string) model.AssetMetadata {
	if s.store != nil {
		// 1. 직접 조회
		for _, collection := range registryCollections {
			doc, err := s.store.GetDocument(ctx, collection, identifier)
			if err != nil {
				log.Printf("Registry lookup failed, advancing (collection=%s, id=%s): %v", collection, identifier, err)
				continue
			}
			if doc != nil {
				return model.AssetMetadata{Source: "registry", Document: doc}
			}
		}

		// 2. 필드 질의
		for _, field := range registryQueryFields {
			for _, form := range normalizedForms(identifier) {
				doc, err := s.store.FindByField(ctx, field, form)
				if err != nil {
					log.Printf("Registry query failed, advancing (field=%s, value=%s): %v", field, form, err)
					continue
				}
				if doc != nil {
					return model.AssetMetadata{Source: "query", Document: doc}
				}
			}
		}
	}

	// 3. 정적 폴백 카탈로그
	if fallback, ok := catalog.FindFallback(identifier); ok {
		return model.AssetMetadata{Source: "catalog", Document: fallback.Document()}
	}

	// 4. 스텁
	return model.AssetMetadata{
		Source: "stub",
		Document: map[string]any{
			"areaName":         identifier,
			"installationYear": "unknown",
		},
	}
}

// normalizedForms - 식별자의 정규화 형태 목록 (중복 제거, 순서 보존)
func normalizedForms(identifier string) []string {
	candidates := []string{
		identifier,
		strings.TrimSpace(identifier),
		strings.ToUpper(identifier),
		strings.ToLower(identifier),
	}
	forms := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, form := range candidates {
		if _, dup := seen[form]; dup {
			continue
		}
		seen[form] = struct{}{}
		forms = append(forms, form)
	}
	return forms
}
