// 설비 레지스트리(JSONB 문서) 조회 레이어
//
// 레지스트리 문서는 두 최상위 컬렉션(substations, stations)에
// {doc_id, document JSONB} 형태로 저장됨 - 원본 시스템의 문서 스토어 구조를 유지
// 필드 질의는 document의 master 하위 키를 우선 조회하고 루트 키로 폴백

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// 질의 허용 컬렉션 화이트리스트 (식별자를 SQL에 직접 넣기 때문)
var registryTables = map[string]string{
	"substations": "registry_substations",
	"stations":    "registry_stations",
}

// EnsureRegistrySchema - 레지스트리 테이블 생성
func (db *Postgres) EnsureRegistrySchema(ctx context.Context) error {
	for _, table := range registryTables {
		query := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				doc_id TEXT PRIMARY KEY,
				document JSONB NOT NULL DEFAULT '{}',
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`, table)
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// GetDocument - 컬렉션에서 식별자로 문서 직접 조회 (미존재 시 nil, nil)
func (db *Postgres) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	table, ok := registryTables[collection]
	if !ok {
		return nil, fmt.Errorf("unknown registry collection: %s", collection)
	}

	var raw []byte
	query := fmt.Sprintf(`SELECT document FROM %s WHERE doc_id = $1`, table)
	err := db.Pool.QueryRow(ctx, query, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// FindByField - substations 컬렉션에서 필드 값 일치로 문서 질의 (미존재 시 nil, nil)
func (db *Postgres) FindByField(ctx context.Context, field, value string) (map[string]any, error) {
	query := `
		SELECT document FROM registry_substations
		WHERE COALESCE(document->'master'->>$1, document->>$1) = $2
		LIMIT 1
	`

	var raw []byte
	err := db.Pool.QueryRow(ctx, query, field, value).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// UpsertDocument - 레지스트리 문서 등록/갱신 (운영 적재용)
func (db *Postgres) UpsertDocument(ctx context.Context, collection, id string, document map[string]any) error {
	table, ok := registryTables[collection]
	if !ok {
		return fmt.Errorf("unknown registry collection: %s", collection)
	}

	payload, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to marshal registry document: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (doc_id, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (doc_id) DO UPDATE SET
			document = EXCLUDED.document,
			updated_at = NOW()
	`, table)

	_, err = db.Pool.Exec(ctx, query, id, payload)
	return err
}

func decodeDocument(raw []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode registry document: %w", err)
	}
	return doc, nil
}
