package db

import (
	"context"
	"time"

	"github.com/grid-twin/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres 구조체의 필드 타입을 NewPostgresPool의 리턴 타입과 맞춥니다.
type Postgres struct {
	Pool *pgxpool.Pool
}

// EnsureAlertSchema - diagnostic_alerts 테이블 생성
func (db *Postgres) EnsureAlertSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS diagnostic_alerts (
			alert_id TEXT PRIMARY KEY,
			substation_id TEXT NOT NULL DEFAULT '',
			area_code TEXT NOT NULL DEFAULT '',
			component TEXT NOT NULL DEFAULT '',
			predicted_fault TEXT NOT NULL DEFAULT '',
			severity TEXT NOT NULL DEFAULT 'warning',
			fault_probability DOUBLE PRECISION NOT NULL DEFAULT 0,
			health_index INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS diagnostic_alerts_substation_idx ON diagnostic_alerts(substation_id)`,
		`CREATE INDEX IF NOT EXISTS diagnostic_alerts_severity_idx ON diagnostic_alerts(severity)`,
		`CREATE INDEX IF NOT EXISTS diagnostic_alerts_created_at_idx ON diagnostic_alerts(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

// SaveDiagnosticAlert - 디스패치 게이트를 통과한 알람을 저장
func (db *Postgres) SaveDiagnosticAlert(ctx context.Context, alert model.DiagnosticAlert) error {
	query := `
		INSERT INTO diagnostic_alerts (
			alert_id, substation_id, area_code, component, predicted_fault,
			severity, fault_probability, health_index, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	createdAt := alert.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := db.Pool.Exec(ctx, query,
		alert.AlertID,
		alert.SubstationID,
		alert.AreaCode,
		alert.Component,
		alert.PredictedFault,
		alert.Severity,
		alert.FaultProbability,
		alert.HealthIndex,
		createdAt,
	)
	return err
}

// GetAlertList - 알람 목록 조회 (최근 순)
func (db *Postgres) GetAlertList(ctx context.Context) ([]model.AlertListResponse, error) {
	query := `
		SELECT alert_id, substation_id, component, predicted_fault, severity, health_index, created_at
		FROM diagnostic_alerts
		ORDER BY created_at DESC`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.AlertListResponse
	for rows.Next() {
		var a model.AlertListResponse
		if err := rows.Scan(&a.AlertID, &a.SubstationID, &a.Component, &a.PredictedFault, &a.Severity, &a.HealthIndex, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}

	if list == nil {
		list = []model.AlertListResponse{}
	}
	return list, nil
}

// GetAlertDetail - 알람 상세 조회
func (db *Postgres) GetAlertDetail(ctx context.Context, alertID string) (*model.DiagnosticAlert, error) {
	query := `
		SELECT alert_id, substation_id, area_code, component, predicted_fault,
		       severity, fault_probability, health_index, created_at
		FROM diagnostic_alerts
		WHERE alert_id = $1
	`

	var a model.DiagnosticAlert
	err := db.Pool.QueryRow(ctx, query, alertID).Scan(
		&a.AlertID,
		&a.SubstationID,
		&a.AreaCode,
		&a.Component,
		&a.PredictedFault,
		&a.Severity,
		&a.FaultProbability,
		&a.HealthIndex,
		&a.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return &a, nil
}
