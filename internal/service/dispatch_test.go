package service

import (
	"context"
	"errors"
	"testing"

	"github.com/grid-twin/backend/internal/model"
)

// fakeAlertStore - 저장 호출을 기록하는 테스트용 스토어
type fakeAlertStore struct {
	saved  []model.DiagnosticAlert
	err    error
	signal chan model.DiagnosticAlert
}

func (f *fakeAlertStore) SaveDiagnosticAlert(ctx context.Context, alert model.DiagnosticAlert) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, alert)
	if f.signal != nil {
		f.signal <- alert
	}
	return nil
}

func TestDispatchGate(t *testing.T) {
	tests := []struct {
		name          string
		payload       model.DispatchPayload
		wantPersisted bool
	}{
		{
			name:          "all-below-thresholds",
			payload:       model.DispatchPayload{HealthIndex: 50, FaultProbability: 0.5, Severity: model.SeverityWarning},
			wantPersisted: false,
		},
		{
			name:          "low-health",
			payload:       model.DispatchPayload{HealthIndex: 35, FaultProbability: 0.5, Severity: model.SeverityWarning},
			wantPersisted: true,
		},
		{
			name:          "high-probability",
			payload:       model.DispatchPayload{HealthIndex: 80, FaultProbability: 0.75, Severity: model.SeverityNormal},
			wantPersisted: true,
		},
		{
			name:          "alarm-severity",
			payload:       model.DispatchPayload{HealthIndex: 80, FaultProbability: 0.1, Severity: model.SeverityAlarm},
			wantPersisted: true,
		},
		{
			name:          "trip-severity",
			payload:       model.DispatchPayload{HealthIndex: 80, FaultProbability: 0.1, Severity: model.SeverityTrip},
			wantPersisted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeAlertStore{}
			result := NewDispatchService(store).Dispatch(context.Background(), tt.payload)
			if result.Persisted != tt.wantPersisted {
				t.Fatalf("persisted = %v, want %v (reason=%s)", result.Persisted, tt.wantPersisted, result.Reason)
			}
			if tt.wantPersisted {
				if len(store.saved) != 1 {
					t.Fatalf("expected 1 saved alert, got %d", len(store.saved))
				}
				if result.AlertID == "" || result.AlertID != store.saved[0].AlertID {
					t.Fatalf("result must carry the persisted alert id")
				}
			} else {
				if len(store.saved) != 0 {
					t.Fatalf("suppressed dispatch must not touch the store")
				}
				if result.Reason != "below dispatch thresholds" {
					t.Fatalf("unexpected suppression reason: %s", result.Reason)
				}
			}
		})
	}
}

func TestDispatchNilStore(t *testing.T) {
	result := NewDispatchService(nil).Dispatch(context.Background(), model.DispatchPayload{HealthIndex: 10})
	if result.Persisted {
		t.Fatalf("nil store must never persist")
	}
	if result.Reason != "store unavailable" {
		t.Fatalf("expected store unavailable, got %s", result.Reason)
	}
}

func TestDispatchStoreFailureIsBestEffort(t *testing.T) {
	store := &fakeAlertStore{err: errors.New("pool closed")}
	result := NewDispatchService(store).Dispatch(context.Background(), model.DispatchPayload{FaultProbability: 0.9})
	if result.Persisted {
		t.Fatalf("store failure must not report persisted")
	}
	if result.Reason != "store unavailable" {
		t.Fatalf("expected store unavailable, got %s", result.Reason)
	}
}
