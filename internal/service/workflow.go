// 유지보수 워크플로우 구성 로직 정의
//
// 처리 흐름:
//  1. 자동 알람: 심각도 alarm 이상인 파라미터당 1건 생성
//  2. 보류 이슈: 레지스트리 문서의 유지보수 이력에서 해당 설비 타입 분량 최근 4건
//  3. 제안: 플레이북 각 항목의 1단계 조치 + 고위험 조건 시 우선 제안 prepend

package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grid-twin/backend/internal/catalog"
	"github.com/grid-twin/backend/internal/model"
)

// 보류 이슈로 노출하는 유지보수 이력 최대 건수
const maxPendingIssues = 4

// BuildMaintenancePlan - 평가 결과와 레지스트리 이력으로 유지보수 워크플로우 구성
func BuildMaintenancePlan(component string, meta model.AssetMetadata, states []model.ParameterState, faultProbability float64, healthScore int, now time.Time) model.MaintenancePlan {
	plan := model.MaintenancePlan{
		AutomaticAlerts: []model.MaintenanceRecord{},
		PendingIssues:   []model.MaintenanceRecord{},
		Suggestions:     []string{},
	}

	// 1. 자동 알람
	for _, s := range states {
		if !s.Severity.AtLeast(model.SeverityAlarm) {
			continue
		}
		plan.AutomaticAlerts = append(plan.AutomaticAlerts, model.MaintenanceRecord{
			ID:          uuid.NewString(),
			Title:       s.Label + " breach",
			Severity:    s.Severity,
			Timestamp:   now,
			Description: fmt.Sprintf("%s reading %v%s is outside the operating envelope", s.Label, s.Value, unitSuffix(s.Unit)),
			Owner:       "system",
			Status:      "open",
		})
	}

	// 2. 보류 이슈 (최근 이력이 뒤에 있으므로 끝에서 4건)
	entries := MaintenanceHistory(meta, component)
	start := 0
	if len(entries) > maxPendingIssues {
		start = len(entries) - maxPendingIssues
	}
	for _, entry := range entries[start:] {
		plan.PendingIssues = append(plan.PendingIssues, normalizeHistoryEntry(entry, now))
	}

	// 3. 제안 - 플레이북 1단계 조치
	for _, pb := range catalog.Playbook(component) {
		if len(pb.Steps) > 0 {
			plan.Suggestions = append(plan.Suggestions, pb.Steps[0])
		}
	}
	// 우선순위가 높은 제안이 항상 앞에 오도록 낮은 순서로 prepend
	if healthScore < 40 {
		plan.Suggestions = append([]string{"raise urgent ticket"}, plan.Suggestions...)
	}
	if faultProbability > 0.7 {
		plan.Suggestions = append([]string{"initiate emergency inspection"}, plan.Suggestions...)
	}

	return plan
}

// MaintenanceHistory - 레지스트리 문서에서 설비 타입의 유지보수 이력 추출
// 문서 형태는 두 가지를 허용: sub-array 이름으로 키잉된 맵 또는 단일 리스트
func MaintenanceHistory(meta model.AssetMetadata, component string) []map[string]any {
	raw, ok := meta.Document["maintenanceHistory"]
	if !ok {
		return nil
	}

	var list []any
	switch h := raw.(type) {
	case map[string]any:
		subArray := catalog.AssetSubArray[component]
		if entries, ok := h[subArray].([]any); ok {
			list = entries
		}
	case []any:
		list = h
	}

	entries := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if entry, ok := item.(map[string]any); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// normalizeHistoryEntry - 이력 항목을 MaintenanceRecord로 정규화 (status=in_progress)
func normalizeHistoryEntry(entry map[string]any, now time.Time) model.MaintenanceRecord {
	record := model.MaintenanceRecord{
		ID:        uuid.NewString(),
		Title:     stringField(entry, "title", "Maintenance activity"),
		Severity:  model.SeverityNormal,
		Timestamp: parseHistoryDate(entry, now),
		Owner:     stringField(entry, "performedBy", "unassigned"),
		Status:    "in_progress",
	}
	record.Description = stringField(entry, "description", "")
	if sev, ok := entry["severity"].(string); ok {
		if model.Severity(sev).Rank() > 0 || model.Severity(sev) == model.SeverityNormal {
			record.Severity = model.Severity(sev)
		}
	}
	return record
}

func parseHistoryDate(entry map[string]any, fallback time.Time) time.Time {
	raw, ok := entry["date"].(string)
	if !ok {
		return fallback
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return fallback
}

func stringField(entry map[string]any, key, fallback string) string {
	if v, ok := entry[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
