package service

import (
	"testing"

	"github.com/grid-twin/backend/internal/model"
)

func fp(v float64) *float64 { return &v }

func numericDef(minAlarm, maxAlarm, min, max *float64) model.ParameterDefinition {
	return model.ParameterDefinition{
		Key:      "p",
		Label:    "Parameter",
		Kind:     model.ParameterNumeric,
		Min:      min,
		Max:      max,
		MinAlarm: minAlarm,
		MaxAlarm: maxAlarm,
	}
}

func TestClassifyNumericBands(t *testing.T) {
	tests := []struct {
		name  string
		def   model.ParameterDefinition
		value any
		want  model.Severity
	}{
		// maxAlarm M=100: M < v <= 1.1M → alarm, v > 1.1M → trip
		{name: "above-max-alarm", def: numericDef(nil, fp(100), nil, nil), value: 105.0, want: model.SeverityAlarm},
		{name: "at-trip-boundary", def: numericDef(nil, fp(100), nil, nil), value: 110.0, want: model.SeverityAlarm},
		{name: "beyond-trip-band", def: numericDef(nil, fp(100), nil, nil), value: 110.01, want: model.SeverityTrip},
		{name: "at-max-alarm", def: numericDef(nil, fp(100), nil, nil), value: 100.0, want: model.SeverityNormal},

		// minAlarm m=50: 0.8m <= v < m → alarm, v < 0.8m → trip
		{name: "below-min-alarm", def: numericDef(fp(50), nil, nil, nil), value: 45.0, want: model.SeverityAlarm},
		{name: "at-lower-trip-boundary", def: numericDef(fp(50), nil, nil, nil), value: 40.0, want: model.SeverityAlarm},
		{name: "beyond-lower-trip-band", def: numericDef(fp(50), nil, nil, nil), value: 39.99, want: model.SeverityTrip},

		// soft 범위 이탈은 warning (알람 한계 안쪽)
		{name: "above-soft-max", def: numericDef(nil, fp(100), nil, fp(80)), value: 90.0, want: model.SeverityWarning},
		{name: "below-soft-min", def: numericDef(fp(50), nil, fp(60), nil), value: 55.0, want: model.SeverityWarning},
		{name: "inside-envelope", def: numericDef(fp(50), fp(100), fp(60), fp(80)), value: 70.0, want: model.SeverityNormal},

		// 결측/비수치 값은 normal
		{name: "missing-value", def: numericDef(fp(50), fp(100), nil, nil), value: nil, want: model.SeverityNormal},
		{name: "non-numeric-value", def: numericDef(fp(50), fp(100), nil, nil), value: []int{1}, want: model.SeverityNormal},
		{name: "numeric-string", def: numericDef(nil, fp(100), nil, nil), value: "120", want: model.SeverityTrip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyParameter(tt.value, tt.def); got != tt.want {
				t.Fatalf("ClassifyParameter(%v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestClassifyNegativeThresholds(t *testing.T) {
	// 음수 한계에서도 밴드는 한계 바깥 방향으로 연장되어야 함
	tests := []struct {
		name  string
		def   model.ParameterDefinition
		value float64
		want  model.Severity
	}{
		// minAlarm = -20: 밴드 하한 -24
		{name: "negative-min-alarm", def: numericDef(fp(-20), nil, nil, nil), value: -22, want: model.SeverityAlarm},
		{name: "negative-min-trip", def: numericDef(fp(-20), nil, nil, nil), value: -25, want: model.SeverityTrip},
		{name: "negative-min-inside", def: numericDef(fp(-20), nil, nil, nil), value: -10, want: model.SeverityNormal},
		// maxAlarm = -10: 밴드 상한 -9
		{name: "negative-max-alarm", def: numericDef(nil, fp(-10), nil, nil), value: -9.5, want: model.SeverityAlarm},
		{name: "negative-max-trip", def: numericDef(nil, fp(-10), nil, nil), value: -8, want: model.SeverityTrip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyParameter(tt.value, tt.def); got != tt.want {
				t.Fatalf("ClassifyParameter(%v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestClassifyStatusParameter(t *testing.T) {
	def := model.ParameterDefinition{
		Key:    "state",
		Label:  "Device State",
		Kind:   model.ParameterStatus,
		States: []string{"healthy", "blocked", "faulted"},
		StateSeverity: map[string]model.Severity{
			"healthy": model.SeverityNormal,
			"blocked": model.SeverityAlarm,
			"faulted": model.SeverityTrip,
		},
	}

	tests := []struct {
		name  string
		value any
		want  model.Severity
	}{
		{name: "known-normal", value: "healthy", want: model.SeverityNormal},
		{name: "known-alarm", value: "blocked", want: model.SeverityAlarm},
		{name: "known-trip", value: "faulted", want: model.SeverityTrip},
		{name: "unknown-literal", value: "weird", want: model.SeverityNormal},
		{name: "non-string", value: 3.0, want: model.SeverityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyParameter(tt.value, def); got != tt.want {
				t.Fatalf("ClassifyParameter(%v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvaluateParametersPreservesOrder(t *testing.T) {
	defs := []model.ParameterDefinition{
		numericDef(nil, fp(100), nil, nil),
		{Key: "q", Label: "Q", Kind: model.ParameterNumeric, MaxAlarm: fp(10)},
	}
	defs[0].Key = "p"

	states := EvaluateParameters(defs, map[string]any{"p": 50.0, "q": 20.0})
	if len(states) != 2 {
		t.Fatalf("expected 2 states, got %d", len(states))
	}
	if states[0].Key != "p" || states[1].Key != "q" {
		t.Fatalf("definition order not preserved: %s, %s", states[0].Key, states[1].Key)
	}
	if states[1].Severity != model.SeverityTrip {
		t.Fatalf("expected q to classify as trip, got %s", states[1].Severity)
	}
}

func TestOverallSeverityEmptyIsNormal(t *testing.T) {
	if got := OverallSeverity(nil); got != model.SeverityNormal {
		t.Fatalf("empty state list should reduce to normal, got %s", got)
	}
}

// 더 심각한 측정값으로의 교체는 전체 심각도를 낮출 수 없어야 함
func TestOverallSeverityMonotonic(t *testing.T) {
	defs := []model.ParameterDefinition{
		numericDef(nil, fp(100), nil, fp(80)),
		{Key: "q", Label: "Q", Kind: model.ParameterNumeric, MaxAlarm: fp(10)},
	}
	defs[0].Key = "p"
	base := map[string]any{"p": 70.0, "q": 5.0}

	escalations := []any{90.0, 105.0, 115.0} // warning, alarm, trip
	previous := OverallSeverity(EvaluateParameters(defs, base))
	for _, v := range escalations {
		readings := map[string]any{"p": v, "q": base["q"]}
		current := OverallSeverity(EvaluateParameters(defs, readings))
		if current.Rank() < previous.Rank() {
			t.Fatalf("overall severity dropped from %s to %s after escalating p to %v", previous, current, v)
		}
		previous = current
	}
}
