package model

import "testing"

func TestSeverityOrdering(t *testing.T) {
	ordered := []Severity{SeverityNormal, SeverityWarning, SeverityAlarm, SeverityTrip}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Fatalf("expected %s to rank above %s", ordered[i], ordered[i-1])
		}
	}
}

func TestSeverityUnknownRanksAsNormal(t *testing.T) {
	if Severity("bogus").Rank() != SeverityNormal.Rank() {
		t.Fatalf("unknown severity should rank as normal")
	}
}

func TestMaxSeverity(t *testing.T) {
	tests := []struct {
		name string
		a, b Severity
		want Severity
	}{
		{name: "trip-wins", a: SeverityWarning, b: SeverityTrip, want: SeverityTrip},
		{name: "order-independent", a: SeverityAlarm, b: SeverityNormal, want: SeverityAlarm},
		{name: "equal", a: SeverityWarning, b: SeverityWarning, want: SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxSeverity(tt.a, tt.b); got != tt.want {
				t.Fatalf("MaxSeverity(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	if !SeverityTrip.AtLeast(SeverityAlarm) {
		t.Fatalf("trip should be at least alarm")
	}
	if SeverityWarning.AtLeast(SeverityAlarm) {
		t.Fatalf("warning should not be at least alarm")
	}
	if !SeverityAlarm.AtLeast(SeverityAlarm) {
		t.Fatalf("alarm should be at least alarm")
	}
}
