package model

// Severity - 파라미터/이벤트 심각도 등급
// normal < warning < alarm < trip 순서의 전순서(total order)를 가지며,
// 분류와 "worst of N" 축약 양쪽에서 동일한 순서를 사용
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityWarning Severity = "warning"
	SeverityAlarm   Severity = "alarm"
	SeverityTrip    Severity = "trip"
)

// 순서 인덱스 테이블 (값이 클수록 심각)
var severityRank = map[Severity]int{
	SeverityNormal:  0,
	SeverityWarning: 1,
	SeverityAlarm:   2,
	SeverityTrip:    3,
}

// Rank - 순서 인덱스 반환 (미정의 값은 normal과 동일하게 0)
func (s Severity) Rank() int {
	return severityRank[s]
}

// AtLeast - s가 other 이상의 심각도인지 확인
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// MaxSeverity - 두 심각도 중 더 심각한 쪽 반환
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
