// 파라미터 정의 및 평가 결과 구조체를 정의
// 정의(ParameterDefinition)는 catalog 레이어의 정적 설정으로만 생성되고
// 런타임에는 절대 변경하지 않음

package model

// ParameterKind - 파라미터 타입 태그 (numeric | status)
// optional 필드 덩어리 대신 태그로 분기하여 분류기가 빠짐없이 매칭 가능
type ParameterKind string

const (
	ParameterNumeric ParameterKind = "numeric"
	ParameterStatus  ParameterKind = "status"
)

// ParameterDefinition - 설비 타입별 파라미터 정의
// Kind == ParameterNumeric: Min/Max(soft 한계), MinAlarm/MaxAlarm(hard 한계) 사용
// Kind == ParameterStatus: States(허용 리터럴), StateSeverity(리터럴→심각도) 사용
type ParameterDefinition struct {
	Key   string
	Label string
	Unit  string
	Kind  ParameterKind

	// numeric 전용 (nil이면 해당 한계 없음)
	Min      *float64
	Max      *float64
	MinAlarm *float64
	MaxAlarm *float64

	// status 전용
	States        []string
	StateSeverity map[string]Severity
}

// ParameterState - 한 평가 사이클에서의 파라미터 상태
// 생성 후 변경하지 않음 (사이클마다 새로 생성)
type ParameterState struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Value    any      `json:"value"` // float64, 상태 리터럴(string), 또는 nil(결측)
	Unit     string   `json:"unit,omitempty"`
	Severity Severity `json:"severity"`
	MinAlarm *float64 `json:"minAlarm,omitempty"`
	MaxAlarm *float64 `json:"maxAlarm,omitempty"`
}
