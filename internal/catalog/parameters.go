// 설비 타입별 정적 파라미터 정의 테이블
// 기동 시점에 패키지 변수로 로드되는 불변 설정 데이터이며 런타임 변경 없음
//
// Min/Max는 soft 운전 범위(경고), MinAlarm/MaxAlarm은 hard 한계(알람/트립)

package catalog

import "github.com/grid-twin/backend/internal/model"

// DefaultComponent - componentType이 비었거나 미등록일 때 사용하는 기본 키
const DefaultComponent = "transformer"

func fp(v float64) *float64 { return &v }

func numeric(key, label, unit string, min, max, minAlarm, maxAlarm *float64) model.ParameterDefinition {
	return model.ParameterDefinition{
		Key:      key,
		Label:    label,
		Unit:     unit,
		Kind:     model.ParameterNumeric,
		Min:      min,
		Max:      max,
		MinAlarm: minAlarm,
		MaxAlarm: maxAlarm,
	}
}

func status(key, label string, states []string, table map[string]model.Severity) model.ParameterDefinition {
	return model.ParameterDefinition{
		Key:           key,
		Label:         label,
		Kind:          model.ParameterStatus,
		States:        states,
		StateSeverity: table,
	}
}

var componentParameters = map[string][]model.ParameterDefinition{
	"transformer": {
		numeric("oilTemp", "Oil Temperature", "°C", fp(20), fp(75), nil, fp(95)),
		numeric("windingTemp", "Winding Temperature", "°C", fp(25), fp(90), nil, fp(110)),
		numeric("loading", "Loading", "%", fp(10), fp(100), nil, fp(130)),
		numeric("hydrogen", "Dissolved Hydrogen", "ppm", nil, fp(100), nil, fp(200)),
		numeric("acetylene", "Dissolved Acetylene", "ppm", nil, fp(1), nil, fp(5)),
		numeric("moisture", "Oil Moisture", "ppm", nil, fp(20), nil, fp(30)),
		numeric("oilLevel", "Oil Level", "%", fp(80), fp(100), fp(60), nil),
		numeric("tapPosition", "Tap Position", "step", fp(1), fp(17), nil, nil),
	},
	"bayLines": {
		numeric("voltage", "Line Voltage", "kV", fp(210), fp(245), fp(195), fp(255)),
		numeric("current", "Line Current", "A", nil, fp(1200), nil, fp(1500)),
		numeric("frequency", "Frequency", "Hz", fp(49.5), fp(50.5), fp(48.5), fp(51.5)),
		numeric("powerFactor", "Power Factor", "", fp(0.85), fp(1.0), fp(0.7), nil),
	},
	"circuitBreaker": {
		numeric("sf6Pressure", "SF6 Gas Pressure", "bar", fp(6.0), fp(7.5), fp(5.5), nil),
		numeric("contactWear", "Contact Wear", "%", nil, fp(60), nil, fp(85)),
		numeric("operatingTime", "Operating Time", "ms", nil, fp(45), nil, fp(60)),
		status("springCharge", "Spring Charge", []string{"charged", "charging", "discharged"},
			map[string]model.Severity{
				"charged":    model.SeverityNormal,
				"charging":   model.SeverityWarning,
				"discharged": model.SeverityAlarm,
			}),
	},
	"busbar": {
		numeric("temperature", "Busbar Temperature", "°C", fp(20), fp(70), nil, fp(90)),
		numeric("current", "Busbar Current", "A", nil, fp(2000), nil, fp(2500)),
		numeric("voltageUnbalance", "Voltage Unbalance", "%", nil, fp(2), nil, fp(4)),
	},
	"isolator": {
		numeric("motorCurrent", "Motor Current", "A", nil, fp(8), nil, fp(12)),
		numeric("contactResistance", "Contact Resistance", "µΩ", nil, fp(150), nil, fp(250)),
		numeric("driveTorque", "Drive Torque", "Nm", fp(40), fp(120), fp(25), nil),
		status("position", "Isolator Position", []string{"open", "closed", "intermediate"},
			map[string]model.Severity{
				"open":         model.SeverityNormal,
				"closed":       model.SeverityNormal,
				"intermediate": model.SeverityAlarm,
			}),
	},
	"relay": {
		numeric("cpuTemp", "CPU Temperature", "°C", nil, fp(65), nil, fp(85)),
		numeric("settingDrift", "Setting Drift", "%", nil, fp(3), nil, fp(8)),
		status("deviceState", "Device State", []string{"healthy", "blocked", "faulted"},
			map[string]model.Severity{
				"healthy": model.SeverityNormal,
				"blocked": model.SeverityAlarm,
				"faulted": model.SeverityTrip,
			}),
	},
	"pmu": {
		numeric("phasorError", "Phasor Error", "TVE%", nil, fp(1), nil, fp(3)),
		status("gpsLock", "GPS Lock", []string{"locked", "holdover", "unlocked"},
			map[string]model.Severity{
				"locked":   model.SeverityNormal,
				"holdover": model.SeverityWarning,
				"unlocked": model.SeverityAlarm,
			}),
	},
	"gis": {
		numeric("sf6Density", "SF6 Density", "kg/m³", fp(42), fp(48), fp(38), nil),
		numeric("partialDischarge", "Partial Discharge", "pC", nil, fp(50), nil, fp(300)),
		numeric("moisture", "SF6 Moisture", "ppmv", nil, fp(150), nil, fp(250)),
	},
	"battery": {
		numeric("floatVoltage", "Float Voltage", "V", fp(118), fp(128), fp(110), fp(135)),
		numeric("cellImbalance", "Cell Imbalance", "mV", nil, fp(50), nil, fp(120)),
		numeric("temperature", "Battery Temperature", "°C", fp(10), fp(35), nil, fp(50)),
	},
	"environment": {
		numeric("temperature", "Ambient Temperature", "°C", fp(-10), fp(45), fp(-25), fp(60)),
		numeric("humidity", "Relative Humidity", "%", nil, fp(80), nil, fp(95)),
	},
}

// ComponentParameters - 컴포넌트 키에 해당하는 파라미터 정의 목록 반환
func ComponentParameters(component string) ([]model.ParameterDefinition, bool) {
	defs, ok := componentParameters[component]
	return defs, ok
}

// IsKnownComponent - 등록된 컴포넌트 키 여부
func IsKnownComponent(component string) bool {
	_, ok := componentParameters[component]
	return ok
}

// NormalizeComponent - 미등록 키를 기본 컴포넌트로 대체
func NormalizeComponent(component string) string {
	if IsKnownComponent(component) {
		return component
	}
	return DefaultComponent
}
