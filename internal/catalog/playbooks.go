// 설비 타입별 유지보수 플레이북과 레지스트리 sub-array 매핑
// MaintenanceWorkflowBuilder가 제안(suggestions)과 보류 이슈 추출에 사용

package catalog

// AssetSubArray - 컴포넌트 키 → 레지스트리 문서 내 자산 sub-array 이름
// 레지스트리 스키마가 정한 고정 매핑이며 계산으로 유도하지 않음
var AssetSubArray = map[string]string{
	"transformer":    "transformers",
	"bayLines":       "powerFlowLines",
	"circuitBreaker": "breakers",
	"isolator":       "isolators",
	"busbar":         "busbars",
	"relay":          "relays",
	"pmu":            "pmus",
	"gis":            "gisBays",
	"battery":        "batteryBanks",
	"environment":    "environmentSensors",
}

// PlaybookEntry - 점검 항목과 단계별 조치
type PlaybookEntry struct {
	Issue string
	Steps []string
}

var playbooks = map[string][]PlaybookEntry{
	"transformer": {
		{Issue: "Winding Hotspot", Steps: []string{"run infrared scan of HV winding", "verify cooling bank operation", "reduce loading below 90%"}},
		{Issue: "Oil Degradation", Steps: []string{"sample oil for DGA and moisture", "schedule filtration if moisture > 20ppm"}},
		{Issue: "Tap Changer Wear", Steps: []string{"inspect OLTC contact wear", "check drive mechanism torque"}},
	},
	"bayLines": {
		{Issue: "Voltage Sag", Steps: []string{"check PT circuit connections", "review tap settings on feeding transformer"}},
		{Issue: "Current Unbalance", Steps: []string{"verify CT core saturation", "inspect phase conductor joints"}},
	},
	"circuitBreaker": {
		{Issue: "SF6 Leak", Steps: []string{"perform SF6 leak detection sweep", "top up gas and trend pressure"}},
		{Issue: "Slow Operating Mechanism", Steps: []string{"measure open/close timing", "service spring drive"}},
	},
	"busbar": {
		{Issue: "Thermal Hotspot", Steps: []string{"run thermal imaging of joints", "re-torque spacer clamps"}},
		{Issue: "Overload Risk", Steps: []string{"review load distribution across sections"}},
	},
	"isolator": {
		{Issue: "Contact Resistance Rise", Steps: []string{"measure jaw contact resistance", "clean and grease contacts"}},
		{Issue: "Drive Torque Drop", Steps: []string{"inspect drive shaft coupling", "test motor stall current"}},
	},
	"relay": {
		{Issue: "Incorrect Settings", Steps: []string{"verify zone-2 reach against study", "re-apply settings file"}},
		{Issue: "Firmware Fault", Steps: []string{"check watchdog log on CPU board", "schedule firmware update window"}},
	},
	"pmu": {
		{Issue: "GPS Unlock", Steps: []string{"inspect antenna cable and mount", "verify holdover oscillator drift"}},
		{Issue: "Phasor Drift", Steps: []string{"calibrate ADC board against reference"}},
	},
	"gis": {
		{Issue: "Partial Discharge", Steps: []string{"run UHF PD measurement on compartment", "trend PD magnitude weekly"}},
		{Issue: "SF6 Moisture Rise", Steps: []string{"sample compartment gas moisture", "replace desiccant"}},
	},
	"battery": {
		{Issue: "Cell Imbalance", Steps: []string{"measure per-cell float voltage", "equalize charge on affected string"}},
		{Issue: "Float Voltage Drop", Steps: []string{"inspect charger unit output", "check DC bus connections"}},
	},
	"environment": {
		{Issue: "Thermal Stress", Steps: []string{"verify HVAC setpoints in control room"}},
		{Issue: "Humidity Spike", Steps: []string{"check dehumidifier and door seals"}},
	},
}

// Playbook - 컴포넌트의 유지보수 플레이북 반환 (미등록이면 빈 목록)
func Playbook(component string) []PlaybookEntry {
	return playbooks[component]
}
