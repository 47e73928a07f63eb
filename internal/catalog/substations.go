// 정적 폴백 변전소 카탈로그
// 레지스트리 직접 조회와 필드 질의가 모두 실패했을 때의 3차 해석 티어

package catalog

import "strings"

// FallbackSubstation - 폴백 카탈로그 항목
type FallbackSubstation struct {
	ID               string
	Code             string
	AreaName         string
	DisplayName      string
	VoltageClass     string
	InstallationYear int
}

var fallbackSubstations = []FallbackSubstation{
	{ID: "CHN-482153", Code: "CHN001", AreaName: "Chennai North", DisplayName: "Chennai North 230kV GSS", VoltageClass: "230kV", InstallationYear: 2008},
	{ID: "MAD-728412", Code: "MAD002", AreaName: "Madurai West", DisplayName: "Madurai West 110kV SS", VoltageClass: "110kV", InstallationYear: 2013},
	{ID: "CBE-190347", Code: "CBE003", AreaName: "Coimbatore East", DisplayName: "Coimbatore East 230kV GSS", VoltageClass: "230kV", InstallationYear: 2016},
	{ID: "TRY-553920", Code: "TRY004", AreaName: "Trichy Central", DisplayName: "Trichy Central 110kV SS", VoltageClass: "110kV", InstallationYear: 2005},
}

// FindFallback - id/code/areaName 대소문자 무시 매칭으로 폴백 카탈로그 조회
func FindFallback(identifier string) (FallbackSubstation, bool) {
	needle := strings.ToLower(strings.TrimSpace(identifier))
	if needle == "" {
		return FallbackSubstation{}, false
	}
	for _, s := range fallbackSubstations {
		if strings.ToLower(s.ID) == needle ||
			strings.ToLower(s.Code) == needle ||
			strings.ToLower(s.AreaName) == needle {
			return s, true
		}
	}
	return FallbackSubstation{}, false
}

// Document - 폴백 항목을 레지스트리 문서와 같은 형태로 변환
func (s FallbackSubstation) Document() map[string]any {
	return map[string]any{
		"master": map[string]any{
			"substationCode":   s.Code,
			"areaName":         s.AreaName,
			"displayName":      s.DisplayName,
			"voltageClass":     s.VoltageClass,
			"installationYear": s.InstallationYear,
		},
	}
}
