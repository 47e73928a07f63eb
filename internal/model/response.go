package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BriefingRequest - 운영자 브리핑 생성 요청
// 프론트가 진단 응답에서 추려 보낸 컨텍스트를 그대로 사용
type BriefingRequest struct {
	Component        string   `json:"component"`
	SubstationID     string   `json:"substationId"`
	PredictedFault   string   `json:"predictedFault"`
	Severity         string   `json:"severity"`
	FaultProbability float64  `json:"faultProbability"`
	HealthIndex      int      `json:"healthIndex"`
	Explanation      string   `json:"explanation"`
	Suggestions      []string `json:"suggestions"`
	Question         string   `json:"question"`
}

// BriefingResponse - 운영자 브리핑 생성 응답
type BriefingResponse struct {
	Status   string `json:"status"`
	Briefing string `json:"briefing"`
}
