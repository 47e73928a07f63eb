// 운영자 브리핑 생성 비즈니스 로직 정의
// 프론트가 보낸 진단 컨텍스트를 프롬프트로 조립해 생성 클라이언트에 위임

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grid-twin/backend/internal/model"
)

var ErrInvalidBriefingRequest = errors.New("invalid briefing request")

// BriefingGenerator - 브리핑 텍스트 생성 인터페이스
type BriefingGenerator interface {
	GenerateBriefing(ctx context.Context, prompt string) (string, error)
}

// BriefingService 구조체 정의
type BriefingService struct {
	generator BriefingGenerator
}

// BriefingService 객체 생성 (generator가 nil이면 기능 비활성)
func NewBriefingService(generator BriefingGenerator) *BriefingService {
	return &BriefingService{generator: generator}
}

// IsConfigured - 생성 클라이언트 설정 여부
func (s *BriefingService) IsConfigured() bool {
	return s.generator != nil
}

func (s *BriefingService) Generate(ctx context.Context, req model.BriefingRequest) (*model.BriefingResponse, error) {
	if strings.TrimSpace(req.Component) == "" {
		return nil, fmt.Errorf("%w: component is required", ErrInvalidBriefingRequest)
	}

	briefing, err := s.generator.GenerateBriefing(ctx, buildBriefingPrompt(req))
	if err != nil {
		return nil, err
	}

	return &model.BriefingResponse{Status: "success", Briefing: briefing}, nil
}

// buildBriefingPrompt - 진단 컨텍스트를 프롬프트로 조립
func buildBriefingPrompt(req model.BriefingRequest) string {
	var b strings.Builder
	b.WriteString("You are assisting a substation operator. Write a short, factual briefing (max 6 sentences) for the diagnosis below.\n\n")
	fmt.Fprintf(&b, "Component: %s\n", req.Component)
	if req.SubstationID != "" {
		fmt.Fprintf(&b, "Substation: %s\n", req.SubstationID)
	}
	fmt.Fprintf(&b, "Predicted fault: %s (severity=%s, probability=%.2f)\n", req.PredictedFault, req.Severity, req.FaultProbability)
	fmt.Fprintf(&b, "Health index: %d/100\n", req.HealthIndex)
	if req.Explanation != "" {
		fmt.Fprintf(&b, "Model explanation: %s\n", req.Explanation)
	}
	if len(req.Suggestions) > 0 {
		fmt.Fprintf(&b, "Suggested actions: %s\n", strings.Join(req.Suggestions, "; "))
	}
	if q := strings.TrimSpace(req.Question); q != "" {
		fmt.Fprintf(&b, "\nOperator question: %s\n", q)
	}
	return b.String()
}
