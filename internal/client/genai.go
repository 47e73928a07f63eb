package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/grid-twin/backend/internal/config"
	"google.golang.org/genai"
)

// BriefingClient - 진단 결과를 운영자 브리핑 문장으로 변환하는 생성 클라이언트
type BriefingClient struct {
	client *genai.Client
	model  string
}

func NewBriefingClient(cfg config.AIConfig) (*BriefingClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &BriefingClient{client: client, model: "gemini-2.0-flash"}, nil
}

func (c *BriefingClient) GenerateBriefing(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("empty briefing result")
	}
	return text, nil
}
