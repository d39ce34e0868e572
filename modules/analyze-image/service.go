package analyzeimage

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"ai-telephone-server/modules/common/apperr"
	"ai-telephone-server/modules/common/config"
	"ai-telephone-server/modules/common/upstream"
)

const (
	// 생성 프롬프트 추측 지시문
	guessPromptInstruction = "This image was created by an AI image generator. Give your best guess at the prompt used. Include no other text, your only output should be your guess about the prompt that generated the image."

	maxTokens   = 150
	temperature = 0.7
)

type Service struct {
	httpClient upstream.Doer
	apiKey     string
	apiURL     string
	model      string
	referer    string
	title      string
}

func NewService(cfg *config.Config, client upstream.Doer) *Service {
	if cfg.OpenRouterAPIKey == "" {
		log.Println("⚠️ [AnalyzeImage] OPENROUTER_API_KEY not configured")
	}

	return &Service{
		httpClient: client,
		apiKey:     cfg.OpenRouterAPIKey,
		apiURL:     cfg.OpenRouterAPIURL,
		model:      cfg.OpenRouterModel,
		referer:    cfg.AppReferer,
		title:      cfg.AppTitle,
	}
}

// Analyze - 이미지를 만든 프롬프트를 비전 모델로 추측
func (s *Service) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	if req.ImageURL == "" {
		return nil, apperr.Validation("Image URL is required")
	}

	if s.apiKey == "" {
		return nil, apperr.Configuration("OpenRouter API key not configured")
	}

	log.Printf("🔍 [AnalyzeImage] Analyzing image: %s", truncateString(req.ImageURL, 80))

	resp, err := upstream.PostJSON(ctx, s.httpClient, s.apiURL, s.apiKey, map[string]string{
		"HTTP-Referer": s.referer,
		"X-Title":      s.title,
	}, s.buildRequest(req.ImageURL))
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, apperr.Upstream(upstreamErrorMessage(resp))
	}

	var completion ChatCompletionResponse
	if err := json.Unmarshal(resp.Body, &completion); err != nil {
		return nil, apperr.UpstreamWrap("failed to parse OpenRouter response", err)
	}

	// content가 null이면 응답 없음으로 처리
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == nil {
		return nil, apperr.Upstream("No response from OpenRouter API")
	}

	guess := strings.TrimSpace(*completion.Choices[0].Message.Content)
	log.Printf("✅ [AnalyzeImage] Prompt guessed: %s", truncateString(guess, 50))

	return &AnalyzeResponse{AnalyzedPrompt: guess}, nil
}

func (s *Service) buildRequest(imageURL string) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model: s.model,
		Messages: []ChatMessage{
			{
				Role: "user",
				Content: []ChatContentPart{
					{Type: "text", Text: guessPromptInstruction},
					{Type: "image_url", ImageURL: &ChatImageURL{URL: imageURL}},
				},
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}

// upstreamErrorMessage - error.message 우선, 없으면 HTTP 상태 문구
func upstreamErrorMessage(resp *upstream.Response) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(resp.Body, &errResp); err == nil && errResp.Error != nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	if resp.Status != "" {
		return resp.Status
	}
	return "OpenRouter API error"
}

// truncateString - 로그용, rune 단위로 자름
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
