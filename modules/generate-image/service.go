package generateimage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ai-telephone-server/modules/common/apperr"
	"ai-telephone-server/modules/common/config"
	"ai-telephone-server/modules/common/upstream"
)

// 기본 생성 파라미터 (HiDream via Runware)
const (
	DefaultModelID       = "runware:97@3"
	DefaultWidth         = 512
	DefaultHeight        = 512
	DefaultSteps         = 16
	DefaultCFGScale      = 2.5
	DefaultOutputFormat  = "WEBP"
	DefaultOutputQuality = 85
	DefaultScheduler     = "Default"
)

type Service struct {
	httpClient upstream.Doer
	taskIDs    TaskIDGenerator
	apiKey     string
	apiURL     string
}

func NewService(cfg *config.Config, client upstream.Doer, taskIDs TaskIDGenerator) *Service {
	if cfg.RunwareAPIKey == "" {
		log.Println("⚠️ [GenerateImage] RUNWARE_API_KEY not configured")
	}
	if taskIDs == nil {
		taskIDs = UUIDGenerator{}
	}

	return &Service{
		httpClient: client,
		taskIDs:    taskIDs,
		apiKey:     cfg.RunwareAPIKey,
		apiURL:     cfg.RunwareAPIURL,
	}
}

// Generate - Runware로 이미지 생성
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if req.Prompt == "" {
		return nil, apperr.Validation("Prompt is required")
	}

	if s.apiKey == "" {
		return nil, apperr.Configuration("Runware API key not configured")
	}

	taskParams := s.buildTaskParams(req)

	log.Printf("🎨 [GenerateImage] Generating image - prompt: %s, custom params: %v",
		truncateString(req.Prompt, 50), req.ImageParams != nil)

	// Runware는 task 배열을 받는다
	resp, err := upstream.PostJSON(ctx, s.httpClient, s.apiURL, s.apiKey, nil, []interface{}{taskParams})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, apperr.Upstream(fmt.Sprintf("Runware API error: %d - %s", resp.StatusCode, string(resp.Body)))
	}

	imageURL, err := extractImageURL(resp.Body)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ [GenerateImage] Image generated: %s", truncateString(imageURL, 80))
	return &GenerateResponse{ImageURL: imageURL}, nil
}

// buildTaskParams - 호출자 imageParams 또는 기본 파라미터. taskUUID는 항상 채운다.
func (s *Service) buildTaskParams(req *GenerateRequest) interface{} {
	if req.ImageParams != nil {
		if !hasTaskUUID(req.ImageParams) {
			req.ImageParams["taskUUID"] = s.taskIDs.NewTaskID()
		}
		return req.ImageParams
	}

	return RunwareRequest{
		TaskType:       "imageInference",
		TaskUUID:       s.taskIDs.NewTaskID(),
		Model:          DefaultModelID,
		PositivePrompt: req.Prompt,
		Height:         DefaultHeight,
		Width:          DefaultWidth,
		NumberResults:  1,
		OutputType:     []string{"URL"},
		OutputFormat:   DefaultOutputFormat,
		CFGScale:       DefaultCFGScale,
		Steps:          DefaultSteps,
		Scheduler:      DefaultScheduler,
		IncludeCost:    true,
		OutputQuality:  DefaultOutputQuality,
	}
}

// hasTaskUUID treats missing, null, empty, false and zero values as absent.
func hasTaskUUID(params map[string]interface{}) bool {
	switch v := params["taskUUID"].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// extractImageURL - data[0]에서 imageURL > imageDataURI > imageBase64Data 순으로 추출
func extractImageURL(body []byte) (string, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", apperr.UpstreamWrap("failed to parse Runware response", err)
	}

	var items []json.RawMessage
	if len(envelope.Data) == 0 || json.Unmarshal(envelope.Data, &items) != nil || len(items) == 0 {
		return "", apperr.Upstream("Invalid response format from Runware API")
	}

	var image RunwareImage
	if err := json.Unmarshal(items[0], &image); err != nil {
		return "", apperr.Upstream("No image URL found in response")
	}

	switch {
	case image.ImageURL != "":
		return image.ImageURL, nil
	case image.ImageDataURI != "":
		return image.ImageDataURI, nil
	case image.ImageBase64Data != "":
		return "data:image/jpeg;base64," + image.ImageBase64Data, nil
	}

	return "", apperr.Upstream("No image URL found in response")
}

// truncateString - 로그용, rune 단위로 자름
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
