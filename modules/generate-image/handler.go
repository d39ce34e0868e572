package generateimage

import (
	"fmt"
	"net/http"

	"ai-telephone-server/modules/common/config"
	"ai-telephone-server/modules/common/response"
	"ai-telephone-server/modules/common/upstream"
)

const (
	logTag        = "GenerateImage"
	failurePhrase = "Image generation failed"
)

type GenerateImageHandler struct {
	service *Service
}

func NewGenerateImageHandler(cfg *config.Config, client upstream.Doer, taskIDs TaskIDGenerator) *GenerateImageHandler {
	return &GenerateImageHandler{
		service: NewService(cfg, client, taskIDs),
	}
}

// GenerateImage - POST /api/generate-image
// 프롬프트로 이미지를 생성하고 URL 또는 data URI를 반환
func (h *GenerateImageHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	// OPTIONS 요청 처리
	if r.Method == http.MethodOptions {
		response.Preflight(w)
		return
	}

	// POST만 허용
	if r.Method != http.MethodPost {
		response.MethodNotAllowed(w)
		return
	}

	// Request 파싱
	// imageParams 숫자를 그대로 전달하기 위해 json.Number 사용
	var req GenerateRequest
	if err := response.DecodeJSON(r.Body, &req, true); err != nil {
		response.Failure(w, logTag, failurePhrase, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		response.Failure(w, logTag, failurePhrase, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
