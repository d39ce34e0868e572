package analyzeimage

import (
	"fmt"
	"net/http"

	"ai-telephone-server/modules/common/config"
	"ai-telephone-server/modules/common/response"
	"ai-telephone-server/modules/common/upstream"
)

const (
	logTag        = "AnalyzeImage"
	failurePhrase = "Image analysis failed"
)

type Handler struct {
	service *Service
}

func NewHandler(cfg *config.Config, client upstream.Doer) *Handler {
	return &Handler{
		service: NewService(cfg, client),
	}
}

// HandleAnalyze - POST /api/analyze-image
// 이미지 URL을 받아 생성 프롬프트 추측 결과를 반환
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
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
	var req AnalyzeRequest
	if err := response.DecodeJSON(r.Body, &req, false); err != nil {
		response.Failure(w, logTag, failurePhrase, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := h.service.Analyze(r.Context(), &req)
	if err != nil {
		response.Failure(w, logTag, failurePhrase, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
