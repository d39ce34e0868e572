package main

import (
	"encoding/json"
	"net/http"

	analyzeimage "ai-telephone-server/modules/analyze-image"
	"ai-telephone-server/modules/common/config"
	"ai-telephone-server/modules/common/upstream"
	generateimage "ai-telephone-server/modules/generate-image"

	"github.com/gorilla/mux"
)

const serviceName = "ai-telephone-server"

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

// newRouter - 라우터 설정
// API 라우트는 Methods()로 제한하지 않는다. OPTIONS/405 처리는 각 핸들러가 직접 한다.
func newRouter(cfg *config.Config, client upstream.Doer) *mux.Router {
	analyzeHandler := analyzeimage.NewHandler(cfg, client)
	generateHandler := generateimage.NewGenerateImageHandler(cfg, client, generateimage.UUIDGenerator{})

	r := mux.NewRouter()

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze-image", analyzeHandler.HandleAnalyze)
	api.HandleFunc("/generate-image", generateHandler.GenerateImage)

	return r
}
