package response

import (
	"encoding/json"
	"log"
	"net/http"

	"ai-telephone-server/modules/common/apperr"
)

const (
	AllowedMethods = "POST, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization"
)

// ErrorEnvelope - 모든 실패 응답의 공통 형태
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// Preflight - CORS preflight 응답 (빈 body)
func Preflight(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", AllowedMethods)
	h.Set("Access-Control-Allow-Headers", AllowedHeaders)
	w.WriteHeader(http.StatusOK)
}

// MethodNotAllowed - 405, plain text, CORS 헤더 없음
func MethodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

// JSON - JSON 응답 + CORS origin 헤더
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// Error - ErrorEnvelope 응답
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorEnvelope{Error: message})
}

// Failure logs err and writes the matching ErrorEnvelope. Validation and
// configuration errors are sent as-is; everything else is prefixed with phrase.
func Failure(w http.ResponseWriter, tag, phrase string, err error) {
	status := apperr.StatusOf(err)

	if apperr.IsClientFacing(err) {
		log.Printf("⚠️ [%s] Rejected request: %v", tag, err)
		Error(w, status, err.Error())
		return
	}

	log.Printf("❌ [%s] %s: %v", tag, phrase, err)
	Error(w, status, phrase+": "+err.Error())
}
