package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultOpenRouterAPIURL = "https://openrouter.ai/api/v1/chat/completions"
	DefaultOpenRouterModel  = "google/gemini-2.0-flash-exp"
	DefaultRunwareAPIURL    = "https://api.runware.ai/v1"
	DefaultAppReferer       = "https://ai-telephone-game.pages.dev"
	DefaultAppTitle         = "AI Telephone Game"
	DefaultPort             = "8080"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// OpenRouter (이미지 분석)
	OpenRouterAPIKey string
	OpenRouterAPIURL string
	OpenRouterModel  string

	// OpenRouter에 전달하는 앱 식별 헤더
	AppReferer string
	AppTitle   string

	// Runware (이미지 생성)
	RunwareAPIKey string
	RunwareAPIURL string

	// Server
	Port string
}

// LoadConfig - 환경변수 로드
// envFile이 비어있으면 현재 디렉토리의 .env 파일을 시도한다.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	cfg := FromEnv()

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   OpenRouter: %s (model: %s, key set: %v)", cfg.OpenRouterAPIURL, cfg.OpenRouterModel, cfg.OpenRouterAPIKey != "")
	log.Printf("   Runware: %s (key set: %v)", cfg.RunwareAPIURL, cfg.RunwareAPIKey != "")
	log.Printf("   Port: %s", cfg.Port)

	return cfg, nil
}

// FromEnv - 현재 프로세스 환경변수에서 Config 생성 (.env 로드 없음)
// API 키가 없어도 에러가 아니다. 요청 시점에 설정 오류로 응답한다.
func FromEnv() *Config {
	return &Config{
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterAPIURL: getEnv("OPENROUTER_API_URL", DefaultOpenRouterAPIURL),
		OpenRouterModel:  getEnv("OPENROUTER_MODEL", DefaultOpenRouterModel),

		AppReferer: getEnv("APP_REFERER", DefaultAppReferer),
		AppTitle:   getEnv("APP_TITLE", DefaultAppTitle),

		RunwareAPIKey: getEnv("RUNWARE_API_KEY", ""),
		RunwareAPIURL: getEnv("RUNWARE_API_URL", DefaultRunwareAPIURL),

		Port: getEnv("PORT", DefaultPort),
	}
}

// GetAddr - 서버 listen 주소
func (c *Config) GetAddr() string {
	return ":" + c.Port
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
