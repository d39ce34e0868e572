package main

import (
	"log"
	"net/http"
	"os"

	"ai-telephone-server/modules/common/config"
	"ai-telephone-server/modules/common/upstream"

	"github.com/spf13/cobra"
)

var (
	envFile string
	port    string
)

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "AI Telephone Game API proxy",
	Long: `Serves /api/analyze-image (OpenRouter vision) and /api/generate-image (Runware)
with server-held API keys.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "env file to load (default .env if present)")
	rootCmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
}

func run() error {
	// 환경변수 로드
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}

	r := newRouter(cfg, upstream.NewHTTPClient())

	log.Printf("🚀 AI Telephone server starting on port %s", cfg.Port)
	log.Printf("🔍 Analyze image: http://localhost:%s/api/analyze-image", cfg.Port)
	log.Printf("🎨 Generate image: http://localhost:%s/api/generate-image", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)

	return http.ListenAndServe(cfg.GetAddr(), r)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("❌ Server failed: %v", err)
		os.Exit(1)
	}
}
