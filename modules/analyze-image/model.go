package analyzeimage

// AnalyzeRequest - 이미지 분석 요청
type AnalyzeRequest struct {
	ImageURL string `json:"imageUrl"`
}

// AnalyzeResponse - 이미지 분석 결과
type AnalyzeResponse struct {
	AnalyzedPrompt string `json:"analyzedPrompt"`
}

// ChatCompletionRequest - OpenRouter chat completions 요청 구조체
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type ChatMessage struct {
	Role    string            `json:"role"`
	Content []ChatContentPart `json:"content"`
}

type ChatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *ChatImageURL `json:"image_url,omitempty"`
}

type ChatImageURL struct {
	URL string `json:"url"`
}

// ChatCompletionResponse - OpenRouter 응답 구조체 (필요한 필드만)
type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ErrorResponse - OpenRouter 에러 응답 body
type ErrorResponse struct {
	Error *struct {
		Message string `json:"message"`
		Code    any    `json:"code,omitempty"`
	} `json:"error"`
}
