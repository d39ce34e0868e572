package generateimage

// GenerateRequest - 이미지 생성 요청
// ImageParams가 있으면 Runware에 그대로 전달한다 (taskUUID만 보장).
type GenerateRequest struct {
	Prompt      string                 `json:"prompt"`
	ImageParams map[string]interface{} `json:"imageParams,omitempty"`
}

// GenerateResponse - 이미지 생성 결과 (URL 또는 data URI)
type GenerateResponse struct {
	ImageURL string `json:"imageUrl"`
}

// RunwareRequest - Runware imageInference 기본 요청 구조체
type RunwareRequest struct {
	TaskType       string   `json:"taskType"`
	TaskUUID       string   `json:"taskUUID"`
	Model          string   `json:"model"`
	PositivePrompt string   `json:"positivePrompt"`
	Height         int      `json:"height"`
	Width          int      `json:"width"`
	NumberResults  int      `json:"numberResults"`
	OutputType     []string `json:"outputType"`
	OutputFormat   string   `json:"outputFormat"`
	CFGScale       float64  `json:"CFGScale"`
	Steps          int      `json:"steps"`
	Scheduler      string   `json:"scheduler"`
	IncludeCost    bool     `json:"includeCost"`
	OutputQuality  int      `json:"outputQuality"`
}

// RunwareImage - Runware 응답 data[] 항목 중 이미지 필드
type RunwareImage struct {
	TaskType        string `json:"taskType,omitempty"`
	TaskUUID        string `json:"taskUUID,omitempty"`
	ImageURL        string `json:"imageURL,omitempty"`
	ImageDataURI    string `json:"imageDataURI,omitempty"`
	ImageBase64Data string `json:"imageBase64Data,omitempty"`
}
