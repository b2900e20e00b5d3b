package model

// SaveRequest represents a request to persist digitized Markdown.
// Mode is "create" (default) or "append".
type SaveRequest struct {
	Text string `json:"text"`
	Path string `json:"path"`
	Mode string `json:"mode"`
}

// SaveResponse reports where a document ended up.
type SaveResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"filePath"`
}

// FilesResponse lists document paths relative to the docs root.
type FilesResponse struct {
	Files []string `json:"files"`
}

// ChatRequest represents a plain text generation request.
type ChatRequest struct {
	Message string `json:"message"`
}

// AnswerResponse carries model output for /chat and /digitize.
type AnswerResponse struct {
	Answer string `json:"answer"`
}
