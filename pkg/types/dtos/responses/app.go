package response

// HealthResponse는 상태 확인 요청에 대한 응답을 나타냅니다.
type HealthResponse struct {
	Status    string `json:"status"`
	AIEnabled bool   `json:"ai_enabled"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse는 오류 응답을 나타냅니다.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
