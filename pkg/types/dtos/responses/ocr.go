package response

// ErrorResponse는 모든 오류 응답의 본문입니다.
// Message는 업스트림 처리 실패(500)일 때만 채워집니다.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
