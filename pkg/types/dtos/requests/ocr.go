package request

// OcrRequest는 OCR 프록시 요청 본문입니다.
// ImageBase64의 max는 constants.MAX_IMAGE_BASE64_SIZE와 같습니다.
type OcrRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required,max=10485760"`
	OcrType     string `json:"ocrType"`
}
