package _interface

import (
	"context"
	"encoding/json"

	request "github.com/sh5080/ocr-proxy/pkg/types/dtos/requests"
)

// OcrService는 OCR 요청을 바이두로 중계하는 서비스 인터페이스입니다
type OcrService interface {
	// Recognize는 토큰을 발급받아 이미지를 OCR 엔드포인트로 전달하고 원본 JSON을 반환합니다
	Recognize(ctx context.Context, req request.OcrRequest) (json.RawMessage, error)
}

// TokenProvider는 바이두 액세스 토큰 발급 인터페이스입니다
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// OcrClient는 선택된 OCR 엔드포인트로 이미지를 전송합니다
type OcrClient interface {
	Recognize(ctx context.Context, endpoint string, accessToken string, imageBase64 string) (json.RawMessage, error)
}
