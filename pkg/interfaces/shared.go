package _interface

import (
	"net/http"

	"github.com/sh5080/ocr-proxy/pkg/configs"
)

// HTTPClient는 외부 HTTP 호출을 추상화합니다. *http.Client가 그대로 만족하며,
// 테스트에서는 가짜 구현으로 대체합니다.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Service struct {
	Config *configs.EnvConfig
	Client HTTPClient
}

// ServiceContainer는 모든 서비스 인스턴스를 보관합니다
type ServiceContainer struct {
	OcrService OcrService
}
