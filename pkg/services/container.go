package service

import (
	"github.com/sh5080/ocr-proxy/pkg/configs"
	_interface "github.com/sh5080/ocr-proxy/pkg/interfaces"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다
func NewServiceContainer(config *configs.EnvConfig, httpClient _interface.HTTPClient) *_interface.ServiceContainer {
	return &_interface.ServiceContainer{
		OcrService: NewOcrService(config, httpClient),
	}
}
