package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	client "github.com/sh5080/ocr-proxy/pkg/clients"
	"github.com/sh5080/ocr-proxy/pkg/configs"
	_interface "github.com/sh5080/ocr-proxy/pkg/interfaces"
	"github.com/sh5080/ocr-proxy/pkg/services/internal/common"
	constants "github.com/sh5080/ocr-proxy/pkg/types"
	request "github.com/sh5080/ocr-proxy/pkg/types/dtos/requests"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

// ErrMissingCredentials는 바이두 API 키 또는 시크릿 키가 설정되지 않았음을 나타냅니다
var ErrMissingCredentials = errors.New(constants.MSG_MISSING_CREDENTIALS)

// OcrImpl은 OCR 프록시 서비스 구현체입니다.
// 요청 간 공유하는 상태는 읽기 전용 설정과 엔드포인트 테이블뿐입니다.
type OcrImpl struct {
	config    *configs.EnvConfig
	tokens    _interface.TokenProvider
	ocrClient _interface.OcrClient
	endpoints common.EndpointTable
}

var _ _interface.OcrService = (*OcrImpl)(nil)

// NewOcrService는 바이두 클라이언트를 사용하는 OCR 서비스를 생성합니다.
// httpClient가 nil이면 기본 http.Client를 사용합니다.
func NewOcrService(config *configs.EnvConfig, httpClient _interface.HTTPClient) *OcrImpl {
	baidu := client.NewBaiduAPIClient(config, httpClient)
	return NewOcrServiceWithClients(config, baidu, baidu)
}

// NewOcrServiceWithClients는 토큰 발급기와 OCR 클라이언트를 직접 주입해 서비스를 생성합니다
func NewOcrServiceWithClients(config *configs.EnvConfig, tokens _interface.TokenProvider, ocrClient _interface.OcrClient) *OcrImpl {
	return &OcrImpl{
		config:    config,
		tokens:    tokens,
		ocrClient: ocrClient,
		endpoints: common.NewEndpointTable(config.Baidu.BaseURL),
	}
}

// Recognize는 자격 증명 확인 → 토큰 발급 → 엔드포인트 선택 → 전달 순서로 처리합니다.
// 토큰 발급이 끝난 뒤에만 전달을 시작하며, 어느 단계든 실패하면 재시도 없이 오류를 반환합니다.
func (s *OcrImpl) Recognize(ctx context.Context, req request.OcrRequest) (json.RawMessage, error) {
	if !s.config.HasBaiduCredentials() {
		return nil, ErrMissingCredentials
	}

	start := time.Now()

	accessToken, err := s.tokens.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	ocrType, endpoint := s.endpoints.Resolve(req.OcrType)
	utils.Debug("ocr", "OCR 요청 전달: type=%s, image=%d bytes", ocrType, len(req.ImageBase64))

	result, err := s.ocrClient.Recognize(ctx, endpoint, accessToken, req.ImageBase64)
	if err != nil {
		return nil, err
	}

	utils.RecordOcrProcessingTime(string(ocrType), time.Since(start).Seconds())
	return result, nil
}
