package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sh5080/ocr-proxy/pkg/configs"
	_interface "github.com/sh5080/ocr-proxy/pkg/interfaces"
	constants "github.com/sh5080/ocr-proxy/pkg/types"
	structure "github.com/sh5080/ocr-proxy/pkg/types/structures"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

// ErrTokenAcquisition은 토큰 발급 실패 시 호출자에게 노출되는 일반 오류입니다.
// 원인은 로그로만 남깁니다.
var ErrTokenAcquisition = errors.New(constants.MSG_TOKEN_ACQUIRE_FAILED)

// BaiduAPIClient는 바이두 OCR API 요청을 처리하는 클라이언트입니다.
type BaiduAPIClient struct {
	_interface.Service
}

var (
	_ _interface.TokenProvider = (*BaiduAPIClient)(nil)
	_ _interface.OcrClient     = (*BaiduAPIClient)(nil)
)

// NewBaiduAPIClient는 새로운 바이두 API 클라이언트를 생성합니다.
// httpClient가 nil이면 설정된 타임아웃(기본값 없음)을 가진 http.Client를 사용합니다.
func NewBaiduAPIClient(config *configs.EnvConfig, httpClient _interface.HTTPClient) *BaiduAPIClient {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Baidu.Timeout,
		}
	}

	return &BaiduAPIClient{
		Service: _interface.Service{
			Client: httpClient,
			Config: config,
		},
	}
}

// GetAccessToken은 client_credentials 방식으로 새 액세스 토큰을 발급받습니다.
// 토큰은 캐시하지 않으며 호출할 때마다 새로 요청합니다.
func (c *BaiduAPIClient) GetAccessToken(ctx context.Context) (string, error) {
	token, err := c.requestAccessToken(ctx)
	if err != nil {
		utils.Error("baidu", "액세스 토큰 발급 실패: %v", err)
		return "", ErrTokenAcquisition
	}
	return token, nil
}

func (c *BaiduAPIClient) requestAccessToken(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Add("grant_type", "client_credentials")
	params.Add("client_id", c.Config.Baidu.APIKey)
	params.Add("client_secret", c.Config.Baidu.SecretKey)

	reqURL := c.Config.Baidu.TokenURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("요청 생성 실패: %w", stripURL(err))
	}

	body, err := c.do(req, constants.API_BAIDU_TOKEN)
	if err != nil {
		return "", err
	}

	var tokenResp structure.BaiduTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("응답 파싱 실패: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("access_token 없음 (%s: %s)", tokenResp.Error, tokenResp.ErrorDescription)
	}

	return tokenResp.AccessToken, nil
}

// Recognize는 이미지를 form-urlencoded 본문으로 OCR 엔드포인트에 전송하고
// 응답 JSON을 가공 없이 반환합니다.
func (c *BaiduAPIClient) Recognize(ctx context.Context, endpoint string, accessToken string, imageBase64 string) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("image", imageBase64)

	query := url.Values{}
	query.Set("access_token", accessToken)
	reqURL := endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", stripURL(err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, constants.API_BAIDU_OCR)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("응답 파싱 실패: JSON 형식이 아닙니다")
	}

	return json.RawMessage(body), nil
}

// do는 요청을 실행하고 2xx 응답의 본문을 반환하며 외부 API 메트릭을 기록합니다
func (c *BaiduAPIClient) do(req *http.Request, apiName string) ([]byte, error) {
	start := time.Now()

	resp, err := c.Client.Do(req)
	if err != nil {
		utils.RecordApiCall(apiName, 0, time.Since(start).Seconds())
		return nil, fmt.Errorf("요청 실행 실패: %w", stripURL(err))
	}
	defer resp.Body.Close()

	utils.RecordApiCall(apiName, resp.StatusCode, time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API 오류 (%d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// stripURL은 *url.Error에서 URL을 제거합니다.
// 토큰 URL에는 시크릿 키가, OCR URL에는 액세스 토큰이 들어 있어 로그나 응답에 남기면 안 됩니다.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
