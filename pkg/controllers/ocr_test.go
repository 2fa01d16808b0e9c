package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	client "github.com/sh5080/ocr-proxy/pkg/clients"
	middleware "github.com/sh5080/ocr-proxy/pkg/middlewares"
	service "github.com/sh5080/ocr-proxy/pkg/services"
	constants "github.com/sh5080/ocr-proxy/pkg/types"
	request "github.com/sh5080/ocr-proxy/pkg/types/dtos/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOcrService struct {
	calls  []request.OcrRequest
	result json.RawMessage
	err    error
}

func (m *mockOcrService) Recognize(_ context.Context, req request.OcrRequest) (json.RawMessage, error) {
	m.calls = append(m.calls, req)
	return m.result, m.err
}

func newTestApp(svc *mockOcrService) *fiber.App {
	app := fiber.New(fiber.Config{BodyLimit: 16 << 20, ErrorHandler: ErrorHandler})
	app.Use(middleware.Cors())
	app.All("/api/ocr", Ocr(svc))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/ocr", reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(t, app, req)
}

func doPath(t *testing.T, app *fiber.App, method, path string) (*http.Response, string) {
	t.Helper()
	return send(t, app, httptest.NewRequest(method, path, nil))
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func decodeError(t *testing.T, body string) map[string]string {
	t.Helper()
	var m map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &m), body)
	return m
}

func assertCorsHeaders(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,OPTIONS,POST", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, constants.CORS_ALLOW_HEADERS, resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestOcr_Preflight(t *testing.T) {
	svc := &mockOcrService{}
	resp, body := doRequest(t, newTestApp(svc), http.MethodOptions, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
	assertCorsHeaders(t, resp)
	assert.Empty(t, svc.calls)
}

func TestOcr_MethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		svc := &mockOcrService{}
		resp, body := doRequest(t, newTestApp(svc), method, "")

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, method)
		assert.Equal(t, constants.MSG_METHOD_NOT_ALLOWED, decodeError(t, body)["error"])
		assertCorsHeaders(t, resp)
		assert.Empty(t, svc.calls)
	}
}

func TestOcr_MissingImage(t *testing.T) {
	for _, body := range []string{"", `{}`, `{"imageBase64":""}`, `{"ocrType":"idcard"}`, `not json`, `[]`} {
		svc := &mockOcrService{}
		resp, respBody := doRequest(t, newTestApp(svc), http.MethodPost, body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body=%q", body)
		errBody := decodeError(t, respBody)
		assert.Equal(t, constants.MSG_MISSING_IMAGE, errBody["error"])
		assert.NotContains(t, errBody, "message")
		assert.Empty(t, svc.calls)
	}
}

func TestOcr_MissingCredentials(t *testing.T) {
	svc := &mockOcrService{err: service.ErrMissingCredentials}
	resp, body := doRequest(t, newTestApp(svc), http.MethodPost, `{"imageBase64":"abc123"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errBody := decodeError(t, body)
	assert.Equal(t, constants.MSG_MISSING_CREDENTIALS, errBody["error"])
	assert.NotContains(t, errBody, "message")
}

func TestOcr_TokenFailure(t *testing.T) {
	svc := &mockOcrService{err: client.ErrTokenAcquisition}
	resp, body := doRequest(t, newTestApp(svc), http.MethodPost, `{"imageBase64":"abc123"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errBody := decodeError(t, body)
	assert.Equal(t, constants.MSG_OCR_PROCESSING_ERROR, errBody["error"])
	assert.Equal(t, constants.MSG_TOKEN_ACQUIRE_FAILED, errBody["message"])
}

func TestOcr_ForwardFailure(t *testing.T) {
	svc := &mockOcrService{err: errors.New("요청 실행 실패: Post: connection refused")}
	resp, body := doRequest(t, newTestApp(svc), http.MethodPost, `{"imageBase64":"abc123","ocrType":"idcard"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errBody := decodeError(t, body)
	assert.Equal(t, constants.MSG_OCR_PROCESSING_ERROR, errBody["error"])
	assert.Equal(t, "요청 실행 실패: Post: connection refused", errBody["message"])
	assertCorsHeaders(t, resp)
}

func TestOcr_RelaysProviderBody(t *testing.T) {
	providerBody := `{"words_result":[{"words":"abc"}],"words_result_num":1,"log_id":7}`
	svc := &mockOcrService{result: json.RawMessage(providerBody)}
	resp, body := doRequest(t, newTestApp(svc), http.MethodPost, `{"imageBase64":"abc123","ocrType":"idcard"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, providerBody, body)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assertCorsHeaders(t, resp)

	require.Len(t, svc.calls, 1)
	assert.Equal(t, request.OcrRequest{ImageBase64: "abc123", OcrType: "idcard"}, svc.calls[0])
}

func TestOcr_AcceptsBodyWithoutJSONContentType(t *testing.T) {
	svc := &mockOcrService{result: json.RawMessage(`{}`)}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/ocr", strings.NewReader(`{"imageBase64":"abc123"}`))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, svc.calls, 1)
	assert.Equal(t, "", svc.calls[0].OcrType)
}

func TestOcr_KeysAreCaseSensitive(t *testing.T) {
	for _, body := range []string{`{"imagebase64":"abc123"}`, `{"IMAGEBASE64":"abc123","ocrType":"idcard"}`} {
		svc := &mockOcrService{result: json.RawMessage(`{}`)}
		resp, respBody := doRequest(t, newTestApp(svc), http.MethodPost, body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body=%q", body)
		assert.Equal(t, constants.MSG_MISSING_IMAGE, decodeError(t, respBody)["error"])
		assert.Empty(t, svc.calls)
	}

	svc := &mockOcrService{result: json.RawMessage(`{}`)}
	resp, _ := doRequest(t, newTestApp(svc), http.MethodPost, `{"imageBase64":"abc123","OCRTYPE":"idcard"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, svc.calls, 1)
	assert.Equal(t, request.OcrRequest{ImageBase64: "abc123"}, svc.calls[0])
}

func TestOcr_NonStringOcrTypeFallsBackToDefault(t *testing.T) {
	for _, body := range []string{
		`{"imageBase64":"abc123","ocrType":5}`,
		`{"imageBase64":"abc123","ocrType":null}`,
		`{"imageBase64":"abc123","ocrType":["idcard"]}`,
	} {
		svc := &mockOcrService{result: json.RawMessage(`{}`)}
		resp, _ := doRequest(t, newTestApp(svc), http.MethodPost, body)

		assert.Equal(t, http.StatusOK, resp.StatusCode, "body=%q", body)
		require.Len(t, svc.calls, 1)
		assert.Equal(t, "", svc.calls[0].OcrType)
	}
}

func TestOcr_NonStringImageIsMissing(t *testing.T) {
	svc := &mockOcrService{}
	resp, body := doRequest(t, newTestApp(svc), http.MethodPost, `{"imageBase64":123}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, constants.MSG_MISSING_IMAGE, decodeError(t, body)["error"])
	assert.Empty(t, svc.calls)
}

func TestOcr_ImageSizeLimit(t *testing.T) {
	svc := &mockOcrService{}
	image := strings.Repeat("A", constants.MAX_IMAGE_BASE64_SIZE+1)
	resp, body := doRequest(t, newTestApp(svc), http.MethodPost, `{"imageBase64":"`+image+`"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeError(t, body)
	assert.Equal(t, constants.MSG_IMAGE_TOO_LARGE, errBody["error"])
	assert.NotContains(t, errBody, "message")
	assertCorsHeaders(t, resp)
	assert.Empty(t, svc.calls)

	svc = &mockOcrService{result: json.RawMessage(`{}`)}
	image = strings.Repeat("A", constants.MAX_IMAGE_BASE64_SIZE)
	resp, _ = doRequest(t, newTestApp(svc), http.MethodPost, `{"imageBase64":"`+image+`"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, svc.calls, 1)
	assert.Len(t, svc.calls[0].ImageBase64, constants.MAX_IMAGE_BASE64_SIZE)
}
