package common

import (
	"strings"

	constants "github.com/sh5080/ocr-proxy/pkg/types"
)

// EndpointTable은 OCR 유형별 바이두 엔드포인트 URL 매핑입니다.
// 시작 시 한 번 만들어지며 이후 변경되지 않습니다.
type EndpointTable struct {
	endpoints map[constants.OcrType]string
}

// NewEndpointTable은 baseURL 아래에 모든 OCR 유형의 엔드포인트를 구성합니다
func NewEndpointTable(baseURL string) EndpointTable {
	baseURL = strings.TrimRight(baseURL, "/")

	endpoints := make(map[constants.OcrType]string, len(constants.OCR_TYPES))
	for _, ocrType := range constants.OCR_TYPES {
		endpoints[ocrType] = baseURL + "/" + string(ocrType)
	}
	return EndpointTable{endpoints: endpoints}
}

// Resolve는 ocrType에 해당하는 유형과 엔드포인트를 반환합니다.
// 비어 있거나 알 수 없는 값이면 general_basic으로 대체하며 실패하지 않습니다.
func (t EndpointTable) Resolve(ocrType string) (constants.OcrType, string) {
	if endpoint, ok := t.endpoints[constants.OcrType(ocrType)]; ok {
		return constants.OcrType(ocrType), endpoint
	}
	return constants.DEFAULT_OCR_TYPE, t.endpoints[constants.DEFAULT_OCR_TYPE]
}

// Len은 등록된 엔드포인트 수를 반환합니다
func (t EndpointTable) Len() int {
	return len(t.endpoints)
}
