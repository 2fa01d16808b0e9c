package common

import (
	"testing"

	constants "github.com/sh5080/ocr-proxy/pkg/types"
	"github.com/stretchr/testify/assert"
)

const baiduBase = "https://aip.baidubce.com/rest/2.0/ocr/v1"

func TestNewEndpointTable_AllTypes(t *testing.T) {
	table := NewEndpointTable(baiduBase)
	assert.Equal(t, 11, table.Len())

	for _, ocrType := range constants.OCR_TYPES {
		resolved, endpoint := table.Resolve(string(ocrType))
		assert.Equal(t, ocrType, resolved)
		assert.Equal(t, baiduBase+"/"+string(ocrType), endpoint)
	}
}

func TestResolve_KnownTypes(t *testing.T) {
	table := NewEndpointTable(baiduBase)

	_, endpoint := table.Resolve("idcard")
	assert.Equal(t, "https://aip.baidubce.com/rest/2.0/ocr/v1/idcard", endpoint)

	_, endpoint = table.Resolve("business_license")
	assert.Equal(t, "https://aip.baidubce.com/rest/2.0/ocr/v1/business_license", endpoint)
}

func TestResolve_FallsBackToGeneralBasic(t *testing.T) {
	table := NewEndpointTable(baiduBase)

	for _, ocrType := range []string{"", "passport", "IDCARD", " idcard"} {
		resolved, endpoint := table.Resolve(ocrType)
		assert.Equal(t, constants.OcrTypeGeneralBasic, resolved, "ocrType=%q", ocrType)
		assert.Equal(t, baiduBase+"/general_basic", endpoint, "ocrType=%q", ocrType)
	}
}

func TestNewEndpointTable_TrimsTrailingSlash(t *testing.T) {
	table := NewEndpointTable(baiduBase + "/")

	_, endpoint := table.Resolve("receipt")
	assert.Equal(t, baiduBase+"/receipt", endpoint)
}
