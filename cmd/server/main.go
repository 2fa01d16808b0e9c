package main

import (
	"github.com/sh5080/ocr-proxy/pkg/configs"
	service "github.com/sh5080/ocr-proxy/pkg/services"
	"github.com/sh5080/ocr-proxy/pkg/serverless"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

func main() {
	config := configs.GetConfig()
	if !config.HasBaiduCredentials() {
		utils.Warn("server", "BAIDU_OCR_API_KEY/BAIDU_OCR_SECRET_KEY가 설정되지 않았습니다. OCR 요청은 500으로 응답합니다")
	}

	// false: 서버리스 환경 아님 (Prometheus 메트릭 수집)
	app := serverless.NewApp(config, service.NewServiceContainer(config, nil), false)

	if err := app.Listen(":" + config.Server.Port); err != nil {
		utils.Fatal("server", "서버 시작 실패: %v", err)
	}
}
