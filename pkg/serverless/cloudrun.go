package serverless

import (
	"github.com/sh5080/ocr-proxy/pkg/configs"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

// CloudRunMain은 Cloud Run 진입점입니다. Cloud Run이 주입하는 PORT(기본 8080)에서 대기합니다.
func CloudRunMain() {
	port := configs.GetConfig().Server.Port
	if err := GetApp().Listen(":" + port); err != nil {
		utils.Fatal("cloudrun", "서버 시작 실패: %v", err)
	}
}
