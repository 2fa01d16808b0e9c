package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

// ServerConfig는 HTTP 서버 관련 설정입니다.
// BodyLimit는 10MB base64 이미지와 JSON 래핑을 받을 수 있어야 합니다 (기본 12MB).
type ServerConfig struct {
	Port      string `env:"PORT" envDefault:"8080"`
	AppName   string `env:"APP_NAME" envDefault:"OCR-PROXY"`
	OcrPath   string `env:"OCR_ROUTE_PATH" envDefault:"/api/ocr"`
	BodyLimit int    `env:"BODY_LIMIT" envDefault:"12582912"`
}

// BaiduConfig는 바이두 OCR API 관련 설정입니다.
// APIKey/SecretKey가 비어 있어도 로드는 실패하지 않고, 요청 단위로 500을 반환합니다.
type BaiduConfig struct {
	APIKey    string        `env:"BAIDU_OCR_API_KEY"`
	SecretKey string        `env:"BAIDU_OCR_SECRET_KEY"`
	TokenURL  string        `env:"BAIDU_OCR_TOKEN_URL" envDefault:"https://aip.baidubce.com/oauth/2.0/token"`
	BaseURL   string        `env:"BAIDU_OCR_BASE_URL" envDefault:"https://aip.baidubce.com/rest/2.0/ocr/v1"`
	Timeout   time.Duration `env:"BAIDU_OCR_TIMEOUT" envDefault:"0s"`
}

type EnvConfig struct {
	Server ServerConfig
	Baidu  BaiduConfig
}

// HasBaiduCredentials는 API 키와 시크릿 키가 모두 설정되어 있는지 확인합니다
func (c *EnvConfig) HasBaiduCredentials() bool {
	return c.Baidu.APIKey != "" && c.Baidu.SecretKey != ""
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// Load는 .env 파일(있는 경우)과 환경 변수에서 설정을 읽어 새 인스턴스를 반환합니다
func Load() (*EnvConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env 로드 실패: %w", err)
	}

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("환경 변수 파싱 실패: %w", err)
	}

	return config, nil
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		config, err := Load()
		if err != nil {
			panic(err)
		}
		configInstance = config
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s)\n", AppVersion)
	})
	return configInstance
}
