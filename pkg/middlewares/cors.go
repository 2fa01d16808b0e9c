package middleware

import (
	"github.com/gofiber/fiber/v2"
	constants "github.com/sh5080/ocr-proxy/pkg/types"
)

// Cors는 모든 응답(오류, 404 포함)에 고정된 CORS 헤더를 설정합니다.
// fiber의 cors 미들웨어는 AllowCredentials=true와 AllowOrigins="*" 조합을 허용하지 않고
// Access-Control-Request-Method가 없는 OPTIONS는 다음 핸들러로 넘기므로 직접 설정합니다.
func Cors() fiber.Handler {
	return func(c *fiber.Ctx) error {
		SetCorsHeaders(c)
		return c.Next()
	}
}

// SetCorsHeaders는 미들웨어 체인을 거치지 않는 응답(본문 크기 초과 등)에서도 쓰입니다
func SetCorsHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderAccessControlAllowCredentials, constants.CORS_ALLOW_CREDENTIALS)
	c.Set(fiber.HeaderAccessControlAllowOrigin, constants.CORS_ALLOW_ORIGIN)
	c.Set(fiber.HeaderAccessControlAllowMethods, constants.CORS_ALLOW_METHODS)
	c.Set(fiber.HeaderAccessControlAllowHeaders, constants.CORS_ALLOW_HEADERS)
}
