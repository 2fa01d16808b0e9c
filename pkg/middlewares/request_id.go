package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey는 요청 ID를 저장하는 Locals 키입니다
const RequestIDKey = "requestid"

// RequestID는 X-Request-Id 헤더를 전달받거나 새 UUID로 발급해 응답과 Locals에 저장합니다
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(fiber.HeaderXRequestID, requestID)
		c.Locals(RequestIDKey, requestID)
		return c.Next()
	}
}

// GetRequestID는 현재 요청의 ID를 반환합니다. 미들웨어가 없으면 빈 문자열입니다.
func GetRequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
