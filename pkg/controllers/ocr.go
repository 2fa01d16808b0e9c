package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/ocr-proxy/pkg/interfaces"
	middleware "github.com/sh5080/ocr-proxy/pkg/middlewares"
	service "github.com/sh5080/ocr-proxy/pkg/services"
	constants "github.com/sh5080/ocr-proxy/pkg/types"
	requestDto "github.com/sh5080/ocr-proxy/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/ocr-proxy/pkg/types/dtos/responses"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

// Ocr는 OCR 프록시 요청을 처리하는 핸들러입니다.
// 모든 메서드를 받아 OPTIONS는 빈 200, POST 외에는 405로 응답합니다.
// CORS 헤더는 middleware.Cors에서 설정합니다.
func Ocr(ocrService _interface.OcrService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodOptions:
			c.Status(fiber.StatusOK)
			return nil
		case fiber.MethodPost:
		default:
			return c.Status(fiber.StatusMethodNotAllowed).JSON(responseDto.ErrorResponse{
				Error: constants.MSG_METHOD_NOT_ALLOWED,
			})
		}

		var req requestDto.OcrRequest
		if err := utils.ParseJSONAndValidate(c.Body(), &req); err != nil {
			utils.Debug("ocr", "요청 검증 실패: %v", err)
			// 이미지가 채워진 채 검증에 실패했다면 max 규칙 위반
			message := constants.MSG_MISSING_IMAGE
			if req.ImageBase64 != "" {
				message = constants.MSG_IMAGE_TOO_LARGE
			}
			return c.Status(fiber.StatusBadRequest).JSON(responseDto.ErrorResponse{
				Error: message,
			})
		}

		result, err := ocrService.Recognize(c.UserContext(), req)
		if err != nil {
			if errors.Is(err, service.ErrMissingCredentials) {
				utils.Error("ocr", "바이두 OCR 자격 증명이 설정되지 않았습니다")
				return c.Status(fiber.StatusInternalServerError).JSON(responseDto.ErrorResponse{
					Error: constants.MSG_MISSING_CREDENTIALS,
				})
			}

			utils.Error("ocr", "OCR 처리 오류 (request=%s): %v", middleware.GetRequestID(c), err)
			return c.Status(fiber.StatusInternalServerError).JSON(responseDto.ErrorResponse{
				Error:   constants.MSG_OCR_PROCESSING_ERROR,
				Message: err.Error(),
			})
		}

		// 바이두 응답은 가공 없이 그대로 전달
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(result)
	}
}
