package utils

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/gofiber/fiber/v2"
)

// ParseJSONAndValidate는 JSON 요청 본문을 DTO로 변환하고 검증합니다.
// body: 요청 본문 (Content-Type과 무관하게 JSON으로 해석)
// dto: 변환될 DTO 구조체 포인터
// 키는 json 태그와 대소문자까지 정확히 일치해야 하며, 타입이 맞지 않는 값은 없는 것으로 취급합니다.
// 반환값: 본문이 JSON 객체가 아니면 400 fiber.Error, 검증 실패 시 ValidationErrors
func ParseJSONAndValidate(body []byte, dto interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fiber.NewError(fiber.StatusBadRequest, "요청 본문이 JSON 객체가 아닙니다")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "요청 본문 파싱 실패: "+err.Error())
	}

	if err := fillFields(fields, dto); err != nil {
		return err
	}

	if errors := NewValidator().Validate(dto); errors.HasErrors() {
		return errors
	}

	return nil
}

// fillFields는 json 태그 이름과 정확히 일치하는 키만 DTO 필드에 채웁니다.
// encoding/json의 대소문자 무시 매칭을 피하기 위해 필드 단위로 디코딩합니다.
func fillFields(fields map[string]json.RawMessage, dto interface{}) error {
	dtoValue := reflect.ValueOf(dto)
	if dtoValue.Kind() != reflect.Ptr || dtoValue.IsNil() || dtoValue.Elem().Kind() != reflect.Struct {
		return fiber.NewError(fiber.StatusInternalServerError, "DTO는 구조체 포인터여야 합니다")
	}

	dtoElem := dtoValue.Elem()
	dtoType := dtoElem.Type()
	for i := 0; i < dtoElem.NumField(); i++ {
		field := dtoElem.Field(i)
		if !field.CanSet() {
			continue
		}

		if dtoType.Field(i).Tag.Get("json") == "-" {
			continue
		}

		fieldName := jsonFieldName(dtoType.Field(i))
		raw, exists := fields[fieldName]
		if !exists {
			continue
		}

		target := reflect.New(field.Type())
		if err := json.Unmarshal(raw, target.Interface()); err != nil {
			Debug("dto", "필드 %s 타입 불일치, 무시: %v", fieldName, err)
			continue
		}
		field.Set(target.Elem())
	}

	return nil
}
