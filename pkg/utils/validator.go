package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ValidationErrors는 필드별 유효성 검사 오류입니다 (json 필드명 -> 메시지)
type ValidationErrors map[string]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error는 필드명 순으로 정렬된 "필드: 메시지" 목록을 반환합니다
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(messages, ", ")
}

// StructValidator는 struct 태그를 기반으로 유효성을 검사합니다
type StructValidator struct{}

func NewValidator() *StructValidator {
	return &StructValidator{}
}

// Validate는 구조체의 유효성을 검사합니다
// 지원되는 태그:
// - required: 필드가 비어있으면 안됨
// - max=n: 문자열 최대 길이
func (v *StructValidator) Validate(data interface{}) ValidationErrors {
	errors := make(ValidationErrors)

	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		errors.Add("_error", "유효성 검사는 구조체만 가능합니다")
		return errors
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		typeField := typ.Field(i)
		validateTag := typeField.Tag.Get("validate")
		if validateTag == "" {
			continue
		}

		fieldName := jsonFieldName(typeField)
		for _, rule := range strings.Split(validateTag, ",") {
			if msg := validateField(val.Field(i), rule); msg != "" {
				errors.Add(fieldName, msg)
				break // 하나의 필드에 대해 첫 번째 오류만 보고
			}
		}
	}

	return errors
}

func validateField(field reflect.Value, rule string) string {
	ruleName, param, _ := strings.Cut(rule, "=")

	switch ruleName {
	case "required":
		if isEmptyValue(field) {
			return "필수 항목입니다"
		}
	case "max":
		max := 0
		fmt.Sscanf(param, "%d", &max)
		if field.Kind() == reflect.String && len(field.String()) > max {
			return fmt.Sprintf("최대 %d자 이하여야 합니다", max)
		}
	}
	return ""
}

func isEmptyValue(field reflect.Value) bool {
	switch field.Kind() {
	case reflect.String:
		return field.String() == ""
	case reflect.Slice, reflect.Map:
		return field.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return field.IsNil()
	}
	return field.IsZero()
}

// jsonFieldName은 json 태그의 이름을, 없으면 구조체 필드 이름을 반환합니다
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
