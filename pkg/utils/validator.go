package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationMessages는 "필드.태그" 키를 사용자에게 보여줄 메시지로 매핑합니다
// 예: "Content.required" -> "No content provided"
type ValidationMessages map[string]string

// ValidationError는 요청 DTO 검증 실패를 나타냅니다
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate는 구조체의 validate 태그를 검사하고 첫 번째 실패를 메시지로 변환합니다
func Validate(dto interface{}, messages ValidationMessages) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("유효성 검사 실패: %w", err)
	}

	// 하나의 요청에 대해 첫 번째 오류만 보고
	fe := fieldErrors[0]
	message, ok := messages[fe.StructField()+"."+fe.Tag()]
	if !ok {
		message, ok = messages[fe.StructField()]
	}
	if !ok {
		message = fmt.Sprintf("%s: %s 규칙 위반", fe.Field(), fe.Tag())
	}

	return &ValidationError{
		Field:   fe.StructField(),
		Tag:     fe.Tag(),
		Message: message,
	}
}
