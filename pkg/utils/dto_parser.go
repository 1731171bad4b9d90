package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Normalizer는 검증 전에 입력 값을 정리할 수 있는 DTO입니다
type Normalizer interface {
	Normalize()
}

// ParseAndValidate는 요청 본문을 DTO로 변환하고 검증합니다.
// dto: 변환될 DTO 구조체 포인터 (빈 구조체 전달)
// 반환값: 에러가 있으면 fiber.Error(400), 성공 시 nil 반환
func ParseAndValidate(c *fiber.Ctx, dto interface{}, messages ValidationMessages) error {
	if err := c.BodyParser(dto); err != nil {
		Debug("dto", "본문 파싱 실패: %v", err)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if n, ok := dto.(Normalizer); ok {
		n.Normalize()
	}

	if err := Validate(dto, messages); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return fiber.NewError(fiber.StatusBadRequest, validationErr.Message)
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}
