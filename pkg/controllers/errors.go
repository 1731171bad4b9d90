package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	responseDto "github.com/sh5080/satyavadi-go/pkg/types/dtos/responses"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// ErrorHandler는 핸들러가 반환한 오류를 {error, message} 형식으로 변환합니다.
// 4xx는 메시지를 error에 담고, 그 외는 "Internal server error"와 원인 메시지를 반환합니다.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code < fiber.StatusInternalServerError {
		return c.Status(code).JSON(responseDto.ErrorResponse{Error: message})
	}

	utils.Error("http", "%s %s 처리 실패: %v", c.Method(), c.Path(), err)
	return c.Status(code).JSON(responseDto.ErrorResponse{
		Error:   "Internal server error",
		Message: message,
	})
}
