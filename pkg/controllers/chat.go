package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	requestDto "github.com/sh5080/satyavadi-go/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/satyavadi-go/pkg/types/dtos/responses"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

var chatMessages = utils.ValidationMessages{
	"Message.required": "No message provided",
	"Message.min":      "Message too short",
}

// Chat은 대화형 분석 요청을 처리하는 핸들러입니다
func Chat(services *_interface.ServiceContainer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.ChatRequest
		if err := utils.ParseAndValidate(c, &req, chatMessages); err != nil {
			return err
		}

		startTime := time.Now()
		ctx := c.UserContext()
		message := req.Text()

		verdict := services.AnalyzerService.Analyze(ctx, message)
		reply := services.ChatService.Respond(ctx, message, req.History, verdict)
		status := verdict.Status()

		response := responseDto.Chat{
			Success:  true,
			Response: reply,
			Analysis: responseDto.ChatAnalysis{
				IsMisinformation: verdict.IsMisinformation,
				RiskScore:        verdict.RiskScore,
				RiskFactors:      verdict.RiskFactors,
				Alternatives:     services.SourceService.VerifiedAlternatives(verdict.SuggestedTopics),
				Status:           status,
				StatusColor:      status.Color(),
				ContentTypes:     services.ContentTypeService.DetectContentTypes(message),
			},
			ProcessingTime: utils.ProcessingTime(startTime),
			Timestamp:      utils.Timestamp(),
		}

		return c.JSON(response)
	}
}
