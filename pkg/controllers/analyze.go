package controller

import (
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	requestDto "github.com/sh5080/satyavadi-go/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/satyavadi-go/pkg/types/dtos/responses"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

var analyzeMessages = utils.ValidationMessages{
	"Content.required": "No content provided",
	"Content.min":      "Content too short",
}

// Analyze는 콘텐츠 분석 요청을 처리하는 핸들러입니다
func Analyze(services *_interface.ServiceContainer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.AnalyzeRequest
		if err := utils.ParseAndValidate(c, &req, analyzeMessages); err != nil {
			return err
		}

		startTime := time.Now()
		verdict := services.AnalyzerService.Analyze(c.UserContext(), req.Text())
		processingTime := utils.ProcessingTime(startTime)

		response := responseDto.Analyze{
			Success:          true,
			AnalysisID:       uuid.NewString(),
			ContentLength:    utf8.RuneCountInString(req.Content),
			ProcessingTime:   processingTime,
			IsMisinformation: verdict.IsMisinformation,
			RiskScore:        verdict.RiskScore,
			RiskFactors:      verdict.RiskFactors,
			Analysis:         verdict.Analysis,
			Alternatives:     services.SourceService.VerifiedAlternatives(verdict.SuggestedTopics),
			Timestamp:        utils.Timestamp(),
		}

		utils.Debug("analyze", "분석 완료 (id=%s, strategy=%s, score=%.2f, time=%s)",
			response.AnalysisID, verdict.Strategy, verdict.RiskScore, processingTime)
		return c.JSON(response)
	}
}
