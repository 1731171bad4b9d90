package analyzer

import (
	"strings"

	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// DetectContentTypes는 키워드로 유해 콘텐츠 유형을 탐지합니다.
// 탐지되지 않은 유형도 신뢰도와 함께 모두 포함됩니다.
func DetectContentTypes(text string) structure.ContentTypeFlags {
	lowerText := strings.ToLower(text)

	flags := make(structure.ContentTypeFlags, len(structure.CONTENT_TYPE_RULES))
	for _, rule := range structure.CONTENT_TYPE_RULES {
		confidence := rule.BaseConfidence
		if containsAny(lowerText, rule.StrongKeywords) {
			confidence = rule.StrongConfidence
		}

		flags[rule.Type] = structure.ContentTypeFlag{
			Detected:   containsAny(lowerText, rule.Keywords),
			Confidence: confidence,
		}
	}
	return flags
}

// ContentTypeDetector는 ContentTypeService 구현체입니다
type ContentTypeDetector struct{}

// NewContentTypeService는 새로운 콘텐츠 유형 탐지 서비스를 생성합니다
func NewContentTypeService() _interface.ContentTypeService {
	return ContentTypeDetector{}
}

func (ContentTypeDetector) DetectContentTypes(text string) structure.ContentTypeFlags {
	return DetectContentTypes(text)
}
