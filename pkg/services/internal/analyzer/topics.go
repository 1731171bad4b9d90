package analyzer

import (
	"strings"

	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// ExtractTopics는 텍스트에서 관련 주제를 health, science, politics 순서로 추출합니다.
// 해당 주제가 없으면 general을 반환합니다.
func ExtractTopics(text string) []structure.Topic {
	lowerText := strings.ToLower(text)

	var topics []structure.Topic
	for _, group := range structure.TOPIC_KEYWORDS {
		if containsAny(lowerText, group.Keywords) {
			topics = append(topics, group.Topic)
		}
	}

	if len(topics) == 0 {
		return []structure.Topic{structure.TopicGeneral}
	}
	return topics
}
