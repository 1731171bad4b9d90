package sources

import (
	"strings"

	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	constants "github.com/sh5080/satyavadi-go/pkg/types"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// Selector는 주제에 맞는 검증된 출처를 고르는 서비스입니다
type Selector struct {
	catalog []structure.VerifiedSource
}

var _ _interface.SourceService = (*Selector)(nil)

// NewSelector는 기본 출처 목록을 사용하는 선택기를 생성합니다
func NewSelector() *Selector {
	return &Selector{catalog: structure.VERIFIED_SOURCES}
}

// VerifiedAlternatives는 제목이나 설명에 주제가 포함된 출처를 최대 3개까지 반환합니다.
// 일치하는 출처가 없거나 주제가 비어 있으면 목록의 앞 3개를 반환합니다.
func (s *Selector) VerifiedAlternatives(topics []structure.Topic) []structure.VerifiedSource {
	if len(topics) == 0 {
		return s.head()
	}

	relevant := make([]structure.VerifiedSource, 0, constants.MAX_VERIFIED_SOURCES)
	for _, source := range s.catalog {
		haystack := strings.ToLower(source.Title) + " " + strings.ToLower(source.Description)
		for _, topic := range topics {
			if strings.Contains(haystack, string(topic)) {
				relevant = append(relevant, source)
				break
			}
		}
		if len(relevant) == constants.MAX_VERIFIED_SOURCES {
			break
		}
	}

	if len(relevant) == 0 {
		return s.head()
	}
	return relevant
}

// head는 목록 앞부분의 복사본을 반환합니다
func (s *Selector) head() []structure.VerifiedSource {
	n := constants.MAX_VERIFIED_SOURCES
	if len(s.catalog) < n {
		n = len(s.catalog)
	}
	return append([]structure.VerifiedSource(nil), s.catalog[:n]...)
}
