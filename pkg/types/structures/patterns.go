package structure

import "regexp"

// RiskPattern은 알려진 허위정보 표현 단서 하나를 나타냅니다
type RiskPattern struct {
	Pattern PatternType
	Regex   *regexp.Regexp
}

type PatternType string

const (
	PatternTypeMiracle         PatternType = "miracle"          // 기적의 치료법
	PatternTypeCertainty       PatternType = "certainty"        // 과장된 확신
	PatternTypeUrgency         PatternType = "urgency"          // 긴급성 유도
	PatternTypeConspiracy      PatternType = "conspiracy"       // 음모론
	PatternTypeHiddenAuthority PatternType = "hidden_authority" // 숨은 권위 호소
)

// RE2의 \b는 ASCII 문자만 단어 문자로 보므로 유니코드 문자/숫자 기준 경계를 직접 둡니다
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:[^\p{L}\p{N}_]|$)`
)

// wordPattern은 단어 경계로 둘러싼 대소문자 무시 패턴을 만듭니다
func wordPattern(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + wordStart + `(?:` + alternatives + `)` + wordEnd)
}

// RISK_PATTERNS는 허위정보 표현 패턴 목록입니다 (순서 유지, 대소문자 무시)
var RISK_PATTERNS = []RiskPattern{
	{Pattern: PatternTypeMiracle, Regex: wordPattern(`cure|miracle|secret|they don't want you to know`)},
	// "100%"는 '%'가 단어 문자가 아니므로 뒤에 단어 문자가 올 때만 경계가 성립
	{Pattern: PatternTypeCertainty, Regex: regexp.MustCompile(`(?i)` + wordStart + `(?:guaranteed|proven|scientifically proven)` + wordEnd + `|` + wordStart + `100%[\p{L}\p{N}_]`)},
	{Pattern: PatternTypeUrgency, Regex: wordPattern(`click here|limited time|act now|urgent`)},
	{Pattern: PatternTypeConspiracy, Regex: wordPattern(`conspiracy|cover-up|hidden truth`)},
	{Pattern: PatternTypeHiddenAuthority, Regex: wordPattern(`doctors hate|pharmaceutical companies hide`)},
}

// 근거 없는 주장으로 간주하는 키워드
var UNSUBSTANTIATED_CLAIM_KEYWORDS = []string{
	"cure",
	"miracle",
	"guaranteed",
}

// TopicKeywords는 주제와 해당 주제를 나타내는 키워드 묶음입니다
type TopicKeywords struct {
	Topic    Topic
	Keywords []string
}

// TOPIC_KEYWORDS는 주제 추출용 키워드입니다 (부분 문자열 매칭)
var TOPIC_KEYWORDS = []TopicKeywords{
	{
		Topic:    TopicHealth,
		Keywords: []string{"covid", "coronavirus", "vaccine", "health", "disease"},
	},
	{
		Topic:    TopicScience,
		Keywords: []string{"science", "research", "study", "scientist"},
	},
	{
		Topic:    TopicPolitics,
		Keywords: []string{"politic", "election", "government", "policy"},
	},
}

// ContentTypeRule은 유해 콘텐츠 유형 하나의 탐지 규칙입니다
type ContentTypeRule struct {
	Type             ContentType
	Keywords         []string
	StrongKeywords   []string
	StrongConfidence float64
	BaseConfidence   float64
}

// CONTENT_TYPE_RULES는 유형별 탐지 키워드와 신뢰도 구간입니다
var CONTENT_TYPE_RULES = []ContentTypeRule{
	{
		Type:             ContentTypeFearSpreading,
		Keywords:         []string{"panic", "fear", "danger", "threat", "crisis", "emergency", "warning"},
		StrongKeywords:   []string{"panic", "fear", "danger"},
		StrongConfidence: 0.5,
		BaseConfidence:   0.3,
	},
	{
		Type:             ContentTypeHateSpeech,
		Keywords:         []string{"hate", "attack", "enemy", "destroy"},
		StrongConfidence: 0.4,
		BaseConfidence:   0.4,
	},
	{
		Type:             ContentTypeViolence,
		Keywords:         []string{"violence", "attack", "kill", "harm", "destroy"},
		StrongKeywords:   []string{"kill", "harm"},
		StrongConfidence: 0.5,
		BaseConfidence:   0.3,
	},
	{
		Type:             ContentTypeManipulation,
		Keywords:         []string{"manipulate", "trick", "deceive", "lie"},
		StrongConfidence: 0.4,
		BaseConfidence:   0.4,
	},
	{
		Type:             ContentTypePoliticalPropaganda,
		Keywords:         []string{"propaganda", "conspiracy", "cover-up", "hidden truth"},
		StrongKeywords:   []string{"conspiracy", "cover-up"},
		StrongConfidence: 0.5,
		BaseConfidence:   0.3,
	},
}
