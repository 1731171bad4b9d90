package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	constants "github.com/sh5080/satyavadi-go/pkg/types"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

const miracleClaim = "This miracle cure is guaranteed! Click here now!"

func TestCountPatternMatches(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no patterns", "blue sky!!", 0},
		{"one pattern repeated", "cure cure cure miracle", 1},
		{"case insensitive", "URGENT: ACT NOW", 1},
		{"three patterns", miracleClaim, 3},
		{"all patterns", "Secret cure, scientifically proven, act now: the cover-up doctors hate", 5},
		{"word boundary", "securely procured", 0},
		{"accented suffix", "secretó", 0},
		{"accented suffix in sentence", "miracleé works", 0},
		{"accented prefix", "ésecret", 0},
		{"accented neighbour word", "é secret", 1},
		{"digit suffix", "cure2", 0},
		{"percent then space", "100% sure", 0},
		{"percent then word", "100%sure", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountPatternMatches(tt.text))
		})
	}
}

func TestMatchedPatterns(t *testing.T) {
	matched := MatchedPatterns(miracleClaim)
	assert.Equal(t, []structure.PatternType{
		structure.PatternTypeMiracle,
		structure.PatternTypeCertainty,
		structure.PatternTypeUrgency,
	}, matched)
	assert.Empty(t, MatchedPatterns("blue sky!!"))
}

func TestScoreRisk(t *testing.T) {
	tests := []struct {
		matches   int
		score     float64
		isMisinfo bool
	}{
		{0, 0.3, false},
		{1, 0.45, false},
		{2, 0.6, true},
		{3, 0.75, true},
		{4, 0.9, true},
		{5, 0.95, true},
		{10, 0.95, true},
	}

	for _, tt := range tests {
		score, isMisinfo := ScoreRisk(tt.matches)
		assert.InDelta(t, tt.score, score, 1e-9, "matches=%d", tt.matches)
		assert.Equal(t, tt.isMisinfo, isMisinfo, "matches=%d", tt.matches)
	}
}

func TestScoreRisk_MonotonicAndBounded(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 20; i++ {
		score, _ := ScoreRisk(i)
		assert.GreaterOrEqual(t, score, prev)
		assert.GreaterOrEqual(t, score, constants.BASE_RISK_SCORE)
		assert.LessOrEqual(t, score, constants.MAX_RISK_SCORE)
		prev = score
	}
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, "High", RiskLevel(0.75))
	assert.Equal(t, "Medium", RiskLevel(0.45))
	assert.Equal(t, "Low", RiskLevel(0.4))
	assert.Equal(t, "Low", RiskLevel(0.3))
}

func TestExplainRiskFactors(t *testing.T) {
	t.Run("ordered factors", func(t *testing.T) {
		factors := ExplainRiskFactors(3, miracleClaim)
		assert.Equal(t, []string{
			"Contains 3 suspicious language pattern(s)",
			"Very short content (may lack context)",
			"Contains unsubstantiated claims",
		}, factors)
	})

	t.Run("short content only", func(t *testing.T) {
		assert.Equal(t, []string{"Very short content (may lack context)"}, ExplainRiskFactors(0, "blue sky!!"))
	})

	t.Run("sentinel for long clean content", func(t *testing.T) {
		text := strings.Repeat("The weather today is calm and pleasant. ", 4)
		assert.Equal(t, []string{constants.DEFAULT_RISK_FACTOR}, ExplainRiskFactors(0, text))
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		// 60 runes, 180 bytes
		text := strings.Repeat("가나다", 20)
		assert.Contains(t, ExplainRiskFactors(0, text), constants.SHORT_CONTENT_FACTOR)
	})

	t.Run("unsubstantiated claims use substring match", func(t *testing.T) {
		text := strings.Repeat("Our results are GUARANTEED by a long paragraph of text. ", 3)
		assert.Equal(t, []string{constants.UNSUBSTANTIATED_CLAIM}, ExplainRiskFactors(0, text))
	})
}

func TestExtractTopics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []structure.Topic
	}{
		{"default general", "blue sky!!", []structure.Topic{structure.TopicGeneral}},
		{"health", "The new COVID vaccine", []structure.Topic{structure.TopicHealth}},
		{"fixed order", "Political study on government health policy",
			[]structure.Topic{structure.TopicHealth, structure.TopicScience, structure.TopicPolitics}},
		{"substring match", "Politicians debate", []structure.Topic{structure.TopicPolitics}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTopics(tt.text))
		})
	}
}

func TestDetectContentTypes(t *testing.T) {
	flags := DetectContentTypes("Panic! They will attack and kill")
	require.Len(t, flags, 5)

	assert.Equal(t, structure.ContentTypeFlag{Detected: true, Confidence: 0.5}, flags[structure.ContentTypeFearSpreading])
	assert.Equal(t, structure.ContentTypeFlag{Detected: true, Confidence: 0.4}, flags[structure.ContentTypeHateSpeech])
	assert.Equal(t, structure.ContentTypeFlag{Detected: true, Confidence: 0.5}, flags[structure.ContentTypeViolence])
	assert.Equal(t, structure.ContentTypeFlag{Detected: false, Confidence: 0.4}, flags[structure.ContentTypeManipulation])
	assert.Equal(t, structure.ContentTypeFlag{Detected: false, Confidence: 0.3}, flags[structure.ContentTypePoliticalPropaganda])
}

func TestDetectContentTypes_BaseConfidence(t *testing.T) {
	flags := NewContentTypeService().DetectContentTypes("An emergency warning about hidden truth propaganda")

	assert.Equal(t, structure.ContentTypeFlag{Detected: true, Confidence: 0.3}, flags[structure.ContentTypeFearSpreading])
	assert.Equal(t, structure.ContentTypeFlag{Detected: true, Confidence: 0.3}, flags[structure.ContentTypePoliticalPropaganda])
	assert.False(t, flags[structure.ContentTypeViolence].Detected)
}

func TestBuildAnalysis(t *testing.T) {
	risky := BuildAnalysis(miracleClaim, 3, 0.75, true)
	assert.Contains(t, risky, "Potential misinformation indicators were detected.")
	assert.Contains(t, risky, "- Pattern matches: 3")
	assert.Contains(t, risky, "- Content length: 48 characters")
	assert.Contains(t, risky, "- Risk assessment: High")
	assert.Contains(t, risky, "Warning: This content may contain misinformation.")

	safe := BuildAnalysis("blue sky!!", 0, 0.3, false)
	assert.Contains(t, safe, "No strong indicators of misinformation were found.")
	assert.Contains(t, safe, "- Risk assessment: Low")
	assert.Contains(t, safe, "appears relatively safe")
}

func TestRuleClassifier(t *testing.T) {
	classifier := NewRuleClassifier()
	assert.Equal(t, structure.StrategyLocal, classifier.Name())

	verdict, err := classifier.Classify(context.Background(), miracleClaim)
	require.NoError(t, err)

	assert.True(t, verdict.IsMisinformation)
	assert.InDelta(t, 0.75, verdict.RiskScore, 1e-9)
	assert.Len(t, verdict.RiskFactors, 3)
	assert.Equal(t, []structure.Topic{structure.TopicGeneral}, verdict.SuggestedTopics)
	assert.Equal(t, structure.StrategyLocal, verdict.Strategy)
	assert.Equal(t, structure.StatusFake, verdict.Status())
}

func TestRuleClassifier_CleanContent(t *testing.T) {
	verdict := NewRuleClassifier().Verdict("blue sky!!")

	assert.False(t, verdict.IsMisinformation)
	assert.InDelta(t, 0.3, verdict.RiskScore, 1e-9)
	assert.Equal(t, []string{constants.SHORT_CONTENT_FACTOR}, verdict.RiskFactors)
	// 0.3은 Mixed 구간 (0.2 초과)
	assert.Equal(t, structure.StatusMixed, verdict.Status())
}

func TestRuleClassifier_DoctorsHateClaim(t *testing.T) {
	verdict := NewRuleClassifier().Verdict("This is a guaranteed miracle cure that doctors hate!")

	assert.Equal(t, 3, CountPatternMatches("This is a guaranteed miracle cure that doctors hate!"))
	assert.InDelta(t, 0.75, verdict.RiskScore, 1e-9)
	assert.True(t, verdict.IsMisinformation)
	assert.Equal(t, structure.StatusFake, verdict.Status())
}

func TestRuleClassifier_LongCleanContentHasFloorScore(t *testing.T) {
	text := strings.Repeat("Rain is expected over the weekend in the northern valleys. ", 3)
	verdict := NewRuleClassifier().Verdict(text)

	assert.InDelta(t, 0.3, verdict.RiskScore, 1e-9)
	assert.False(t, verdict.IsMisinformation)
	assert.Equal(t, []string{constants.DEFAULT_RISK_FACTOR}, verdict.RiskFactors)
}
