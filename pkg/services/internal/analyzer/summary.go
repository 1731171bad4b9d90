package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BuildAnalysis는 규칙 기반 판정에 대한 요약 설명을 만듭니다
func BuildAnalysis(text string, matchCount int, riskScore float64, isMisinformation bool) string {
	var b strings.Builder

	b.WriteString("Content Analysis Summary:\n\n")
	b.WriteString("The content has been analyzed using pattern matching and linguistic analysis.\n")
	if isMisinformation {
		b.WriteString("Potential misinformation indicators were detected.\n\n")
	} else {
		b.WriteString("No strong indicators of misinformation were found.\n\n")
	}

	b.WriteString("Key observations:\n")
	fmt.Fprintf(&b, "- Pattern matches: %d\n", matchCount)
	fmt.Fprintf(&b, "- Content length: %d characters\n", utf8.RuneCountInString(text))
	fmt.Fprintf(&b, "- Risk assessment: %s\n\n", RiskLevel(riskScore))

	if isMisinformation {
		b.WriteString("⚠️ Warning: This content may contain misinformation. Please verify claims with trusted sources.")
	} else {
		b.WriteString("✓ This content appears relatively safe, but always verify important claims.")
	}

	return b.String()
}
