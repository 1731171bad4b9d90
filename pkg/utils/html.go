package utils

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// 주석, doctype, 빈 요소(br, hr, img), 알려진 요소의 닫는 태그가 있을 때만 HTML로 간주합니다.
// "if a<b and c>d" 같은 비교식은 닫는 태그가 없으므로 일반 텍스트로 남습니다.
var htmlTagRegex = regexp.MustCompile(`(?i)<!--|<!doctype\s|<(?:br|hr)\s*/?>|<img\s[^>]*src\s*=|</(?:html|head|body|title|p|div|span|a|b|i|u|em|strong|small|code|pre|ul|ol|li|dl|dt|dd|h[1-6]|table|thead|tbody|tr|td|th|blockquote|section|article|header|footer|nav|main|aside|figure|figcaption|script|style|noscript|template|form|button|label|font|center)\s*>`)

// LooksLikeHTML은 문자열에 HTML 태그가 포함되어 있는지 확인합니다
func LooksLikeHTML(s string) bool {
	return htmlTagRegex.MatchString(s)
}

// ExtractText는 HTML 콘텐츠에서 화면에 보이는 텍스트만 추출합니다.
// HTML이 아니면 앞뒤 공백만 제거하여 그대로 반환합니다.
func ExtractText(s string) string {
	if !LooksLikeHTML(s) {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		Warn("html", "HTML 파싱 실패, 원문 사용: %v", err)
		return strings.TrimSpace(s)
	}

	// 본문이 아닌 요소 제거
	doc.Find("script, style, noscript, template").Remove()

	// 블록 경계에서 단어가 붙지 않도록 공백 삽입
	doc.Find("p, div, br, li, h1, h2, h3, h4, h5, h6, tr, blockquote").Each(func(i int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})

	return CollapseWhitespace(doc.Text())
}

// CollapseWhitespace는 연속된 공백을 하나로 합치고 앞뒤 공백을 제거합니다
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
