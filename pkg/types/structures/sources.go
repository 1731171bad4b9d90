package structure

// VerifiedSource는 신뢰할 수 있는 외부 출처 목록의 항목입니다
type VerifiedSource struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// VERIFIED_SOURCES는 검증된 출처 목록입니다 (순서가 선택 결과에 영향을 줌)
var VERIFIED_SOURCES = []VerifiedSource{
	{
		Title:       "World Health Organization - COVID-19 Information",
		Source:      "WHO",
		Description: "Official information about COVID-19 from the World Health Organization.",
		URL:         "https://www.who.int/emergencies/diseases/novel-coronavirus-2019",
	},
	{
		Title:       "Centers for Disease Control and Prevention",
		Source:      "CDC",
		Description: "Trusted health information from the CDC.",
		URL:         "https://www.cdc.gov",
	},
	{
		Title:       "FactCheck.org",
		Source:      "FactCheck.org",
		Description: "Non-partisan fact-checking organization.",
		URL:         "https://www.factcheck.org",
	},
	{
		Title:       "Snopes",
		Source:      "Snopes",
		Description: "Fact-checking website for urban legends and misinformation.",
		URL:         "https://www.snopes.com",
	},
	{
		Title:       "PolitiFact",
		Source:      "PolitiFact",
		Description: "Fact-checking journalism website.",
		URL:         "https://www.politifact.com",
	},
}
