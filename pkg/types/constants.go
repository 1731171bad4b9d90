package constants

import "time"

// 규칙 기반 위험 점수 (호환성을 위해 값을 그대로 유지)
const (
	BASE_RISK_SCORE       = 0.3
	RISK_SCORE_INCREMENT  = 0.15
	MAX_RISK_SCORE        = 0.95
	MISINFO_MATCH_COUNT   = 2
	MISINFO_RISK_SCORE    = 0.6
	MEDIUM_RISK_SCORE     = 0.4
	SHORT_CONTENT_LENGTH  = 100
	MAX_VERIFIED_SOURCES  = 3
	DEFAULT_RISK_FACTOR   = "No significant risk factors detected"
	SHORT_CONTENT_FACTOR  = "Very short content (may lack context)"
	UNSUBSTANTIATED_CLAIM = "Contains unsubstantiated claims"
)

// 상태 판정 기준 점수
const (
	STATUS_FAKE_SCORE  = 0.7
	STATUS_RISKY_SCORE = 0.4
	STATUS_MIXED_SCORE = 0.2
)

// 대화 요청에 포함할 최근 기록 수
const CHAT_HISTORY_LIMIT = 10

// 생성형 백엔드 호출 파라미터
const (
	ANALYZE_TEMPERATURE = 0.3
	ANALYZE_MAX_TOKENS  = 1000
	CHAT_TEMPERATURE    = 0.7
	CHAT_MAX_TOKENS     = 800
)

// 서버 상태 지표 갱신 주기
var SERVER_METRICS_INTERVAL = 10 * time.Second
