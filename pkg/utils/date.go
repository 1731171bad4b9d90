package utils

import (
	"fmt"
	"time"
)

// ISO 8601 형식 (마이크로초 포함, 로컬 시간)
const timestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp는 응답에 포함할 현재 시각 문자열을 반환합니다
func Timestamp() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp는 시각을 응답용 문자열로 변환합니다
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// ProcessingTime은 경과 시간을 "0.12s" 형식으로 변환합니다
func ProcessingTime(start time.Time) string {
	return fmt.Sprintf("%.2fs", time.Since(start).Seconds())
}
