package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash는 캐시 키로 사용할 콘텐츠의 SHA-256 해시를 반환합니다
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
