package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

// 캐시 백엔드 종류
const (
	CacheBackendNone     = "none"
	CacheBackendMemory   = "memory"
	CacheBackendDynamoDB = "dynamodb"
)

// ServerConfig는 HTTP 서버 설정입니다
type ServerConfig struct {
	Port      string `env:"PORT" envDefault:"5000"`
	AppName   string `env:"APP_NAME" envDefault:"satyavadi-go"`
	AppEnv    string `env:"APP_ENV" envDefault:"production"`
	FlaskEnv  string `env:"FLASK_ENV"`
	Debug     bool   `env:"DEBUG" envDefault:"false"`
	StaticDir string `env:"STATIC_DIR" envDefault:"static"`
}

// OpenAIConfig는 생성형 백엔드 설정입니다
type OpenAIConfig struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	Model   string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	BaseURL string        `env:"OPENAI_BASE_URL"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"20s"`
}

// CacheConfig는 판정 캐시 설정입니다
type CacheConfig struct {
	Backend string        `env:"CACHE_BACKEND" envDefault:"none"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// AWSConfig는 DynamoDB 접속 설정입니다
type AWSConfig struct {
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	Region           string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
	DynamoDBEndpoint string `env:"AWS_DYNAMODB_ENDPOINT"`
	Tables           struct {
		VerdictCache string `env:"AWS_DYNAMODB_TABLE_VERDICT_CACHE" envDefault:"VerdictCache"`
	}
}

type EnvConfig struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	Cache  CacheConfig
	AWS    AWSConfig
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// AIEnabled는 생성형 백엔드 자격 증명이 설정되었는지 확인합니다
func (c *EnvConfig) AIEnabled() bool {
	return c.OpenAI.APIKey != ""
}

// IsDebug는 디버그 모드 여부를 반환합니다
func (c *EnvConfig) IsDebug() bool {
	if c.Server.Debug || c.Server.FlaskEnv == "development" {
		return true
	}
	return c.Server.AppEnv == "dev" || c.Server.AppEnv == "local"
}

// Validate는 설정 값의 조합을 검증합니다
func (c *EnvConfig) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendNone, CacheBackendMemory, CacheBackendDynamoDB:
	default:
		return fmt.Errorf("지원하지 않는 CACHE_BACKEND: %s", c.Cache.Backend)
	}

	if c.Server.Port == "" {
		return errors.New("PORT가 비어 있습니다")
	}

	if c.OpenAI.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT은 0보다 커야 합니다: %s", c.OpenAI.Timeout)
	}

	return nil
}

// Load는 .env 파일과 환경 변수에서 설정을 읽어 검증합니다
func Load() (*EnvConfig, error) {
	// .env 파일은 선택 사항
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("환경 변수 파싱 실패: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		config, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "환경 변수 로드 실패: %v\n", err)
			os.Exit(1)
		}
		configInstance = config
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s, AI 사용: %t)\n", AppVersion, config.AIEnabled())
	})
	return configInstance
}
