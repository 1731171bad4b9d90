package utils

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 로그 레벨 정의
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 로그 레벨을 문자열로 변환
func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

var (
	logger      *zap.SugaredLogger
	isDebugMode bool
	loggerMu    sync.RWMutex
)

func init() {
	logger = newZapLogger(false).Sugar()
}

// newZapLogger는 모드에 맞는 zap 로거를 생성합니다
func newZapLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// LogMessage와 편의 함수 두 단계를 건너뛰어 실제 호출 위치를 기록
	l, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 생성 실패: %v\n", err)
		return zap.NewNop()
	}
	return l
}

// InitLogger는 디버그 모드 여부에 따라 전역 로거를 다시 구성합니다
func InitLogger(debug bool) {
	l := newZapLogger(debug)

	loggerMu.Lock()
	defer loggerMu.Unlock()
	isDebugMode = debug
	logger = l.Sugar()
}

// SetLogger는 전역 로거를 교체합니다 (테스트용)
func SetLogger(l *zap.Logger, debug bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	isDebugMode = debug
	logger = l.Sugar()
}

// IsDebug는 현재 애플리케이션이 디버그 모드로 실행 중인지 확인합니다
func IsDebug() bool {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return isDebugMode
}

// Sync는 버퍼에 남은 로그를 내보냅니다
func Sync() {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	_ = logger.Sync()
}

// LogMessage는 지정된 레벨에 해당하는 로그 메시지를 출력합니다
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	// 디버그 모드가 아닐 때 DEBUG 로그는 출력하지 않음
	if level == DEBUG && !IsDebug() {
		return
	}

	loggerMu.RLock()
	l := logger.With("service", service)
	loggerMu.RUnlock()

	message := fmt.Sprintf(format, args...)
	switch level {
	case DEBUG:
		l.Debug(message)
	case INFO:
		l.Info(message)
	case WARN:
		l.Warn(message)
	default:
		l.Error(message)
	}

	// 에러 레벨 이상은 메트릭에 기록
	if level >= ERROR {
		RecordError(service, level.String())
	}
}

// 편의성 함수들
func Debug(service, format string, args ...interface{}) {
	LogMessage(DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	LogMessage(INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	LogMessage(WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	LogMessage(ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	LogMessage(FATAL, service, format, args...)
	Sync()
	os.Exit(1)
}
