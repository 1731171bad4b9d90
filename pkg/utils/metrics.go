package utils

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satyavadi_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "satyavadi_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// ApiCallCounter는 외부 API 호출 수를 추적합니다
	ApiCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satyavadi_api_calls_total",
		Help: "외부 API 호출 수",
	}, []string{"api", "status"})

	// ApiResponseTime은 외부 API 응답 시간을 측정합니다
	ApiResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "satyavadi_api_response_time_seconds",
		Help:    "외부 API 응답 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"api"})

	// ClassificationCounter는 전략별 판정 수를 추적합니다
	ClassificationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satyavadi_classifications_total",
		Help: "전략별 콘텐츠 판정 수",
	}, []string{"strategy", "is_misinformation"})

	// FallbackCounter는 규칙 기반 분석으로 전환된 횟수를 추적합니다
	FallbackCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satyavadi_fallback_total",
		Help: "생성형 백엔드 실패로 인한 규칙 기반 전환 수",
	}, []string{"reason"})

	// CacheCounter는 판정 캐시 적중 여부를 추적합니다
	CacheCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satyavadi_verdict_cache_total",
		Help: "판정 캐시 조회 결과",
	}, []string{"backend", "result"})

	// ServerMetric은 서버 상태 지표를 나타냅니다
	ServerMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "satyavadi_server_status",
		Help: "서버 상태 지표 (load, healthy, capacity)",
	}, []string{"server", "metric"})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "satyavadi_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})
)

var metricsOnce sync.Once

// InitMetrics는 모든 메트릭을 기본 레지스트리에 등록합니다
func InitMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			ResponseTime,
			ApiCallCounter,
			ApiResponseTime,
			ClassificationCounter,
			FallbackCounter,
			CacheCounter,
			ServerMetric,
			ErrorCounter,
		)
	})
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method, path string, statusCode int, duration float64) {
	status := strconv.Itoa(statusCode)
	RequestCounter.WithLabelValues(method, path, status).Inc()
	ResponseTime.WithLabelValues(method, path, status).Observe(duration)
}

// RecordApiCall은 외부 API 호출 메트릭을 기록합니다
func RecordApiCall(apiName string, statusCode int, duration float64) {
	status := "success"
	if statusCode < 200 || statusCode >= 400 {
		status = "error"
	}
	ApiCallCounter.WithLabelValues(apiName, status).Inc()
	ApiResponseTime.WithLabelValues(apiName).Observe(duration)
}

// RecordClassification은 판정 결과를 전략별로 기록합니다
func RecordClassification(strategy string, isMisinformation bool) {
	ClassificationCounter.WithLabelValues(strategy, strconv.FormatBool(isMisinformation)).Inc()
}

// RecordFallback은 규칙 기반 분석으로 전환된 사유를 기록합니다
func RecordFallback(reason string) {
	FallbackCounter.WithLabelValues(reason).Inc()
}

// RecordCache는 판정 캐시 조회 결과를 기록합니다
func RecordCache(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheCounter.WithLabelValues(backend, result).Inc()
}

// UpdateServerMetric은 서버 상태 지표를 갱신합니다
func UpdateServerMetric(serverName, metric string, value float64) {
	ServerMetric.WithLabelValues(serverName, metric).Set(value)
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}
