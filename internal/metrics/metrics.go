// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 記録するresultラベルの値
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Collector はPrometheusメトリクスを収集する。
// ハンドラー層から認証・アンケートの結果とHTTPレスポンスを記録する。
type Collector struct {
	signups         *prometheus.CounterVec
	logins          *prometheus.CounterVec
	surveySubmits   *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "labsurvey_signup_total",
			Help: "結果別のユーザー登録試行数",
		}, []string{"result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "labsurvey_login_total",
			Help: "結果別のログイン試行数",
		}, []string{"result"}),
		surveySubmits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "labsurvey_survey_submissions_total",
			Help: "結果別のアンケート送信数",
		}, []string{"result"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "labsurvey_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "labsurvey_request_duration_seconds",
			Help:    "HTTPリクエスト処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.signups,
		c.logins,
		c.surveySubmits,
		c.httpStatus,
		c.requestDuration,
	)

	return c
}

// RecordSignup はユーザー登録の結果を記録する。
func (c *Collector) RecordSignup(success bool) {
	c.signups.WithLabelValues(resultLabel(success)).Inc()
}

// RecordLogin はログインの結果を記録する。
func (c *Collector) RecordLogin(success bool) {
	c.logins.WithLabelValues(resultLabel(success)).Inc()
}

// RecordSurveySubmission はアンケート送信の結果を記録する。
func (c *Collector) RecordSurveySubmission(success bool) {
	c.surveySubmits.WithLabelValues(resultLabel(success)).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエスト処理時間を記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

func resultLabel(success bool) string {
	if success {
		return ResultSuccess
	}
	return ResultFailure
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
