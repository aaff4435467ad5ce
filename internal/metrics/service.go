package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

type Service struct {
	ReportRuns     *prometheus.CounterVec
	TrashTalkLines *prometheus.CounterVec
	FetchFailures  *prometheus.CounterVec
	NotifSent      *prometheus.CounterVec
	NotifFailed    *prometheus.CounterVec
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ReportRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sleeperbot_report_runs_total",
			Help: "The total number of reports generated, by report.",
		}, []string{"report"}),
		TrashTalkLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sleeperbot_trash_talk_lines_total",
			Help: "The total number of trash talk lines generated, by template family.",
		}, []string{"kind"}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sleeperbot_fetch_failures_total",
			Help: "The total number of failed Sleeper API fetches, by resource.",
		}, []string{"resource"}),
		NotifSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sleeperbot_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}, []string{"channel"}),
		NotifFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sleeperbot_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}, []string{"channel"}),
	}

	reg.MustRegister(
		s.ReportRuns,
		s.TrashTalkLines,
		s.FetchFailures,
		s.NotifSent,
		s.NotifFailed,
	)

	return s
}

func (s *Service) IncReportRuns(report string) {
	s.ReportRuns.WithLabelValues(report).Inc()
}

func (s *Service) IncTrashTalkLines(kind string) {
	s.TrashTalkLines.WithLabelValues(kind).Inc()
}

func (s *Service) IncFetchFailures(resource string) {
	s.FetchFailures.WithLabelValues(resource).Inc()
}

func (s *Service) IncNotifSent(channel string) {
	s.NotifSent.WithLabelValues(channel).Inc()
}

func (s *Service) IncNotifFailed(channel string) {
	s.NotifFailed.WithLabelValues(channel).Inc()
}
