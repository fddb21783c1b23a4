package pkg

import "github.com/prometheus/client_golang/prometheus"

var (
	MemberTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "midday_member_transitions_total",
		Help: "Member lifecycle transitions committed, by event type.",
	}, []string{"event"})

	MediaUploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "midday_media_uploads_total",
		Help: "Media upload attempts, by outcome.",
	}, []string{"outcome"})

	OutboxDeliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "midday_outbox_deliveries_total",
		Help: "Membership outbox delivery attempts, by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(MemberTransitions, MediaUploads, OutboxDeliveries)
}
