package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors for the conversational pipeline.
type Metrics struct {
	InboundMessages     *prometheus.CounterVec
	ClassifiedIntents   *prometheus.CounterVec
	AIFallbackRequests  *prometheus.CounterVec
	OnboardingCompleted prometheus.Counter
	OutboundMessages    *prometheus.CounterVec
}

// New registers and returns the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		InboundMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vittasaathi_inbound_messages_total",
			Help: "Inbound chat messages by channel.",
		}, []string{"channel"}),
		ClassifiedIntents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vittasaathi_classified_intents_total",
			Help: "Classified intents by tag and locale.",
		}, []string{"intent", "locale"}),
		AIFallbackRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vittasaathi_ai_fallback_requests_total",
			Help: "AI fallback adapter calls by outcome.",
		}, []string{"outcome"}),
		OnboardingCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vittasaathi_onboarding_completed_total",
			Help: "Completed onboarding flows.",
		}),
		OutboundMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vittasaathi_outbound_messages_total",
			Help: "Outbound messages by delivery status.",
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.InboundMessages,
		m.ClassifiedIntents,
		m.AIFallbackRequests,
		m.OnboardingCompleted,
		m.OutboundMessages,
	)
	return m
}
