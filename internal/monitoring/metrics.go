package monitoring

import (
	"context"
	"log"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipe_checkins_total",
			Help: "Identifiers presented at entry lanes by outcome",
		},
		[]string{"outcome"},
	)

	submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipe_submissions_total",
			Help: "Check-ins sent to the booking system by result",
		},
		[]string{"source", "result"},
	)

	unsavedIdentifiers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "swipe_unsaved_identifiers",
			Help: "Identifiers waiting in the unsaved ledger per event",
		},
		[]string{"event_id"},
	)

	replays = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipe_replays_total",
			Help: "Unsaved ledger replays by result",
		},
		[]string{"result"},
	)

	onlineMode = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipe_online",
			Help: "1 when the engine is online",
		},
	)

	providerRequests = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swipe_provider_request_duration_seconds",
			Help:    "Duration of booking system requests",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"operation", "code"},
	)

	goroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swipe_active_goroutines",
			Help: "Current number of active goroutines",
		},
	)
)

// TrackCheckIn counts one classified identifier
func TrackCheckIn(outcome string) {
	checkIns.WithLabelValues(outcome).Inc()
}

// TrackSubmission counts one attempt to send a check-in
func TrackSubmission(source, result string) {
	submissions.WithLabelValues(source, result).Inc()
}

// TrackReplay counts one replay of the unsaved ledger
func TrackReplay(result string) {
	replays.WithLabelValues(result).Inc()
}

// SetUnsaved records the size of an event's unsaved ledger
func SetUnsaved(eventID string, count int) {
	unsavedIdentifiers.WithLabelValues(eventID).Set(float64(count))
}

// SetOnline records the current mode
func SetOnline(online bool) {
	if online {
		onlineMode.Set(1)
		return
	}
	onlineMode.Set(0)
}

// ObserveProviderRequest records the duration of one booking system request.
// A code of 0 means the request never got a response.
func ObserveProviderRequest(operation string, code int, duration time.Duration) {
	providerRequests.WithLabelValues(operation, strconv.Itoa(code)).Observe(duration.Seconds())
}

// UnsavedCounter reports the unsaved ledger size of the loaded event
type UnsavedCounter interface {
	UnsavedCount(ctx context.Context) (eventID string, count int, err error)
}

// Monitor refreshes gauges that are not updated inline
type Monitor struct {
	counter  UnsavedCounter
	interval time.Duration
}

func NewMonitor(counter UnsavedCounter, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Monitor{
		counter:  counter,
		interval: interval,
	}
}

// Run collects until ctx is done
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.collect(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *Monitor) collect(ctx context.Context) {
	goroutineCount.Set(float64(runtime.NumGoroutine()))

	if m.counter == nil {
		return
	}

	eventID, count, err := m.counter.UnsavedCount(ctx)
	if err != nil {
		log.Printf("Failed to collect unsaved count: %v", err)
		return
	}
	if eventID != "" {
		SetUnsaved(eventID, count)
	}
}
