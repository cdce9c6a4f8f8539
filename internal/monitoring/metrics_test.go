package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeCounter struct {
	eventID string
	count   int
	err     error
}

func (f *fakeCounter) UnsavedCount(context.Context) (string, int, error) {
	return f.eventID, f.count, f.err
}

func TestCollectSetsUnsavedGauge(t *testing.T) {
	m := NewMonitor(&fakeCounter{eventID: "evt-collect", count: 3}, time.Minute)

	m.collect(context.Background())

	assert.Equal(t, float64(3), testutil.ToFloat64(unsavedIdentifiers.WithLabelValues("evt-collect")))
}

func TestCollectIgnoresCounterErrors(t *testing.T) {
	SetUnsaved("evt-error", 7)
	m := NewMonitor(&fakeCounter{eventID: "evt-error", count: 1, err: errors.New("redis down")}, time.Minute)

	m.collect(context.Background())

	assert.Equal(t, float64(7), testutil.ToFloat64(unsavedIdentifiers.WithLabelValues("evt-error")))
}

func TestTrackCheckIn(t *testing.T) {
	before := testutil.ToFloat64(checkIns.WithLabelValues("booked"))

	TrackCheckIn("booked")

	assert.Equal(t, before+1, testutil.ToFloat64(checkIns.WithLabelValues("booked")))
}

func TestSetOnline(t *testing.T) {
	SetOnline(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(onlineMode))

	SetOnline(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(onlineMode))
}

func TestRunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		NewMonitor(nil, 10*time.Millisecond).Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
