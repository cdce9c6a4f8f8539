package snapshot

import (
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/eventswipe/internal/models"
)

type state struct {
	event    *models.Event
	recorded map[string]*models.Booking
}

// actor serializes every read and mutation of the event through one goroutine
type actor struct {
	ops       chan func(*state)
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New starts an empty snapshot
func New() *actor {
	a := &actor{
		ops:  make(chan func(*state)),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	go a.run()

	return a
}

func (a *actor) run() {
	defer close(a.done)

	st := &state{recorded: make(map[string]*models.Booking)}
	for {
		select {
		case op := <-a.ops:
			op(st)
		case <-a.quit:
			return
		}
	}
}

// do runs fn on the actor goroutine and waits for it to finish
func (a *actor) do(fn func(st *state)) bool {
	finished := make(chan struct{})
	op := func(st *state) {
		defer close(finished)
		fn(st)
	}

	select {
	case a.ops <- op:
	case <-a.quit:
		return false
	}

	<-finished
	return true
}

func (a *actor) Close() {
	a.closeOnce.Do(func() {
		close(a.quit)
	})
	<-a.done
}

func (a *actor) Load(event *models.Event) {
	loaded := copyEvent(event)
	a.do(func(st *state) {
		st.event = loaded
		st.recorded = make(map[string]*models.Booking)
	})
}

func (a *actor) Loaded() bool {
	var loaded bool
	a.do(func(st *state) {
		loaded = st.event != nil
	})
	return loaded
}

func (a *actor) Summary() Summary {
	var summary Summary
	a.do(func(st *state) {
		e := st.event
		if e == nil {
			return
		}

		summary = Summary{
			ID:                   e.ID,
			Title:                e.Title,
			Venue:                e.Venue,
			StartTime:            e.StartTime,
			RegistrationOpenTime: e.RegistrationOpenTime,
			BookingLimit:         e.BookingLimit,
			IsUnlimited:          e.IsUnlimited,
			IsDropIn:             e.IsDropIn,
			IsOffline:            e.IsOffline,
			IsFull:               e.IsFull(),
			SessionCount:         len(e.Sessions),
			BookingListSize:      len(e.Bookings),
			WaitingListSize:      len(e.WaitingList),
			AttendeeCount:        e.AttendeeCount,
			BookingCount:         e.BookingCount,
			UnspecifiedCount:     e.UnspecifiedCount,
			RecordedCount:        len(st.recorded),
		}
	})
	return summary
}

func (a *actor) FindBooking(identifier string) (models.Booking, bool) {
	var (
		found models.Booking
		ok    bool
	)
	a.do(func(st *state) {
		if b := st.find(identifier); b != nil {
			found, ok = *b, true
		}
	})
	return found, ok
}

func (a *actor) AddBooking(b models.Booking) {
	a.do(func(st *state) {
		if st.event == nil {
			return
		}
		if existing := st.find(b.Identifier); existing != nil {
			*existing = b
			return
		}
		st.event.Bookings = append(st.event.Bookings, &b)
		st.event.BookingCount++
	})
}

func (a *actor) UpdateBooking(identifier string, fn func(b *models.Booking)) bool {
	var updated bool
	a.do(func(st *state) {
		if b := st.find(identifier); b != nil {
			fn(b)
			updated = true
		}
		if b, ok := st.recorded[identifier]; ok {
			fn(b)
			updated = true
		}
	})
	return updated
}

func (a *actor) SetWaitingList(identifiers []string) {
	list := append([]string(nil), identifiers...)
	a.do(func(st *state) {
		if st.event != nil {
			st.event.WaitingList = list
		}
	})
}

func (a *actor) OnWaitingList(identifier string) bool {
	var found bool
	a.do(func(st *state) {
		if st.event == nil {
			return
		}
		for _, waiting := range st.event.WaitingList {
			if waiting == identifier {
				found = true
				return
			}
		}
	})
	return found
}

func (a *actor) Recorded(identifier string) (models.Booking, bool) {
	var (
		recorded models.Booking
		ok       bool
	)
	a.do(func(st *state) {
		if b, exists := st.recorded[identifier]; exists {
			recorded, ok = *b, true
		}
	})
	return recorded, ok
}

func (a *actor) MarkRecorded(b models.Booking) bool {
	var added bool
	a.do(func(st *state) {
		if _, exists := st.recorded[b.Identifier]; exists {
			return
		}
		st.recorded[b.Identifier] = &b
		added = true
	})
	return added
}

func (a *actor) EffectiveSession(now time.Time) (models.Session, bool) {
	var (
		session models.Session
		ok      bool
	)
	a.do(func(st *state) {
		if st.event == nil {
			return
		}
		if s := st.event.EffectiveSession(now); s != nil {
			session, ok = *s, true
		}
	})
	return session, ok
}

func (a *actor) BeforeRegistration(now time.Time) bool {
	var before bool
	a.do(func(st *state) {
		before = st.event != nil && st.event.IsBeforeRegistration(now)
	})
	return before
}

// find is a linear scan of the booking list
func (st *state) find(identifier string) *models.Booking {
	if st.event == nil {
		return nil
	}
	for _, b := range st.event.Bookings {
		if b.Identifier == identifier {
			return b
		}
	}
	return nil
}

func copyEvent(event *models.Event) *models.Event {
	if event == nil {
		return nil
	}

	copied := *event
	copied.Sessions = make([]*models.Session, 0, len(event.Sessions))
	for _, s := range event.Sessions {
		session := *s
		copied.Sessions = append(copied.Sessions, &session)
	}
	// session lookups rely on start order
	sort.SliceStable(copied.Sessions, func(i, j int) bool {
		return copied.Sessions[i].Start.Before(copied.Sessions[j].Start)
	})
	copied.Bookings = make([]*models.Booking, 0, len(event.Bookings))
	for _, b := range event.Bookings {
		booking := *b
		copied.Bookings = append(copied.Bookings, &booking)
	}
	copied.WaitingList = append([]string(nil), event.WaitingList...)

	return &copied
}
