package relay

import (
	"sync"
	"time"

	"emviapp/models"
)

// Event is the typed change notification fanned out to in-process listeners.
type Event struct {
	Type      string          `json:"type"` // booking_created|booking_updated|booking_cancelled|booking_confirmed
	BookingID string          `json:"booking_id"`
	Booking   *models.Booking `json:"booking,omitempty"`
	At        time.Time       `json:"at"`
}

// Subscription is a live listener on the bus. Close must be called when the
// listener is done; events stop arriving on C afterwards.
type Subscription struct {
	C    <-chan Event
	id   int
	bus  *Bus
	once sync.Once
}

// Close unsubscribes and releases the channel.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.remove(s.id)
	})
}

// Bus is a best-effort in-process fan-out of booking events. Publishing never
// blocks: a subscriber whose buffer is full misses the event. No replay, no
// ordering guarantees beyond what the change feed delivers.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

const subscriberBuffer = 16

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener and returns its subscription.
func (b *Bus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	return &Subscription{C: ch, id: id, bus: b}
}

// Publish delivers the event to every subscriber that has buffer room.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			// Slow subscriber; drop rather than block the feed.
		}
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Len returns the current subscriber count.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
