package events

import (
	"sync"
)

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"

	TableVotingSessions   = "voting_sessions"
	TableOrderingSessions = "ordering_sessions"
	TableRestaurants      = "restaurants"

	subscriberBuffer = 16
)

type Event struct {
	Table string `json:"table"`
	Event string `json:"event"`
	RowID string `json:"row_id,omitempty"`
}

type Subscriber struct {
	C      chan Event
	tables map[string]bool
}

// Hub fans table change events out to subscribers so clients can re-fetch
// on change instead of polling. A slow subscriber loses its oldest pending
// event rather than blocking publishers.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[*Subscriber]struct{}),
	}
}

// Subscribe registers interest in the given tables. An empty table list
// subscribes to every table.
func (h *Hub) Subscribe(tables ...string) *Subscriber {
	sub := &Subscriber{
		C:      make(chan Event, subscriberBuffer),
		tables: make(map[string]bool, len(tables)),
	}
	for _, t := range tables {
		sub.tables[t] = true
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.C)
	}
	h.mu.Unlock()
}

func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		if len(sub.tables) > 0 && !sub.tables[e.Table] {
			continue
		}
		select {
		case sub.C <- e:
		default:
			// full: drop the oldest pending event to make room
			select {
			case <-sub.C:
			default:
			}
			select {
			case sub.C <- e:
			default:
			}
		}
	}
}
