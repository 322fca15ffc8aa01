package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesPublishedEvents(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	hub.Publish(Event{Table: TableRestaurants, Event: EventUpdate, RowID: "r1"})

	got := <-sub.C
	assert.Equal(t, TableRestaurants, got.Table)
	assert.Equal(t, EventUpdate, got.Event)
	assert.Equal(t, "r1", got.RowID)
}

func TestSubscribeFiltersByTable(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(TableVotingSessions)
	defer hub.Unsubscribe(sub)

	hub.Publish(Event{Table: TableRestaurants, Event: EventUpdate})
	hub.Publish(Event{Table: TableVotingSessions, Event: EventInsert})

	got := <-sub.C
	assert.Equal(t, TableVotingSessions, got.Table)
	assert.Empty(t, sub.C)
}

func TestSlowSubscriberDropsOldest(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	for i := 0; i < subscriberBuffer+1; i++ {
		hub.Publish(Event{Table: TableRestaurants, Event: EventUpdate, RowID: string(rune('a' + i))})
	}

	require.Len(t, sub.C, subscriberBuffer)

	// The first event was dropped to make room for the last.
	got := <-sub.C
	assert.Equal(t, "b", got.RowID)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)

	_, ok := <-sub.C
	assert.False(t, ok)

	// A second unsubscribe is a no-op, not a double close.
	hub.Unsubscribe(sub)

	// Publishing after unsubscribe must not reach the closed channel.
	hub.Publish(Event{Table: TableRestaurants, Event: EventDelete})
}
