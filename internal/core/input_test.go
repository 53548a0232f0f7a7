package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueueDrainPreservesOrder(t *testing.T) {
	q := NewEventQueue()
	q.Push(EventFlap)
	q.Push(EventNone)
	q.Push(EventConfirm)
	q.Push(EventFlap)

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []Event{EventFlap, EventConfirm, EventFlap}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestEventQueueDrainReturnsCopy(t *testing.T) {
	q := NewEventQueue()
	q.Push(EventFlap)
	drained := q.Drain()

	q.Push(EventQuit)
	assert.Equal(t, []Event{EventFlap}, drained)
}

func TestHas(t *testing.T) {
	events := []Event{EventFlap, EventConfirm}
	assert.True(t, Has(events, EventConfirm))
	assert.False(t, Has(events, EventQuit))
	assert.False(t, Has(nil, EventFlap))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "Flap", EventFlap.String())
	assert.Equal(t, "Quit", EventQuit.String())
	assert.Equal(t, "Unknown", Event(42).String())
}
