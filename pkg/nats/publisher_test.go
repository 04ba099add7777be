package nats

import (
	"testing"

	"notecraft-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.NOTE_DELETED", Subject(events.NoteDeleted))
}

func TestClose_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		(&Publisher{}).Close()
		(&Subscriber{}).Close()
	})
}
