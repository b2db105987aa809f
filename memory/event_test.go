package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vodalus/moa/core"
)

func TestEventLog_AddAndLen(t *testing.T) {
	log := NewEventLog()
	assert.Equal(t, 0, log.Len())

	e := log.Add(core.RoleUser, "hello")
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, core.RoleUser, e.Role)
	assert.Equal(t, "hello", e.Message)
	assert.False(t, e.Timestamp.IsZero())

	log.Add(core.RoleAssistant, "hi there")
	assert.Equal(t, 2, log.Len())
}

func TestEventLog_EventsReturnsCopy(t *testing.T) {
	log := NewEventLog()
	log.Add(core.RoleUser, "first")

	events := log.Events()
	events[0].Message = "mutated"

	assert.Equal(t, "first", log.Events()[0].Message)
}

func TestEventLog_PreservesOrder(t *testing.T) {
	log := NewEventLog()
	log.Add(core.RoleUser, "one")
	log.Add(core.RoleAssistant, "two")
	log.Add(core.RoleUser, "three")

	events := log.Events()
	assert.Equal(t, "one", events[0].Message)
	assert.Equal(t, "two", events[1].Message)
	assert.Equal(t, "three", events[2].Message)
}
