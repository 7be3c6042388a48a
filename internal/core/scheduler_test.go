package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualSchedulerOrdering(t *testing.T) {
	s := NewManualScheduler()
	var got []string

	s.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })
	s.AfterFunc(100*time.Millisecond, func() {
		got = append(got, "a")
		s.AfterFunc(100*time.Millisecond, func() { got = append(got, "b") })
	})
	s.AfterFunc(300*time.Millisecond, func() { got = append(got, "d") })

	s.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"a"}, got)

	s.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.Zero(t, s.Pending())
}

func TestManualSchedulerCancel(t *testing.T) {
	s := NewManualScheduler()
	ran := false
	cancel := s.AfterFunc(time.Second, func() { ran = true })

	assert.True(t, cancel())
	assert.False(t, cancel())
	s.RunAll()
	assert.False(t, ran)
}

func TestTimerSchedulerScale(t *testing.T) {
	done := make(chan struct{})
	NewTimerScheduler(0).AfterFunc(time.Hour, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("zero scale should run immediately")
	}

	cancel := NewTimerScheduler(1).AfterFunc(time.Hour, func() { t.Error("should not run") })
	assert.True(t, cancel())
}

func TestResponders(t *testing.T) {
	c := NewCyclingResponder("one", "two")
	assert.Equal(t, []string{"one", "two", "one"}, []string{c.Reply(""), c.Reply(""), c.Reply("")})

	a := NewRandomResponder(7)
	b := NewRandomResponder(7)
	for i := 0; i < 10; i++ {
		reply := a.Reply("hi")
		assert.Equal(t, reply, b.Reply("hi"))
		assert.Contains(t, defaultReplies, reply)
	}
}
