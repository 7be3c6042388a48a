package core

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs f once after d. The returned cancel func stops f from
// running and reports whether it was still pending.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func() bool)
}

// TimerScheduler schedules on real timers. Scale multiplies every delay;
// zero or negative runs callbacks on their own goroutine right away.
type TimerScheduler struct {
	Scale float64
}

func NewTimerScheduler(scale float64) *TimerScheduler {
	return &TimerScheduler{Scale: scale}
}

func (s *TimerScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	if s.Scale <= 0 {
		d = 0
	} else {
		d = time.Duration(float64(d) * s.Scale)
	}
	t := time.AfterFunc(d, f)
	return t.Stop
}

// ManualScheduler is a virtual clock. Callbacks run only from Advance, in
// due order, on the caller's goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	due time.Duration
	seq int
	f   func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	task := &manualTask{due: s.now + d, seq: s.seq, f: f}
	s.tasks = append(s.tasks, task)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, t := range s.tasks {
			if t == task {
				s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
				return true
			}
		}
		return false
	}
}

// Advance moves the clock forward by d, running every callback that falls
// due, including ones scheduled by callbacks along the way.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		sort.SliceStable(s.tasks, func(i, j int) bool {
			if s.tasks[i].due != s.tasks[j].due {
				return s.tasks[i].due < s.tasks[j].due
			}
			return s.tasks[i].seq < s.tasks[j].seq
		})
		if len(s.tasks) == 0 || s.tasks[0].due > target {
			s.now = target
			s.mu.Unlock()
			return
		}
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.now = task.due
		s.mu.Unlock()

		task.f()
	}
}

// RunAll advances until nothing is pending.
func (s *ManualScheduler) RunAll() {
	for {
		s.mu.Lock()
		if len(s.tasks) == 0 {
			s.mu.Unlock()
			return
		}
		var last time.Duration
		for _, t := range s.tasks {
			if t.due > last {
				last = t.due
			}
		}
		d := last - s.now
		s.mu.Unlock()
		s.Advance(d)
	}
}

// Pending returns the number of callbacks not yet run or cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
