// Package session holds the client-side state of one exam attempt:
// the issued question set, the answer map, the navigation cursor and
// the countdown. A session is exclusively owned by one exam taker and
// is discarded after submission; nothing here is persisted.
package session

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNoQuestions   = errors.New("session has no questions")
	ErrBadPosition   = errors.New("question position out of range")
	ErrInvalidOption = errors.New("selected option out of range")
	ErrSubmitted     = errors.New("exam already submitted")
)

// Question is the exam-taking view of a question. It never carries the
// correct answer.
type Question struct {
	ID         uint
	Text       string
	Options    []string
	Category   string
	Difficulty string
}

// Answer pairs a question with the selected option index. At most one
// answer exists per question; re-selecting overwrites.
type Answer struct {
	QuestionID     uint
	SelectedAnswer int
}

// Submission is the frozen outcome of Submit: the answers in question
// order and the wall-clock elapsed time in whole seconds.
type Submission struct {
	Answers   []Answer
	TimeSpent int
}

type Session struct {
	mu        sync.Mutex
	questions []Question
	answers   map[int]Answer
	cursor    int
	startedAt time.Time
	limit     time.Duration
	submitted bool
	now       func() time.Time
}

// New starts a session over the issued question set. The clock starts
// immediately.
func New(questions []Question, limit time.Duration) (*Session, error) {
	return newSession(questions, limit, time.Now)
}

func newSession(questions []Question, limit time.Duration, now func() time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		questions: questions,
		answers:   make(map[int]Answer),
		startedAt: now(),
		limit:     limit,
		now:       now,
	}, nil
}

func (s *Session) Len() int {
	return len(s.questions)
}

// Current returns the question under the cursor and its position.
func (s *Session) Current() (Question, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[s.cursor], s.cursor
}

// Next advances the cursor, clamping at the last question.
func (s *Session) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.questions)-1 {
		s.cursor++
	}
	return s.cursor
}

// Prev moves the cursor back, clamping at the first question.
func (s *Session) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}
	return s.cursor
}

// RecordAnswer stores the selected option for the question at the given
// position. Recording again for the same position overwrites.
func (s *Session) RecordAnswer(position, selected int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrSubmitted
	}
	if position < 0 || position >= len(s.questions) {
		return ErrBadPosition
	}
	q := s.questions[position]
	if selected < 0 || selected >= len(q.Options) {
		return ErrInvalidOption
	}
	s.answers[position] = Answer{QuestionID: q.ID, SelectedAnswer: selected}
	return nil
}

// Answered reports the stored selection for a position, if any.
func (s *Session) Answered(position int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[position]
	if !ok {
		return 0, false
	}
	return a.SelectedAnswer, true
}

// AnsweredCount reports how many questions have a stored answer.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Elapsed is wall-clock time since the session started. The countdown
// ticks are presentational only; scoring always uses this.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.startedAt)
}

// Remaining is the time budget left, never negative.
func (s *Session) Remaining() time.Duration {
	remaining := s.limit - s.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Submit freezes the answer map and returns the submission. A session
// submits at most once; later calls return ErrSubmitted.
func (s *Session) Submit() (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return Submission{}, ErrSubmitted
	}
	s.submitted = true

	answers := make([]Answer, 0, len(s.answers))
	for pos := 0; pos < len(s.questions); pos++ {
		if a, ok := s.answers[pos]; ok {
			answers = append(answers, a)
		}
	}
	elapsed := int(s.now().Sub(s.startedAt) / time.Second)
	return Submission{Answers: answers, TimeSpent: elapsed}, nil
}

// StartTimer runs the one-second countdown. tick (optional) is called
// with the remaining time after every tick; expire is called exactly
// once when the budget reaches zero, unless the session was submitted
// first. The returned stop function halts the countdown, e.g. once a
// manual submit begins.
func (s *Session) StartTimer(tick func(remaining time.Duration), expire func()) (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	stop = func() { once.Do(func() { close(done) }) }

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.mu.Lock()
				submitted := s.submitted
				s.mu.Unlock()
				if submitted {
					return
				}
				remaining := s.Remaining()
				if tick != nil {
					tick(remaining)
				}
				if remaining == 0 {
					expire()
					return
				}
			}
		}
	}()
	return stop
}
