package calendar

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/makyelver-commits/eventor/internal/event"
)

// DefaultReminderPeriod spaces the motivational prompts.
const DefaultReminderPeriod = 3 * time.Minute

// Prompt is one motivational reminder shown while events are scheduled
// for the current day.
type Prompt struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

var singleTemplates = []Prompt{
	{Title: "🎵 You play today!", Message: "One event, one chance to shine. Make it count!"},
	{Title: "🎸 Rock it today", Message: "Your stage is waiting. Feel the music and live the moment!"},
	{Title: "🎤 Your voice carries", Message: "Today you are the star. Leave your mark!"},
	{Title: "🎹 Play from the soul", Message: "One show, a thousand emotions. Connect with your audience!"},
	{Title: "🥁 Inner rhythm", Message: "Your pulse sets the beat today. Be the soundtrack of the day!"},
}

var multipleTemplates = []Prompt{
	{Title: "🎶 Star day", Message: "%d events, %d chances to shine. Today you are a legend!"},
	{Title: "🎭 Multi-talent", Message: "%d stages, one artist. Show your range!"},
	{Title: "🎪 Full show", Message: "%d magic moments ahead. The show must go on!"},
	{Title: "🎨 Artist at work", Message: "%d canvases of sound to paint. Create your masterpiece!"},
	{Title: "🌟 Star of the day", Message: "%d rounds of applause, one heart. Light up every stage!"},
}

// session is one owner's Active reminder state: today's events plus the
// recurring timer handle. Destroyed and recreated whenever the today
// set changes; always destroyed on teardown.
type session struct {
	cron   *cron.Cron
	events []event.Event
	last   *Prompt
}

// Scheduler drives the Idle/Active reminder state machine per owner.
type Scheduler struct {
	mu       sync.Mutex
	period   time.Duration
	sessions map[string]*session

	// now is injectable so tests can fabricate "today".
	now func() time.Time
	rnd *rand.Rand

	// emit, when set, receives every prompt as it fires.
	emit func(ownerID string, p Prompt)
}

func NewScheduler(period time.Duration) *Scheduler {
	if period <= 0 {
		period = DefaultReminderPeriod
	}
	return &Scheduler{
		period:   period,
		sessions: make(map[string]*session),
		now:      time.Now,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetEmitter registers a callback receiving each fired prompt.
func (s *Scheduler) SetEmitter(emit func(ownerID string, p Prompt)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit = emit
}

// Refresh recomputes the "events today" set for an owner and moves the
// state machine: a non-empty set (re)arms the session, tearing down any
// existing timer first so timers never duplicate and never reference a
// stale event list; an empty set cancels.
func (s *Scheduler) Refresh(ownerID string, events []event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todayKey := ToDateKey(s.now())
	var today []event.Event
	for _, e := range events {
		if e.Date == todayKey {
			today = append(today, e)
		}
	}

	s.teardownLocked(ownerID)
	if len(today) == 0 {
		return
	}

	sess := &session{events: today}
	s.sessions[ownerID] = sess

	// Immediate prompt on the Idle -> Active transition.
	s.fireLocked(ownerID, sess)

	// One recurring timer per session. SkipIfStillRunning guarantees a
	// tick never overlaps itself; missed ticks are not accumulated.
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, _ = c.AddFunc(fmt.Sprintf("@every %s", s.period), func() {
		s.tick(ownerID)
	})
	c.Start()
	sess.cron = c
}

// Teardown cancels the owner's session unconditionally. This is the
// hard liveness requirement: no recurring timer survives the view.
func (s *Scheduler) Teardown(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked(ownerID)
}

// Active reports whether the owner currently has an armed session.
func (s *Scheduler) Active(ownerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[ownerID]
	return ok
}

// LatestPrompt returns the most recent prompt for the owner, if any.
func (s *Scheduler) LatestPrompt(ownerID string) (Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[ownerID]
	if !ok || sess.last == nil {
		return Prompt{}, false
	}
	return *sess.last, true
}

// Stop tears down every session (server shutdown).
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ownerID := range s.sessions {
		s.teardownLocked(ownerID)
	}
}

func (s *Scheduler) teardownLocked(ownerID string) {
	sess, ok := s.sessions[ownerID]
	if !ok {
		return
	}
	if sess.cron != nil {
		sess.cron.Stop()
	}
	delete(s.sessions, ownerID)
}

func (s *Scheduler) tick(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[ownerID]
	if !ok {
		return
	}
	// The day can roll over between ticks; an empty today set means the
	// session no longer applies.
	todayKey := ToDateKey(s.now())
	if len(sess.events) == 0 || sess.events[0].Date != todayKey {
		s.teardownLocked(ownerID)
		return
	}
	s.fireLocked(ownerID, sess)
}

func (s *Scheduler) fireLocked(ownerID string, sess *session) {
	n := len(sess.events)
	var p Prompt
	if n == 1 {
		p = singleTemplates[s.rnd.Intn(len(singleTemplates))]
	} else {
		t := multipleTemplates[s.rnd.Intn(len(multipleTemplates))]
		p = Prompt{Title: t.Title, Message: formatCount(t.Message, n)}
	}
	p.At = s.now()
	sess.last = &p

	if s.emit != nil {
		s.emit(ownerID, p)
	}
}

// formatCount substitutes every %d in a template with the event count.
func formatCount(template string, n int) string {
	args := make([]interface{}, 0, 2)
	for i := 0; i < countVerbs(template); i++ {
		args = append(args, n)
	}
	return fmt.Sprintf(template, args...)
}

func countVerbs(template string) int {
	count := 0
	for i := 0; i+1 < len(template); i++ {
		if template[i] == '%' && template[i+1] == 'd' {
			count++
		}
	}
	return count
}
