package race

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/verte-zerg/typerace/internal/clock"
	"github.com/verte-zerg/typerace/internal/event"
)

type stubSupplier struct {
	next  int
	calls []int
}

func (s *stubSupplier) NextWords(n int) []string {
	s.calls = append(s.calls, n)
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%d", s.next)
		s.next++
	}
	return out
}

func newTestSession(t *testing.T) (*Session, *clock.Manual, *stubSupplier) {
	t.Helper()
	clk := clock.NewManual(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	sup := &stubSupplier{}
	s, err := NewSession(sup, clk)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, clk, sup
}

// inGame puts the session on the Game screen with the given queue.
func inGame(s *Session, clk *clock.Manual, words ...string) {
	s.screen = ScreenGame
	s.started = true
	s.countdown = 0
	s.gameStart = clk.Now()
	s.hasGameStart = true
	s.input = nil
	s.score = 0
	s.queue.Reset(words)
}

func typeString(s *Session, text string) {
	for _, r := range text {
		s.Step(event.KeyInput(event.Char(r)))
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s, _, sup := newTestSession(t)
	if s.Screen() != ScreenHome || s.Started() {
		t.Fatalf("expected idle home, got %v started=%v", s.Screen(), s.Started())
	}
	if s.Countdown() != CountdownFrom || s.Score() != 0 || s.Input() != "" {
		t.Fatalf("unexpected initial counters: countdown=%d score=%d input=%q", s.Countdown(), s.Score(), s.Input())
	}
	if len(s.Words()) != QueueSize {
		t.Fatalf("expected %d words, got %d", QueueSize, len(s.Words()))
	}
	if len(sup.calls) != 1 || sup.calls[0] != QueueSize {
		t.Fatalf("expected one supplier call for %d words, got %v", QueueSize, sup.calls)
	}
}

type emptySupplier struct{}

func (emptySupplier) NextWords(int) []string { return nil }

func TestNewSessionRejectsEmptySupplier(t *testing.T) {
	if _, err := NewSession(emptySupplier{}, clock.System{}); err == nil {
		t.Fatalf("expected error for empty supplier")
	}
}

func TestQuitFromIdle(t *testing.T) {
	s, _, _ := newTestSession(t)
	if act := s.Step(event.KeyInput(event.Char('q'))); act != ActionQuit {
		t.Fatalf("expected quit action, got %v", act)
	}
}

func TestQuitIgnoredDuringRace(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "cat", "dog")
	if act := s.Step(event.KeyInput(event.Char('q'))); act != ActionNone {
		t.Fatalf("expected q to be typed during race")
	}
	if s.Input() != "q" {
		t.Fatalf("expected input q, got %q", s.Input())
	}
}

func TestCtrlCQuitsAnywhere(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "cat")
	if act := s.Step(event.KeyInput(event.Ctrl('c'))); act != ActionQuit {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestStartArmsCountdown(t *testing.T) {
	for _, key := range []rune{'s', 'r'} {
		s, _, _ := newTestSession(t)
		s.Step(event.KeyInput(event.Char(key)))
		if !s.Started() || s.Screen() != ScreenHome || s.Countdown() != CountdownFrom {
			t.Fatalf("key %q: expected counting home, got screen=%v started=%v countdown=%d", key, s.Screen(), s.Started(), s.Countdown())
		}
	}
}

func TestOtherKeysIgnoredWhenIdle(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Step(event.KeyInput(event.Char('x')))
	s.Step(event.Tick())
	if s.Started() || s.Input() != "" {
		t.Fatalf("expected no state change")
	}
}

func TestCountdownFollowsClock(t *testing.T) {
	s, clk, _ := newTestSession(t)
	s.Step(event.KeyInput(event.Char('s')))
	for _, want := range []int{2, 1} {
		clk.Advance(time.Second)
		s.Step(event.Tick())
		if s.Countdown() != want || s.Screen() != ScreenHome {
			t.Fatalf("expected countdown %d on home, got %d on %v", want, s.Countdown(), s.Screen())
		}
	}
	clk.Advance(time.Second)
	s.Step(event.Tick())
	if s.Screen() != ScreenGame {
		t.Fatalf("expected game screen after countdown, got %v", s.Screen())
	}
	start, ok := s.GameStart()
	if !ok || !start.Equal(clk.Now()) {
		t.Fatalf("expected game start at %v, got %v (%v)", clk.Now(), start, ok)
	}
}

func TestTypingIgnoredDuringCountdown(t *testing.T) {
	s, clk, _ := newTestSession(t)
	s.Step(event.KeyInput(event.Char('s')))
	typeString(s, "abc")
	if s.Input() != "" {
		t.Fatalf("expected empty input during countdown, got %q", s.Input())
	}
	clk.Advance(3 * time.Second)
	s.Step(event.Tick())
	if s.Screen() != ScreenGame || s.Input() != "" {
		t.Fatalf("expected clean game start, got %v input=%q", s.Screen(), s.Input())
	}
}

func TestHappyPathOneWord(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "cat", "dog")
	typeString(s, "cat")
	s.Step(event.Tick())
	words := s.Words()
	if len(words) != 2 || words[0] != "dog" {
		t.Fatalf("expected [dog <fresh>], got %v", words)
	}
	if s.Input() != "" || s.Score() != 1 {
		t.Fatalf("expected cleared input and score 1, got %q %d", s.Input(), s.Score())
	}
}

func TestMatchTrimsSurroundingSpace(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "cat", "dog")
	s.input = []rune(" cat ")
	s.Step(event.Tick())
	if s.Score() != 1 || s.Input() != "" {
		t.Fatalf("expected match, score=%d input=%q", s.Score(), s.Input())
	}
}

func TestPartialWordDoesNotMatch(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "cat", "dog")
	typeString(s, "ca ")
	if s.Score() != 0 || s.Input() != "ca " {
		t.Fatalf("expected no match, score=%d input=%q", s.Score(), s.Input())
	}
}

func TestBackspace(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "zzz")
	typeString(s, "ca")
	s.Step(event.KeyInput(event.Backspace()))
	if s.Input() != "c" {
		t.Fatalf("expected c, got %q", s.Input())
	}
	s.Step(event.KeyInput(event.Backspace()))
	s.Step(event.KeyInput(event.Backspace()))
	if s.Input() != "" {
		t.Fatalf("expected empty input, got %q", s.Input())
	}
}

func TestCtrlAClears(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "zzz")
	typeString(s, "hello")
	s.Step(event.KeyInput(event.Ctrl('a')))
	if s.Input() != "" {
		t.Fatalf("expected empty input, got %q", s.Input())
	}
}

func TestModifiedKeysIgnored(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "zzz")
	typeString(s, "ab")
	s.Step(event.KeyInput(event.Ctrl('b')))
	s.Step(event.KeyInput(event.Key{Code: event.KeyChar, Rune: 'x', Mod: event.ModAlt}))
	s.Step(event.KeyInput(event.Key{Code: event.KeyBackspace, Mod: event.ModControl}))
	s.Step(event.KeyInput(event.Key{Code: event.KeyEnter}))
	if s.Input() != "ab" {
		t.Fatalf("expected input unchanged, got %q", s.Input())
	}
}

func TestTimeout(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "cat")
	s.score = 4
	clk.Advance(59 * time.Second)
	s.Step(event.Tick())
	if s.Screen() != ScreenGame {
		t.Fatalf("expected race to continue at 59s")
	}
	clk.Advance(time.Second)
	s.Step(event.Tick())
	if s.Screen() != ScreenGameOver || s.Started() {
		t.Fatalf("expected game over, got %v started=%v", s.Screen(), s.Started())
	}
	if s.Score() != 4 {
		t.Fatalf("expected score preserved, got %d", s.Score())
	}
	res, ok := s.LastResult()
	if !ok || res.Score != 4 || res.EndedAt.Sub(res.StartedAt) != Length {
		t.Fatalf("unexpected result: %+v (%v)", res, ok)
	}
}

func TestRestartFromGameOver(t *testing.T) {
	s, clk, sup := newTestSession(t)
	s.screen = ScreenGameOver
	s.started = false
	s.score = 7
	s.queue.Reset([]string{"left"})
	s.input = []rune("xy")
	calls := len(sup.calls)

	s.Step(event.KeyInput(event.Char('r')))
	s.Step(event.Tick())

	if s.Screen() != ScreenHome || !s.Started() || s.Countdown() != CountdownFrom {
		t.Fatalf("expected counting home, got %v started=%v countdown=%d", s.Screen(), s.Started(), s.Countdown())
	}
	if s.Score() != 0 || s.Input() != "" {
		t.Fatalf("expected reset score and input, got %d %q", s.Score(), s.Input())
	}
	if len(s.Words()) != QueueSize {
		t.Fatalf("expected refilled queue, got %d", len(s.Words()))
	}
	if len(sup.calls) != calls+1 || sup.calls[calls] != QueueSize {
		t.Fatalf("expected a refill call, got %v", sup.calls)
	}
	if _, ok := s.GameStart(); ok {
		t.Fatalf("expected game start to be cleared")
	}
	clk.Advance(3 * time.Second)
	s.Step(event.Tick())
	if s.Screen() != ScreenGame {
		t.Fatalf("expected next race to begin")
	}
}

func TestQuitFromGameOver(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.screen = ScreenGameOver
	if act := s.Step(event.KeyInput(event.Char('q'))); act != ActionQuit {
		t.Fatalf("expected quit from game over")
	}
}

func TestSnapshotGame(t *testing.T) {
	s, clk, _ := newTestSession(t)
	inGame(s, clk, "cat", "dog")
	clk.Advance(30*time.Second + 500*time.Millisecond)
	snap := s.Snapshot()
	if snap.Percent != 50 || snap.SecondsLeft != 30 {
		t.Fatalf("expected 50%% and 30s left, got %d%% %ds", snap.Percent, snap.SecondsLeft)
	}
	if snap.Counting() {
		t.Fatalf("game snapshot must not be counting")
	}
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	keys := []event.Key{
		event.Char('s'), event.Char('r'), event.Char('w'), event.Char('0'),
		event.Char('1'), event.Char(' '), event.Backspace(), event.Ctrl('a'),
		event.Key{Code: event.KeyEnter},
	}
	for run := 0; run < 50; run++ {
		s, clk, _ := newTestSession(t)
		prevScore := 0
		for i := 0; i < 2000; i++ {
			var ev event.Event
			if rnd.Intn(4) == 0 {
				clk.Advance(time.Duration(rnd.Intn(800)) * time.Millisecond)
				ev = event.Tick()
			} else {
				ev = event.KeyInput(keys[rnd.Intn(len(keys))])
			}
			wasGame := s.Screen() == ScreenGame
			before := s.Words()
			inputBefore := s.Input()
			s.Step(ev)

			if s.Countdown() < 0 || s.Countdown() > CountdownFrom {
				t.Fatalf("countdown out of range: %d", s.Countdown())
			}
			if s.Screen() == ScreenGame {
				if _, ok := s.GameStart(); !ok {
					t.Fatalf("game without start instant")
				}
				if len(s.Words()) < 1 {
					t.Fatalf("game with empty queue")
				}
			}
			if ev.Kind == event.KindKey && ev.Key == event.Ctrl('a') && wasGame && s.Screen() == ScreenGame && s.Input() != "" {
				t.Fatalf("ctrl+a left input %q", s.Input())
			}
			switch {
			case s.Score() == prevScore:
			case s.Score() == prevScore+1:
				after := s.Words()
				if len(after) != len(before) || after[0] != before[1] {
					t.Fatalf("match must advance queue by one: %v -> %v", before[:2], after[:2])
				}
				if s.Input() != "" {
					t.Fatalf("match must clear input, had %q", inputBefore)
				}
			case s.Score() == 0:
				// a new race started
			default:
				t.Fatalf("score jumped from %d to %d", prevScore, s.Score())
			}
			prevScore = s.Score()
		}
	}
}
