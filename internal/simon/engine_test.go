package simon

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/simon-says/internal/config"
)

const ms = time.Millisecond

type flashRecord struct {
	at    time.Duration
	color Color
	dur   time.Duration
}

type recordingPresenter struct {
	clock   func() time.Duration
	flashes []flashRecord
}

func (p *recordingPresenter) Flash(c Color, d time.Duration) {
	p.flashes = append(p.flashes, flashRecord{at: p.clock(), color: c, dur: d})
}

// since returns the flashes recorded at or after t.
func (p *recordingPresenter) since(t time.Duration) []flashRecord {
	var out []flashRecord
	for _, f := range p.flashes {
		if f.at >= t {
			out = append(out, f)
		}
	}
	return out
}

type countingKeeper struct {
	best  int
	saves []int
}

func (k *countingKeeper) HighScore() int { return k.best }

func (k *countingKeeper) SaveHighScore(score int) {
	k.saves = append(k.saves, score)
	if score > k.best {
		k.best = score
	}
}

func newTestEngine(t *testing.T, keeper ScoreKeeper, opts ...Option) (*Engine, *recordingPresenter) {
	t.Helper()
	p := &recordingPresenter{}
	e := New(config.DefaultSimonConfig(), p, keeper, append([]Option{WithSeed(42)}, opts...)...)
	p.clock = e.Elapsed
	return e, p
}

// tapAll answers the current sequence correctly.
func tapAll(e *Engine) {
	for _, c := range e.Snapshot().Sequence {
		e.ReceiveInput(c)
	}
}

// reachLevel starts a game and plays until the engine is at the given level.
func reachLevel(t *testing.T, e *Engine, level int) {
	t.Helper()
	e.Start()
	e.Step(0)
	for e.Level() < level {
		tapAll(e)
		e.Step(1000 * ms)
	}
	if e.Level() != level {
		t.Fatalf("reachLevel: at level %d, wanted %d", e.Level(), level)
	}
}

func other(c Color) Color {
	return Colors[(int(c)+1)%len(Colors)]
}

func TestNewEngineIsIdle(t *testing.T) {
	e, _ := newTestEngine(t, &countingKeeper{best: 7})

	snap := e.Snapshot()
	if snap.Status.Kind != StatusIdle {
		t.Errorf("Status = %v, expected idle", snap.Status.Kind)
	}
	if snap.Level != 0 || snap.Started || len(snap.Sequence) != 0 {
		t.Errorf("fresh engine should be empty, got %+v", snap)
	}
	if snap.HighScore != 7 {
		t.Errorf("HighScore = %d, expected 7 from keeper", snap.HighScore)
	}
}

func TestHighScoreDefaultsToZero(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	if e.HighScore() != 0 {
		t.Errorf("HighScore = %d, expected 0 without stored value", e.HighScore())
	}

	e, _ = newTestEngine(t, &countingKeeper{best: -4})
	if e.HighScore() != 0 {
		t.Errorf("HighScore = %d, negative stored values should read as 0", e.HighScore())
	}
}

func TestStartDefersFirstLevel(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	e.Start()
	snap := e.Snapshot()
	if snap.Status.Kind != StatusStarting {
		t.Errorf("Status after Start = %v, expected starting", snap.Status.Kind)
	}
	if snap.Level != 0 || len(snap.Sequence) != 0 || len(snap.Input) != 0 || !snap.Started {
		t.Errorf("unexpected state after Start: %+v", snap)
	}

	e.Step(0)
	snap = e.Snapshot()
	if snap.Level != 1 || len(snap.Sequence) != 1 {
		t.Errorf("after first step: level %d, sequence %v", snap.Level, snap.Sequence)
	}
	if snap.Status != (Status{Kind: StatusPlaying, Level: 1}) {
		t.Errorf("Status = %+v, expected playing(1)", snap.Status)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	reachLevel(t, e, 4)
	e.ReceiveInput(e.Snapshot().Sequence[0])

	for i := 0; i < 3; i++ {
		e.Start()
		snap := e.Snapshot()
		if snap.Level != 0 || len(snap.Sequence) != 0 || len(snap.Input) != 0 {
			t.Fatalf("Start #%d did not reset: %+v", i+1, snap)
		}
	}
}

func TestCorrectRoundsAdvanceOneLevelEach(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	e.Start()
	e.Step(0)

	prev := e.Snapshot().Sequence
	for level := 1; level <= 10; level++ {
		if e.Level() != level {
			t.Fatalf("Level = %d, expected %d", e.Level(), level)
		}

		tapAll(e)
		e.Step(1000 * ms)

		snap := e.Snapshot()
		if snap.Level != level+1 {
			t.Fatalf("after completing level %d: level %d", level, snap.Level)
		}
		if len(snap.Input) != 0 {
			t.Errorf("input should reset on a new level, got %v", snap.Input)
		}
		if len(snap.Sequence) != len(prev)+1 || !slices.Equal(snap.Sequence[:len(prev)], prev) {
			t.Errorf("sequence should grow by one: %v -> %v", prev, snap.Sequence)
		}
		prev = snap.Sequence
	}
}

func TestWinPauseBeforeNextLevel(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	e.Start()
	e.Step(0)
	first := e.Snapshot().Sequence[0]

	e.ReceiveInput(first)
	e.Step(999 * ms)
	if e.Level() != 1 {
		t.Fatalf("level advanced before the 1000ms pause: %d", e.Level())
	}

	e.Step(1 * ms)
	snap := e.Snapshot()
	if snap.Level != 2 || len(snap.Sequence) != 2 || snap.Sequence[0] != first {
		t.Errorf("expected [%v, X] at level 2, got level %d %v", first, snap.Level, snap.Sequence)
	}
}

func TestPlaybackOffsets(t *testing.T) {
	e, p := newTestEngine(t, nil)
	reachLevel(t, e, 4)
	advancedAt := e.Elapsed()

	e.Step(10 * time.Second)

	got := p.since(advancedAt)
	seq := e.Snapshot().Sequence
	if len(got) != len(seq) {
		t.Fatalf("playback flashes = %d, expected %d", len(got), len(seq))
	}
	for i, f := range got {
		want := advancedAt + 600*ms + time.Duration(i)*800*ms
		if f.at != want {
			t.Errorf("flash %d at %v, expected %v", i, f.at, want)
		}
		if f.color != seq[i] {
			t.Errorf("flash %d color %v, expected %v", i, f.color, seq[i])
		}
		if f.dur != 400*ms {
			t.Errorf("flash %d lasted %v, expected 400ms", i, f.dur)
		}
	}
	if e.PlaybackPending() {
		t.Error("playback should be finished")
	}
}

func TestInputFlashesImmediately(t *testing.T) {
	e, p := newTestEngine(t, nil)
	e.Start()
	e.Step(100 * ms)

	c := e.Snapshot().Sequence[0]
	before := len(p.flashes)
	e.ReceiveInput(c)

	if len(p.flashes) != before+1 {
		t.Fatalf("tap should flash at once, got %d new flashes", len(p.flashes)-before)
	}
	last := p.flashes[len(p.flashes)-1]
	if last.color != c || last.at != 100*ms {
		t.Errorf("tap flash = %+v, expected %v at 100ms", last, c)
	}
}

func TestInputIgnoredWhenNotStarted(t *testing.T) {
	e, p := newTestEngine(t, nil)

	e.ReceiveInput(Red)
	if len(p.flashes) != 0 || len(e.Snapshot().Input) != 0 {
		t.Error("input before Start should be a no-op")
	}

	reachLevel(t, e, 2)
	seq := e.Snapshot().Sequence
	e.ReceiveInput(other(seq[0]))
	flashes := len(p.flashes)

	e.ReceiveInput(Red)
	if len(p.flashes) != flashes || len(e.Snapshot().Input) != 1 {
		t.Error("input after a loss should be a no-op")
	}
}

func TestInvalidColorIgnored(t *testing.T) {
	e, p := newTestEngine(t, nil)
	reachLevel(t, e, 1)
	before := len(p.flashes)

	e.ReceiveInput(Color(9))
	if len(p.flashes) != before || len(e.Snapshot().Input) != 0 || !e.Started() {
		t.Error("invalid colors must not count as taps")
	}
}

func TestMismatchLosesAtFirstDivergence(t *testing.T) {
	keeper := &countingKeeper{best: 1}
	e, _ := newTestEngine(t, keeper)
	e.Start()
	e.Step(0)

	e.level = 3
	e.sequence = []Color{Blue, Green, Red}

	e.ReceiveInput(Blue)
	e.ReceiveInput(Green)
	if !e.Started() || e.Status().Kind != StatusPlaying {
		t.Fatal("correct prefix should keep the round going")
	}

	e.ReceiveInput(Yellow)
	snap := e.Snapshot()
	if snap.Started {
		t.Error("started should be false after a mismatch")
	}
	if snap.Status != (Status{Kind: StatusLost, Level: 3}) {
		t.Errorf("Status = %+v, expected lost at level 3", snap.Status)
	}
	if snap.HighScore != 3 {
		t.Errorf("HighScore = %d, expected 3", snap.HighScore)
	}
	if !slices.Equal(keeper.saves, []int{3}) {
		t.Errorf("keeper saves = %v, expected [3]", keeper.saves)
	}
	if snap.Status.Text() != "Wrong! Press Start to Play Again." {
		t.Errorf("lost text = %q", snap.Status.Text())
	}
}

func TestMismatchAfterAnyPrefixLength(t *testing.T) {
	for prefix := 0; prefix < 5; prefix++ {
		e, _ := newTestEngine(t, nil)
		reachLevel(t, e, 5)
		seq := e.Snapshot().Sequence

		for i := 0; i < prefix; i++ {
			e.ReceiveInput(seq[i])
		}
		e.ReceiveInput(other(seq[prefix]))

		if e.Started() || e.Status().Kind != StatusLost {
			t.Errorf("prefix %d: expected loss, got %+v", prefix, e.Status())
		}
	}
}

func TestHighScoreOnlyRises(t *testing.T) {
	keeper := &countingKeeper{best: 5}
	e, _ := newTestEngine(t, keeper)

	reachLevel(t, e, 2)
	e.ReceiveInput(other(e.Snapshot().Sequence[0]))
	if e.HighScore() != 5 || len(keeper.saves) != 0 {
		t.Errorf("losing below the high score must not save: score %d, saves %v", e.HighScore(), keeper.saves)
	}

	reachLevel(t, e, 5)
	e.ReceiveInput(other(e.Snapshot().Sequence[0]))
	if e.HighScore() != 5 || len(keeper.saves) != 0 {
		t.Errorf("tying the high score must not save: score %d, saves %v", e.HighScore(), keeper.saves)
	}

	reachLevel(t, e, 6)
	e.ReceiveInput(other(e.Snapshot().Sequence[0]))
	if e.HighScore() != 6 || !slices.Equal(keeper.saves, []int{6}) {
		t.Errorf("beating the high score should save once: score %d, saves %v", e.HighScore(), keeper.saves)
	}
}

func TestLossCancelsPlayback(t *testing.T) {
	e, p := newTestEngine(t, nil)
	reachLevel(t, e, 3)
	lostAt := e.Elapsed()

	e.ReceiveInput(other(e.Snapshot().Sequence[0]))
	e.Step(10 * time.Second)

	if got := p.since(lostAt); len(got) != 1 {
		t.Errorf("only the losing tap should flash after a loss, got %+v", got)
	}
	if e.Level() != 3 {
		t.Errorf("level changed after a loss: %d", e.Level())
	}
}

func TestRestartDropsStaleCallbacks(t *testing.T) {
	e, p := newTestEngine(t, nil)
	e.Start()
	e.Step(0)

	// Complete level 1 during its playback: advance is due at 1100ms,
	// the level 1 flash at 600ms.
	e.Step(100 * ms)
	tapAll(e)

	e.Step(100 * ms)
	e.Start()
	restartedAt := e.Elapsed()
	e.Step(5 * time.Second)

	if e.Level() != 1 {
		t.Errorf("stale advance fired after restart: level %d", e.Level())
	}
	got := p.since(restartedAt)
	if len(got) != 1 || got[0].at != restartedAt+600*ms {
		t.Errorf("expected only the new playback flash at %v, got %+v", restartedAt+600*ms, got)
	}
}

func TestPlaybacksNeverOverlap(t *testing.T) {
	e, p := newTestEngine(t, nil)
	reachLevel(t, e, 3)
	start := e.Elapsed()

	// Answer before the playback has finished.
	tapAll(e)
	e.Step(10 * time.Second)

	advancedAt := start + 1000*ms
	var playback []time.Duration
	for _, f := range p.since(start) {
		if f.at > start {
			playback = append(playback, f.at)
		}
	}

	want := []time.Duration{start + 600*ms}
	for i := 0; i < 4; i++ {
		want = append(want, advancedAt+600*ms+time.Duration(i)*800*ms)
	}
	if !slices.Equal(playback, want) {
		t.Errorf("playback flash times = %v, expected %v", playback, want)
	}
}

func TestExtraTapsDuringWinPauseIgnored(t *testing.T) {
	e, p := newTestEngine(t, nil)
	reachLevel(t, e, 2)

	tapAll(e)
	flashes := len(p.flashes)
	e.ReceiveInput(Red)
	e.ReceiveInput(Blue)

	if len(p.flashes) != flashes {
		t.Error("taps past the sequence length should be ignored")
	}
	if !e.Started() {
		t.Error("taps during the win pause must not lose the round")
	}

	e.Step(1000 * ms)
	if e.Level() != 3 {
		t.Errorf("Level = %d, expected 3", e.Level())
	}
}

func TestHooks(t *testing.T) {
	var statuses []StatusKind
	var lost []int
	e, _ := newTestEngine(t, nil, WithHooks(Hooks{
		OnStatus: func(s Status) { statuses = append(statuses, s.Kind) },
		OnLost:   func(level int) { lost = append(lost, level) },
	}))

	reachLevel(t, e, 2)
	e.ReceiveInput(other(e.Snapshot().Sequence[0]))

	wantStatuses := []StatusKind{StatusStarting, StatusPlaying, StatusPlaying, StatusLost}
	if !slices.Equal(statuses, wantStatuses) {
		t.Errorf("statuses = %v, expected %v", statuses, wantStatuses)
	}
	if !slices.Equal(lost, []int{2}) {
		t.Errorf("OnLost calls = %v, expected [2]", lost)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	e1, _ := newTestEngine(t, nil, WithSeed(12345))
	e2, _ := newTestEngine(t, nil, WithSeed(12345))

	reachLevel(t, e1, 15)
	reachLevel(t, e2, 15)

	if !slices.Equal(e1.Snapshot().Sequence, e2.Snapshot().Sequence) {
		t.Errorf("sequences differ for equal seeds:\n%v\n%v", e1.Snapshot().Sequence, e2.Snapshot().Sequence)
	}
}

func TestSequenceUsesEveryColor(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	reachLevel(t, e, 200)

	counts := make(map[Color]int)
	for _, c := range e.Snapshot().Sequence {
		counts[c]++
	}
	for _, c := range Colors {
		// Expected 50 each; a fair generator stays well inside this band.
		if counts[c] < 20 || counts[c] > 80 {
			t.Errorf("color %v appeared %d times in 200", c, counts[c])
		}
	}
}

func TestDifficultyShortensPlayback(t *testing.T) {
	cfg := config.DefaultSimonConfig()
	config.ApplySimonPreset(&cfg, config.DifficultyHard)

	p := &recordingPresenter{}
	e := New(cfg, p, nil, WithSeed(7))
	p.clock = e.Elapsed

	reachLevel(t, e, 3)
	advancedAt := e.Elapsed()
	e.Step(10 * time.Second)

	got := p.since(advancedAt)
	if len(got) != 3 {
		t.Fatalf("playback flashes = %d, expected 3", len(got))
	}
	step := got[1].at - got[0].at
	if step >= 800*ms {
		t.Errorf("hard difficulty step = %v, expected shorter than 800ms", step)
	}
	if got[2].at-got[1].at != step {
		t.Errorf("playback offsets should be evenly spaced: %v", got)
	}
}
