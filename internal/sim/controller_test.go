package sim

import (
	"errors"
	"testing"

	"cgol/internal/life"
)

type fakeSlots struct {
	saved   map[int]life.Pattern
	failing bool
}

func (f *fakeSlots) Save(slot int, g *life.Grid) error {
	if f.failing {
		return errors.New("disk full")
	}
	if f.saved == nil {
		f.saved = map[int]life.Pattern{}
	}
	f.saved[slot] = g.Pattern()
	return nil
}

func (f *fakeSlots) Load(slot int, g *life.Grid) bool {
	p, ok := f.saved[slot]
	if !ok {
		g.Reset()
		return false
	}
	g.Replace(p)
	return true
}

type countingObserver struct {
	steps, flushed int
	states         []State
}

func (o *countingObserver) Stepped(changed, population int) { o.steps++ }
func (o *countingObserver) Flushed(cells int)               { o.flushed += cells }
func (o *countingObserver) StateChanged(s State)            { o.states = append(o.states, s) }

func blinker(g *life.Grid) {
	g.Set(1, 0, true)
	g.Set(1, 1, true)
	g.Set(1, 2, true)
}

func TestStartsPausedAndDoesNotStep(t *testing.T) {
	c := New(life.New(3, 3), DefaultConfig(), nil)
	blinker(c.Grid())
	for i := 0; i < 5; i++ {
		c.Frame(nil)
	}
	if c.State() != Paused || c.Grid().Generation() != 0 {
		t.Fatalf("paused controller advanced to generation %d", c.Grid().Generation())
	}
}

func TestSingleStepHonouredInBothStates(t *testing.T) {
	c := New(life.New(3, 3), Config{StepFrames: 100, Footprint: 1}, nil)
	c.Frame([]Command{Step()})
	if c.Grid().Generation() != 1 || c.State() != Paused {
		t.Fatalf("paused step: generation=%d state=%v", c.Grid().Generation(), c.State())
	}
	c.Frame([]Command{ToggleRun(), Step()})
	if c.Grid().Generation() != 2 || c.State() != Running {
		t.Fatalf("running step: generation=%d state=%v", c.Grid().Generation(), c.State())
	}
}

func TestUncappedRunStepsEveryFrame(t *testing.T) {
	c := New(life.New(3, 3), DefaultConfig(), nil)
	c.Frame([]Command{ToggleRun()})
	for i := 0; i < 4; i++ {
		c.Frame(nil)
	}
	if got := c.Grid().Generation(); got != 5 {
		t.Fatalf("uncapped run reached generation %d after 5 frames", got)
	}
	c.Frame([]Command{ToggleRun()})
	c.Frame(nil)
	if got := c.Grid().Generation(); got != 5 {
		t.Fatalf("pausing did not stop stepping, generation %d", got)
	}
}

func TestTimedCadence(t *testing.T) {
	c := New(life.New(3, 3), Config{StepFrames: 3, Footprint: 1}, nil)
	c.Start()
	for i := 0; i < 12; i++ {
		c.Frame(nil)
	}
	if got := c.Grid().Generation(); got != 3 {
		t.Fatalf("cadence of 3 frames stepped %d times in 12 frames, expected 3", got)
	}
}

func TestClickConvertsPixelsAndPauses(t *testing.T) {
	c := New(life.New(4, 4), Config{Footprint: 15, PauseOnEdit: true}, nil)
	c.Grid().Tracker().Drain()
	c.Start()
	c.Frame([]Command{Click(31, 14)})
	if c.State() != Paused {
		t.Fatal("click while running did not pause")
	}
	if !c.Grid().Active(2, 0) {
		t.Fatal("click at (31,14) did not toggle cell (2,0)")
	}
	if c.Grid().Generation() != 0 {
		t.Fatal("simulation stepped after the pausing click")
	}
}

func TestClickOutsideGridIgnored(t *testing.T) {
	c := New(life.New(4, 4), Config{Footprint: 10}, nil)
	c.Grid().Tracker().Drain()
	for _, cmd := range []Command{Click(40, 0), Click(0, 45), Click(-3, 5), Click(500, 500)} {
		c.Dispatch(cmd)
	}
	if c.Grid().Population() != 0 || c.Grid().Tracker().Pending() != 0 {
		t.Fatal("out-of-bounds click changed the grid")
	}
}

func TestClickWithoutPauseOnEdit(t *testing.T) {
	c := New(life.New(4, 4), Config{Footprint: 10}, nil)
	c.Start()
	c.Dispatch(Click(5, 5))
	if c.State() != Running {
		t.Fatal("click paused although PauseOnEdit is off")
	}
}

func TestViewChangesRequestFullRedraw(t *testing.T) {
	c := New(life.New(5, 4), DefaultConfig(), nil)
	for _, cmd := range []Command{CycleDrawMode(false), SwapColors()} {
		c.Flush()
		c.Dispatch(cmd)
		if got := len(c.Flush()); got != 20 {
			t.Fatalf("%v redrew %d cells, expected 20", cmd.Kind, got)
		}
	}
	if c.View().Mode != DrawFill || !c.View().Swapped {
		t.Fatalf("view after commands: %+v", c.View())
	}
	c.Dispatch(CycleDrawMode(true))
	c.Dispatch(CycleDrawMode(true))
	if c.View().Mode != DrawCircle {
		t.Fatalf("reverse cycle from fill reached %v, expected circle", c.View().Mode)
	}
}

func TestFlushIsEmptyWhenNothingChanged(t *testing.T) {
	c := New(life.New(3, 3), DefaultConfig(), nil)
	c.Flush()
	c.Frame([]Command{Step()})
	if pts := c.Flush(); pts != nil {
		t.Fatalf("empty step flushed %d cells", len(pts))
	}
}

func TestSaveAndLoadSlots(t *testing.T) {
	slots := &fakeSlots{}
	c := New(life.New(3, 3), DefaultConfig(), nil)
	c.UseSlots(slots)
	blinker(c.Grid())

	c.Dispatch(SaveSlot(2))
	c.Dispatch(Reset())
	if c.Grid().Population() != 0 {
		t.Fatal("reset left live cells")
	}
	c.Start()
	c.Flush()
	c.Dispatch(LoadSlot(2))
	if c.State() != Paused {
		t.Fatal("load did not pause the simulation")
	}
	if c.Grid().Population() != 3 {
		t.Fatalf("loaded population %d, expected 3", c.Grid().Population())
	}
	if got := len(c.Flush()); got != 9 {
		t.Fatalf("load redrew %d cells, expected 9", got)
	}

	c.Start()
	c.Dispatch(LoadSlot(9))
	if c.State() != Paused || c.Grid().Population() != 0 {
		t.Fatal("missing slot did not pause and clear")
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	c := New(life.New(3, 3), DefaultConfig(), nil)
	c.UseSlots(&fakeSlots{failing: true})
	blinker(c.Grid())
	c.Dispatch(SaveSlot(1))
	if c.Grid().Population() != 3 {
		t.Fatal("failed save altered the grid")
	}
}

func TestSlotsWithoutStorageIgnored(t *testing.T) {
	c := New(life.New(3, 3), DefaultConfig(), nil)
	blinker(c.Grid())
	c.Dispatch(LoadSlot(1))
	if c.Grid().Population() != 3 {
		t.Fatal("load without storage altered the grid")
	}
}

func TestQuitStopsFrame(t *testing.T) {
	c := New(life.New(3, 3), DefaultConfig(), nil)
	if c.Frame([]Command{Quit(), Step()}) {
		t.Fatal("frame continued after quit")
	}
	if c.Grid().Generation() != 0 {
		t.Fatal("commands after quit were applied")
	}
}

func TestObserverSeesActivity(t *testing.T) {
	obs := &countingObserver{}
	c := New(life.New(3, 3), DefaultConfig(), nil)
	c.UseObserver(obs)
	blinker(c.Grid())
	c.Flush()
	c.Frame([]Command{ToggleRun()})
	c.Flush()
	c.Frame([]Command{ToggleRun()})
	if obs.steps != 1 {
		t.Fatalf("observer saw %d steps, expected 1", obs.steps)
	}
	if obs.flushed != 3+4 {
		t.Fatalf("observer saw %d flushed cells, expected 7", obs.flushed)
	}
	if len(obs.states) != 2 || obs.states[0] != Running || obs.states[1] != Paused {
		t.Fatalf("observer states %v", obs.states)
	}
}

func TestStatus(t *testing.T) {
	c := New(life.New(6, 3), Config{StepFrames: 4, Footprint: 1}, nil)
	blinker(c.Grid())
	st := c.Status()
	if st.Population != 3 || st.StepFrames != 4 || st.State != Paused || st.Size.W != 6 {
		t.Fatalf("status %+v", st)
	}
}
