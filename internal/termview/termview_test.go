package termview

import (
	"testing"

	"wolfram-ca/internal/sims/elementary"

	"github.com/gdamore/tcell/v2"
)

func newViewer(t *testing.T, w, h int, cfg elementary.Config) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	auto := elementary.New(cfg, elementary.Display{ViewportWidth: w, ScreenWidth: 2 * w})
	return New(s, auto), s
}

func termConfig() elementary.Config {
	cfg := elementary.DefaultConfig()
	cfg.CellSize = 1
	cfg.Steps = 5
	return cfg
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func TestDrawShowsSeedRow(t *testing.T) {
	v, s := newViewer(t, 20, 6, termConfig())
	v.Draw()
	for x := 0; x < 20; x++ {
		want := deadRune
		if x == 10 {
			want = aliveRune
		}
		if got := runeAt(s, x, 0); got != want {
			t.Fatalf("row 0 column %d = %q, want %q", x, got, want)
		}
	}
	if got := runeAt(s, 1, 5); got != 'r' {
		t.Fatalf("status line starts with %q", got)
	}
}

func TestResizeRegenerates(t *testing.T) {
	v, s := newViewer(t, 20, 6, termConfig())
	s.SetSize(31, 6)
	if v.HandleEvent(tcell.NewEventResize(31, 6)) {
		t.Fatal("resize requested exit")
	}
	if got := v.auto.Frame().Cols(); got != 31 {
		t.Fatalf("cols after resize = %d, want 31", got)
	}
	v.Draw()
	if got := runeAt(s, 16, 0); got != aliveRune {
		t.Fatalf("center of 31 columns = %q", got)
	}
}

func TestKeysAdjustRule(t *testing.T) {
	v, _ := newViewer(t, 20, 6, termConfig())
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone))
	if got := v.auto.Config().Rule; got != 31 {
		t.Fatalf("rule = %d, want 31", got)
	}
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.auto.Config().Seeding != elementary.Random {
		t.Fatal("r did not switch to random seeding")
	}
	if got := v.auto.Frame().Cols(); got != 40 {
		t.Fatalf("random cols = %d, want screen width 40", got)
	}
	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q did not request exit")
	}
}

func TestRejectedChangeKeepsFrame(t *testing.T) {
	cfg := termConfig()
	cfg.Steps = 1
	v, _ := newViewer(t, 20, 6, cfg)
	f := v.auto.Frame()
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	if v.auto.Frame() != f {
		t.Fatal("invalid steps replaced the frame")
	}
	if !v.failed || v.status == "" {
		t.Fatal("error not reported on the status line")
	}
}
