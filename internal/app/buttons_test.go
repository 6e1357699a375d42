package app

import (
	"testing"

	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

func TestButtonRow_MoveWraps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"next", 0, 1, 1},
		{"previous wraps to last", 0, -1, 4},
		{"next wraps to first", 4, 1, 0},
		{"several steps", 1, 7, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buttonRow{selected: tt.start}
			b.Move(tt.delta)
			if b.Selected() != tt.want {
				t.Errorf("Selected() = %d, want %d", b.Selected(), tt.want)
			}
		})
	}
}

func TestButtonRow_Action(t *testing.T) {
	want := []keymap.Action{
		keymap.ActionToggleAutoScroll,
		keymap.ActionFewerPerPage,
		keymap.ActionMorePerPage,
		keymap.ActionReload,
		keymap.ActionQuit,
	}
	for i, action := range want {
		b := buttonRow{selected: i}
		if got := b.Action(); got != action {
			t.Errorf("button %d action = %q, want %q", i, got, action)
		}
	}
}

func TestButtonRow_Render(t *testing.T) {
	b := buttonRow{}

	on := b.Render(80, true, true)
	off := b.Render(80, true, false)

	if !testutil.ContainsLine(on, "Auto-scroll: on") {
		t.Error("expected auto-scroll on label")
	}
	if !testutil.ContainsLine(off, "Auto-scroll: off") {
		t.Error("expected auto-scroll off label")
	}
	for i, w := range testutil.LineWidths(on) {
		if w != 80 {
			t.Errorf("line %d width = %d, want 80", i, w)
		}
	}
}

func TestButtonRow_At(t *testing.T) {
	b := buttonRow{}
	view := b.Render(80, false, true)

	for i, label := range []string{"Auto-scroll", "Fewer", "More", "Reload", "Quit"} {
		col := testutil.ColumnOf(view, label)
		if col < 0 {
			t.Fatalf("label %q not rendered", label)
		}
		if got := b.At(col, 80, true); got != i {
			t.Errorf("At(%d) over %q = %d, want %d", col, label, got, i)
		}
	}
	if got := b.At(0, 80, true); got != -1 {
		t.Errorf("At(0) = %d, want -1 (left margin)", got)
	}
}

func TestButtonRow_IconsKeepHitTesting(t *testing.T) {
	icons.Init("unicode")
	defer icons.Init("none")

	b := buttonRow{}
	view := b.Render(80, false, false)
	if !testutil.ContainsLine(view, "⏸ Auto-scroll: off") {
		t.Errorf("expected paused icon, got:\n%s", testutil.StripANSI(view))
	}
	for i, label := range []string{"Auto-scroll", "Fewer", "More", "Reload", "Quit"} {
		col := testutil.ColumnOf(view, label)
		if col < 0 {
			t.Fatalf("label %q not rendered", label)
		}
		if got := b.At(col, 80, false); got != i {
			t.Errorf("At(%d) over %q = %d, want %d", col, label, got, i)
		}
	}
}
