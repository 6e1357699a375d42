//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", ContextGlobal, 5},
		{"carousel context", ContextCarousel, 3},
		{"buttons context", ContextButtons, 3},
		{"help context", ContextHelp, 1},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d",
					tt.context, len(result), tt.expectMinLength)
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("ByContext(%q) returned binding with context %q", tt.context, b.Context)
				}
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	validContexts := map[string]bool{
		ContextGlobal:   true,
		ContextCarousel: true,
		ContextButtons:  true,
		ContextHelp:     true,
	}

	for i, b := range Bindings {
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestNoKeyBoundTwiceInOneContext(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			if prev, ok := seen[id]; ok {
				t.Errorf("key %q in %s bound to both %s and %s", k, b.Context, prev, b.Action)
			}
			seen[id] = b.Action
		}
	}
}

func TestFind(t *testing.T) {
	b, ok := Find(ActionQuit)
	if !ok {
		t.Fatal("Find(ActionQuit) not found")
	}
	if !slices.Contains(b.Keys, "q") {
		t.Errorf("quit keys = %v, want q", b.Keys)
	}

	if _, ok := Find(Action("unknown")); ok {
		t.Error("Find(unknown) should fail")
	}
}

func TestKeyBinding(t *testing.T) {
	b := Binding{ActionMoveLeft, []string{"left", "h"}, "Previous item", ContextCarousel}

	kb := b.KeyBinding()

	if got := kb.Help().Key; got != "←/h" {
		t.Errorf("help key = %q, want %q", got, "←/h")
	}
	if got := kb.Help().Desc; got != "Previous item" {
		t.Errorf("help desc = %q", got)
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, kb) {
		t.Error("left arrow should match")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, kb) {
		t.Error("h should match")
	}
}

func TestCarouselKeyMap(t *testing.T) {
	km := CarouselKeyMap()

	if !key.Matches(tea.KeyMsg{Type: tea.KeyRight}, km.Next) {
		t.Error("right should move to the next item")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, km.Select) {
		t.Error("space should select")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyRight}, km.Prev) {
		t.Error("right should not move to the previous item")
	}
}

func TestHelp(t *testing.T) {
	short := HelpFor(ContextCarousel).ShortHelp()
	if len(short) != len(ByContext(ContextCarousel))+2 {
		t.Errorf("ShortHelp() has %d bindings", len(short))
	}

	full := HelpFor(ContextCarousel).FullHelp()
	if len(full) != 3 {
		t.Fatalf("FullHelp() has %d columns, want 3", len(full))
	}
	if len(full[0]) != len(ByContext(ContextGlobal)) {
		t.Errorf("global column has %d bindings", len(full[0]))
	}
}
