package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/todo"
)

func TestThemeByName(t *testing.T) {
	for _, name := range append(ThemeNames, "", "CLASSIC", " Neon ") {
		if _, err := ThemeByName(name); err != nil {
			t.Errorf("ThemeByName(%q): %v", name, err)
		}
	}
	if _, err := ThemeByName("solarized"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestRow_FixedWidth(t *testing.T) {
	for _, name := range ThemeNames {
		th, _ := ThemeByName(name)
		for _, tc := range []struct {
			text               string
			completed, selected bool
		}{
			{"Buy milk", false, false},
			{"Buy milk", true, true},
			{strings.Repeat("very long text ", 10), false, true},
			{"", true, false},
		} {
			got := ansi.Strip(th.Row(tc.text, tc.completed, tc.selected, 40))
			if w := ansi.StringWidth(got); w != 40 {
				t.Errorf("%s: row %q width = %d, want 40", name, got, w)
			}
			if !strings.HasSuffix(got, " "+th.Delete) {
				t.Errorf("%s: row %q does not end with delete affordance", name, got)
			}
		}
	}
}

func TestRow_Indicators(t *testing.T) {
	th := Classic()

	open := ansi.Strip(th.Row("Walk dog", false, false, 30))
	if !strings.Contains(open, th.BoxUnchecked+" Walk dog") {
		t.Errorf("open row = %q", open)
	}
	done := ansi.Strip(th.Row("Walk dog", true, false, 30))
	if !strings.Contains(done, th.BoxChecked+" Walk dog") {
		t.Errorf("done row = %q", done)
	}
	sel := ansi.Strip(th.Row("Walk dog", false, true, 30))
	if !strings.HasPrefix(sel, th.Cursor+" ") {
		t.Errorf("selected row = %q", sel)
	}
}

func TestRow_Truncates(t *testing.T) {
	th := Classic()
	got := ansi.Strip(th.Row("abcdefghijklmnopqrstuvwxyz", false, false, 16))
	if !strings.Contains(got, "…") {
		t.Errorf("long text not truncated: %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 5, "█████ 100%"},
		{1, 4, 2, "█░░░░  25%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d,%d,%d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func snapshotOf(todos ...model.Todo) todo.Snapshot {
	return todo.NewView(todos).Snapshot()
}

func TestList(t *testing.T) {
	th := Classic()
	s := snapshotOf(model.Todo{Text: "Buy milk", Completed: true}, model.Todo{Text: "Walk dog"})

	flat := ansi.Strip(th.List(s, ListOptions{Width: 30}))
	for _, want := range []string{"Todo List", " 1. ", " 2. ", "Buy milk", "Walk dog", "50%"} {
		if !strings.Contains(flat, want) {
			t.Errorf("list missing %q:\n%s", want, flat)
		}
	}

	grouped := ansi.Strip(th.List(s, ListOptions{Group: true, Width: 30}))
	pending := strings.Index(grouped, "Pending")
	walk := strings.Index(grouped, "Walk dog")
	doneHdr := strings.Index(grouped, "Done")
	milk := strings.Index(grouped, "Buy milk")
	if !(pending < walk && walk < doneHdr && doneHdr < milk) {
		t.Errorf("grouped order wrong:\n%s", grouped)
	}
	// grouped rows keep their list position numbers
	if !strings.Contains(grouped, " 2. ") || !strings.Contains(grouped, " 1. ") {
		t.Errorf("grouped numbering lost:\n%s", grouped)
	}

	empty := ansi.Strip(th.List(snapshotOf(), ListOptions{}))
	if !strings.Contains(empty, "no items") {
		t.Errorf("empty list:\n%s", empty)
	}
}

func TestMarkdown(t *testing.T) {
	s := snapshotOf(model.Todo{Text: "Buy *milk*", Completed: true}, model.Todo{Text: "Walk dog"})
	got := Markdown(s)
	want := "# Todo List\n\n- [x] Buy \\*milk\\*\n- [ ] Walk dog\n"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
	if !strings.Contains(Markdown(snapshotOf()), "no items") {
		t.Error("empty markdown should say no items")
	}
}

func TestRenderMarkdown_Mono(t *testing.T) {
	th, _ := ThemeByName("mono")
	out, err := th.RenderMarkdown(Markdown(snapshotOf(model.Todo{Text: "Walk dog"})), 80)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ansi.Strip(out), "Walk dog") {
		t.Errorf("rendered markdown lost text: %q", out)
	}
}

func TestSetColorMode(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	tests := []struct {
		mode string
		want termenv.Profile
	}{
		{"always", termenv.ANSI256},
		{"never", termenv.Ascii},
		{"ALWAYS", termenv.ANSI256},
		{"auto", termenv.ANSI256}, // left as the previous call set it
	}
	for _, tt := range tests {
		SetColorMode(tt.mode)
		if got := lipgloss.ColorProfile(); got != tt.want {
			t.Errorf("SetColorMode(%q): profile %v, want %v", tt.mode, got, tt.want)
		}
	}

	SetColorMode("always")
	if out := Classic().Error.Render("x"); !strings.Contains(out, "\x1b[") {
		t.Errorf("always: %q has no colour", out)
	}
	SetColorMode("never")
	if out := Classic().Error.Render("x"); out != "x" {
		t.Errorf("never: %q, want plain", out)
	}
}
