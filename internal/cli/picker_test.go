package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pindex-dev/pindex/pkg/lockfile"
)

func pickerFiles() []lockfile.File {
	return []lockfile.File{
		{Type: lockfile.TypePipfileLock, Path: "/srv/app/Pipfile.lock"},
		{Type: lockfile.TypePipfileLock, Path: "/srv/app/vendor/Pipfile.lock"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLockfileListModelSelect(t *testing.T) {
	m := NewLockfileListModel(pickerFiles())

	// Move down once and select the second entry.
	next, _ := m.Update(keyMsg("j"))
	m = next.(LockfileListModel)
	if m.Cursor != 1 {
		t.Fatalf("Cursor = %d, want 1", m.Cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(LockfileListModel)

	if m.Selected == nil {
		t.Fatal("Selected should be set after enter")
	}
	if m.Selected.Path != "/srv/app/vendor/Pipfile.lock" {
		t.Errorf("Selected.Path = %q, want second entry", m.Selected.Path)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestLockfileListModelQuitWithoutSelection(t *testing.T) {
	m := NewLockfileListModel(pickerFiles())

	next, cmd := m.Update(keyMsg("q"))
	m = next.(LockfileListModel)

	if m.Selected != nil {
		t.Error("Selected should be nil after quitting")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestLockfileListModelCursorBounds(t *testing.T) {
	m := NewLockfileListModel(pickerFiles())

	// Up at the top stays at the top.
	next, _ := m.Update(keyMsg("k"))
	m = next.(LockfileListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 at top", m.Cursor)
	}

	// Down past the end stays at the last entry.
	for i := 0; i < 5; i++ {
		next, _ = m.Update(keyMsg("j"))
		m = next.(LockfileListModel)
	}
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 at bottom", m.Cursor)
	}
}

func TestLockfileListModelView(t *testing.T) {
	m := NewLockfileListModel(pickerFiles())

	view := m.View()
	if view == "" {
		t.Fatal("View() should render content")
	}
	if !strings.Contains(view, "Pipfile.lock") {
		t.Error("View() should list the lockfile paths")
	}
}
