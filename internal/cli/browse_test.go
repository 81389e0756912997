package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/distrograph/distrograph/pkg/distro"
)

func browseFixture() browseModel {
	return newBrowseModel([]distro.Record{
		{Name: "debian", HumanName: "Debian", Status: distro.StatusActive, BasedOn: distro.Independent},
		{Name: "ubuntu", HumanName: "Ubuntu", Status: distro.StatusActive, BasedOn: "debian"},
		{Name: "corel", HumanName: "Corel", Status: distro.StatusDiscontinued, BasedOn: "debian"},
	})
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{}
}

func update(m browseModel, keys ...string) browseModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(browseModel)
	}
	return m
}

func TestBrowseNavigation(t *testing.T) {
	m := browseFixture()

	m = update(m, "down", "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	// Cursor clamps at the end of the list.
	m = update(m, "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
	}

	m = update(m, "up", "up", "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.cursor)
	}
}

func TestBrowseFilter(t *testing.T) {
	m := browseFixture()

	m = update(m, "/", "u", "b")
	if len(m.filtered) != 1 {
		t.Fatalf("got %d filtered records, want 1", len(m.filtered))
	}
	if m.filtered[0].Name != "ubuntu" {
		t.Errorf("filtered[0].Name = %q, want ubuntu", m.filtered[0].Name)
	}

	// Backspace widens the filter again.
	m = update(m, "backspace", "backspace")
	if len(m.filtered) != 3 {
		t.Errorf("got %d filtered records after backspace, want 3", len(m.filtered))
	}

	// Escape clears the filter entirely.
	m = update(m, "u", "esc")
	if m.filtering || m.filter != "" {
		t.Error("esc should leave filter mode and clear the filter")
	}
	if len(m.filtered) != 3 {
		t.Errorf("got %d filtered records after esc, want 3", len(m.filtered))
	}
}

func TestBrowseDetail(t *testing.T) {
	m := browseFixture()

	m = update(m, "down", "enter")
	if m.detail == nil {
		t.Fatal("enter should open the detail view")
	}
	if m.detail.Name != "ubuntu" {
		t.Errorf("detail.Name = %q, want ubuntu", m.detail.Name)
	}

	view := m.View()
	if !strings.Contains(view, "Ubuntu") {
		t.Errorf("detail view should contain the display name, got %q", view)
	}
	if !strings.Contains(view, "debian") {
		t.Errorf("detail view should contain the parent, got %q", view)
	}

	m = update(m, "esc")
	if m.detail != nil {
		t.Error("esc should close the detail view")
	}
}

func TestBrowseListView(t *testing.T) {
	m := browseFixture()
	view := m.View()

	if !strings.Contains(view, "Debian") {
		t.Errorf("list view should contain records, got %q", view)
	}
	if !strings.Contains(view, "[1/3]") {
		t.Errorf("list view should show position, got %q", view)
	}
}
