package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/distrograph/distrograph/pkg/distro"
	"github.com/distrograph/distrograph/pkg/tree"
)

// newBrowseCmd creates the browse command.
func newBrowseCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse distributions interactively",
		Long: `Browse distributions interactively.

Opens a terminal list of all distributions. Use the arrow keys to navigate,
"/" to filter by name, and enter to inspect a distribution's details.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			records, err := src.records(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			model := newBrowseModel(records)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	src.register(cmd)
	return cmd
}

// browseModel is the bubbletea model for the distribution browser.
type browseModel struct {
	records  []distro.Record
	filtered []distro.Record

	cursor int
	offset int
	height int

	filtering bool
	filter    string

	// detail holds the record being inspected, nil while listing.
	detail *distro.Record
}

func newBrowseModel(records []distro.Record) browseModel {
	return browseModel{
		records:  records,
		filtered: records,
		height:   15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.detail != nil {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc", "enter", "backspace":
				m.detail = nil
			}
			return m, nil
		}

		if m.filtering {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.filtering = false
				m.filter = ""
				m.applyFilter()
			case "enter":
				m.filtering = false
			case "backspace":
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
					m.applyFilter()
				}
			default:
				if msg.Type == tea.KeyRunes {
					m.filter += string(msg.Runes)
					m.applyFilter()
				}
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.filtering = true
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if len(m.filtered) > 0 {
				rec := m.filtered[m.cursor]
				m.detail = &rec
			}
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// applyFilter recomputes the visible records and clamps the cursor.
func (m *browseModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.records
	} else {
		needle := strings.ToLower(m.filter)
		filtered := make([]distro.Record, 0, len(m.records))
		for _, rec := range m.records {
			if strings.Contains(strings.ToLower(rec.DisplayName()), needle) {
				filtered = append(filtered, rec)
			}
		}
		m.filtered = filtered
	}
	m.cursor = 0
	m.offset = 0
}

func (m browseModel) View() string {
	if m.detail != nil {
		return m.detailView()
	}
	return m.listView()
}

func (m browseModel) listView() string {
	var b strings.Builder

	b.WriteString(listTitleStyle.Render("Distributions"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  / filter  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if m.filtering || m.filter != "" {
		b.WriteString(listDimStyle.Render("filter: ") + m.filter)
		if m.filtering {
			b.WriteString(listSelectedStyle.Render("_"))
		}
		b.WriteString("\n\n")
	}

	end := m.offset + m.height
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.offset; i < end; i++ {
		rec := m.filtered[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		glyph := tree.GlyphInactive
		if rec.IsActive() {
			glyph = tree.GlyphActive
		}

		line := fmt.Sprintf("%s%s %-28s %s", cursor, glyph, rec.DisplayName(), rec.BasedOn)
		switch {
		case i == m.cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case !rec.IsActive():
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.filtered))))

	return b.String()
}

func (m browseModel) detailView() string {
	rec := *m.detail

	var b strings.Builder
	b.WriteString(listTitleStyle.Render(rec.DisplayName()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	row := func(key, value string) {
		if value == "" {
			value = "—"
		}
		b.WriteString(fmt.Sprintf("  %-14s %s\n", listDimStyle.Render(key), value))
	}

	row("Status", string(rec.Status))
	row("Based on", rec.BasedOn)
	row("First release", rec.FirstRelease())
	row("End date", rec.EndDate)
	row("Link", rec.Link)
	row("Source", rec.Source)

	if len(rec.NameChanges) > 0 {
		b.WriteString("\n  " + listDimStyle.Render("Name changes") + "\n")
		for _, nc := range rec.NameChanges {
			b.WriteString(fmt.Sprintf("    %s (%s)\n", nc.Name, nc.Date))
		}
	}

	if rec.Description != "" {
		b.WriteString("\n  " + rec.Description + "\n")
	}

	return b.String()
}
