package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aarushdubey/Guardian-PDF/internal/domain"
)

// Model is the Bubble Tea model for the chunk browser. It shows one chunk
// at a time, lets the user cycle through them and narrow the list with a
// token filter.
type Model struct {
	report     *domain.Report
	input      textinput.Model
	viewport   viewport.Model
	visible    []int
	status     string
	cursor     int
	ready      bool
	lastFilter string
}

// New creates a new TUI model over a finished processing report.
func New(report *domain.Report) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type filter words and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{report: report, input: ti, viewport: vp, status: "Processed. Enter to filter, up/down to browse."}
	m.visible = allIndexes(len(report.Chunks))
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around chunk and filter boxes
		_, ch := chunkBoxStyle.GetFrameSize()
		_, fh := filterBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + stats
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + fh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-ch)
		m.viewport.SetContent(m.renderCurrentChunk())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			filter := strings.TrimSpace(m.input.Value())
			m.visible = m.filterChunks(filter)
			m.cursor = 0
			m.lastFilter = filter
			if filter == "" {
				m.status = fmt.Sprintf("Showing all %d chunks", len(m.visible))
			} else {
				m.status = fmt.Sprintf("%d chunks match %q", len(m.visible), filter)
			}
			m.viewport.SetContent(m.renderCurrentChunk())
			return m, nil
		case "down":
			if len(m.visible) > 0 {
				m.cursor = (m.cursor + 1) % len(m.visible)
				m.viewport.SetContent(m.renderCurrentChunk())
				return m, nil
			}
		case "up":
			if len(m.visible) > 0 {
				m.cursor = (m.cursor - 1 + len(m.visible)) % len(m.visible)
				m.viewport.SetContent(m.renderCurrentChunk())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current chunk.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Guardian-PDF Chunk Browser")
	stats := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.renderStats())
	input := filterBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	chunk := chunkBoxStyle.Render(m.viewport.View())
	return header + "\n" + stats + "\n" + chunk + "\n" + input + "\n" + status
}

func (m Model) renderStats() string {
	s := m.report.Stats
	return fmt.Sprintf("files=%d pages=%d chunks=%d unique=%d removed=%d ratio=%.1f%%",
		m.report.Files, m.report.Pages, s.OriginalCount, s.UniqueCount, s.DuplicatesRemoved,
		s.DeduplicationRatio*100)
}

func (m Model) renderCurrentChunk() string {
	if len(m.visible) == 0 {
		return "No chunks to show."
	}
	idx := m.visible[m.cursor]
	title := fmt.Sprintf("Chunk %d/%d  (#%d of %d total)",
		m.cursor+1, len(m.visible), idx+1, len(m.report.Chunks))
	body := highlightTokens(m.report.Chunks[idx], m.lastFilter)
	return title + "\n\n" + body
}

// filterChunks returns the indexes of chunks containing every filter token.
func (m Model) filterChunks(filter string) []int {
	tokens := toTokenSet(filter)
	if len(tokens) == 0 {
		return allIndexes(len(m.report.Chunks))
	}
	var visible []int
	for i, chunk := range m.report.Chunks {
		chunkTokens := toTokenSet(chunk)
		match := true
		for t := range tokens {
			if _, ok := chunkTokens[t]; !ok {
				match = false
				break
			}
		}
		if match {
			visible = append(visible, i)
		}
	}
	return visible
}

var (
	chunkBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	filterBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	unicodeWordRe  = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
)

// highlightTokens emphasizes every word of the chunk that appears in the
// filter string.
func highlightTokens(text, filter string) string {
	tokens := toTokenSet(filter)
	if len(tokens) == 0 {
		return text
	}
	words := strings.Fields(text)
	for i, w := range words {
		bare := strings.ToLower(strings.Trim(w, ".,;:!?()[]\"'"))
		if _, ok := tokens[bare]; ok {
			words[i] = highlightStyle.Render(w)
		}
	}
	return strings.Join(words, " ")
}

func toTokenSet(s string) map[string]struct{} {
	tokens := unicodeWordRe.FindAllString(strings.ToLower(s), -1)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

func allIndexes(n int) []int {
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	return idxs
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
