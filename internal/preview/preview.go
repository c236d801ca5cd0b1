// Package preview is an interactive terminal view that shows romanized input
// in Hangul as it is typed, with a syllable-by-syllable breakdown.
package preview

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/terzeron/rogue-kr/internal/catalog"
	"github.com/terzeron/rogue-kr/internal/locale"
	"github.com/terzeron/rogue-kr/internal/names"
	"github.com/terzeron/rogue-kr/internal/transliteration"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	catalogStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// Config holds what the preview needs to resolve names. Catalog belongs to
// Gate's language; Load fetches the catalog for the other language when the
// locale is switched, and defaults to the built-in catalogs.
type Config struct {
	Gate    locale.Gate
	Catalog *catalog.Catalog
	Load    func(locale.Gate) (*catalog.Catalog, error)
	Rand    *rand.Rand
}

type model struct {
	cfg       Config
	gate      locale.Gate
	catalogs  map[string]*catalog.Catalog
	textInput textinput.Model
	width     int
	height    int
}

func New(cfg Config) model {
	ti := textinput.New()
	ti.Placeholder = "alpha beta"
	ti.Focus()
	ti.CharLimit = catalog.MaxValueLen
	ti.Width = 60

	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Load == nil {
		cfg.Load = func(g locale.Gate) (*catalog.Catalog, error) {
			return catalog.Builtin(g.Lang())
		}
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Empty()
	}

	return model{
		cfg:       cfg,
		gate:      cfg.Gate,
		catalogs:  map[string]*catalog.Catalog{cfg.Gate.Lang(): cat},
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.toggleLocale()
			return m, nil
		case tea.KeyCtrlR:
			// a scroll title in the source alphabet, so it can be edited
			m.textInput.SetValue(names.New(locale.New(locale.English), m.catalog()).ScrollTitle(m.cfg.Rand))
			m.textInput.CursorEnd()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *model) toggleLocale() {
	if m.gate.Requires() {
		m.gate = locale.New(locale.English)
	} else {
		m.gate = locale.New(locale.Korean)
	}
	if _, ok := m.catalogs[m.gate.Lang()]; ok {
		return
	}
	cat, err := m.cfg.Load(m.gate)
	if err != nil {
		cat = catalog.Empty()
	}
	m.catalogs[m.gate.Lang()] = cat
}

// catalog is the catalog for the active locale.
func (m model) catalog() *catalog.Catalog {
	return m.catalogs[m.gate.Lang()]
}

// Output is the transliteration of the current input under the active gate.
func (m model) Output() string {
	return transliteration.New(m.gate).Transliterate(m.textInput.Value())
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Rogue Hangul - Preview"))
	s.WriteString("\n\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")
	s.WriteString(resultStyle.Render(m.Output()))
	s.WriteString("\n")

	if m.gate.Requires() {
		if rows := m.breakdown(); rows != "" {
			s.WriteString("\n")
			s.WriteString(boxStyle.Render(rows))
			s.WriteString("\n")
		}
	}

	if hits := m.catalogHits(); len(hits) > 0 {
		s.WriteString("\n")
		for _, h := range hits {
			s.WriteString(catalogStyle.Render(h))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(subtleStyle.Render(fmt.Sprintf("locale %s · tab switch locale · ctrl+r random scroll title · esc quit", m.gate.Lang())))
	s.WriteString("\n")
	return s.String()
}

func (m model) breakdown() string {
	syls := transliteration.Syllables(m.textInput.Value())
	rows := make([]string, len(syls))
	for i, syl := range syls {
		r := syl.Rune()
		rows[i] = fmt.Sprintf("%c  %-8s %s", r, syl.Jamo(), transliteration.Romanize(string(r)))
	}
	return strings.Join(rows, "\n")
}

// catalogHits lists entries of the active locale's catalog whose name matches
// the input exactly.
func (m model) catalogHits() []string {
	name := strings.TrimSpace(strings.ToLower(m.textInput.Value()))
	if name == "" {
		return nil
	}
	var hits []string
	cat := m.catalog()
	for _, kind := range []string{names.KindWeapon, names.KindArmor, names.KindMonster, names.KindColor, names.KindStone, names.KindWood, names.KindMetal, names.KindMaterial} {
		if v, ok := cat.Lookup(names.Key(kind, name)); ok {
			hits = append(hits, fmt.Sprintf("%s  %s", names.Key(kind, name), v))
		}
	}
	return hits
}

// Run starts the preview and blocks until the user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg))
	_, err := p.Run()
	return err
}
