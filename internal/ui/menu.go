package ui

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	MenuActionBack = "__back__"
	MenuActionQuit = "__quit__"
)

// ActiveDocument names the design document shown in the menu side panel.
// Set once by the root command after the document store is opened.
var ActiveDocument string

type MenuOption func(*menuConfig)

type menuConfig struct {
	allowBack          bool
	backLabel          string
	initialSelectionID string
}

func defaultMenuConfig() menuConfig {
	return menuConfig{
		allowBack: false,
		backLabel: "Back",
	}
}

func WithBackNavigation(label string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.allowBack = true
		if label != "" {
			cfg.backLabel = label
		}
	}
}

// WithInitialSelectionID pre-selects an item by ID when the menu opens.
func WithInitialSelectionID(id string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.initialSelectionID = strings.TrimSpace(id)
	}
}

type menuKeyMap struct {
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Filter  key.Binding
	Jump    key.Binding
	hasBack bool
}

func newMenuKeyMap(allowBack bool, backLabel string) menuKeyMap {
	selectKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	)
	filterKey := key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	)
	jumpKey := key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "quick launch"),
	)
	if allowBack {
		return menuKeyMap{
			Select:  selectKey,
			Filter:  filterKey,
			Jump:    jumpKey,
			Back:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", backLabel)),
			Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
			hasBack: true,
		}
	}
	return menuKeyMap{
		Select:  selectKey,
		Filter:  filterKey,
		Jump:    jumpKey,
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
		hasBack: false,
	}
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	if k.hasBack {
		return []key.Binding{k.Select, k.Jump, k.Filter, k.Back}
	}
	return []key.Binding{k.Select, k.Jump, k.Filter, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	if k.hasBack {
		return [][]key.Binding{{k.Select, k.Jump, k.Filter}, {k.Back, k.Quit}}
	}
	return [][]key.Binding{{k.Select, k.Jump, k.Filter}, {k.Quit}}
}

// MenuItem represents a selectable item in a TUI list.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
}

// Title returns the menu label.
func (m MenuItem) Title() string { return m.TitleText }

// Description returns the menu details.
func (m MenuItem) Description() string { return m.Details }

// FilterValue returns the filterable text.
func (m MenuItem) FilterValue() string { return m.TitleText + " " + m.Details + " " + m.ID }

type menuTickMsg time.Time

type menuModel struct {
	list      list.Model
	title     string
	subtitle  string
	choice    string
	quitting  bool
	allowBack bool
	help      help.Model
	keys      menuKeyMap

	width  int
	height int
	now    time.Time

	cliVersion   string
	documentName string
}

type menuLayout struct {
	stacked     bool
	leftWidth   int
	rightWidth  int
	leftHeight  int
	rightHeight int
	listWidth   int
	listHeight  int
}

type panelDelegate struct {
	slot          lipgloss.Style
	title         lipgloss.Style
	selectedTitle lipgloss.Style
	dimmedTitle   lipgloss.Style
}

func newPanelDelegate() panelDelegate {
	return panelDelegate{
		slot: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Muted))),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Foreground))),
		selectedTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Primary))).
			Bold(true),
		dimmedTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Muted))),
	}
}

func (d panelDelegate) Height() int { return 1 }

func (d panelDelegate) Spacing() int { return 0 }

func (d panelDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d panelDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok || m.Width() <= 0 {
		return
	}

	selected := index == m.Index() && m.FilterState() != list.Filtering
	blankFilter := m.FilterState() == list.Filtering && strings.TrimSpace(m.FilterValue()) == ""

	label := menuItem.TitleText
	if menuItem.Details != "" && m.Width() > 68 {
		label += " - " + menuItem.Details
	}
	label = ansi.Truncate(label, max(14, m.Width()-6), "...")
	slot := fmt.Sprintf("%d.", index+1)

	switch {
	case selected:
		fmt.Fprint(w, "> "+d.selectedTitle.Render(slot)+" "+d.selectedTitle.Render(label)) //nolint:errcheck
	case blankFilter:
		fmt.Fprint(w, "  "+d.slot.Render(slot)+" "+d.dimmedTitle.Render(label)) //nolint:errcheck
	default:
		fmt.Fprint(w, "  "+d.slot.Render(slot)+" "+d.title.Render(label)) //nolint:errcheck
	}
}

func newMenuModel(title string, subtitle string, items []MenuItem, cfg menuConfig) menuModel {
	delegate := newPanelDelegate()

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	l.Styles.PaginationStyle = l.Styles.HelpStyle

	if cfg.initialSelectionID != "" {
		for idx, item := range items {
			if item.ID == cfg.initialSelectionID {
				l.Select(idx)
				break
			}
		}
	}

	helpModel := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	helpModel.Styles.ShortKey = keyStyle
	helpModel.Styles.ShortDesc = hintStyle
	helpModel.Styles.FullKey = keyStyle
	helpModel.Styles.FullDesc = hintStyle
	helpModel.Styles.Ellipsis = hintStyle

	keys := newMenuKeyMap(cfg.allowBack, cfg.backLabel)

	return menuModel{
		list:         l,
		title:        title,
		subtitle:     subtitle,
		allowBack:    cfg.allowBack,
		help:         helpModel,
		keys:         keys,
		now:          time.Now(),
		cliVersion:   resolveCLIVersion(),
		documentName: ActiveDocument,
	}
}

func menuTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return menuTickMsg(t)
	})
}

func (m menuModel) Init() tea.Cmd {
	return menuTick()
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
	case menuTickMsg:
		m.now = time.Time(msg)
		return m, menuTick()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.choice = item.ID
				return m, tea.Quit
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if m.list.FilterState() != list.Filtering {
				if m.selectByNumber(msg.String()) {
					return m, tea.Quit
				}
			}
		case "q", "esc":
			m.quitting = true
			if m.allowBack {
				m.choice = MenuActionBack
			} else {
				m.choice = MenuActionQuit
			}
			return m, tea.Quit
		case "ctrl+c":
			m.quitting = true
			m.choice = MenuActionQuit
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *menuModel) pageStartIndex() int {
	start := m.list.Index() - m.list.Cursor()
	if start < 0 {
		return 0
	}
	return start
}

func (m *menuModel) selectByNumber(keyNum string) bool {
	if len(keyNum) != 1 {
		return false
	}
	slot := int(keyNum[0]-'1') + 1
	if slot < 1 || slot > 9 {
		return false
	}

	visible := m.list.VisibleItems()
	if len(visible) == 0 {
		return false
	}

	target := m.pageStartIndex() + (slot - 1)
	if target < 0 || target >= len(visible) {
		return false
	}

	m.list.Select(target)
	if item, ok := visible[target].(MenuItem); ok {
		m.choice = item.ID
		return true
	}
	return false
}

func (m *menuModel) resizeList() {
	width := m.width
	height := m.height
	if width <= 0 {
		width = terminalWidth()
	}
	if height <= 0 {
		height = 26
	}
	layout := calculateMenuLayout(width, height)
	m.list.SetSize(layout.listWidth, layout.listHeight)
}

func (m menuModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	width := m.width
	height := m.height
	if width <= 0 {
		width = terminalWidth()
	}
	if height <= 0 {
		height = 26
	}
	layout := calculateMenuLayout(width, height)

	leftPanel := lipgloss.NewStyle().
		Width(layout.leftWidth).
		Height(layout.leftHeight).
		PaddingRight(1).
		Render(m.renderLeftPanel(layout.leftWidth - 1))

	rightPanel := lipgloss.NewStyle().
		Width(layout.rightWidth).
		Height(layout.rightHeight).
		PaddingLeft(1).
		Render(m.renderRightPanel(layout.rightWidth-1, layout.rightHeight))

	var body string
	if layout.stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, leftPanel, "", rightPanel)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
	}
	footer := m.help.View(m.keys)

	v := tea.NewView(Frame(m.title, m.subtitle, body, footer))
	v.AltScreen = true
	return v
}

func (m menuModel) renderLeftPanel(innerWidth int) string {
	view := m.list.View()
	filter := strings.TrimSpace(m.list.FilterValue())
	if filter == "" {
		return view
	}
	hint := MutedStyle.Render("filter: " + truncLine(filter, innerWidth-8))
	return lipgloss.JoinVertical(lipgloss.Left, view, "", hint)
}

func (m menuModel) renderRightPanel(innerWidth int, innerHeight int) string {
	lines := []string{sectionTitle("Selection")}

	if item, ok := m.list.SelectedItem().(MenuItem); ok && item.TitleText != "" {
		lines = append(lines, PrimaryStyle().Render(truncLine(item.TitleText, innerWidth)))
		if details := strings.TrimSpace(item.Details); details != "" {
			lines = append(lines, MutedStyle.Render(truncLine(details, innerWidth)))
		}
		lines = append(lines, MutedStyle.Render("id: "+item.ID))
	} else {
		lines = append(lines, MutedStyle.Render("No selection"))
	}

	lines = append(lines, "", sectionTitle("Panel"))
	for _, row := range [][2]string{
		{"cli", m.cliVersion},
		{"doc", m.documentName},
		{"clock", m.now.Format("15:04:05")},
	} {
		lines = append(lines, panelRow(row[0], row[1], innerWidth))
	}
	lines = append(lines,
		"",
		MutedStyle.Render("Enter to run"),
		MutedStyle.Render("1-9 quick launch"),
	)

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	return strings.Join(lines, "\n")
}

func sectionTitle(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true).Render(text)
}

// panelRow renders one label/value line of the side panel.
func panelRow(label string, value string, width int) string {
	if strings.TrimSpace(value) == "" {
		value = "unknown"
	}
	return MutedStyle.Render(truncLine(fmt.Sprintf("%-7s %s", label+":", value), width))
}

func truncLine(text string, width int) string {
	return ansi.Truncate(text, max(10, width), "...")
}

func calculateMenuLayout(width int, height int) menuLayout {
	const (
		gap            = 2
		minLeftWidth   = 40
		minRightWidth  = 20
		stackThreshold = 90
		minPanelHeight = 8
		minListHeight  = 5
		leftListExtraH = 4
	)

	bodyHeight := height - 8
	if bodyHeight < 10 {
		bodyHeight = 10
	}

	stacked := width < stackThreshold
	if !stacked {
		maxLeftWidth := width - minRightWidth - gap
		if maxLeftWidth < minLeftWidth {
			stacked = true
		}
	}

	if stacked {
		leftHeight := (bodyHeight * 3) / 5
		if leftHeight < minPanelHeight {
			leftHeight = minPanelHeight
		}
		rightHeight := bodyHeight - leftHeight
		if rightHeight < minPanelHeight {
			rightHeight = minPanelHeight
			leftHeight = bodyHeight - rightHeight
			if leftHeight < minPanelHeight {
				leftHeight = minPanelHeight
			}
		}

		listWidth := width - 6
		if listWidth < 4 {
			listWidth = 4
		}
		listHeight := leftHeight - leftListExtraH
		if listHeight < minListHeight {
			listHeight = minListHeight
		}

		return menuLayout{
			stacked:     true,
			leftWidth:   max(1, width),
			rightWidth:  max(1, width),
			leftHeight:  leftHeight,
			rightHeight: rightHeight,
			listWidth:   listWidth,
			listHeight:  listHeight,
		}
	}

	maxLeftWidth := width - minRightWidth - gap
	leftWidth := int(float64(width) * 0.62)
	if leftWidth < minLeftWidth {
		leftWidth = minLeftWidth
	}
	if leftWidth > maxLeftWidth {
		leftWidth = maxLeftWidth
	}
	rightWidth := width - leftWidth - gap

	listWidth := leftWidth - 5
	if listWidth < 4 {
		listWidth = 4
	}
	listHeight := bodyHeight - 6
	if listHeight < minListHeight {
		listHeight = minListHeight
	}

	return menuLayout{
		stacked:     false,
		leftWidth:   leftWidth,
		rightWidth:  rightWidth,
		leftHeight:  bodyHeight,
		rightHeight: bodyHeight,
		listWidth:   listWidth,
		listHeight:  listHeight,
	}
}

func resolveCLIVersion() string {
	cliVersion := "dev"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return cliVersion
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			revision := setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
			return "dev-" + revision
		}
	}
	return cliVersion
}

// RunMenu displays a TUI list and returns the selected item ID.
func RunMenu(title string, subtitle string, items []MenuItem) (string, error) {
	if !IsInteractiveTerminal() {
		return "", fmt.Errorf("non-interactive terminal")
	}
	model := newMenuModel(title, subtitle, items, defaultMenuConfig())
	return runMenuModel(model)
}

func RunMenuWithOptions(title string, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", fmt.Errorf("non-interactive terminal")
	}
	cfg := defaultMenuConfig()
	for _, opt := range options {
		opt(&cfg)
	}
	model := newMenuModel(title, subtitle, items, cfg)
	return runMenuModel(model)
}

func runMenuModel(model menuModel) (string, error) {
	program := tea.NewProgram(model)
	result, err := program.Run()
	if err != nil {
		return "", err
	}
	if finalModel, ok := result.(menuModel); ok {
		return finalModel.choice, nil
	}
	return "", nil
}
