package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "codeguard.dev/pkg/codeguard/internal/model"
	"codeguard.dev/pkg/codeguard/internal/rules"
)

// reservedLines is the space kept free for the pager footer.
const reservedLines = 3

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pathStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	severityStyles = map[m.Severity]lipgloss.Style{
		m.SeverityCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		m.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
		m.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		m.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}

	diagnosticStyles = map[m.DiagnosticSeverity]lipgloss.Style{
		m.DiagnosticError:       severityStyles[m.SeverityCritical],
		m.DiagnosticWarning:     severityStyles[m.SeverityMedium],
		m.DiagnosticInformation: severityStyles[m.SeverityLow],
		m.DiagnosticHint:        faintStyle,
	}
)

// TUI implements UI with styled output. Long result lists open in a
// scrollable Bubble Tea pager.
type TUI struct {
	output io.Writer

	mu   sync.Mutex
	mode StartMode
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start records the display mode.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)

	p.mu.Lock()
	p.mode = cfg.mode
	p.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// Wait returns immediately; pagers block inside the Display methods.
func (p *TUI) Wait(_ context.Context) {}

// DisplayScanStarted announces the folders about to be scanned.
func (p *TUI) DisplayScanStarted(ctx context.Context, roots []m.Path) {
	if ctx.Err() != nil {
		return
	}

	names := make([]string, 0, len(roots))
	for _, r := range roots {
		names = append(names, string(r))
	}

	p.print(titleStyle.Render("codeguard") + faintStyle.Render(" scanning "+strings.Join(names, ", ")) + "\n")
}

// DisplayWorkspaceSummary shows every file with findings, highest severity
// first.
func (p *TUI) DisplayWorkspaceSummary(ctx context.Context, summary m.WorkspaceSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Workspace scan") + "\n\n")

	if len(summary.Results) == 0 {
		b.WriteString("  " + severityStyles[m.SeverityLow].Render(noFindingsLabel) + "\n")
	}

	for _, r := range sortedResults(summary.Results) {
		fmt.Fprintf(&b, "  %s %s\n", severityBadge(r.Severity), pathStyle.Render(displayPath(r.FilePath, summary.Roots)))

		for _, f := range r.Findings {
			fmt.Fprintf(&b, "      %s %s %s\n",
				severityStyles[f.Severity].Render(fmt.Sprintf("%-8s", f.Severity.Tier())),
				faintStyle.Render(fmt.Sprintf("%-7s %-6s", findingLocation(f), f.SourceLabel)),
				findingMessage(f))
		}
	}

	b.WriteString("\n  " + summaryLine(summary) + "\n")

	if counts := domainCounts(summary); counts != "" {
		b.WriteString("  " + faintStyle.Render(counts) + "\n")
	}

	return p.show(b.String())
}

// DisplayScanResult shows the findings of a single buffer scan.
func (p *TUI) DisplayScanResult(ctx context.Context, source string, result m.CombinedResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", titleStyle.Render("Scan"), pathStyle.Render(source))

	for _, d := range m.AllDomains {
		r, ok := result.Results[d]
		if !ok || r.Empty() {
			continue
		}

		fmt.Fprintf(&b, "  %s %s\n", severityBadge(r.OverallSeverity), pathStyle.Render(string(d)))

		for _, c := range r.Categories {
			fmt.Fprintf(&b, "    %s\n", faintStyle.Render(c.Name))

			for _, f := range c.Findings {
				fmt.Fprintf(&b, "      %s %s %s\n",
					severityStyles[f.Severity].Render(fmt.Sprintf("%-8s", f.Severity.Tier())),
					faintStyle.Render(fmt.Sprintf("%-7s %-6s", findingLocation(f), f.SourceLabel)),
					findingMessage(f))
			}
		}

		if r.Score != nil {
			fmt.Fprintf(&b, "    quality score %d/100\n", *r.Score)
		}
	}

	if len(result.AllFindings()) == 0 {
		b.WriteString("  " + severityStyles[m.SeverityLow].Render(noFindingsLabel) + "\n")
	}

	fmt.Fprintf(&b, "\n  Overall severity: %s\n", severityBadge(result.Severity))

	return p.show(b.String())
}

// DisplayRules lists every rule of the given catalogs.
func (p *TUI) DisplayRules(ctx context.Context, catalogs []rules.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	total := 0

	for _, c := range catalogs {
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(string(c.Domain())), faintStyle.Render(fmt.Sprintf("(%d rules)", c.Len())))

		for _, r := range c.Rules() {
			fmt.Fprintf(&b, "  %-7s %s %-18s %s %s\n",
				r.ID,
				severityStyles[r.Severity].Render(fmt.Sprintf("%-8s", r.Severity.Tier())),
				r.Category,
				r.Message,
				faintStyle.Render("["+contextsLabel(r.Contexts)+"]"))
			total++
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total rules: %d\n", total)

	return p.show(b.String())
}

// DisplayFileUpdate prints the diagnostics of a rescanned or removed file.
func (p *TUI) DisplayFileUpdate(ctx context.Context, path m.Path, diagnostics []m.Diagnostic) {
	if ctx.Err() != nil {
		return
	}

	if len(diagnostics) == 0 {
		p.print(fmt.Sprintf("%s %s\n", severityStyles[m.SeverityLow].Render("✓"), pathStyle.Render(string(path))))
		return
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", severityStyles[m.SeverityHigh].Render("●"), pathStyle.Render(string(path)),
		faintStyle.Render(fmt.Sprintf("%d issue(s)", len(diagnostics))))

	for _, d := range diagnostics {
		fmt.Fprintf(&b, "    %s %s %s\n",
			diagnosticStyles[d.Severity].Render(fmt.Sprintf("%-11s", d.Severity)),
			faintStyle.Render(fmt.Sprintf("%d:%d", d.Range.Start.Line+1, d.Range.Start.Character+1)),
			d.Message)
	}

	p.print(b.String())
}

func severityBadge(s m.Severity) string {
	return severityStyles[s].Render("[" + s.Tier() + "]")
}

// show prints content directly when it fits the terminal or when watching,
// and pages it otherwise.
func (p *TUI) show(content string) error {
	p.mu.Lock()
	mode := p.mode
	p.mu.Unlock()

	width, height := p.terminalSize()

	lines := strings.Count(content, "\n")
	if mode == ModeWatch || height == 0 || lines <= height-reservedLines {
		p.print(content)
		return nil
	}

	program := tea.NewProgram(newPagerModel(content, width, height), tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (p *TUI) terminalSize() (int, int) {
	f, ok := p.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(f.Fd())
	if err != nil {
		return 0, 0
	}

	return width, height
}

func (p *TUI) print(s string) {
	_, _ = fmt.Fprint(p.output, s)
}

// pagerModel scrolls pre-rendered content in a viewport.
type pagerModel struct {
	viewport viewport.Model
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-reservedLines, 1))
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-reservedLines, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := footerStyle.Render(fmt.Sprintf("  %3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit", pm.viewport.ScrollPercent()*100))

	return pm.viewport.View() + "\n\n" + footer
}
