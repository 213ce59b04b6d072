// Package tui provides the interactive Bubble Tea dashboard for stuffer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"stuffer/internal/config"
	"stuffer/internal/ledger"
	"stuffer/internal/model"
	"stuffer/internal/ops"
	"stuffer/internal/store"
	"stuffer/internal/tui/components"
	"stuffer/internal/tui/theme"
)

// DataLoadedMsg is sent when the full ledger read finishes.
type DataLoadedMsg struct {
	Txns  []model.Transaction
	Cats  []model.Category
	Loans []model.Loan
	Subs  []model.Subscription
	Err   error
}

// OpDoneMsg is sent when a mutating operation finishes.
type OpDoneMsg struct {
	Err error
}

type formKind int

const (
	formNone formKind = iota
	formAdd
	formTransfer
	formDeposit
)

type addValues struct {
	category    string
	description string
	amount      string
	spent       bool
	electronic  bool
}

type transferValues struct {
	from   string
	to     string
	amount string
}

type depositValues struct {
	amount string
}

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	svc *ops.Service
	cfg config.Config

	// Data
	txns    []model.Transaction
	cats    []model.Category
	loans   []model.Loan
	subs    []model.Subscription
	loaded  bool
	loadErr error

	// Analysis month
	anchor time.Time
	period ledger.Period

	// Pre-computed for the current month
	rows       []model.LedgerRow
	total      model.LedgerRow
	goals      []model.GoalProjection
	loanRows   []model.LoanProjection
	owed       decimal.Decimal
	periodTxns []model.Transaction

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	opErr     error

	// Active entry form
	form         *huh.Form
	formKind     formKind
	addVals      addValues
	transferVals transferValues
	depositVals  depositValues

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
)

// NewApp creates the dashboard model over an open store.
func NewApp(st *store.Store, cfg config.Config, period ledger.Period) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		st:      st,
		svc:     ops.New(st),
		cfg:     cfg,
		anchor:  period.Month(),
		period:  period,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(a.st), a.spinner.Tick)
}

func loadDataCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		msg := DataLoadedMsg{}
		var err error
		if msg.Txns, err = st.ListTransactions(); err != nil {
			msg.Err = err
			return msg
		}
		if msg.Cats, err = st.ListCategories(); err != nil {
			msg.Err = err
			return msg
		}
		if msg.Loans, err = st.ListLoans(); err != nil {
			msg.Err = err
			return msg
		}
		msg.Subs, msg.Err = st.ListSubscriptions()
		return msg
	}
}

// recompute refreshes every derived view from the raw log. Cheap enough to
// run after every mutation; correctness never depends on cached state.
func (a *App) recompute() {
	a.period = ledger.PeriodOf(a.anchor)
	a.rows, a.total = ledger.Aggregate(a.txns, a.cats, a.period.Key, nil)
	a.goals = ledger.ProjectSinkingFunds(a.txns, a.cats, time.Now())
	a.loanRows = ledger.AmortizeLoans(a.loans, time.Now())
	a.owed = ledger.Owed(a.txns, a.cats)
	a.periodTxns = ledger.InPeriod(a.txns, a.period.Key)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case DataLoadedMsg:
		if msg.Err != nil {
			a.loadErr = msg.Err
			return a, nil
		}
		a.txns = msg.Txns
		a.cats = msg.Cats
		a.loans = msg.Loans
		a.subs = msg.Subs
		a.loaded = true
		a.recompute()
		return a, nil

	case OpDoneMsg:
		a.opErr = msg.Err
		return a, loadDataCmd(a.st)

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.updateKeys(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = true
		return a, nil

	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil

	case "shift+tab", "left":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil

	case "h", "[":
		a.anchor = a.anchor.AddDate(0, -1, 0)
		a.recompute()
		return a, nil

	case "n", "]":
		a.anchor = a.anchor.AddDate(0, 1, 0)
		a.recompute()
		return a, nil

	case "a":
		return a.openAddForm()

	case "t":
		return a.openTransferForm()

	case "d":
		return a.openDepositForm()

	case "r":
		return a, loadDataCmd(a.st)
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		return a, a.submitCmd(kind)
	}
	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}
	return a, cmd
}

// submitCmd runs the completed form's operation against the store.
func (a App) submitCmd(kind formKind) tea.Cmd {
	svc := a.svc
	period := a.period
	switch kind {
	case formAdd:
		vals := a.addVals
		return func() tea.Msg {
			amount, err := decimal.NewFromString(strings.TrimSpace(vals.amount))
			if err != nil {
				return OpDoneMsg{Err: fmt.Errorf("invalid amount %q: %w", vals.amount, err)}
			}
			txn := model.Transaction{
				Date:         time.Now(),
				Category:     vals.category,
				Description:  vals.description,
				Amount:       amount,
				Type:         model.Planned,
				IsElectronic: vals.electronic,
			}
			if vals.spent {
				txn.Type = model.Actual
			} else {
				txn.BudgetMonth = period.Month().Format(ledger.BudgetMonthLayout)
			}
			_, err = svc.Record(txn)
			return OpDoneMsg{Err: err}
		}

	case formTransfer:
		vals := a.transferVals
		return func() tea.Msg {
			amount, err := decimal.NewFromString(strings.TrimSpace(vals.amount))
			if err != nil {
				return OpDoneMsg{Err: fmt.Errorf("invalid amount %q: %w", vals.amount, err)}
			}
			return OpDoneMsg{Err: svc.Transfer(vals.from, vals.to, amount, time.Now())}
		}

	case formDeposit:
		vals := a.depositVals
		return func() tea.Msg {
			amount, err := decimal.NewFromString(strings.TrimSpace(vals.amount))
			if err != nil {
				return OpDoneMsg{Err: fmt.Errorf("invalid amount %q: %w", vals.amount, err)}
			}
			_, err = svc.Deposit(amount, time.Now())
			return OpDoneMsg{Err: err}
		}
	}
	return nil
}

func (a App) categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(a.cats))
	for _, c := range a.cats {
		opts = append(opts, huh.NewOption(c.Name, c.Name))
	}
	return opts
}

func validAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	if len(a.cats) == 0 {
		a.opErr = fmt.Errorf("no envelopes yet, create one first")
		return a, nil
	}
	a.addVals = addValues{}
	a.formKind = formAdd
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Envelope").
				Options(a.categoryOptions()...).
				Value(&a.addVals.category),
			huh.NewInput().
				Title("Description").
				Value(&a.addVals.description),
			huh.NewInput().
				Title("Amount").
				Validate(validAmount).
				Value(&a.addVals.amount),
			huh.NewConfirm().
				Title("Already spent?").
				Affirmative("Spent").
				Negative("Planned").
				Value(&a.addVals.spent),
			huh.NewConfirm().
				Title("Paid electronically?").
				Value(&a.addVals.electronic),
		),
	).WithWidth(a.contentWidth()).WithShowHelp(false)
	return a, a.form.Init()
}

func (a App) openTransferForm() (tea.Model, tea.Cmd) {
	if len(a.cats) < 2 {
		a.opErr = fmt.Errorf("transfers need at least two envelopes")
		return a, nil
	}
	a.transferVals = transferValues{}
	a.formKind = formTransfer
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("From").
				Options(a.categoryOptions()...).
				Value(&a.transferVals.from),
			huh.NewSelect[string]().
				Title("To").
				Options(a.categoryOptions()...).
				Value(&a.transferVals.to),
			huh.NewInput().
				Title("Amount").
				Validate(validAmount).
				Value(&a.transferVals.amount),
		),
	).WithWidth(a.contentWidth()).WithShowHelp(false)
	return a, a.form.Init()
}

func (a App) openDepositForm() (tea.Model, tea.Cmd) {
	if !a.owed.IsPositive() {
		a.opErr = fmt.Errorf("nothing owed to the bank")
		return a, nil
	}
	// Suggest the full owed balance; anything above it is rejected.
	owed := a.owed
	a.depositVals = depositValues{amount: owed.StringFixed(2)}
	a.formKind = formDeposit
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Deposit (owed: %s)", owed.StringFixed(2))).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if !d.IsPositive() {
						return fmt.Errorf("must be positive")
					}
					if d.GreaterThan(owed) {
						return fmt.Errorf("only %s is owed", owed.StringFixed(2))
					}
					return nil
				}).
				Value(&a.depositVals.amount),
		),
	).WithWidth(a.contentWidth()).WithShowHelp(false)
	return a, a.form.Init()
}

func (a App) contentWidth() int {
	w := a.width
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < minTerminalWidth {
		w = minTerminalWidth
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width > 0 && a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.loadErr != nil {
		return fmt.Sprintf("\n  Failed to load: %v\n\n  [q]uit\n", a.loadErr)
	}
	if !a.loaded {
		return fmt.Sprintf("\n  %s Reading the ledger...\n", a.spinner.View())
	}
	if a.showHelp {
		return a.viewHelp()
	}
	if a.form != nil {
		return a.viewForm()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
	return style.Render(fmt.Sprintf("Terminal too narrow (%d cols, need %d).", a.width, minTerminalWidth))
}

func (a App) viewHelp() string {
	t := theme.Active
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	txt := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := []struct{ k, desc string }{
		{"e g l b k", "jump to a tab"},
		{"tab / shift+tab", "cycle tabs"},
		{"[ / ]", "previous / next month"},
		{"a", "add a booking"},
		{"t", "transfer between envelopes"},
		{"d", "deposit cash back to the bank"},
		{"r", "reload from disk"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render(fmt.Sprintf("%-16s", l.k)), txt.Render(l.desc)))
	}
	b.WriteString("\n  Press any key to close.\n")
	return components.ContentCard("Keys", b.String(), a.contentWidth()-4)
}

func (a App) viewForm() string {
	title := map[formKind]string{
		formAdd:      "Add booking",
		formTransfer: "Transfer",
		formDeposit:  "Back to bank",
	}[a.formKind]
	return components.ContentCard(title, a.form.View(), a.contentWidth()-4)
}

func (a App) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab, a.contentWidth()))
	b.WriteString("\n\n")

	switch a.activeTab {
	case 0:
		b.WriteString(a.viewEnvelopes())
	case 1:
		b.WriteString(a.viewGoals())
	case 2:
		b.WriteString(a.viewLoans())
	case 3:
		b.WriteString(a.viewBank())
	case 4:
		b.WriteString(a.viewBookings())
	}

	if a.opErr != nil {
		t := theme.Active
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString("\n ")
		b.WriteString(errStyle.Render(fmt.Sprintf("! %v", a.opErr)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(a.contentWidth(), a.period.Label))
	return b.String()
}

func (a App) money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + a.cfg.General.Currency
}
