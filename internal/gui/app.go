package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"go.uber.org/zap"

	"codeberg.org/snonux/wordly/internal"
	"codeberg.org/snonux/wordly/internal/completion"
	"codeberg.org/snonux/wordly/internal/config"
	"codeberg.org/snonux/wordly/internal/logging"
	"codeberg.org/snonux/wordly/internal/progress"
	"codeberg.org/snonux/wordly/internal/ui"
	"codeberg.org/snonux/wordly/internal/vocab"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	sidebar     *widget.RadioGroup
	controls    *fyne.Container
	pageBox     *fyne.Container
	statusLabel *widget.Label
	logViewer   *LogViewer

	wordInput     *CustomEntry
	submitButton  *ttwidget.Button
	refreshButton *ttwidget.Button
	learnedEntry  *NumberEntry
	totalEntry    *NumberEntry
	saveButton    *ttwidget.Button

	// State management, only touched on the fyne goroutine
	state   ui.State
	syncing bool

	services ui.Services
	config   *Config
	logger   *zap.Logger

	// Background rendering
	ctx     context.Context
	cancel  context.CancelFunc
	renders renderRunner
}

// Config holds GUI application configuration
type Config struct {
	Settings *config.Config
	Logger   *zap.Logger
}

// New creates a new GUI application
func New(cfg *Config) (*Application, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Settings == nil {
		cfg.Settings = config.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &Application{
		app:    app.NewWithID("org.codeberg.snonux.wordly"),
		config: cfg,
		state:  ui.NewState(cfg.Settings.CredentialError()),
		ctx:    ctx,
		cancel: cancel,
	}

	// The log panel needs the app, so the completion client is built after it
	a.logViewer = NewLogViewer()
	base := cfg.Logger
	if base == nil {
		base = zap.NewNop()
	}
	a.logger = logging.Tee(base, a.logViewer, cfg.Settings.Verbose)

	client, err := completion.NewClient(cfg.Settings, a.logger)
	if err != nil {
		cancel()
		return nil, err
	}
	a.services = ui.Services{
		Generator: vocab.NewGenerator(client),
		Provider:  client.DisplayName(),
	}

	a.setupUI()
	return a, nil
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Wordly v%s - Vocabulary Builder", internal.Version))
	a.window.Resize(fyne.NewSize(900, 700))

	a.wordInput = NewCustomEntry()
	a.wordInput.OnSubmitted = func(string) {
		a.onSubmit()
		a.window.Canvas().Unfocus()
	}
	a.wordInput.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	a.submitButton = ttwidget.NewButtonWithIcon("", theme.SearchIcon(), a.onSubmit)
	a.submitButton.Importance = widget.HighImportance
	a.refreshButton = ttwidget.NewButtonWithIcon("New Word", theme.ViewRefreshIcon(), a.onRefresh)
	a.saveButton = ttwidget.NewButtonWithIcon("Save Progress", theme.DocumentSaveIcon(), a.onSave)

	a.learnedEntry = NewNumberEntry(0, 0)
	a.totalEntry = NewNumberEntry(1, progress.DefaultTotal)
	for _, entry := range []*NumberEntry{a.learnedEntry, a.totalEntry} {
		entry := entry
		entry.OnChanged = func(string) { a.onProgressChanged() }
		entry.SetOnEscape(func() { a.window.Canvas().Unfocus() })
	}

	a.sidebar = widget.NewRadioGroup(ui.Labels(), a.onNavigate)
	a.sidebar.Required = true

	sidebar := container.NewVBox(
		widget.NewLabelWithStyle("Menu", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Navigate"),
		a.sidebar,
	)

	a.controls = container.NewStack()
	a.pageBox = container.NewVBox()

	main := container.NewBorder(
		container.NewVBox(a.controls, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(a.pageBox),
	)

	split := container.NewHSplit(sidebar, main)
	split.SetOffset(0.22)

	a.statusLabel = widget.NewLabel("Ready")
	a.statusLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewBorder(
		nil,
		container.NewVBox(widget.NewSeparator(), a.statusLabel, a.logViewer),
		nil, nil,
		split,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()

	a.window.SetOnClosed(func() {
		a.cancel()
		a.renders.stop()
		a.logViewer.StopCapture()
		logging.Sync(a.logger)
	})

	a.setupKeyboardShortcuts()

	if a.config.Settings.Degraded() {
		a.logger.Warn("No API key configured, requests will fail")
	}
}

// Run starts the GUI application on the word of the day view
func (a *Application) Run() {
	a.logViewer.StartCapture()
	a.sidebar.SetSelected(ui.WordOfDay.String())
	a.window.ShowAndRun()
}

func (a *Application) setupTooltips() {
	a.submitButton.SetToolTip("Fetch (g)")
	a.refreshButton.SetToolTip("Another word of the day (r)")
	a.saveButton.SetToolTip("Save progress (s)")
}

// onNavigate switches views and drops the previous view's input
func (a *Application) onNavigate(label string) {
	view, err := ui.ParseView(label)
	if err != nil {
		a.logger.Warn("Unknown view selected", zap.String("label", label))
		return
	}

	a.state = a.state.Navigate(view)

	a.syncing = true
	a.wordInput.SetText("")
	a.learnedEntry.SetText("0")
	a.totalEntry.SetText(fmt.Sprint(progress.DefaultTotal))
	a.syncing = false

	a.controls.Objects = []fyne.CanvasObject{a.controlsFor(view)}
	a.controls.Refresh()

	a.render(a.state)
}

func (a *Application) controlsFor(view ui.View) fyne.CanvasObject {
	switch view {
	case ui.WordDetails:
		a.wordInput.SetPlaceHolder("Type a word to fetch details...")
		a.submitButton.SetText("Fetch Details")
		return container.NewBorder(widget.NewLabel("Enter a word"), nil, nil, a.submitButton, a.wordInput)
	case ui.Quiz:
		a.wordInput.SetPlaceHolder("Type a word...")
		a.submitButton.SetText("Generate Quiz")
		return container.NewBorder(widget.NewLabel("Enter a word for the quiz"), nil, nil, a.submitButton, a.wordInput)
	case ui.ProgressTracker:
		return container.NewVBox(
			widget.NewForm(
				widget.NewFormItem("Words Learned", a.learnedEntry),
				widget.NewFormItem("Total Words", a.totalEntry),
			),
			container.NewHBox(a.saveButton),
		)
	default:
		return container.NewHBox(a.refreshButton)
	}
}

func (a *Application) onSubmit() {
	if a.state.View != ui.WordDetails && a.state.View != ui.Quiz {
		return
	}
	a.state = a.state.WithInput(a.wordInput.Text)
	a.render(a.state.Submit())
}

func (a *Application) onRefresh() {
	if a.state.View == ui.WordOfDay {
		a.render(a.state)
	}
}

func (a *Application) onSave() {
	if a.state.View == ui.ProgressTracker {
		a.render(a.state.Save())
	}
}

func (a *Application) onProgressChanged() {
	if a.syncing || a.state.View != ui.ProgressTracker {
		return
	}
	a.state = a.state.WithProgress(a.learnedEntry.Value(), a.totalEntry.Value())
	a.render(a.state)
}

// render runs ui.Render off the fyne goroutine. A new render cancels the one
// in flight, and only the newest result is shown.
func (a *Application) render(state ui.State) {
	a.setBusy(true)

	a.renders.start(a.ctx, func(ctx context.Context, seq int) {
		page := ui.Render(ctx, state, a.services)

		fyne.Do(func() {
			if !a.renders.current(seq) {
				return
			}
			a.showPage(page)
			a.setBusy(false)
		})
	})
}

func (a *Application) showPage(page ui.Page) {
	a.pageBox.Objects = pageObjects(page)
	a.pageBox.Refresh()
}

func (a *Application) setBusy(busy bool) {
	buttons := []*ttwidget.Button{a.submitButton, a.refreshButton, a.saveButton}
	for _, b := range buttons {
		if busy {
			b.Disable()
		} else {
			b.Enable()
		}
	}

	if busy {
		a.statusLabel.SetText(fmt.Sprintf("Working (%s)...", a.services.Provider))
	} else {
		a.statusLabel.SetText("Ready")
	}
}

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		// Let entries receive their characters
		switch a.window.Canvas().Focused() {
		case a.wordInput, a.learnedEntry, a.totalEntry:
			return
		}

		switch r {
		case '1', '2', '3', '4':
			views := ui.Views()
			a.sidebar.SetSelected(views[r-'1'].String())
		case 'w', 'W':
			if a.state.View == ui.WordDetails || a.state.View == ui.Quiz {
				a.window.Canvas().Focus(a.wordInput)
			}
		case 'g', 'G':
			if !a.submitButton.Disabled() {
				a.onSubmit()
			}
		case 'r', 'R':
			if !a.refreshButton.Disabled() {
				a.onRefresh()
			}
		case 's', 'S':
			if !a.saveButton.Disabled() {
				a.onSave()
			}
		}
	})
}
