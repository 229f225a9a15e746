package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-logr/logr"

	"github.com/diogo/headline/internal/api"
	apierrors "github.com/diogo/headline/internal/errors"
	"github.com/diogo/headline/internal/models"
	"github.com/diogo/headline/internal/render"
)

// fetchResultMsg carries the outcome of a lifetime's single request
type fetchResultMsg struct {
	generation uint64
	message    models.Message
	err        error
}

// DisplayView requests a message when it mounts and shows it in a heading.
//
// Each mount starts a lifetime with its own context and generation number.
// Exactly one request is issued per lifetime; its result is applied only if
// it belongs to the current, still mounted lifetime. Failures are logged and
// never shown: the heading simply stays empty.
type DisplayView struct {
	fetcher   api.MessageFetcher
	log       logr.Logger
	parent    context.Context
	copyText  func(string) error
	endpoint  string
	cell      *MessageCell
	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	width     int
	notice    string
	lifecycle lifecycle
}

// lifecycle tracks the mount state of a view
type lifecycle struct {
	mounted    bool
	inFlight   bool
	generation uint64
	requests   int
	cancel     context.CancelFunc
}

// ViewOption configures a DisplayView
type ViewOption func(*DisplayView)

// WithLogger sets the diagnostic channel
func WithLogger(log logr.Logger) ViewOption {
	return func(v *DisplayView) {
		v.log = log
	}
}

// WithContext sets the parent context of every lifetime
func WithContext(ctx context.Context) ViewOption {
	return func(v *DisplayView) {
		v.parent = ctx
	}
}

// WithClipboard replaces the clipboard writer used by the copy binding
func WithClipboard(copyText func(string) error) ViewOption {
	return func(v *DisplayView) {
		v.copyText = copyText
	}
}

// WithEndpoint records the endpoint for diagnostics when the error itself
// does not carry one
func WithEndpoint(endpoint string) ViewOption {
	return func(v *DisplayView) {
		v.endpoint = endpoint
	}
}

// NewDisplayView creates an unmounted view that will fetch from fetcher
func NewDisplayView(fetcher api.MessageFetcher, opts ...ViewOption) *DisplayView {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	h := help.New()
	h.Styles.ShortKey = statusStyle
	h.Styles.ShortDesc = statusStyle
	h.Styles.ShortSeparator = separatorStyle

	v := &DisplayView{
		fetcher:  fetcher,
		log:      logr.Discard(),
		parent:   context.Background(),
		copyText: clipboard.WriteAll,
		cell:     &MessageCell{},
		keys:     defaultKeyMap(),
		help:     h,
		spinner:  s,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Init mounts the view and starts the spinner
func (v *DisplayView) Init() tea.Cmd {
	fetch := v.Mount()
	if fetch == nil {
		return nil
	}
	return tea.Batch(fetch, v.spinner.Tick)
}

// Mount starts a new lifetime and returns the command that performs its
// request. It returns nil if the view is already mounted.
func (v *DisplayView) Mount() tea.Cmd {
	if v.lifecycle.mounted {
		return nil
	}

	ctx, cancel := context.WithCancel(v.parent)
	v.lifecycle.generation++
	v.lifecycle.mounted = true
	v.lifecycle.inFlight = true
	v.lifecycle.requests++
	v.lifecycle.cancel = cancel
	v.cell.Reset()
	v.notice = ""

	v.log.V(1).Info("view mounted", "generation", v.lifecycle.generation)
	return v.fetch(ctx, v.lifecycle.generation)
}

// Unmount ends the current lifetime and cancels its request. A response that
// arrives afterwards is discarded.
func (v *DisplayView) Unmount() {
	if !v.lifecycle.mounted {
		return
	}
	v.lifecycle.mounted = false
	v.lifecycle.inFlight = false
	if v.lifecycle.cancel != nil {
		v.lifecycle.cancel()
		v.lifecycle.cancel = nil
	}
	v.log.V(1).Info("view unmounted", "generation", v.lifecycle.generation)
}

// Remount unmounts and mounts again, issuing one new request
func (v *DisplayView) Remount() tea.Cmd {
	v.Unmount()
	return v.Mount()
}

// fetch performs the request off the update loop and reports back as a message
func (v *DisplayView) fetch(ctx context.Context, generation uint64) tea.Cmd {
	fetcher := v.fetcher
	return func() tea.Msg {
		msg, err := fetcher.FetchMessage(ctx)
		return fetchResultMsg{generation: generation, message: msg, err: err}
	}
}

// Update handles messages and updates the view
func (v *DisplayView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchResultMsg:
		v.applyResult(msg)
		return v, nil

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width

	case spinner.TickMsg:
		if v.lifecycle.inFlight {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			v.Unmount()
			return v, tea.Quit

		case key.Matches(msg, v.keys.Reload):
			fetch := v.Remount()
			return v, tea.Batch(fetch, v.spinner.Tick)

		case key.Matches(msg, v.keys.Copy):
			v.copyMessage()
		}
	}

	return v, nil
}

// applyResult moves the view to Populated on success and logs failures.
// Results from an ended lifetime are dropped without touching state.
func (v *DisplayView) applyResult(msg fetchResultMsg) {
	if !v.lifecycle.mounted || msg.generation != v.lifecycle.generation {
		v.log.V(1).Info("discarding late response",
			"generation", msg.generation,
			"current", v.lifecycle.generation,
			"mounted", v.lifecycle.mounted)
		return
	}

	v.lifecycle.inFlight = false

	if msg.err != nil {
		v.logFailure(msg.err)
		return
	}

	v.cell.Set(msg.message)
}

// logFailure writes a failed request to the diagnostic channel
func (v *DisplayView) logFailure(err error) {
	endpoint := apierrors.GetEndpoint(err)
	if endpoint == "" {
		endpoint = v.endpoint
	}
	v.log.Error(err, "request failed",
		"endpoint", endpoint,
		"reason", apierrors.GetReason(err),
		"status", apierrors.GetHTTPStatus(err),
		"generation", v.lifecycle.generation)
}

// copyMessage copies the message to the clipboard. Failures only reach the log.
func (v *DisplayView) copyMessage() {
	if v.cell.State() != models.StatePopulated {
		return
	}
	if err := v.copyText(v.cell.Get().Text); err != nil {
		v.log.Error(err, "clipboard copy failed")
		return
	}
	v.notice = "copied to clipboard"
}

// View renders the heading followed by the status line. The heading text is
// normalized the same way as in print mode.
func (v *DisplayView) View() string {
	heading := render.HeadingText(v.Heading())
	if v.width > 4 {
		heading = ansi.Truncate(heading, v.width-4, "…")
	}

	return frameStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		headingStyle.Render(heading),
		"",
		v.renderStatus(),
	))
}

// renderStatus renders the spinner, notices and key help
func (v *DisplayView) renderStatus() string {
	var status string
	switch {
	case v.lifecycle.inFlight:
		status = v.spinner.View() + " " + statusStyle.Render("waiting for response")
	case v.notice != "":
		status = noticeStyle.Render(v.notice)
	}

	helpView := v.help.View(v.keys)
	if status == "" {
		return helpView
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, helpView)
}

// Heading returns the plain heading text: the message, or "" before a
// successful response.
func (v *DisplayView) Heading() string {
	return v.cell.Get().Text
}

// Message returns the current message
func (v *DisplayView) Message() models.Message {
	return v.cell.Get()
}

// State returns the view's state for the current lifetime
func (v *DisplayView) State() models.State {
	return v.cell.State()
}

// Mounted reports whether the view is mounted
func (v *DisplayView) Mounted() bool {
	return v.lifecycle.mounted
}

// InFlight reports whether the current lifetime's request is pending
func (v *DisplayView) InFlight() bool {
	return v.lifecycle.inFlight
}

// Requests returns how many requests the view has issued across all lifetimes
func (v *DisplayView) Requests() int {
	return v.lifecycle.requests
}

// Renders returns how many times a write changed the heading
func (v *DisplayView) Renders() uint64 {
	return v.cell.Version()
}
