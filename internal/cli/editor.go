package cli

import (
	"bytes"
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperr "github.com/matzehuels/boxshuffle/pkg/errors"
	"github.com/matzehuels/boxshuffle/pkg/imageio"
	"github.com/matzehuels/boxshuffle/pkg/interact"
	"github.com/matzehuels/boxshuffle/pkg/layout"
	"github.com/matzehuels/boxshuffle/pkg/pipeline"
	"github.com/matzehuels/boxshuffle/pkg/render"
	"github.com/matzehuels/boxshuffle/pkg/render/sink"
	"github.com/matzehuels/boxshuffle/pkg/session"
)

// chromeRows is the number of terminal rows below the canvas.
const chromeRows = 2

// Editor styles
var (
	editorBarStyle  = lipgloss.NewStyle().Foreground(colorGray)
	editorKeyStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	editorOKStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	editorWarnStyle = lipgloss.NewStyle().Foreground(colorYellow)
	editorErrStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// exportDoneMsg reports the outcome of an asynchronous export.
type exportDoneMsg struct {
	target string
	bytes  int
	err    error
}

// =============================================================================
// editorModel - Interactive rectangle editor
// =============================================================================

// editorModel is the bubbletea model for the edit command. Mouse events drive
// the session's pointer state machine; keys drive layout operations.
type editorModel struct {
	ctx    context.Context
	sess   *session.Session
	src    imageio.Source
	style  render.Style
	output string    // target of the write key; empty disables it
	clip   sink.Sink // target of the copy key

	canvas canvas
	width  int
	height int

	cursor    interact.Cursor
	status    string
	statusErr error
	busy      bool
}

// newEditorModel creates an editor for sess, which must already hold src.
func newEditorModel(ctx context.Context, sess *session.Session, src imageio.Source, style render.Style, output string) editorModel {
	return editorModel{
		ctx:    ctx,
		sess:   sess,
		src:    src,
		style:  style,
		output: output,
		clip:   newClipboard(),
		status: "drag to move · drag a corner to resize",
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.canvas = newCanvas(m.sess.Image(), m.sess.Display(), m.width, m.height-chromeRows)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case exportDoneMsg:
		m.busy = false
		m.statusErr = msg.err
		if msg.err != nil {
			m.status = apperr.UserMessage(msg.err)
		} else {
			m.status = fmt.Sprintf("exported %d bytes to %s", msg.bytes, msg.target)
		}
		return m, nil
	}
	return m, nil
}

func (m *editorModel) handleMouse(msg tea.MouseMsg) {
	p, ok := m.canvas.toDisplay(msg.X, msg.Y)
	if !ok {
		m.sess.PointerLeave()
		m.cursor = interact.CursorDefault
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.sess.PointerDown(p)
			m.cursor = m.sess.Cursor(p)
		}
	case tea.MouseActionMotion:
		m.cursor = m.sess.PointerMove(p).Cursor
	case tea.MouseActionRelease:
		m.sess.PointerUp()
		m.cursor = m.sess.Cursor(p)
	}
}

func (m editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.sess.Bounds()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s":
		m.sess.Shuffle()
		m.setStatus("shuffled")
	case "+", "=":
		m.sess.SetCount(m.sess.Count() + 1)
		m.setStatus("count %d", m.sess.Count())
	case "-", "_":
		m.sess.SetCount(m.sess.Count() - 1)
		m.setStatus("count %d", m.sess.Count())
	case "[":
		m.setBounds(layout.Bounds{MinHeight: max(1, b.MinHeight-boundsStep), MaxHeight: b.MaxHeight})
	case "]":
		m.setBounds(layout.Bounds{MinHeight: b.MinHeight + boundsStep, MaxHeight: b.MaxHeight})
	case "{":
		m.setBounds(layout.Bounds{MinHeight: b.MinHeight, MaxHeight: max(1, b.MaxHeight-boundsStep)})
	case "}":
		m.setBounds(layout.Bounds{MinHeight: b.MinHeight, MaxHeight: b.MaxHeight + boundsStep})
	case "c":
		return m.export(m.clip, pipeline.FormatPNG)
	case "w":
		if m.output == "" {
			m.setStatus("no output file; start with -o to enable writing")
			return m, nil
		}
		return m.export(sink.ForPath(m.output), formatFromPath(m.output))
	}
	return m, nil
}

func (m *editorModel) setBounds(b layout.Bounds) {
	m.sess.SetBounds(b)
	if b.Inverted() {
		m.statusErr = apperr.New(apperr.ErrCodeInvalidInput, "min %d > max %d: every rectangle uses min", b.MinHeight, b.MaxHeight)
		m.status = apperr.UserMessage(m.statusErr)
		return
	}
	m.setStatus("height %s", b)
}

func (m *editorModel) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = nil
}

// export renders the composite now and encodes and delivers it in the
// background.
func (m editorModel) export(s sink.Sink, format string) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	frame, err := m.sess.Frame()
	if err != nil {
		m.statusErr = err
		m.status = apperr.UserMessage(err)
		return m, nil
	}

	var deliver func() (int, error)
	ctx := m.ctx
	if pipeline.IsRaster(format) {
		img := render.Composite(frame.Image, frame.Rects, m.style.Scaled(frame.Mapper.ScaleX()))
		deliver = func() (int, error) {
			return sink.Export(ctx, s, img, sink.Format(format))
		}
	} else {
		data, err := encodeDocument(m.src, m.sess, format)
		if err != nil {
			m.statusErr = err
			m.status = apperr.UserMessage(err)
			return m, nil
		}
		deliver = func() (int, error) {
			return sink.Deliver(ctx, s, data, sink.Format(format))
		}
	}

	m.busy = true
	m.setStatus("exporting to %s...", s.Name())
	return m, func() tea.Msg {
		n, err := deliver()
		return exportDoneMsg{target: s.Name(), bytes: n, err: err}
	}
}

func encodeDocument(src imageio.Source, sess *session.Session, format string) ([]byte, error) {
	f, err := imageio.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	doc := imageio.NewDocument(src, sess.Mapper(), sess.Rects())
	if err := imageio.Write(doc, f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m editorModel) View() string {
	if m.canvas.empty() {
		return "loading...\n"
	}

	active, _ := m.activeIndex()
	view := m.canvas.render(m.sess.Rects(), m.style, active)

	b := m.sess.Bounds()
	info := fmt.Sprintf("%s · %d rects · height %s · %s",
		size(m.sess.Source().Width, m.sess.Source().Height), m.sess.Count(), b, m.cursor)

	statusStyle := editorOKStyle
	if m.statusErr != nil {
		statusStyle = editorErrStyle
		if apperr.Recoverable(m.statusErr) || apperr.Is(m.statusErr, apperr.ErrCodeInvalidInput) {
			statusStyle = editorWarnStyle
		}
	}

	keys := editorKeyStyle.Render("s") + " shuffle  " +
		editorKeyStyle.Render("+/-") + " count  " +
		editorKeyStyle.Render("[ ]") + " min  " +
		editorKeyStyle.Render("{ }") + " max  " +
		editorKeyStyle.Render("c") + " copy  "
	if m.output != "" {
		keys += editorKeyStyle.Render("w") + " write  "
	}
	keys += editorKeyStyle.Render("q") + " quit"

	return view + "\n" +
		editorBarStyle.Render(info) + "  " + statusStyle.Render(m.status) + "\n" +
		editorBarStyle.Render(keys)
}

// activeIndex returns the rectangle under manipulation.
func (m editorModel) activeIndex() (int, bool) {
	switch st := m.sess.State().(type) {
	case interact.Dragging:
		return st.Index, true
	case interact.Resizing:
		return st.Index, true
	}
	return -1, false
}
