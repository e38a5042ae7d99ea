// Package progress shows a spinner while a long external command runs.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// messageUpdate is sent to update the spinner message
type messageUpdate string

// Spinner wraps a Bubbletea spinner for non-interactive use.
type Spinner struct {
	out       io.Writer
	program   *tea.Program
	msgChan   chan string
	done      chan struct{}
	mu        sync.Mutex
	isRunning bool
	lastMsg   string
	started   time.Time
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	started time.Time
	msgChan chan string
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForMessage())
}

func (m spinnerModel) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.msgChan
		if !ok {
			return tea.Quit()
		}
		return messageUpdate(msg)
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messageUpdate:
		m.message = string(msg)
		return m, m.waitForMessage()
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() tea.View {
	if m.message == "" {
		return tea.NewView("")
	}
	elapsed := time.Since(m.started).Truncate(time.Second)
	return tea.NewView(fmt.Sprintf("%s %s (%s)", m.spinner.View(), m.message, elapsed))
}

// NewSpinner creates a spinner that renders to out once started.
func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:     out,
		msgChan: make(chan string, 10),
		done:    make(chan struct{}),
		lastMsg: message,
	}
}

// Start begins the spinner animation
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	s.started = time.Now()

	model := spinnerModel{
		spinner: sp,
		message: s.lastMsg,
		started: s.started,
		msgChan: s.msgChan,
	}

	// No input: the hook runs unattended and must not steal keystrokes from bitbake.
	s.program = tea.NewProgram(model,
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(s.out),
	)
	s.isRunning = true

	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

// UpdateMessage changes the spinner message
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		s.lastMsg = message
		return
	}

	// Drops the update if the channel is full; the next one will catch up.
	select {
	case s.msgChan <- message:
	default:
	}
}

// Stop stops the spinner, clears the line and returns how long it ran.
func (s *Spinner) Stop() time.Duration {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return 0
	}
	s.isRunning = false
	close(s.msgChan)
	s.mu.Unlock()

	if s.program != nil {
		s.program.Quit()
	}

	select {
	case <-s.done:
	case <-time.After(500 * time.Millisecond):
	}

	fmt.Fprint(s.out, "\r\033[K")
	return time.Since(s.started)
}
