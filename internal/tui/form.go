package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/service"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/utils"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

const (
	inputTweet = iota
	inputUsername
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var traceIDs = utils.NewUUIDGenerator()

// FormModel is the tweet form: a tweet text input, a username input and the
// status region. Enter submits the current values through the
// ClientTweetService, which reports the outcome to the status region.
type FormModel struct {
	ctx       context.Context
	submitter service.ClientTweetService
	status    *StatusRegion
	buildInfo models.AppBuildInfo

	inputs []textinput.Model
	focus  int

	// pending counts submissions still in flight. Enter is not blocked
	// while one runs.
	pending    int
	lastPosted string
	notice     string
	showInfo   bool
}

func NewFormModel(ctx context.Context, submitter service.ClientTweetService, status *StatusRegion, buildInfo models.AppBuildInfo) *FormModel {
	tweetInput := textinput.New()
	tweetInput.Placeholder = "What's happening?"
	tweetInput.Width = 60
	tweetInput.Focus()

	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.Width = 30

	return &FormModel{
		ctx:       ctx,
		submitter: submitter,
		status:    status,
		buildInfo: buildInfo,
		inputs:    []textinput.Model{tweetInput, usernameInput},
	}
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		m.pending--
		if msg.err == nil {
			m.lastPosted = msg.input.TweetText
			m.notice = "Tweet posted."
		} else {
			m.notice = ""
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = "Copy failed: " + msg.err.Error()
		} else {
			m.notice = "Last tweet copied to clipboard."
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			m.showInfo = !m.showInfo
			return m, nil
		}

		if m.showInfo {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy()
		case key.Matches(msg, keys.submit):
			m.pending++
			m.notice = ""
			return m, m.cmdSubmit(m.input())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder

	b.WriteString(labelStyle.Render("Tweet"))
	b.WriteString(m.inputs[inputTweet].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(""))
	b.WriteString(renderCounter(m.inputs[inputTweet].Value()))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Username"))
	b.WriteString(m.inputs[inputUsername].View())
	b.WriteString("\n")

	if m.pending > 0 {
		b.WriteString("\n[Posting...]\n")
	} else {
		b.WriteString("\n[Post]\n")
	}

	if statusView := m.status.View(); statusView != "" {
		b.WriteString("\n")
		b.WriteString(statusView)
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.notice)
		b.WriteString("\n")
	}

	return renderPage("POST A TWEET", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: post │ ctrl+y: copy last tweet │ ctrl+b: about")
}

func (m *FormModel) input() models.SubmissionInput {
	return models.SubmissionInput{
		TweetText: m.inputs[inputTweet].Value(),
		Username:  m.inputs[inputUsername].Value(),
	}
}

// cmdSubmit runs one submission under its own trace id, which the adapter
// forwards to the server.
func (m *FormModel) cmdSubmit(input models.SubmissionInput) tea.Cmd {
	ctx := utils.WithTraceID(m.ctx, traceIDs.Generate())
	submitter := m.submitter

	return func() tea.Msg {
		err := submitter.Submit(ctx, input)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Msg("submission failed")
		}
		return submittedMsg{input: input, err: err}
	}
}

func (m *FormModel) cmdCopy() tea.Cmd {
	if m.lastPosted == "" {
		m.notice = "Nothing posted yet."
		return nil
	}

	text := m.lastPosted
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *FormModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func renderCounter(text string) string {
	count := models.TweetLength(text)
	counter := fmt.Sprintf("%d/%d", count, models.MaxTweetLength)
	if count > models.MaxTweetLength {
		return overLimitStyle.Render(counter)
	}
	return counterStyle.Render(counter)
}
