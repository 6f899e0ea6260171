// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devfrx/fluxa/internal/agent"
	"github.com/devfrx/fluxa/internal/config"
	"github.com/devfrx/fluxa/models"
)

const deltaBuffer = 64

type chatModel struct {
	ctx            context.Context
	agent          *agent.Agent
	conversationID int64
	appName        string

	vp   viewport.Model
	ta   textarea.Model
	spin spinner.Model

	lines     []string
	streaming bool
	partial   string
	deltas    chan string
	lastReply string

	status     string
	errMsg     string
	width      int
	height     int
	ready      bool
	quitByUser bool
}

type deltaMsg struct {
	chunk string
}

type replyDoneMsg struct {
	reply models.Message
	err   error
}

func newChatModel(ctx context.Context, a *agent.Agent, conversationID int64, cfg *config.Config) chatModel {
	ta := textarea.New()
	ta.Placeholder = "Ask anything..."
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return chatModel{
		ctx:            ctx,
		agent:          a,
		conversationID: conversationID,
		appName:        cfg.App.Name,
		ta:             ta,
		spin:           sp,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - m.ta.Height() - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width-4, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width - 4
			m.vp.Height = vpHeight
		}
		m.ta.SetWidth(msg.Width - 4)
		m.refreshViewport()
		return m, nil

	case deltaMsg:
		m.partial += msg.chunk
		m.refreshViewport()
		return m, m.cmdAwaitDelta()

	case replyDoneMsg:
		m.streaming = false
		m.partial = ""
		m.deltas = nil
		if msg.err != nil {
			m.errMsg = chatErrorMessage(msg.err)
			m.refreshViewport()
			return m, nil
		}
		m.lastReply = msg.reply.Content
		m.lines = append(m.lines, m.renderReply(msg.reply.Content))
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.streaming {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "ctrl+y":
			if m.lastReply == "" {
				m.status = "Nothing to copy yet"
				return m, nil
			}
			if err := clipboard.WriteAll(m.lastReply); err != nil {
				m.errMsg = fmt.Sprintf("copy failed: %v", err)
				return m, nil
			}
			m.status = "Reply copied to clipboard"
			return m, nil
		case "enter":
			input := strings.TrimSpace(m.ta.Value())
			if input == "" || m.streaming {
				return m, nil
			}
			m.ta.Reset()
			m.status = ""
			m.errMsg = ""
			m.lines = append(m.lines, userLabelStyle.Render("You")+": "+input)
			m.streaming = true
			m.partial = ""
			m.deltas = make(chan string, deltaBuffer)
			m.refreshViewport()
			return m, tea.Batch(m.cmdRespond(input), m.cmdAwaitDelta(), m.spin.Tick)
		}
	}

	var taCmd, vpCmd tea.Cmd
	m.ta, taCmd = m.ta.Update(msg)
	if m.ready {
		m.vp, vpCmd = m.vp.Update(msg)
	}
	return m, tea.Batch(taCmd, vpCmd)
}

func (m chatModel) View() string {
	if !m.ready {
		return appStyle.Render("Starting...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.appName) + "\n\n")
	b.WriteString(m.vp.View() + "\n\n")
	if m.streaming {
		b.WriteString(m.spin.View() + " thinking...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(m.ta.View() + "\n")
	b.WriteString(helpStyle.Render("enter: send │ ctrl+y: copy last reply │ esc: quit"))

	return appStyle.Render(b.String())
}

// cmdRespond runs the whole round trip in one command; deltas are delivered
// through the channel consumed by cmdAwaitDelta. The send selects on ctx so
// the command cannot hang on a full channel after the UI stopped draining.
func (m chatModel) cmdRespond(input string) tea.Cmd {
	ctx := m.ctx
	a := m.agent
	conversationID := m.conversationID
	deltas := m.deltas

	return func() tea.Msg {
		reply, err := a.Respond(ctx, conversationID, input, func(delta string) {
			select {
			case deltas <- delta:
			case <-ctx.Done():
			}
		})
		close(deltas)
		return replyDoneMsg{reply: reply, err: err}
	}
}

func (m chatModel) cmdAwaitDelta() tea.Cmd {
	deltas := m.deltas
	if deltas == nil {
		return nil
	}
	return func() tea.Msg {
		chunk, ok := <-deltas
		if !ok {
			return nil
		}
		return deltaMsg{chunk: chunk}
	}
}

func (m *chatModel) refreshViewport() {
	if !m.ready {
		return
	}

	content := strings.Join(m.lines, "\n\n")
	if m.streaming && m.partial != "" {
		if content != "" {
			content += "\n\n"
		}
		content += m.renderReply(m.partial)
	}
	m.vp.SetContent(content)
	m.vp.GotoBottom()
}

func (m chatModel) renderReply(content string) string {
	return botLabelStyle.Render(m.appName) + ": " + content
}

func chatErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "context deadline exceeded") {
		return "cannot reach the model server. Is LMStudio running?"
	}
	return err.Error()
}
