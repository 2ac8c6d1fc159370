package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytlim/estatepath/internal/agent"
	"github.com/ytlim/estatepath/internal/cli/formatter"
)

// chatReplyMsg carries the assistant's answer back to the view.
type chatReplyMsg struct {
	reply agent.Reply
}

// chatView is the estate assistant conversation screen.
type chatView struct {
	state *SharedState
	input textinput.Model

	messages []string
	waiting  bool
}

func newChatView(s *SharedState) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	v := &chatView{state: s, input: ti}
	v.messages = append(v.messages,
		formatter.Dim("Ask anything about estate administration in Singapore.")+"\n"+
			formatter.Dim("General information only, not legal advice."))
	return v
}

func (v *chatView) ID() ViewID    { return ViewChat }
func (v *chatView) Title() string { return "Assistant" }

func (v *chatView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) askCmd(question string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return chatReplyMsg{reply: app.Chat.Query(context.Background(), question)}
	}
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		v.waiting = false
		text := formatter.StyleFg.Render(msg.reply.Response)
		if msg.reply.UsedSearch {
			text += "\n" + formatter.Dim("(searched the web for: "+msg.reply.Query+")")
		}
		v.messages = append(v.messages, text)
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, popView()
		}
		if msg.Type == tea.KeyEnter && !v.waiting {
			question := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if question == "" {
				return v, nil
			}
			v.messages = append(v.messages, formatter.Dim("You: ")+question)
			v.waiting = true
			return v, v.askCmd(question)
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	for _, msg := range v.messages {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	if v.waiting {
		b.WriteString(formatter.Dim("Thinking...") + "\n\n")
	}

	prompt := formatter.StylePurple.Render("ask") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(v.input.View())

	return b.String()
}
