package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field descreve um campo do formulário
type Field struct {
	Label    string
	Secret   bool
	Optional bool
}

// SubmitFunc recebe os valores na ordem dos campos
type SubmitFunc func(ctx context.Context, values []string) error

// MessageMsg troca o erro exibido; string vazia limpa a caixa
type MessageMsg string

type submittedMsg struct {
	err error
}

// FormModel é o modelo Bubbletea dos formulários de login e cadastro
type FormModel struct {
	title      string
	submitText string
	fields     []Field
	inputs     []textinput.Model
	focus      int
	submit     SubmitFunc
	submitting bool
	message    string
	done       bool
	canceled   bool
}

func NewFormModel(title, submitText string, fields []Field, submit SubmitFunc) FormModel {
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.Label
		input.CharLimit = 256
		input.Width = 40
		if field.Secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		inputs[i] = input
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return FormModel{
		title:      title,
		submitText: submitText,
		fields:     fields,
		inputs:     inputs,
		submit:     submit,
	}
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Done informa se o envio terminou com sucesso
func (m FormModel) Done() bool {
	return m.done
}

// Canceled informa se o usuário saiu sem enviar
func (m FormModel) Canceled() bool {
	return m.canceled
}

func (m FormModel) Message() string {
	return m.message
}

func (m FormModel) Values() []string {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = input.Value()
	}
	return values
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MessageMsg:
		m.message = string(msg)
		return m, nil

	case submittedMsg:
		m.submitting = false
		if msg.err == nil {
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "enter":
			// enter no botão envia; nos campos avança
			if m.focus < len(m.inputs) {
				return m, m.moveFocus(1)
			}
			return m, m.startSubmit()
		}
	}

	return m, m.updateInputs(msg)
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	// a última posição é o botão de envio
	positions := len(m.inputs) + 1
	m.focus = (m.focus + delta + positions) % positions

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focus {
			cmds[i] = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}

	return tea.Batch(cmds...)
}

func (m *FormModel) startSubmit() tea.Cmd {
	if m.submitting || m.submit == nil {
		return nil
	}

	for i, field := range m.fields {
		if !field.Optional && strings.TrimSpace(m.inputs[i].Value()) == "" {
			m.message = "Preencha o campo " + field.Label
			return nil
		}
	}

	m.submitting = true
	submit := m.submit
	values := m.Values()

	return func() tea.Msg {
		return submittedMsg{err: submit(context.Background(), values)}
	}
}

func (m *FormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	for i, field := range m.fields {
		label := labelStyle.Render(field.Label)
		if i == m.focus {
			label = focusedLabelStyle.Render(field.Label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	button := buttonStyle.Render(m.submitText)
	if m.focus == len(m.inputs) {
		button = activeButtonStyle.Render(m.submitText)
	}
	if m.submitting {
		button = buttonStyle.Render("Enviando...")
	}
	b.WriteString(button)

	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(errorBoxStyle.Render(m.message))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(FormatKey("tab/↓", "próximo") + " • " + FormatKey("enter", "confirmar") + " • " + FormatKey("esc", "sair")))

	return boxStyle.Render(b.String())
}
