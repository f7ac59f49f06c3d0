package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m tea.Model, key tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: key})
}

func TestFormModel(t *testing.T) {
	fields := []Field{{Label: "E-mail"}, {Label: "Senha", Secret: true}}

	t.Run("envia valores na ordem dos campos", func(t *testing.T) {
		var received []string
		var m tea.Model = NewFormModel("Entrar", "Entrar", fields, func(ctx context.Context, values []string) error {
			received = values
			return nil
		})

		m = typeText(m, "ana@exemplo.com")
		m, _ = press(m, tea.KeyEnter)
		m = typeText(m, "segredo")
		m, _ = press(m, tea.KeyEnter)
		m, cmd := press(m, tea.KeyEnter)
		require.NotNil(t, cmd)

		m, _ = m.Update(cmd())

		assert.Equal(t, []string{"ana@exemplo.com", "segredo"}, received)
		assert.True(t, m.(FormModel).Done())
	})

	t.Run("campo obrigatório vazio não envia", func(t *testing.T) {
		called := false
		var m tea.Model = NewFormModel("Entrar", "Entrar", fields, func(ctx context.Context, values []string) error {
			called = true
			return nil
		})

		m, _ = press(m, tea.KeyTab)
		m, _ = press(m, tea.KeyTab)
		m, cmd := press(m, tea.KeyEnter)

		assert.Nil(t, cmd)
		assert.False(t, called)
		assert.Equal(t, "Preencha o campo E-mail", m.(FormModel).Message())
	})

	t.Run("erro mantém o formulário aberto", func(t *testing.T) {
		var m tea.Model = NewFormModel("Entrar", "Entrar", fields, func(ctx context.Context, values []string) error {
			return errors.New("falhou")
		})

		m = typeText(m, "a")
		m, _ = press(m, tea.KeyTab)
		m = typeText(m, "b")
		m, _ = press(m, tea.KeyTab)
		m, cmd := press(m, tea.KeyEnter)
		require.NotNil(t, cmd)
		m, _ = m.Update(cmd())
		m, _ = m.Update(MessageMsg("Credenciais inválidas"))

		model := m.(FormModel)
		assert.False(t, model.Done())
		assert.Contains(t, model.View(), "Credenciais inválidas")

		m, _ = m.Update(MessageMsg(""))
		assert.NotContains(t, m.View(), "Credenciais inválidas")
	})

	t.Run("esc cancela", func(t *testing.T) {
		var m tea.Model = NewFormModel("Entrar", "Entrar", fields, nil)

		m, cmd := press(m, tea.KeyEsc)

		assert.NotNil(t, cmd)
		assert.True(t, m.(FormModel).Canceled())
	})
}
