package commands

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-insights-api/cmd/portal/tui"
	"github.com/vfg2006/growth-insights-api/internal/config"
	"github.com/vfg2006/growth-insights-api/pkg/authform"
	"github.com/vfg2006/growth-insights-api/pkg/log"
)

var errCanceled = errors.New("operação cancelada")

var (
	// Flags globais
	authURL   string
	tokenPath string
)

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Login e cadastro no growth-insights pelo terminal",
	Long: `portal envia login e cadastro ao servidor de autenticação e guarda o
token devolvido para uso pelas demais ferramentas.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// logs vão para stderr e atrapalhariam o formulário
		log.Setup("error", "development")
	},
}

// Execute roda o comando raiz
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCanceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&authURL, "auth-url", "", "URL base do servidor de autenticação (padrão: PORTAL_AUTH_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&tokenPath, "token-path", "", "Arquivo onde o token é salvo (padrão: PORTAL_TOKEN_PATH)")
}

// session junta o formulário com o destino escolhido após o envio
type session struct {
	form   *authform.Form
	store  *authform.FileTokenStore
	target string
}

func newSession() (*session, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	portal := cfg.Portal
	if authURL != "" {
		portal.AuthBaseURL = authURL
	}
	if tokenPath != "" {
		portal.TokenPath = tokenPath
	}

	s := &session{store: authform.NewFileTokenStore(portal.TokenPath)}
	s.form = authform.New(authform.Config{
		BaseURL:         portal.AuthBaseURL,
		RedirectURL:     portal.RedirectURL,
		RequestTimeout:  portal.RequestTimeout,
		ErrorDisplayFor: portal.ErrorDisplayFor,
	}, s.store, authform.NavigatorFunc(func(target string) error {
		s.target = target
		return nil
	}))

	return s, nil
}

// run abre o formulário e espera o envio ou a saída do usuário
func (s *session) run(cmd *cobra.Command, model tui.FormModel) error {
	program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	s.form.OnMessage = func(message string) {
		program.Send(tui.MessageMsg(message))
	}

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("erro ao executar formulário: %w", err)
	}

	result, ok := final.(tui.FormModel)
	if !ok || !result.Done() {
		return errCanceled
	}

	cmd.Printf("Token salvo em %s\n", s.store.Path())
	if exp, err := s.store.ExpiresAt(); err == nil && exp != nil {
		cmd.Printf("Válido até %s\n", exp.Local().Format("02/01/2006 15:04"))
	}
	cmd.Printf("Continue em %s\n", s.target)
	return nil
}
