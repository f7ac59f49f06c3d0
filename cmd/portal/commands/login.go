package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-insights-api/cmd/portal/tui"
	"github.com/vfg2006/growth-insights-api/pkg/authform"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Entra com e-mail e senha",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		model := tui.NewFormModel("Entrar", "Entrar", []tui.Field{
			{Label: "E-mail"},
			{Label: "Senha", Secret: true},
		}, func(ctx context.Context, values []string) error {
			return s.form.Login(ctx, authform.LoginFields{
				Email:    values[0],
				Password: values[1],
			})
		})

		return s.run(cmd, model)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
