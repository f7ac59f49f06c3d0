package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-insights-api/cmd/portal/tui"
	"github.com/vfg2006/growth-insights-api/pkg/authform"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Cria uma conta nova",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		model := tui.NewFormModel("Criar conta", "Cadastrar", []tui.Field{
			{Label: "Nome", Optional: true},
			{Label: "E-mail"},
			{Label: "Senha", Secret: true},
			{Label: "Confirmar senha", Secret: true},
		}, func(ctx context.Context, values []string) error {
			return s.form.Register(ctx, authform.RegisterFields{
				Name:            values[0],
				Email:           values[1],
				Password:        values[2],
				ConfirmPassword: values[3],
			})
		})

		return s.run(cmd, model)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
