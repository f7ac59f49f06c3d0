package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
)

var resetAll bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Executa as migrações do banco",
	Long: `Executa as migrações SQL embutidas no binário.

Subcomandos:
  up      - aplica as migrações pendentes
  down    - desfaz a última migração (ou todas com --all)
  status  - mostra o estado de cada migração`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica as migrações pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		conn, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := postgres.RunMigrations(ctx, conn.DB); err != nil {
			return fmt.Errorf("erro ao aplicar migrações: %w", err)
		}

		return printVersion(cmd, conn)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Desfaz migrações",
	Example: `  dbctl migrate down         # desfaz a última migração
  dbctl migrate down --all   # desfaz todas`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		conn, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if resetAll {
			err = postgres.ResetMigrations(ctx, conn.DB)
		} else {
			err = postgres.RollbackMigration(ctx, conn.DB)
		}
		if err != nil {
			return fmt.Errorf("erro ao desfazer migrações: %w", err)
		}

		return printVersion(cmd, conn)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Mostra o estado das migrações",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		conn, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := postgres.MigrationStatus(ctx, conn.DB); err != nil {
			return fmt.Errorf("erro ao consultar migrações: %w", err)
		}

		return printVersion(cmd, conn)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)

	migrateDownCmd.Flags().BoolVar(&resetAll, "all", false, "Desfaz todas as migrações")
}

func printVersion(cmd *cobra.Command, conn *postgres.Connection) error {
	version, err := postgres.MigrationVersion(cmd.Context(), conn.DB)
	if err != nil {
		return fmt.Errorf("erro ao consultar versão do banco: %w", err)
	}

	cmd.Printf("Versão atual do banco: %d\n", version)
	return nil
}
