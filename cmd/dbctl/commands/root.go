package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/config"
	"github.com/vfg2006/growth-insights-api/pkg/log"
)

var (
	// Flags globais
	dsn     string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dbctl",
	Short: "Ferramentas de banco do growth-insights",
	Long: `dbctl aplica as migrações embutidas na API e carrega o catálogo padrão.

A conexão usa as mesmas variáveis de ambiente da API (DATABASE_*),
ou a URL informada em --dsn.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if verbose {
			level = "debug"
		}
		log.Setup(level, "development")
	},
}

// Execute roda o comando raiz
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "URL de conexão com o PostgreSQL (padrão: variáveis DATABASE_*)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Logs detalhados")
}

// connect abre a conexão usando a configuração da API
func connect(ctx context.Context) (*postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	if dsn != "" {
		cfg.Database.DSN = dsn
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	logrus.Debug("Conexão com PostgreSQL estabelecida")
	return conn, nil
}
