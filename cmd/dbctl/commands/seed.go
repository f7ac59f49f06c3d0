package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-insights-api/infrastructure/migration/seed"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carrega o catálogo padrão de canais e benchmarks",
	Long: `Grava os canais padrão (pelo nome, atualizando os existentes) e os
benchmarks de setores que ainda não têm nenhum. Pode ser executado várias vezes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		conn, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		result, err := seed.Run(ctx,
			repository.NewChannelRepository(conn),
			repository.NewBenchmarkRepository(conn),
		)
		if err != nil {
			return fmt.Errorf("erro ao carregar catálogo: %w", err)
		}

		cmd.Printf("Canais gravados: %d\n", result.Channels)
		cmd.Printf("Benchmarks criados: %d (já existentes: %d)\n", result.BenchmarksCreated, result.BenchmarksSkipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
