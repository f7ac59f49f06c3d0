// Package seed carrega o catálogo padrão de canais e benchmarks
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

// Result conta o que foi gravado em uma execução
type Result struct {
	Channels          int `json:"channels"`
	BenchmarksCreated int `json:"benchmarks_created"`
	BenchmarksSkipped int `json:"benchmarks_skipped"`
}

func description(s string) *string {
	return &s
}

// DefaultChannels é o catálogo inicial. Os valores são médias de mercado.
func DefaultChannels() []*domain.Channel {
	return []*domain.Channel{
		{
			Name:              "Google Ads",
			Category:          domain.ChannelCategoryPaid,
			Description:       description("Anúncios de busca e display do Google"),
			AvgCPM:            3.12,
			AvgCPC:            2.69,
			AvgCTR:            0.0317,
			AvgConversionRate: 0.0375,
			IndustryModifiers: domain.JSONMap{"saas": 1.25, "ecommerce": 0.9, "finance": 1.6},
			DemographicModifiers: domain.JSONMap{
				"age_range": map[string]any{"min": 18, "max": 65},
				"language":  "pt-BR",
			},
		},
		{
			Name:              "Meta Ads",
			Category:          domain.ChannelCategoryPaid,
			Description:       description("Anúncios no Facebook e Instagram"),
			AvgCPM:            7.19,
			AvgCPC:            0.94,
			AvgCTR:            0.009,
			AvgConversionRate: 0.0921,
			IndustryModifiers: domain.JSONMap{"ecommerce": 1.1, "education": 0.85},
			DemographicModifiers: domain.JSONMap{
				"age_range": map[string]any{"min": 18, "max": 54},
				"interests": []any{"tecnologia", "compras"},
			},
		},
		{
			Name:              "LinkedIn Ads",
			Category:          domain.ChannelCategoryPaid,
			Description:       description("Anúncios B2B segmentados por cargo e empresa"),
			AvgCPM:            33.8,
			AvgCPC:            5.26,
			AvgCTR:            0.0044,
			AvgConversionRate: 0.065,
			IndustryModifiers: domain.JSONMap{"saas": 1.3, "finance": 1.2},
			DemographicModifiers: domain.JSONMap{
				"education": "bachelor",
				"income":    map[string]any{"min": 50000, "max": 250000},
			},
		},
		{
			Name:              "SEO",
			Category:          domain.ChannelCategoryOwned,
			Description:       description("Tráfego orgânico de mecanismos de busca"),
			AvgCTR:            0.0281,
			AvgConversionRate: 0.024,
			IndustryModifiers: domain.JSONMap{"saas": 1.1, "ecommerce": 1.05},
		},
		{
			Name:              "E-mail marketing",
			Category:          domain.ChannelCategoryOwned,
			Description:       description("Campanhas para a base própria de contatos"),
			AvgCTR:            0.0262,
			AvgConversionRate: 0.0308,
		},
		{
			Name:              "Assessoria de imprensa",
			Category:          domain.ChannelCategoryEarned,
			Description:       description("Menções espontâneas em veículos e blogs"),
			AvgConversionRate: 0.012,
			DemographicModifiers: domain.JSONMap{
				"location": map[string]any{"country": "BR"},
			},
		},
	}
}

// DefaultBenchmarks traz métricas de referência por setor
func DefaultBenchmarks() []*domain.Benchmark {
	return []*domain.Benchmark{
		{Industry: "saas", Metrics: domain.JSONMap{"avg_ctr": 0.0241, "avg_cpc": 3.8, "avg_conversion_rate": 0.031, "avg_cac": 205}},
		{Industry: "ecommerce", Metrics: domain.JSONMap{"avg_ctr": 0.0269, "avg_cpc": 1.16, "avg_conversion_rate": 0.0281, "avg_order_value": 92}},
		{Industry: "finance", Metrics: domain.JSONMap{"avg_ctr": 0.0291, "avg_cpc": 3.44, "avg_conversion_rate": 0.0511}},
		{Industry: "education", Metrics: domain.JSONMap{"avg_ctr": 0.0378, "avg_cpc": 2.4, "avg_conversion_rate": 0.0338}},
	}
}

// Run grava o catálogo. Canais são identificados pelo nome e benchmarks pelo
// setor, então executar de novo não duplica registros.
func Run(ctx context.Context, channels repository.ChannelRepository, benchmarks repository.BenchmarkRepository) (*Result, error) {
	startTime := time.Now()
	result := &Result{}

	logrus.Info("Iniciando carga do catálogo padrão")

	for _, channel := range DefaultChannels() {
		if err := channels.Upsert(ctx, channel); err != nil {
			return result, fmt.Errorf("erro ao gravar canal %q: %w", channel.Name, err)
		}
		result.Channels++
	}

	for _, benchmark := range DefaultBenchmarks() {
		existing, err := benchmarks.GetLatestByIndustry(ctx, benchmark.Industry)
		if err != nil {
			return result, fmt.Errorf("erro ao buscar benchmark %q: %w", benchmark.Industry, err)
		}
		if existing != nil {
			result.BenchmarksSkipped++
			continue
		}

		if err := benchmarks.Create(ctx, benchmark); err != nil {
			return result, fmt.Errorf("erro ao gravar benchmark %q: %w", benchmark.Industry, err)
		}
		result.BenchmarksCreated++
	}

	logrus.WithFields(logrus.Fields{
		"channels":           result.Channels,
		"benchmarks_created": result.BenchmarksCreated,
		"benchmarks_skipped": result.BenchmarksSkipped,
		"elapsed":            time.Since(startTime).String(),
	}).Info("Carga do catálogo concluída")

	return result, nil
}
