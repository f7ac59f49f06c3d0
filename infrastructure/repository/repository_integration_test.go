//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/config"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

// setupTestDB sobe um postgres em container com as migrações aplicadas
func setupTestDB(t *testing.T) *postgres.Connection {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("growth"),
		tcpostgres.WithUsername("growth"),
		tcpostgres.WithPassword("growth"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("falha ao encerrar container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := postgres.NewConnection(ctx, config.Database{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, postgres.RunMigrations(ctx, conn.DB))

	return conn
}

func TestRepositories_Integration(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	channels := NewChannelRepository(conn)
	sites := NewSiteRepository(conn)
	keywords := NewKeywordRepository(conn)
	competitors := NewCompetitorRepository(conn)
	serps := NewSerpSnapshotRepository(conn)
	ranks := NewRankRecordRepository(conn)

	site := &domain.Site{EntityID: 7, Domain: "https://www.Loja.com.br/"}
	require.NoError(t, sites.Create(ctx, site))
	assert.NotZero(t, site.ID)
	assert.Equal(t, "loja.com.br", site.Domain)

	t.Run("Nome de canal duplicado é rejeitado", func(t *testing.T) {
		require.NoError(t, channels.Create(ctx, &domain.Channel{Name: "Email", Category: domain.ChannelCategoryOwned}))

		err := channels.Create(ctx, &domain.Channel{Name: "Email", Category: domain.ChannelCategoryOwned})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("Canal salvo preserva os modificadores", func(t *testing.T) {
		channel := &domain.Channel{
			Name:     "Social Ads",
			Category: domain.ChannelCategoryPaid,
			AvgCPC:   1.25,
			DemographicModifiers: domain.JSONMap{
				"age_range": map[string]any{"min": 18, "max": 34},
				"language":  "pt-BR",
			},
		}
		require.NoError(t, channels.Create(ctx, channel))

		found, err := channels.GetByName(ctx, "Social Ads")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 1.25, found.AvgCPC)
		assert.Equal(t, "pt-BR", found.DemographicModifiers["language"])
		assert.NotNil(t, found.IndustryModifiers)
	})

	t.Run("Palavra-chave duplicada no mesmo site é rejeitada", func(t *testing.T) {
		require.NoError(t, keywords.Create(ctx, &domain.Keyword{SiteID: site.ID, Keyword: "óculos de sol"}))

		err := keywords.Create(ctx, &domain.Keyword{SiteID: site.ID, Keyword: "  Óculos  de sol "})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("Concorrente duplicado no mesmo site é rejeitado", func(t *testing.T) {
		require.NoError(t, competitors.Create(ctx, &domain.Competitor{SiteID: site.ID, Domain: "rival.com"}))

		err := competitors.Create(ctx, &domain.Competitor{SiteID: site.ID, Domain: "https://rival.com/"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)

		other := &domain.Site{EntityID: 7, Domain: "outra.com"}
		require.NoError(t, sites.Create(ctx, other))
		assert.NoError(t, competitors.Create(ctx, &domain.Competitor{SiteID: other.ID, Domain: "rival.com"}))
	})

	t.Run("Site inexistente vira referência inválida", func(t *testing.T) {
		err := keywords.Create(ctx, &domain.Keyword{SiteID: 999999, Keyword: "qualquer"})
		assert.ErrorIs(t, err, domain.ErrInvalidReference)
	})

	t.Run("Snapshot da SERP grava os resultados juntos", func(t *testing.T) {
		keyword, err := keywords.GetBySiteAndKeyword(ctx, site.ID, "óculos de sol")
		require.NoError(t, err)
		require.NotNil(t, keyword)

		snapshot := &domain.SerpSnapshot{
			KeywordID: keyword.ID,
			Results: []*domain.SerpResult{
				{Position: 1, URL: "https://rival.com/oculos"},
				{Position: 2, URL: "https://loja.com.br/oculos"},
			},
		}
		require.NoError(t, serps.Create(ctx, snapshot))

		found, err := serps.GetByID(ctx, snapshot.ID)
		require.NoError(t, err)
		require.Len(t, found.Results, 2)
		assert.Equal(t, "google", found.SearchEngine)
		assert.Equal(t, "organic", found.Results[0].ResultType)
	})

	t.Run("Remoção antiga respeita o corte", func(t *testing.T) {
		keyword, err := keywords.GetBySiteAndKeyword(ctx, site.ID, "óculos de sol")
		require.NoError(t, err)

		old := &domain.RankRecord{SiteID: site.ID, KeywordID: keyword.ID, RecordedAt: time.Now().AddDate(-2, 0, 0)}
		recent := &domain.RankRecord{SiteID: site.ID, KeywordID: keyword.ID}
		require.NoError(t, ranks.Create(ctx, old))
		require.NoError(t, ranks.Create(ctx, recent))

		removed, err := ranks.DeleteOlderThan(ctx, time.Now().AddDate(-1, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)
	})

	t.Run("Remover site apaga os dados em cascata", func(t *testing.T) {
		require.NoError(t, sites.Delete(ctx, site.ID))

		list, err := keywords.ListBySite(ctx, site.ID, domain.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)

		assert.ErrorIs(t, sites.Delete(ctx, site.ID), domain.ErrNotFound)
	})
}
