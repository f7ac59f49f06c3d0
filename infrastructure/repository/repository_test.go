package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		validate func(t *testing.T, err error)
	}{
		{
			name: "Erro nulo continua nulo",
			err:  nil,
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Violação de unicidade vira ErrDuplicate com o nome da constraint",
			err:  &pq.Error{Code: pgUniqueViolation, Constraint: "keywords_site_id_keyword_key"},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrDuplicate)
				assert.Contains(t, err.Error(), "keywords_site_id_keyword_key")
			},
		},
		{
			name: "Violação de chave estrangeira vira ErrInvalidReference",
			err:  &pq.Error{Code: pgForeignKeyViolation, Constraint: "keywords_site_id_fkey"},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidReference)
			},
		},
		{
			name: "Violação de check vira erro de validação",
			err:  &pq.Error{Code: pgCheckViolation, Constraint: "channels_category_check"},
			validate: func(t *testing.T, err error) {
				assert.True(t, domain.IsValidationError(err))
			},
		},
		{
			name: "Erro desconhecido é encapsulado com a ação",
			err:  errors.New("conexão perdida"),
			validate: func(t *testing.T, err error) {
				assert.EqualError(t, err, "erro ao inserir canal: conexão perdida")
				assert.False(t, errors.Is(err, domain.ErrDuplicate))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, translateError(tt.err, "erro ao inserir canal"))
		})
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.ListFilter
		expected string
	}{
		{
			name:     "Sem limite usa o padrão",
			filter:   domain.ListFilter{},
			expected: "SELECT id FROM sites LIMIT 50 OFFSET 0",
		},
		{
			name:     "Limite acima do máximo é reduzido",
			filter:   domain.ListFilter{Limit: 10000, Offset: 20},
			expected: "SELECT id FROM sites LIMIT 500 OFFSET 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := paginate(psql.Select("id").From("sites"), tt.filter).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

// Entidades inválidas devem ser rejeitadas antes de qualquer acesso ao banco
func TestCreate_ValidatesBeforeSaving(t *testing.T) {
	ctx := context.Background()

	t.Run("Canal com modificador demográfico inválido", func(t *testing.T) {
		repo := NewChannelRepository(nil)
		err := repo.Create(ctx, &domain.Channel{
			Name:                 "Search Ads",
			Category:             domain.ChannelCategoryPaid,
			DemographicModifiers: domain.JSONMap{"language": "xyz"},
		})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Palavra-chave sem site", func(t *testing.T) {
		repo := NewKeywordRepository(nil)
		err := repo.Create(ctx, &domain.Keyword{Keyword: "tênis de corrida"})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Snapshot da SERP com posição repetida", func(t *testing.T) {
		repo := NewSerpSnapshotRepository(nil)
		err := repo.Create(ctx, &domain.SerpSnapshot{
			KeywordID: 1,
			Results: []*domain.SerpResult{
				{Position: 1, URL: "https://a.com"},
				{Position: 1, URL: "https://b.com"},
			},
		})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Recomendação sem entidade", func(t *testing.T) {
		repo := NewRecommendationRepository(nil)
		err := repo.Create(ctx, &domain.Recommendation{})
		assert.True(t, domain.IsValidationError(err))
	})
}
