package recommending

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecommendationRepo := mocks.NewMockRecommendationRepository(ctrl)
	mockChannelRepo := mocks.NewMockChannelRepository(ctrl)
	service := NewService(mockRecommendationRepo, mockChannelRepo)
	ctx := context.Background()

	t.Run("Canais do catálogo são aceitos", func(t *testing.T) {
		rec := &domain.Recommendation{
			EntityID:            5,
			RecommendedChannels: domain.JSONList{"Email", map[string]any{"name": "Outro", "weight": 0.4}},
		}

		mockChannelRepo.EXPECT().GetByName(ctx, "Email").Return(&domain.Channel{ID: 1, Name: "Email"}, nil)
		mockRecommendationRepo.EXPECT().Create(ctx, rec).Return(nil)

		saved, err := service.Create(ctx, rec)
		require.NoError(t, err)
		assert.Equal(t, uint(5), saved.EntityID)
	})

	t.Run("Canal fora do catálogo é rejeitado antes de salvar", func(t *testing.T) {
		mockChannelRepo.EXPECT().GetByName(ctx, "Fax").Return(nil, nil)

		_, err := service.Create(ctx, &domain.Recommendation{EntityID: 5, RecommendedChannels: domain.JSONList{"Fax"}})

		var coded apiErrors.CodedError
		require.True(t, errors.As(err, &coded))
		assert.Equal(t, apiErrors.ErrInvalidFormat, coded.ErrorCode())
	})
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecommendationRepo := mocks.NewMockRecommendationRepository(ctrl)
	service := NewService(mockRecommendationRepo, mocks.NewMockChannelRepository(ctrl))

	mockRecommendationRepo.EXPECT().GetByID(gomock.Any(), uint(42)).Return(nil, nil)

	_, err := service.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_EscopoDeEntidade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecommendationRepo := mocks.NewMockRecommendationRepository(ctrl)
	service := NewService(mockRecommendationRepo, mocks.NewMockChannelRepository(ctrl))
	ctx := domain.WithEntityScope(context.Background(), 1)

	t.Run("Recomendação de outra entidade não é excluída", func(t *testing.T) {
		mockRecommendationRepo.EXPECT().GetByID(ctx, uint(8)).Return(&domain.Recommendation{ID: 8, EntityID: 2}, nil)

		err := service.Delete(ctx, 8)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Listagem de outra entidade é proibida", func(t *testing.T) {
		_, err := service.ListByEntity(ctx, 2, domain.ListFilter{})
		assert.ErrorIs(t, err, domain.ErrForeignEntity)
	})

	t.Run("Atualização mantém a entidade original", func(t *testing.T) {
		mockRecommendationRepo.EXPECT().GetByID(ctx, uint(3)).Return(&domain.Recommendation{ID: 3, EntityID: 1}, nil)
		mockRecommendationRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		rec, err := service.Update(ctx, &domain.Recommendation{ID: 3, EntityID: 2})
		require.NoError(t, err)
		assert.Equal(t, uint(1), rec.EntityID)
	})
}
