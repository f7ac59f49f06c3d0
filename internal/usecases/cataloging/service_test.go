package cataloging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var coded apiErrors.CodedError
	require.True(t, errors.As(err, &coded), "erro sem código: %v", err)
	return coded.ErrorCode()
}

func TestService_CreateChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChannelRepo := mocks.NewMockChannelRepository(ctrl)
	service := NewService(mockChannelRepo, mocks.NewMockBenchmarkRepository(ctrl))
	ctx := context.Background()

	tests := []struct {
		name         string
		setup        func()
		expectedCode string
	}{
		{
			name: "Canal salvo com sucesso",
			setup: func() {
				mockChannelRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "Nome duplicado vira conflito",
			setup: func() {
				mockChannelRepo.EXPECT().
					Create(ctx, gomock.Any()).
					Return(fmt.Errorf("%w: channels_name_key", domain.ErrDuplicate))
			},
			expectedCode: apiErrors.ErrResourceConflict,
		},
		{
			name: "Modificador inválido vira erro de validação",
			setup: func() {
				mockChannelRepo.EXPECT().
					Create(ctx, gomock.Any()).
					Return(domain.NewValidationError("language", "código de idioma inválido"))
			},
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name: "Falha de banco",
			setup: func() {
				mockChannelRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("timeout"))
			},
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			channel, err := service.CreateChannel(ctx, &domain.Channel{Name: "Email", Category: domain.ChannelCategoryOwned})
			if tt.expectedCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "Email", channel.Name)
				return
			}

			assert.Nil(t, channel)
			assert.Equal(t, tt.expectedCode, errorCode(t, err))
		})
	}
}

func TestService_UpdateChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChannelRepo := mocks.NewMockChannelRepository(ctrl)
	service := NewService(mockChannelRepo, mocks.NewMockBenchmarkRepository(ctrl))
	ctx := context.Background()

	t.Run("Aplica apenas os campos enviados", func(t *testing.T) {
		existing := &domain.Channel{
			ID:          3,
			Name:        "Search Ads",
			Category:    domain.ChannelCategoryPaid,
			Description: stringPtr("Links patrocinados"),
			AvgCPC:      2.5,
		}
		newCPC := 3.1

		mockChannelRepo.EXPECT().GetByID(ctx, uint(3)).Return(existing, nil)
		mockChannelRepo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Channel) error {
				assert.Equal(t, 3.1, c.AvgCPC)
				assert.Equal(t, "Links patrocinados", *c.Description)
				return nil
			})

		updated, err := service.UpdateChannel(ctx, &domain.UpdateChannelRequest{ID: 3, AvgCPC: &newCPC})
		require.NoError(t, err)
		assert.Equal(t, "Search Ads", updated.Name)
	})

	t.Run("Canal inexistente", func(t *testing.T) {
		mockChannelRepo.EXPECT().GetByID(ctx, uint(99)).Return(nil, nil)

		_, err := service.UpdateChannel(ctx, &domain.UpdateChannelRequest{ID: 99})
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})
}

func TestService_ListChannels_InvalidCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockChannelRepository(ctrl), mocks.NewMockBenchmarkRepository(ctrl))
	category := domain.ChannelCategory("viral")

	_, err := service.ListChannels(context.Background(), domain.ChannelFilter{Category: &category})
	assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, err))
}

func TestService_GetLatestBenchmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBenchmarkRepo := mocks.NewMockBenchmarkRepository(ctrl)
	service := NewService(mocks.NewMockChannelRepository(ctrl), mockBenchmarkRepo)
	ctx := context.Background()

	mockBenchmarkRepo.EXPECT().
		GetLatestByIndustry(ctx, "ecommerce").
		Return(&domain.Benchmark{ID: 1, Industry: "ecommerce"}, nil)

	benchmark, err := service.GetLatestBenchmark(ctx, "  ecommerce ")
	require.NoError(t, err)
	assert.Equal(t, uint(1), benchmark.ID)

	mockBenchmarkRepo.EXPECT().GetLatestByIndustry(ctx, "saas").Return(nil, nil)

	_, err = service.GetLatestBenchmark(ctx, "saas")
	assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
}
