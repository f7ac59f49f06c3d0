package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	names := make(map[string]bool)
	for _, channel := range DefaultChannels() {
		require.NoError(t, channel.Validate(), channel.Name)
		assert.False(t, names[channel.Name], "canal repetido: %s", channel.Name)
		names[channel.Name] = true
	}

	for _, benchmark := range DefaultBenchmarks() {
		require.NoError(t, benchmark.Validate(), benchmark.Industry)
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("grava canais e pula benchmarks existentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channels := mocks.NewMockChannelRepository(ctrl)
		benchmarks := mocks.NewMockBenchmarkRepository(ctrl)

		channels.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(len(DefaultChannels()))

		benchmarks.EXPECT().GetLatestByIndustry(ctx, "saas").Return(&domain.Benchmark{ID: 1, Industry: "saas"}, nil)
		benchmarks.EXPECT().GetLatestByIndustry(ctx, gomock.Not("saas")).Return(nil, nil).Times(len(DefaultBenchmarks()) - 1)
		benchmarks.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(len(DefaultBenchmarks()) - 1)

		result, err := Run(ctx, channels, benchmarks)

		require.NoError(t, err)
		assert.Equal(t, len(DefaultChannels()), result.Channels)
		assert.Equal(t, 1, result.BenchmarksSkipped)
		assert.Equal(t, len(DefaultBenchmarks())-1, result.BenchmarksCreated)
	})

	t.Run("interrompe no primeiro erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channels := mocks.NewMockChannelRepository(ctrl)
		benchmarks := mocks.NewMockBenchmarkRepository(ctrl)

		channels.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("falha no banco"))

		result, err := Run(ctx, channels, benchmarks)

		assert.Error(t, err)
		assert.Equal(t, 0, result.Channels)
	})
}
