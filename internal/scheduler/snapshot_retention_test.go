package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/growth-insights-api/internal/config"
	"go.uber.org/mock/gomock"
)

type retentionMocks struct {
	keywordSnapshots *mocks.MockKeywordSnapshotRepository
	serpSnapshots    *mocks.MockSerpSnapshotRepository
	rankRecords      *mocks.MockRankRecordRepository
	backlinks        *mocks.MockBacklinkSnapshotRepository
	events           *mocks.MockInsightEventRepository
}

func newRetentionService(t *testing.T, days int) (*SnapshotRetentionService, retentionMocks) {
	ctrl := gomock.NewController(t)

	m := retentionMocks{
		keywordSnapshots: mocks.NewMockKeywordSnapshotRepository(ctrl),
		serpSnapshots:    mocks.NewMockSerpSnapshotRepository(ctrl),
		rankRecords:      mocks.NewMockRankRecordRepository(ctrl),
		backlinks:        mocks.NewMockBacklinkSnapshotRepository(ctrl),
		events:           mocks.NewMockInsightEventRepository(ctrl),
	}

	cfg := &config.Config{
		SnapshotRetention: config.SnapshotRetention{
			CronSchedule: "0 2 * * *",
			Days:         days,
			Enabled:      true,
		},
	}

	service := NewSnapshotRetentionService(m.keywordSnapshots, m.serpSnapshots, m.rankRecords, m.backlinks, m.events, cfg)
	service.now = func() time.Time { return time.Date(2024, 6, 30, 2, 0, 0, 0, time.UTC) }

	return service, m
}

func TestSnapshotRetentionService_Run(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2024, 6, 20, 2, 0, 0, 0, time.UTC)

	t.Run("remove registros antigos de todas as tabelas", func(t *testing.T) {
		service, m := newRetentionService(t, 10)

		m.keywordSnapshots.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(4), nil)
		m.serpSnapshots.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(2), nil)
		m.rankRecords.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(7), nil)
		m.backlinks.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(0), nil)
		m.events.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(1), nil)

		result, err := service.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, cutoff, result.Cutoff)
		assert.Equal(t, map[string]int64{
			"keyword_snapshots":  4,
			"serp_snapshots":     2,
			"rank_records":       7,
			"backlink_snapshots": 0,
			"insight_events":     1,
		}, result.Deleted)

		status := service.GetStatus()
		assert.Equal(t, false, status["running"])
		assert.Equal(t, result, status["last_result"])
		assert.NotContains(t, status, "last_error")
	})

	t.Run("continua limpando quando uma tabela falha", func(t *testing.T) {
		service, m := newRetentionService(t, 10)
		dbErr := errors.New("conexão perdida")

		m.keywordSnapshots.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(0), dbErr)
		m.serpSnapshots.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(3), nil)
		m.rankRecords.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(0), nil)
		m.backlinks.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(0), nil)
		m.events.EXPECT().DeleteOlderThan(ctx, cutoff).Return(int64(0), nil)

		result, err := service.Run(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, int64(3), result.Deleted["serp_snapshots"])
		assert.NotContains(t, result.Deleted, "keyword_snapshots")
		assert.Contains(t, service.GetStatus(), "last_error")
	})

	t.Run("recusa execução concorrente", func(t *testing.T) {
		service, m := newRetentionService(t, 10)

		started := make(chan struct{})
		release := make(chan struct{})

		m.keywordSnapshots.EXPECT().DeleteOlderThan(gomock.Any(), cutoff).DoAndReturn(
			func(context.Context, time.Time) (int64, error) {
				close(started)
				<-release
				return 0, nil
			})
		m.serpSnapshots.EXPECT().DeleteOlderThan(gomock.Any(), cutoff).Return(int64(0), nil)
		m.rankRecords.EXPECT().DeleteOlderThan(gomock.Any(), cutoff).Return(int64(0), nil)
		m.backlinks.EXPECT().DeleteOlderThan(gomock.Any(), cutoff).Return(int64(0), nil)
		m.events.EXPECT().DeleteOlderThan(gomock.Any(), cutoff).Return(int64(0), nil)

		done := make(chan error, 1)
		go func() {
			_, err := service.Run(ctx)
			done <- err
		}()

		<-started

		_, err := service.Run(ctx)
		assert.ErrorIs(t, err, ErrRetentionRunning)
		assert.ErrorIs(t, service.TriggerManualSync(), ErrRetentionRunning)
		assert.Equal(t, true, service.GetStatus()["running"])

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, false, service.GetStatus()["running"])
	})
}

func TestSnapshotRetentionService_InvalidDays(t *testing.T) {
	for _, days := range []int{0, -3} {
		t.Run(fmt.Sprintf("recusa %d dias sem apagar nada", days), func(t *testing.T) {
			// os mocks falham o teste se DeleteOlderThan for chamado
			service, _ := newRetentionService(t, days)

			result, err := service.Run(context.Background())

			assert.ErrorIs(t, err, ErrInvalidRetentionDays)
			assert.Nil(t, result)
			assert.ErrorIs(t, service.TriggerManualSync(), ErrInvalidRetentionDays)
			assert.Equal(t, false, service.GetStatus()["running"])
		})
	}
}

func TestSnapshotRetentionService_Start(t *testing.T) {
	t.Run("não agenda quando desabilitada", func(t *testing.T) {
		service, _ := newRetentionService(t, 10)
		service.config.Enabled = false

		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("rejeita dias de retenção inválidos", func(t *testing.T) {
		service, _ := newRetentionService(t, 0)

		assert.ErrorIs(t, service.Start(context.Background()), ErrInvalidRetentionDays)
	})
}
