// Package scheduler contém as rotinas agendadas da API
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository"
	"github.com/vfg2006/growth-insights-api/internal/config"
	"github.com/vfg2006/growth-insights-api/pkg/metrics"
)

var (
	// ErrRetentionRunning é retornado quando já existe uma limpeza em andamento
	ErrRetentionRunning = errors.New("limpeza de snapshots já está em execução")
	// ErrInvalidRetentionDays impede que um corte em "agora" ou no futuro apague tudo
	ErrInvalidRetentionDays = errors.New("dias de retenção devem ser maiores que zero")
)

type SnapshotRetentionConfig struct {
	CronSchedule string
	Days         int
	Enabled      bool
}

// purger é implementado por todos os repositórios de séries temporais
type purger interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type retentionTarget struct {
	table  string
	purger purger
}

// RetentionResult resume uma execução da limpeza
type RetentionResult struct {
	Cutoff  time.Time        `json:"cutoff"`
	Deleted map[string]int64 `json:"deleted"`
}

type SnapshotRetentionService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotRetentionConfig
	targets             []retentionTarget
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *RetentionResult
	lastError           error
}

func NewSnapshotRetentionService(
	keywordSnapshots repository.KeywordSnapshotRepository,
	serpSnapshots repository.SerpSnapshotRepository,
	rankRecords repository.RankRecordRepository,
	backlinks repository.BacklinkSnapshotRepository,
	events repository.InsightEventRepository,
	cfg *config.Config,
) *SnapshotRetentionService {
	retentionConfig := SnapshotRetentionConfig{
		CronSchedule: cfg.SnapshotRetention.CronSchedule,
		Days:         cfg.SnapshotRetention.Days,
		Enabled:      cfg.SnapshotRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.Days,
	}).Info("Configuração da limpeza de snapshots carregada")

	return &SnapshotRetentionService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    retentionConfig,
		now:       time.Now,
		targets: []retentionTarget{
			{table: "keyword_snapshots", purger: keywordSnapshots},
			{table: "serp_snapshots", purger: serpSnapshots},
			{table: "rank_records", purger: rankRecords},
			{table: "backlink_snapshots", purger: backlinks},
			{table: "insight_events", purger: events},
		},
	}
}

func (s *SnapshotRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de snapshots desabilitada por configuração")
		return nil
	}

	if err := s.validate(); err != nil {
		return err
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Run(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de snapshots")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// Run remove os registros anteriores ao corte em todas as tabelas de séries
// temporais. Uma falha em uma tabela não impede a limpeza das demais.
func (s *SnapshotRetentionService) Run(ctx context.Context) (*RetentionResult, error) {
	if err := s.validate(); err != nil {
		logrus.WithError(err).Error("Limpeza de snapshots recusada")
		return nil, err
	}

	if !s.begin() {
		logrus.Warn("Limpeza de snapshots já está em execução")
		return nil, ErrRetentionRunning
	}

	result, err := s.purge(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastResult = result
	s.lastError = err
	s.syncMutex.Unlock()

	if err != nil {
		metrics.RecordRetentionRun("error")
		return result, err
	}

	metrics.RecordRetentionRun("success")
	return result, nil
}

// TriggerManualSync dispara a limpeza em segundo plano
func (s *SnapshotRetentionService) TriggerManualSync() error {
	if err := s.validate(); err != nil {
		return err
	}

	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Limpeza de snapshots já em andamento, ignorando solicitação manual")
		return ErrRetentionRunning
	}

	logrus.Info("Iniciando limpeza manual de snapshots")
	go func() {
		if _, err := s.Run(context.Background()); err != nil && !errors.Is(err, ErrRetentionRunning) {
			logrus.WithError(err).Error("Erro na limpeza manual de snapshots")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.Days,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}

func (s *SnapshotRetentionService) validate() error {
	if s.config.Days <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRetentionDays, s.config.Days)
	}
	return nil
}

func (s *SnapshotRetentionService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *SnapshotRetentionService) purge(ctx context.Context) (*RetentionResult, error) {
	cutoff := s.now().AddDate(0, 0, -s.config.Days)
	result := &RetentionResult{
		Cutoff:  cutoff,
		Deleted: make(map[string]int64, len(s.targets)),
	}

	logrus.WithField("cutoff", cutoff.Format(time.DateOnly)).Info("Iniciando limpeza de snapshots")

	var errs []error
	for _, target := range s.targets {
		deleted, err := target.purger.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logrus.WithError(err).WithField("table", target.table).Error("Erro ao remover registros antigos")
			errs = append(errs, fmt.Errorf("%s: %w", target.table, err))
			continue
		}

		result.Deleted[target.table] = deleted
		metrics.RecordRetention(target.table, deleted)

		logrus.WithFields(logrus.Fields{
			"table":   target.table,
			"deleted": deleted,
		}).Debug("Registros antigos removidos")
	}

	logrus.WithField("deleted", result.Deleted).Info("Limpeza de snapshots concluída")

	return result, errors.Join(errs...)
}
