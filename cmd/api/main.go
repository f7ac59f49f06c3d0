package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository"
	"github.com/vfg2006/growth-insights-api/internal/api"
	"github.com/vfg2006/growth-insights-api/internal/api/handler"
	"github.com/vfg2006/growth-insights-api/internal/config"
	"github.com/vfg2006/growth-insights-api/internal/scheduler"
	"github.com/vfg2006/growth-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/growth-insights-api/internal/usecases/cataloging"
	"github.com/vfg2006/growth-insights-api/internal/usecases/recommending"
	"github.com/vfg2006/growth-insights-api/internal/usecases/tracking"
	"github.com/vfg2006/growth-insights-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Environment)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(ctx, pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	channelRepo := repository.NewChannelRepository(pgConn)
	benchmarkRepo := repository.NewBenchmarkRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)
	siteRepo := repository.NewSiteRepository(pgConn)
	keywordRepo := repository.NewKeywordRepository(pgConn)
	keywordSnapshotRepo := repository.NewKeywordSnapshotRepository(pgConn)
	serpRepo := repository.NewSerpSnapshotRepository(pgConn)
	rankRepo := repository.NewRankRecordRepository(pgConn)
	backlinkRepo := repository.NewBacklinkSnapshotRepository(pgConn)
	competitorRepo := repository.NewCompetitorRepository(pgConn)
	gapRepo := repository.NewCompetitorGapRepository(pgConn)
	auditRepo := repository.NewSiteAuditRepository(pgConn)
	pageRepo := repository.NewPageInsightRepository(pgConn)
	eventRepo := repository.NewInsightEventRepository(pgConn)
	aiInsightRepo := repository.NewAIInsightRepository(pgConn)

	catalogService := cataloging.NewService(channelRepo, benchmarkRepo)
	recommendationService := recommending.NewService(recommendationRepo, channelRepo)
	tracker := tracking.NewService(tracking.Repositories{
		Sites:            siteRepo,
		Keywords:         keywordRepo,
		KeywordSnapshots: keywordSnapshotRepo,
		SerpSnapshots:    serpRepo,
		RankRecords:      rankRepo,
		Backlinks:        backlinkRepo,
		Competitors:      competitorRepo,
		CompetitorGaps:   gapRepo,
	})
	auditService := auditing.NewService(siteRepo, auditRepo, pageRepo, eventRepo, aiInsightRepo)

	retentionService := scheduler.NewSnapshotRetentionService(
		keywordSnapshotRepo,
		serpRepo,
		rankRepo,
		backlinkRepo,
		eventRepo,
		cfg,
	)

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de snapshots")
	} else {
		logrus.Info("Agendador de limpeza de snapshots iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DB:              pgConn,
		Catalog:         catalogService,
		Recommendations: recommendationService,
		Tracker:         tracker,
		Audits:          auditService,
		CronJobs: handler.CronJobs{
			handler.CronJobTypeRetention: retentionService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
