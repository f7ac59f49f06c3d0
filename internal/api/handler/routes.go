package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/api/handler/router"
	"github.com/vfg2006/growth-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/growth-insights-api/internal/usecases/cataloging"
	"github.com/vfg2006/growth-insights-api/internal/usecases/recommending"
	"github.com/vfg2006/growth-insights-api/internal/usecases/tracking"
	"github.com/vfg2006/growth-insights-api/pkg/metrics"
	"github.com/vfg2006/growth-insights-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

var (
	readers = middlewares{middleware.AllRoles()}
	writers = middlewares{middleware.AllRoles()}
	admins  = middlewares{middleware.AdminOnly()}
	cronOps = middlewares{middleware.AdminOrSupervisor()}
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Catalog(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{Path: "/v1/channels", Method: http.MethodGet, Handler: ListChannels(service), Middlewares: readers},
		{Path: "/v1/channels/:id", Method: http.MethodGet, Handler: GetChannel(service), Middlewares: readers},
		{Path: "/v1/channel-names/:name", Method: http.MethodGet, Handler: GetChannelByName(service), Middlewares: readers},
		{Path: "/v1/channels", Method: http.MethodPost, Handler: CreateChannel(service), Middlewares: admins},
		{Path: "/v1/channels/:id", Method: http.MethodPut, Handler: UpdateChannel(service), Middlewares: admins},
		{Path: "/v1/channels/:id", Method: http.MethodDelete, Handler: DeleteChannel(service), Middlewares: admins},

		{Path: "/v1/benchmarks", Method: http.MethodGet, Handler: ListBenchmarks(service), Middlewares: readers},
		{Path: "/v1/benchmarks/:id", Method: http.MethodGet, Handler: GetBenchmark(service), Middlewares: readers},
		{Path: "/v1/industries/:industry/benchmark", Method: http.MethodGet, Handler: GetLatestBenchmark(service), Middlewares: readers},
		{Path: "/v1/benchmarks", Method: http.MethodPost, Handler: CreateBenchmark(service), Middlewares: admins},
		{Path: "/v1/benchmarks/:id", Method: http.MethodPut, Handler: UpdateBenchmark(service), Middlewares: admins},
		{Path: "/v1/benchmarks/:id", Method: http.MethodDelete, Handler: DeleteBenchmark(service), Middlewares: admins},
	}
}

func Recommendations(service recommending.RecommendationService) []router.Route {
	return []router.Route{
		{Path: "/v1/recommendations", Method: http.MethodGet, Handler: ListRecommendations(service), Middlewares: readers},
		{Path: "/v1/recommendations/:id", Method: http.MethodGet, Handler: GetRecommendation(service), Middlewares: readers},
		{Path: "/v1/recommendations", Method: http.MethodPost, Handler: CreateRecommendation(service), Middlewares: writers},
		{Path: "/v1/recommendations/:id", Method: http.MethodPut, Handler: UpdateRecommendation(service), Middlewares: writers},
		{Path: "/v1/recommendations/:id", Method: http.MethodDelete, Handler: DeleteRecommendation(service), Middlewares: writers},
	}
}

func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{Path: "/v1/sites", Method: http.MethodGet, Handler: ListSites(service), Middlewares: readers},
		{Path: "/v1/sites/:id", Method: http.MethodGet, Handler: GetSite(service), Middlewares: readers},
		{Path: "/v1/sites", Method: http.MethodPost, Handler: CreateSite(service), Middlewares: writers},
		{Path: "/v1/sites/:id", Method: http.MethodPut, Handler: UpdateSite(service), Middlewares: writers},
		{Path: "/v1/sites/:id", Method: http.MethodDelete, Handler: DeleteSite(service), Middlewares: writers},

		{Path: "/v1/sites/:id/keywords", Method: http.MethodGet, Handler: ListKeywords(service), Middlewares: readers},
		{Path: "/v1/sites/:id/keywords", Method: http.MethodPost, Handler: CreateKeyword(service), Middlewares: writers},
		{Path: "/v1/keywords/:id", Method: http.MethodGet, Handler: GetKeyword(service), Middlewares: readers},
		{Path: "/v1/keywords/:id", Method: http.MethodPut, Handler: UpdateKeyword(service), Middlewares: writers},
		{Path: "/v1/keywords/:id", Method: http.MethodDelete, Handler: DeleteKeyword(service), Middlewares: writers},

		{Path: "/v1/keywords/:id/snapshots", Method: http.MethodGet, Handler: ListKeywordSnapshots(service), Middlewares: readers},
		{Path: "/v1/keywords/:id/snapshots", Method: http.MethodPost, Handler: RecordKeywordSnapshot(service), Middlewares: writers},
		{Path: "/v1/keyword-snapshots/:id", Method: http.MethodDelete, Handler: DeleteKeywordSnapshot(service), Middlewares: writers},

		{Path: "/v1/keywords/:id/serp", Method: http.MethodGet, Handler: ListSerpSnapshots(service), Middlewares: readers},
		{Path: "/v1/keywords/:id/serp", Method: http.MethodPost, Handler: CaptureSerp(service), Middlewares: writers},
		{Path: "/v1/serp-snapshots/:id", Method: http.MethodGet, Handler: GetSerpSnapshot(service), Middlewares: readers},
		{Path: "/v1/serp-snapshots/:id", Method: http.MethodDelete, Handler: DeleteSerpSnapshot(service), Middlewares: writers},

		{Path: "/v1/sites/:id/ranks", Method: http.MethodGet, Handler: ListRankRecords(service), Middlewares: readers},
		{Path: "/v1/sites/:id/ranks", Method: http.MethodPost, Handler: RecordRank(service), Middlewares: writers},
		{Path: "/v1/rank-records/:id", Method: http.MethodDelete, Handler: DeleteRankRecord(service), Middlewares: writers},

		{Path: "/v1/sites/:id/backlinks", Method: http.MethodGet, Handler: ListBacklinkSnapshots(service), Middlewares: readers},
		{Path: "/v1/sites/:id/backlinks/latest", Method: http.MethodGet, Handler: GetLatestBacklinks(service), Middlewares: readers},
		{Path: "/v1/sites/:id/backlinks", Method: http.MethodPost, Handler: RecordBacklinks(service), Middlewares: writers},
		{Path: "/v1/backlink-snapshots/:id", Method: http.MethodDelete, Handler: DeleteBacklinkSnapshot(service), Middlewares: writers},

		{Path: "/v1/sites/:id/competitors", Method: http.MethodGet, Handler: ListCompetitors(service), Middlewares: readers},
		{Path: "/v1/sites/:id/competitors", Method: http.MethodPost, Handler: CreateCompetitor(service), Middlewares: writers},
		{Path: "/v1/competitors/:id", Method: http.MethodGet, Handler: GetCompetitor(service), Middlewares: readers},
		{Path: "/v1/competitors/:id", Method: http.MethodPut, Handler: UpdateCompetitor(service), Middlewares: writers},
		{Path: "/v1/competitors/:id", Method: http.MethodDelete, Handler: DeleteCompetitor(service), Middlewares: writers},

		{Path: "/v1/sites/:id/gaps", Method: http.MethodGet, Handler: ListCompetitorGaps(service), Middlewares: readers},
		{Path: "/v1/competitors/:id/gaps", Method: http.MethodPost, Handler: CreateCompetitorGap(service), Middlewares: writers},
		{Path: "/v1/competitor-gaps/:id", Method: http.MethodPut, Handler: UpdateCompetitorGap(service), Middlewares: writers},
		{Path: "/v1/competitor-gaps/:id", Method: http.MethodDelete, Handler: DeleteCompetitorGap(service), Middlewares: writers},
	}
}

func Auditing(service auditing.AuditService) []router.Route {
	return []router.Route{
		{Path: "/v1/sites/:id/audits", Method: http.MethodGet, Handler: ListAudits(service), Middlewares: readers},
		{Path: "/v1/sites/:id/audits", Method: http.MethodPost, Handler: CreateAudit(service), Middlewares: writers},
		{Path: "/v1/audits/:id", Method: http.MethodGet, Handler: GetAudit(service), Middlewares: readers},
		{Path: "/v1/audits/:id/status", Method: http.MethodPatch, Handler: UpdateAuditStatus(service), Middlewares: writers},
		{Path: "/v1/audits/:id", Method: http.MethodDelete, Handler: DeleteAudit(service), Middlewares: writers},

		{Path: "/v1/audits/:id/pages", Method: http.MethodGet, Handler: ListPageInsights(service), Middlewares: readers},
		{Path: "/v1/audits/:id/pages", Method: http.MethodPost, Handler: AddPageInsight(service), Middlewares: writers},
		{Path: "/v1/page-insights/:id", Method: http.MethodDelete, Handler: DeletePageInsight(service), Middlewares: writers},

		{Path: "/v1/sites/:id/events", Method: http.MethodGet, Handler: ListEvents(service), Middlewares: readers},
		{Path: "/v1/sites/:id/events", Method: http.MethodPost, Handler: RecordEvent(service), Middlewares: writers},
		{Path: "/v1/insight-events/:id", Method: http.MethodDelete, Handler: DeleteEvent(service), Middlewares: writers},

		{Path: "/v1/ai-insights", Method: http.MethodGet, Handler: ListAIInsights(service), Middlewares: readers},
		{Path: "/v1/ai-insights", Method: http.MethodPost, Handler: CreateAIInsight(service), Middlewares: writers},
		{Path: "/v1/ai-insights/:id", Method: http.MethodGet, Handler: GetAIInsight(service), Middlewares: readers},
		{Path: "/v1/ai-insights/:id", Method: http.MethodDelete, Handler: DeleteAIInsight(service), Middlewares: writers},
	}
}

func Cron(jobs CronJobs) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: cronOps,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: cronOps,
		},
	}
}
