package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/growth-insights-api/pkg/middleware"
)

func ListEvents(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		listFilter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		dr, err := dateRange(r)
		if err != nil {
			writeInvalidParam(w, "from/to")
			return
		}

		filter := domain.InsightEventFilter{ListFilter: listFilter, DateRange: dr}
		if raw := r.URL.Query().Get("severity"); raw != "" {
			severity := domain.EventSeverity(raw)
			filter.Severity = &severity
		}

		events, err := service.ListEvents(r.Context(), siteID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar eventos")
			return
		}

		writeJSON(w, http.StatusOK, events)
	})
}

func RecordEvent(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var event domain.InsightEvent
		if err := decodeBody(r, &event); err != nil {
			writeInvalidBody(w, err)
			return
		}
		event.SiteID = siteID

		created, err := service.RecordEvent(r.Context(), &event)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar evento")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeleteEvent(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteEvent(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover evento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListAIInsights(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entity, err := entityID(r)
		if err != nil {
			writeEntityIDError(w, err)
			return
		}

		siteID, err := queryID(r, "site_id")
		if err != nil {
			writeInvalidParam(w, "site_id")
			return
		}

		listFilter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		insights, err := service.ListAIInsights(r.Context(), entity, domain.AIInsightFilter{
			ListFilter:  listFilter,
			SiteID:      siteID,
			InsightType: r.URL.Query().Get("insight_type"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar insights")
			return
		}

		writeJSON(w, http.StatusOK, insights)
	})
}

func GetAIInsight(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		insight, err := service.GetAIInsight(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar insight")
			return
		}

		writeJSON(w, http.StatusOK, insight)
	})
}

func CreateAIInsight(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var insight domain.AIInsight
		if err := decodeBody(r, &insight); err != nil {
			writeInvalidBody(w, err)
			return
		}

		if insight.EntityID == 0 {
			if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
				insight.EntityID = claims.EntityID
			}
		}

		created, err := service.CreateAIInsight(r.Context(), &insight)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar insight")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeleteAIInsight(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteAIInsight(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover insight")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
