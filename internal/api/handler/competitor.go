package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/tracking"
)

func ListCompetitors(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		filter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		competitors, err := service.ListCompetitors(r.Context(), siteID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar concorrentes")
			return
		}

		writeJSON(w, http.StatusOK, competitors)
	})
}

func GetCompetitor(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		competitor, err := service.GetCompetitor(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar concorrente")
			return
		}

		writeJSON(w, http.StatusOK, competitor)
	})
}

func CreateCompetitor(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var competitor domain.Competitor
		if err := decodeBody(r, &competitor); err != nil {
			writeInvalidBody(w, err)
			return
		}
		competitor.SiteID = siteID

		created, err := service.CreateCompetitor(r.Context(), &competitor)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar concorrente")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateCompetitor(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var competitor domain.Competitor
		if err := decodeBody(r, &competitor); err != nil {
			writeInvalidBody(w, err)
			return
		}
		competitor.ID = id

		updated, err := service.UpdateCompetitor(r.Context(), &competitor)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar concorrente")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeleteCompetitor(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteCompetitor(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover concorrente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListCompetitorGaps(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		competitorID, err := queryID(r, "competitor_id")
		if err != nil {
			writeInvalidParam(w, "competitor_id")
			return
		}

		filter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		gaps, err := service.ListCompetitorGaps(r.Context(), siteID, competitorID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar lacunas de concorrentes")
			return
		}

		writeJSON(w, http.StatusOK, gaps)
	})
}

// CreateCompetitorGap registra uma lacuna para o concorrente da rota
func CreateCompetitorGap(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		competitorID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var gap domain.CompetitorGap
		if err := decodeBody(r, &gap); err != nil {
			writeInvalidBody(w, err)
			return
		}
		gap.CompetitorID = competitorID

		created, err := service.CreateCompetitorGap(r.Context(), &gap)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar lacuna de concorrente")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateCompetitorGap(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var gap domain.CompetitorGap
		if err := decodeBody(r, &gap); err != nil {
			writeInvalidBody(w, err)
			return
		}
		gap.ID = id

		updated, err := service.UpdateCompetitorGap(r.Context(), &gap)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar lacuna de concorrente")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeleteCompetitorGap(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteCompetitorGap(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover lacuna de concorrente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
