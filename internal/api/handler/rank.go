package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/tracking"
)

func ListRankRecords(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		keywordID, err := queryID(r, "keyword_id")
		if err != nil {
			writeInvalidParam(w, "keyword_id")
			return
		}

		dr, err := dateRange(r)
		if err != nil {
			writeInvalidParam(w, "from/to")
			return
		}

		filter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		records, err := service.ListRankRecords(r.Context(), siteID, keywordID, dr, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar posições")
			return
		}

		writeJSON(w, http.StatusOK, records)
	})
}

func RecordRank(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var record domain.RankRecord
		if err := decodeBody(r, &record); err != nil {
			writeInvalidBody(w, err)
			return
		}
		record.SiteID = siteID

		created, err := service.RecordRank(r.Context(), &record)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar posição")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeleteRankRecord(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteRankRecord(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover posição")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
