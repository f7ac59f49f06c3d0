package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/tracking"
)

func ListBacklinkSnapshots(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
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

		snapshots, err := service.ListBacklinkSnapshots(r.Context(), siteID, dr, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar snapshots de backlinks")
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	})
}

func GetLatestBacklinks(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		snapshot, err := service.GetLatestBacklinks(r.Context(), siteID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar snapshot de backlinks")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func RecordBacklinks(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var snapshot domain.BacklinkSnapshot
		if err := decodeBody(r, &snapshot); err != nil {
			writeInvalidBody(w, err)
			return
		}
		snapshot.SiteID = siteID

		created, err := service.RecordBacklinks(r.Context(), &snapshot)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar snapshot de backlinks")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeleteBacklinkSnapshot(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteBacklinkSnapshot(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover snapshot de backlinks")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
