package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/tracking"
)

func ListSerpSnapshots(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keywordID, err := pathID(r, "id")
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

		snapshots, err := service.ListSerpSnapshots(r.Context(), keywordID, dr, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar snapshots da SERP")
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	})
}

// GetSerpSnapshot retorna o snapshot com todos os resultados
func GetSerpSnapshot(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		snapshot, err := service.GetSerpSnapshot(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar snapshot da SERP")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func CaptureSerp(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keywordID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var snapshot domain.SerpSnapshot
		if err := decodeBody(r, &snapshot); err != nil {
			writeInvalidBody(w, err)
			return
		}
		snapshot.KeywordID = keywordID

		created, err := service.CaptureSerp(r.Context(), &snapshot)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar snapshot da SERP")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeleteSerpSnapshot(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteSerpSnapshot(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover snapshot da SERP")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
