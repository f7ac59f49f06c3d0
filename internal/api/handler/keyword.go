package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/tracking"
)

func ListKeywords(service tracking.Tracker) http.Handler {
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

		keywords, err := service.ListKeywords(r.Context(), siteID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar palavras-chave")
			return
		}

		writeJSON(w, http.StatusOK, keywords)
	})
}

func GetKeyword(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		keyword, err := service.GetKeyword(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar palavra-chave")
			return
		}

		writeJSON(w, http.StatusOK, keyword)
	})
}

func CreateKeyword(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var keyword domain.Keyword
		if err := decodeBody(r, &keyword); err != nil {
			writeInvalidBody(w, err)
			return
		}
		keyword.SiteID = siteID

		created, err := service.CreateKeyword(r.Context(), &keyword)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar palavra-chave")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateKeyword(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var keyword domain.Keyword
		if err := decodeBody(r, &keyword); err != nil {
			writeInvalidBody(w, err)
			return
		}
		keyword.ID = id

		updated, err := service.UpdateKeyword(r.Context(), &keyword)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar palavra-chave")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeleteKeyword(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteKeyword(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover palavra-chave")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListKeywordSnapshots(service tracking.Tracker) http.Handler {
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

		snapshots, err := service.ListKeywordSnapshots(r.Context(), keywordID, dr, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar snapshots da palavra-chave")
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	})
}

func RecordKeywordSnapshot(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keywordID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var snapshot domain.KeywordSnapshot
		if err := decodeBody(r, &snapshot); err != nil {
			writeInvalidBody(w, err)
			return
		}
		snapshot.KeywordID = keywordID

		created, err := service.RecordKeywordSnapshot(r.Context(), &snapshot)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar snapshot da palavra-chave")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeleteKeywordSnapshot(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteKeywordSnapshot(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover snapshot da palavra-chave")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
