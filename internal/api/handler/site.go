package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/tracking"
	"github.com/vfg2006/growth-insights-api/pkg/middleware"
)

func ListSites(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entity, err := entityID(r)
		if err != nil {
			writeEntityIDError(w, err)
			return
		}

		listFilter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		sites, err := service.ListSites(r.Context(), domain.SiteFilter{ListFilter: listFilter, EntityID: entity})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar sites")
			return
		}

		writeJSON(w, http.StatusOK, sites)
	})
}

func GetSite(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		site, err := service.GetSite(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar site")
			return
		}

		writeJSON(w, http.StatusOK, site)
	})
}

func CreateSite(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var site domain.Site
		if err := decodeBody(r, &site); err != nil {
			writeInvalidBody(w, err)
			return
		}

		if site.EntityID == 0 {
			if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
				site.EntityID = claims.EntityID
			}
		}

		created, err := service.CreateSite(r.Context(), &site)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar site")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateSite(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var site domain.Site
		if err := decodeBody(r, &site); err != nil {
			writeInvalidBody(w, err)
			return
		}
		site.ID = id

		updated, err := service.UpdateSite(r.Context(), &site)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar site")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeleteSite(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteSite(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover site")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
