package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/cataloging"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
)

func ListChannels(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		listFilter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		filter := domain.ChannelFilter{ListFilter: listFilter}
		if raw := r.URL.Query().Get("category"); raw != "" {
			category := domain.ChannelCategory(raw)
			if !category.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Categoria inválida. Valores aceitos: paid, owned, earned", nil)
				return
			}
			filter.Category = &category
		}

		channels, err := service.ListChannels(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar canais")
			return
		}

		writeJSON(w, http.StatusOK, channels)
	})
}

func GetChannel(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		channel, err := service.GetChannel(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar canal")
			return
		}

		writeJSON(w, http.StatusOK, channel)
	})
}

func GetChannelByName(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do canal não informado", nil)
			return
		}

		channel, err := service.GetChannelByName(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar canal")
			return
		}

		writeJSON(w, http.StatusOK, channel)
	})
}

func CreateChannel(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var channel domain.Channel
		if err := decodeBody(r, &channel); err != nil {
			writeInvalidBody(w, err)
			return
		}

		created, err := service.CreateChannel(r.Context(), &channel)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar canal")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateChannel(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var request domain.UpdateChannelRequest
		if err := decodeBody(r, &request); err != nil {
			writeInvalidBody(w, err)
			return
		}
		request.ID = id

		channel, err := service.UpdateChannel(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar canal")
			return
		}

		writeJSON(w, http.StatusOK, channel)
	})
}

func DeleteChannel(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteChannel(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover canal")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
