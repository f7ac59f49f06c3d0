package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/recommending"
	"github.com/vfg2006/growth-insights-api/pkg/middleware"
)

func ListRecommendations(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entity, err := entityID(r)
		if err != nil {
			writeEntityIDError(w, err)
			return
		}

		filter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		recommendations, err := service.ListByEntity(r.Context(), entity, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar recomendações")
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	})
}

func GetRecommendation(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		recommendation, err := service.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar recomendação")
			return
		}

		writeJSON(w, http.StatusOK, recommendation)
	})
}

func CreateRecommendation(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var recommendation domain.Recommendation
		if err := decodeBody(r, &recommendation); err != nil {
			writeInvalidBody(w, err)
			return
		}

		// sem entity_id no corpo, vale a entidade do token
		if recommendation.EntityID == 0 {
			if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
				recommendation.EntityID = claims.EntityID
			}
		}

		created, err := service.Create(r.Context(), &recommendation)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar recomendação")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateRecommendation(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var recommendation domain.Recommendation
		if err := decodeBody(r, &recommendation); err != nil {
			writeInvalidBody(w, err)
			return
		}
		recommendation.ID = id

		updated, err := service.Update(r.Context(), &recommendation)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar recomendação")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeleteRecommendation(service recommending.RecommendationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover recomendação")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
