package handler

import (
	"net/http"

	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases/auditing"
)

func ListAudits(service auditing.AuditService) http.Handler {
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

		audits, err := service.ListAudits(r.Context(), siteID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar auditorias")
			return
		}

		writeJSON(w, http.StatusOK, audits)
	})
}

func GetAudit(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		audit, err := service.GetAudit(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar auditoria")
			return
		}

		writeJSON(w, http.StatusOK, audit)
	})
}

// CreateAudit abre uma auditoria pendente para o site da rota
func CreateAudit(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var audit domain.SiteAudit
		if r.ContentLength != 0 {
			if err := decodeBody(r, &audit); err != nil {
				writeInvalidBody(w, err)
				return
			}
		}
		audit.SiteID = siteID

		created, err := service.CreateAudit(r.Context(), &audit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar auditoria")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateAuditStatus(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var request domain.UpdateAuditStatusRequest
		if err := decodeBody(r, &request); err != nil {
			writeInvalidBody(w, err)
			return
		}

		audit, err := service.UpdateAuditStatus(r.Context(), id, &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status da auditoria")
			return
		}

		writeJSON(w, http.StatusOK, audit)
	})
}

func DeleteAudit(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeleteAudit(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover auditoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListPageInsights(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auditID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		filter, err := listFilter(r)
		if err != nil {
			writeInvalidParam(w, "limit/offset")
			return
		}

		pages, err := service.ListPageInsights(r.Context(), auditID, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar páginas da auditoria")
			return
		}

		writeJSON(w, http.StatusOK, pages)
	})
}

func AddPageInsight(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auditID, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		var page domain.PageInsight
		if err := decodeBody(r, &page); err != nil {
			writeInvalidBody(w, err)
			return
		}
		page.AuditID = auditID

		created, err := service.AddPageInsight(r.Context(), &page)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar página da auditoria")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeletePageInsight(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeInvalidParam(w, "id")
			return
		}

		if err := service.DeletePageInsight(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover página da auditoria")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
