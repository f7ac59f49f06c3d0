package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-insights-api/internal/scheduler"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
)

// CronJobTypeRetention identifica a limpeza de snapshots antigos
const CronJobTypeRetention = "retention"

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobs associa o tipo da rota à rotina
type CronJobs map[string]CronJob

func (c CronJobs) types() []string {
	types := make([]string, 0, len(c))
	for name := range c {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(jobs CronJobs) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := jobs[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", jobs.types())
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrRetentionRunning) {
				apiErrors.WriteError(w, apiErrors.ErrServiceBusy, err.Error(), nil)
				return
			}
			if errors.Is(err, scheduler.ErrInvalidRetentionDays) {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Configuração da cron job inválida", err.Error())
				return
			}
			logrus.WithError(err).WithField("type", cronType).Error("Erro ao iniciar cron job")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(jobs CronJobs) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	})
}
