package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/awin-report-api/pkg/apiErrors"
	"github.com/vfg2006/awin-report-api/pkg/log"
)

const CronJobTypeReportExport = "report-export"

// CronJob é uma tarefa agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReportExport CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReportExport:
			if services.ReportExport == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de exportação de relatórios não disponível", nil)
				return
			}
			if !services.ReportExport.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Exportação de relatórios já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-export", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: job triggered manually")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReportExport != nil {
			status[CronJobTypeReportExport] = services.ReportExport.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
