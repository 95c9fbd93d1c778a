package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/awin-report-api/internal/domain"
	"github.com/vfg2006/awin-report-api/internal/usecases/reporting"
	"github.com/vfg2006/awin-report-api/pkg/apiErrors"
	"github.com/vfg2006/awin-report-api/pkg/log"
	"github.com/vfg2006/awin-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MerchantsResponse lista os merchants configurados e o token que seleciona todos
type MerchantsResponse struct {
	All       string            `json:"all"`
	Merchants []domain.Merchant `json:"merchants"`
}

func ListMerchants(runner reporting.Runner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, MerchantsResponse{
			All:       domain.AllMerchants,
			Merchants: runner.Merchants(),
		})
	})
}

// GetReports executa o pipeline e devolve as linhas, os CSVs em base64 e as falhas por merchant
func GetReports(runner reporting.Runner, credential string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, apiErr := parseRunRequest(r, credential)
		if apiErr != nil {
			logger.WithField("query", r.URL.RawQuery).Warn("reports: invalid report request")
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
			return
		}

		logger.WithFields(log.Fields{
			"merchant":   req.Selection,
			"start_date": req.DateRange.StartDate(),
			"end_date":   req.DateRange.EndDate(),
			"archive":    req.Archive,
		}).Info("reports: running report")

		result, err := runner.Run(r.Context(), req)
		if err != nil {
			writeRunError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// GetReportsArchive executa o pipeline e devolve o zip com todos os CSVs gerados
func GetReportsArchive(runner reporting.Runner, credential string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, apiErr := parseRunRequest(r, credential)
		if apiErr != nil {
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
			return
		}
		req.Archive = false

		result, err := runner.Run(r.Context(), req)
		if err != nil {
			writeRunError(w, r, err)
			return
		}

		archive, err := runner.Archive(result)
		if err != nil {
			if domain.IsFailureKind(err, domain.FailurePackagingError) && len(result.Artifacts) == 0 {
				logger.WithField("failures", len(result.Failures)).Warn("reports: no report generated for archive")
				apiErrors.WriteError(w, apiErrors.ErrEmptyArchive, "Nenhum relatório gerado para o período", result.Failures)
				return
			}
			writeRunError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", archive.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+archive.Filename+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(archive.Content)))
		w.Header().Set("X-Report-Run-Id", result.RunID)
		w.Header().Set("X-Report-Failures", strconv.Itoa(len(result.Failures)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(archive.Content); err != nil {
			logger.WithError(err).Error("reports: failed to write archive response")
		}
	})
}

func parseRunRequest(r *http.Request, credential string) (reporting.RunRequest, *apiErrors.APIError) {
	query := r.URL.Query()

	selection := strings.TrimSpace(query.Get("merchant"))
	if selection == "" {
		selection = domain.AllMerchants
	}

	startDateStr, endDateStr := query.Get("start_date"), query.Get("end_date")
	if startDateStr == "" || endDateStr == "" {
		return reporting.RunRequest{}, &apiErrors.APIError{
			Code:    apiErrors.ErrMissingRequiredData,
			Message: "start_date e end_date são obrigatórios (YYYY-MM-DD)",
		}
	}

	startDate, err := utils.ParseDate(startDateStr)
	if err != nil {
		return reporting.RunRequest{}, &apiErrors.APIError{Code: apiErrors.ErrInvalidFormat, Message: err.Error()}
	}

	endDate, err := utils.ParseDate(endDateStr)
	if err != nil {
		return reporting.RunRequest{}, &apiErrors.APIError{Code: apiErrors.ErrInvalidFormat, Message: err.Error()}
	}

	archive := false
	if value := query.Get("archive"); value != "" {
		archive, err = strconv.ParseBool(value)
		if err != nil {
			return reporting.RunRequest{}, &apiErrors.APIError{Code: apiErrors.ErrInvalidFormat, Message: "archive deve ser true ou false"}
		}
	}

	return reporting.RunRequest{
		Selection:  selection,
		DateRange:  domain.DateRange{Start: startDate, End: endDate},
		Credential: credential,
		Archive:    archive,
	}, nil
}

func writeRunError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, domain.ErrUnknownMerchant):
		logger.Warn("reports: unknown merchant")
		apiErrors.WriteError(w, apiErrors.ErrUnknownMerchant, err.Error(), nil)
	case domain.IsFailureKind(err, domain.FailurePackagingError):
		logger.Error("reports: failed to package reports")
		apiErrors.WriteError(w, apiErrors.ErrPackaging, err.Error(), nil)
	default:
		logger.Error("reports: report run failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatórios", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: failed to encode response")
	}
}
