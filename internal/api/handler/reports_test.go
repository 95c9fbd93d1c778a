package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/awin-report-api/internal/domain"
	"github.com/vfg2006/awin-report-api/internal/usecases/reporting"
	"github.com/vfg2006/awin-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/awin-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var january = domain.DateRange{
	Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	result := &reporting.RunResult{
		RunID: "abc123",
		State: reporting.RunStateCompleted,
		Reports: []*domain.MerchantReport{{
			Merchant:  domain.Merchant{Label: "X", ID: "100"},
			Rows:      []domain.ReportRow{{PublisherID: "1", PublisherName: "P1", Clicks: 100, SalesCount: 5, TotalValue: "$250.0", ConversionRate: "5.00%"}},
			DateRange: january,
		}},
		Artifacts: []*domain.ExportArtifact{{Filename: "X_report_2024-02-05.csv", ContentType: domain.ContentTypeCSV, Content: []byte("csv")}},
		Failures:  []*domain.ReportFailure{domain.NewNoDataFailure("Y")},
	}

	runner.EXPECT().
		Run(gomock.Any(), reporting.RunRequest{
			Selection:  domain.AllMerchants,
			DateRange:  january,
			Credential: "token",
			Archive:    false,
		}).
		Return(result, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/reports?start_date=2024-01-01&end_date=2024-01-31", nil)

	GetReports(runner, "token").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc123", body["run_id"])
	assert.Equal(t, "Completed", body["state"])

	artifacts := body["artifacts"].([]any)
	require.Len(t, artifacts, 1)
	// []byte é serializado em base64
	assert.Equal(t, "Y3N2", artifacts[0].(map[string]any)["content"])

	failures := body["failures"].([]any)
	require.Len(t, failures, 1)
	assert.Equal(t, "NoData", failures[0].(map[string]any)["kind"])
	assert.Equal(t, "Y", failures[0].(map[string]any)["merchant"])
}

func TestGetReports_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(runner *mocks.MockRunner)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "datas ausentes",
			query:      "merchant=All",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "data inválida",
			query:      "start_date=01/01/2024&end_date=2024-01-31",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "archive inválido",
			query:      "start_date=2024-01-01&end_date=2024-01-31&archive=talvez",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:  "merchant desconhecido",
			query: "merchant=Z&start_date=2024-01-01&end_date=2024-01-31",
			setup: func(runner *mocks.MockRunner) {
				runner.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrUnknownMerchant)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrUnknownMerchant,
		},
		{
			name:  "falha ao empacotar",
			query: "start_date=2024-01-01&end_date=2024-01-31&archive=true",
			setup: func(runner *mocks.MockRunner) {
				runner.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewPackagingFailure("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrPackaging,
		},
		{
			name:  "erro inesperado",
			query: "start_date=2024-01-01&end_date=2024-01-31",
			setup: func(runner *mocks.MockRunner) {
				runner.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRunner(ctrl)
			if tt.setup != nil {
				tt.setup(runner)
			}

			rec := httptest.NewRecorder()
			GetReports(runner, "token").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports?"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestGetReports_ForwardsInvertedDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req reporting.RunRequest) (*reporting.RunResult, error) {
			assert.Equal(t, "2024-01-31", req.DateRange.StartDate())
			assert.Equal(t, "2024-01-01", req.DateRange.EndDate())
			assert.Equal(t, "Loja A", req.Selection)
			assert.True(t, req.Archive)
			return &reporting.RunResult{State: reporting.RunStateCompleted}, nil
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/reports?merchant=Loja+A&start_date=2024-01-31&end_date=2024-01-01&archive=true", nil)

	GetReports(runner, "token").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetReportsArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	result := &reporting.RunResult{
		RunID:     "abc123",
		State:     reporting.RunStateCompleted,
		Artifacts: []*domain.ExportArtifact{{Filename: "X_report_2024-02-05.csv", Content: []byte("csv")}},
	}
	archive := &domain.ExportArtifact{Filename: domain.ArchiveFilename, ContentType: domain.ContentTypeZip, Content: []byte("PK\x03\x04")}

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reporting.RunRequest) (*reporting.RunResult, error) {
				assert.False(t, req.Archive)
				return result, nil
			}),
		runner.EXPECT().Archive(result).Return(archive, nil),
	)

	rec := httptest.NewRecorder()
	GetReportsArchive(runner, "token").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/archive?start_date=2024-01-01&end_date=2024-01-31", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ContentTypeZip, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="awin_reports.zip"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "abc123", rec.Header().Get("X-Report-Run-Id"))
	assert.Equal(t, "0", rec.Header().Get("X-Report-Failures"))
	assert.Equal(t, archive.Content, rec.Body.Bytes())
}

func TestGetReportsArchive_NoArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	result := &reporting.RunResult{
		State:    reporting.RunStateCompleted,
		Failures: []*domain.ReportFailure{domain.NewNoDataFailure("X")},
	}

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(result, nil)
	runner.EXPECT().Archive(result).Return(nil, domain.NewPackagingFailure("nenhum relatório gerado para compor o arquivo"))

	rec := httptest.NewRecorder()
	GetReportsArchive(runner, "token").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/archive?start_date=2024-01-01&end_date=2024-01-31", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apiErrors.ErrEmptyArchive, decodeError(t, rec).Code)
}

func TestListMerchants(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	runner.EXPECT().Merchants().Return([]domain.Merchant{{Label: "Loja A", ID: "1"}, {Label: "Loja B", ID: "2"}})

	rec := httptest.NewRecorder()
	ListMerchants(runner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/merchants", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body MerchantsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.AllMerchants, body.All)
	assert.Equal(t, []domain.Merchant{{Label: "Loja A", ID: "1"}, {Label: "Loja B", ID: "2"}}, body.Merchants)
}
