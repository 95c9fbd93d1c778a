package awin

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/awinclient"
	"github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/awinclient/mocks"
	awindomain "github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/domain"
	"github.com/vfg2006/awin-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestAwinService_FetchPublisherReport(t *testing.T) {
	merchant := domain.Merchant{Label: "Loja A", ID: "12345"}
	dateRange := domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	expectedParams := awinclient.PublisherReportParams{
		MerchantID:  "12345",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		AccessToken: "token",
	}

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, records []awindomain.PublisherRecord, err error)
	}{
		{
			name: "sucesso retorna os registros",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetPublisherReport(gomock.Any(), expectedParams).
					Return(awinclient.PublisherReportResponse{{PublisherName: "P1"}}, nil)
			},
			validate: func(t *testing.T, records []awindomain.PublisherRecord, err error) {
				require.NoError(t, err)
				assert.Len(t, records, 1)
			},
		},
		{
			name: "status de erro vira RemoteError com o código",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetPublisherReport(gomock.Any(), expectedParams).
					Return(nil, &awinclient.StatusError{StatusCode: http.StatusForbidden, Status: "403 Forbidden"})
			},
			validate: func(t *testing.T, records []awindomain.PublisherRecord, err error) {
				assert.Nil(t, records)

				var failure *domain.ReportFailure
				require.True(t, errors.As(err, &failure))
				assert.Equal(t, domain.FailureRemoteError, failure.Kind)
				assert.Equal(t, "Loja A", failure.MerchantLabel)
				assert.Equal(t, http.StatusForbidden, failure.StatusCode)
				assert.Equal(t, "Failed for Loja A: 403", failure.Detail)
			},
		},
		{
			name: "erro de transporte vira RemoteError sem código",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetPublisherReport(gomock.Any(), expectedParams).
					Return(nil, context.DeadlineExceeded)
			},
			validate: func(t *testing.T, records []awindomain.PublisherRecord, err error) {
				var failure *domain.ReportFailure
				require.True(t, errors.As(err, &failure))
				assert.Equal(t, domain.FailureRemoteError, failure.Kind)
				assert.Zero(t, failure.StatusCode)
				assert.Contains(t, failure.Detail, "deadline exceeded")
			},
		},
		{
			name: "resposta vazia vira NoData",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetPublisherReport(gomock.Any(), expectedParams).
					Return(awinclient.PublisherReportResponse{}, nil)
			},
			validate: func(t *testing.T, records []awindomain.PublisherRecord, err error) {
				assert.True(t, domain.IsFailureKind(err, domain.FailureNoData))
				assert.EqualError(t, err, "NoData for Loja A: No data for Loja A")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			service := New(client)
			records, err := service.FetchPublisherReport(context.Background(), merchant, dateRange, "token")
			tt.validate(t, records, err)
		})
	}
}
