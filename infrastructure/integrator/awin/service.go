package awin

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/awinclient"
	awindomain "github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/domain"
	"github.com/vfg2006/awin-report-api/internal/domain"
)

// ReportFetcher busca o relatório de publishers de um merchant. Falhas são
// sempre devolvidas como *domain.ReportFailure.
type ReportFetcher interface {
	FetchPublisherReport(ctx context.Context, merchant domain.Merchant, dateRange domain.DateRange, credential string) ([]awindomain.PublisherRecord, error)
}

type AwinService struct {
	Client awinclient.Client
}

func New(client awinclient.Client) ReportFetcher {
	return &AwinService{
		Client: client,
	}
}

func (s *AwinService) FetchPublisherReport(
	ctx context.Context,
	merchant domain.Merchant,
	dateRange domain.DateRange,
	credential string,
) ([]awindomain.PublisherRecord, error) {
	logger := logrus.WithFields(logrus.Fields{
		"merchant":    merchant.Label,
		"merchant_id": merchant.ID,
		"start_date":  dateRange.StartDate(),
		"end_date":    dateRange.EndDate(),
	})
	logger.Info("reports: fetching publisher report")

	resp, err := s.Client.GetPublisherReport(ctx, awinclient.PublisherReportParams{
		MerchantID:  merchant.ID,
		StartDate:   dateRange.StartDate(),
		EndDate:     dateRange.EndDate(),
		AccessToken: credential,
	})
	if err != nil {
		var statusErr *awinclient.StatusError
		if errors.As(err, &statusErr) {
			logger.WithFields(logrus.Fields{
				"status_code": statusErr.StatusCode,
				"error":       err.Error(),
			}).Error("reports: awin returned non-success status")

			return nil, domain.NewRemoteFailure(
				merchant.Label,
				statusErr.StatusCode,
				fmt.Sprintf("Failed for %s: %d", merchant.Label, statusErr.StatusCode),
			)
		}

		logger.WithError(err).Error("reports: failed to fetch publisher report")

		return nil, domain.NewRemoteFailure(
			merchant.Label,
			0,
			fmt.Sprintf("Failed for %s: %s", merchant.Label, err.Error()),
		)
	}

	if len(resp) == 0 {
		logger.Warn("reports: no data returned for merchant")
		return nil, domain.NewNoDataFailure(merchant.Label)
	}

	logger.WithField("records", len(resp)).Debug("reports: publisher report fetched")

	return resp, nil
}
