package reporting

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/awin-report-api/infrastructure/integrator/awin"
	"github.com/vfg2006/awin-report-api/internal/domain"
)

type Service struct {
	fetcher              awin.ReportFetcher
	maxConcurrentFetches int
}

func NewService(fetcher awin.ReportFetcher, maxConcurrentFetches int) *Service {
	if maxConcurrentFetches < 1 {
		maxConcurrentFetches = 1
	}

	return &Service{
		fetcher:              fetcher,
		maxConcurrentFetches: maxConcurrentFetches,
	}
}

// merchantOutcome guarda o resultado de um merchant na posição da seleção
type merchantOutcome struct {
	report  *domain.MerchantReport
	failure *domain.ReportFailure
}

func (s *Service) Build(
	ctx context.Context,
	selection domain.MerchantSelection,
	dateRange domain.DateRange,
	credential string,
) ([]*domain.MerchantReport, []*domain.ReportFailure) {
	outcomes := make([]merchantOutcome, len(selection))

	semaphore := make(chan struct{}, s.maxConcurrentFetches)
	var wg sync.WaitGroup

	for i, merchant := range selection {
		semaphore <- struct{}{}

		// Cancelamento abandona os merchants ainda não iniciados
		if err := ctx.Err(); err != nil {
			<-semaphore
			outcomes[i].failure = domain.NewRemoteFailure(
				merchant.Label,
				0,
				fmt.Sprintf("Skipped %s: %s", merchant.Label, err.Error()),
			)
			continue
		}

		wg.Add(1)
		go func(idx int, m domain.Merchant) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			report, failure := s.buildMerchantReport(ctx, m, dateRange, credential)
			outcomes[idx] = merchantOutcome{report: report, failure: failure}
		}(i, merchant)
	}

	wg.Wait()

	reports := make([]*domain.MerchantReport, 0, len(selection))
	failures := make([]*domain.ReportFailure, 0)
	for _, outcome := range outcomes {
		if outcome.failure != nil {
			failures = append(failures, outcome.failure)
			continue
		}
		reports = append(reports, outcome.report)
	}

	return reports, failures
}

func (s *Service) buildMerchantReport(
	ctx context.Context,
	merchant domain.Merchant,
	dateRange domain.DateRange,
	credential string,
) (*domain.MerchantReport, *domain.ReportFailure) {
	records, err := s.fetcher.FetchPublisherReport(ctx, merchant, dateRange, credential)
	if err != nil {
		var failure *domain.ReportFailure
		if errors.As(err, &failure) {
			return nil, failure
		}
		return nil, domain.NewRemoteFailure(merchant.Label, 0, fmt.Sprintf("Failed for %s: %s", merchant.Label, err.Error()))
	}

	rows := make([]domain.ReportRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, Normalize(record))
	}
	SortRows(rows)

	logrus.WithFields(logrus.Fields{
		"merchant": merchant.Label,
		"rows":     len(rows),
	}).Info("reports: merchant report built")

	return &domain.MerchantReport{
		Merchant:  merchant,
		Rows:      rows,
		DateRange: dateRange,
	}, nil
}

// SortRows ordena por cliques de forma decrescente, mantendo a ordem da API nos empates
func SortRows(rows []domain.ReportRow) {
	slices.SortStableFunc(rows, func(a, b domain.ReportRow) int {
		return cmp.Compare(b.Clicks, a.Clicks)
	})
}
