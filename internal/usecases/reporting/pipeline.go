package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/awin-report-api/internal/domain"
	"github.com/vfg2006/awin-report-api/internal/usecases/exporting"
	"github.com/vfg2006/awin-report-api/pkg/utils"
)

type RunState string

const (
	RunStateCompleted RunState = "Completed"
	RunStateArchived  RunState = "Archived"
)

type RunRequest struct {
	Selection  string
	DateRange  domain.DateRange
	Credential string
	Archive    bool
}

type RunResult struct {
	RunID       string                   `json:"run_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	State       RunState                 `json:"state"`
	Reports     []*domain.MerchantReport `json:"reports"`
	Artifacts   []*domain.ExportArtifact `json:"artifacts"`
	Archive     *domain.ExportArtifact   `json:"archive,omitempty"`
	Failures    []*domain.ReportFailure  `json:"failures"`
}

type Pipeline struct {
	merchants []domain.Merchant
	builder   Builder
	packager  exporting.Packager
	now       func() time.Time
}

func NewPipeline(merchants []domain.Merchant, builder Builder, packager exporting.Packager) *Pipeline {
	return &Pipeline{
		merchants: merchants,
		builder:   builder,
		packager:  packager,
		now:       time.Now,
	}
}

// WithClock substitui o relógio usado para a data de geração dos arquivos
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

func (p *Pipeline) Merchants() []domain.Merchant {
	merchants := make([]domain.Merchant, len(p.merchants))
	copy(merchants, p.merchants)
	return merchants
}

func (p *Pipeline) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	selection, err := domain.ExpandSelection(p.merchants, req.Selection)
	if err != nil {
		return nil, err
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		logrus.WithError(err).Warn("reports: failed to generate run id")
	}

	result := &RunResult{
		RunID:       runID,
		GeneratedAt: p.now(),
		State:       RunStateCompleted,
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"merchants":  selection.Labels(),
		"start_date": req.DateRange.StartDate(),
		"end_date":   req.DateRange.EndDate(),
	})
	logger.Info("reports: starting report run")

	result.Reports, result.Failures = p.builder.Build(ctx, selection, req.DateRange, req.Credential)

	result.Artifacts = make([]*domain.ExportArtifact, 0, len(result.Reports))
	for _, report := range result.Reports {
		artifact, err := p.packager.Serialize(report, result.GeneratedAt)
		if err != nil {
			logger.WithError(err).WithField("merchant", report.Merchant.Label).Error("reports: failed to serialize report")
			return nil, err
		}

		logger.WithField("filename", artifact.Filename).Info("reports: report file is ready")
		result.Artifacts = append(result.Artifacts, artifact)
	}

	// Sem nenhum arquivo a execução termina como Completed, sem zip
	if req.Archive && len(result.Artifacts) > 0 {
		if _, err := p.Archive(result); err != nil {
			logger.WithError(err).Error("reports: failed to archive reports")
			return nil, err
		}
	}

	for _, failure := range result.Failures {
		logger.WithFields(logrus.Fields{
			"merchant":    failure.MerchantLabel,
			"kind":        failure.Kind,
			"status_code": failure.StatusCode,
		}).Warn("reports: " + failure.Detail)
	}

	logger.WithFields(logrus.Fields{
		"state":     result.State,
		"artifacts": len(result.Artifacts),
		"failures":  len(result.Failures),
	}).Info("reports: report run finished")

	return result, nil
}

func (p *Pipeline) Archive(result *RunResult) (*domain.ExportArtifact, error) {
	if result == nil {
		return nil, domain.NewPackagingFailure("nenhuma execução para arquivar")
	}

	archive, err := p.packager.Archive(result.Artifacts)
	if err != nil {
		return nil, err
	}

	result.Archive = archive
	result.State = RunStateArchived

	return archive, nil
}
