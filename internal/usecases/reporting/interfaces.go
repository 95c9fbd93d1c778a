package reporting

import (
	"context"

	"github.com/vfg2006/awin-report-api/internal/domain"
)

// Builder gera os relatórios por merchant a partir da API da Awin
type Builder interface {
	// Build processa os merchants na ordem da seleção. Falhas de um merchant não interrompem os demais.
	Build(ctx context.Context, selection domain.MerchantSelection, dateRange domain.DateRange, credential string) ([]*domain.MerchantReport, []*domain.ReportFailure)
}

// Runner é o ponto de entrada usado pela API e pelo agendador
type Runner interface {
	// Run executa fetch, normalização, ordenação e serialização; arquiva se solicitado
	Run(ctx context.Context, req RunRequest) (*RunResult, error)

	// Archive empacota os artefatos de uma execução já concluída
	Archive(result *RunResult) (*domain.ExportArtifact, error)

	// Merchants retorna os merchants configurados, na ordem da configuração
	Merchants() []domain.Merchant
}
