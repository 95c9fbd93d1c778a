package exporting

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/awin-report-api/internal/domain"
)

// Packager serializa relatórios em CSV e agrega os arquivos de uma execução em um zip
type Packager interface {
	Serialize(report *domain.MerchantReport, generatedAt time.Time) (*domain.ExportArtifact, error)
	Archive(artifacts []*domain.ExportArtifact) (*domain.ExportArtifact, error)
}

type CSVPackager struct {
	now func() time.Time
}

func NewPackager() *CSVPackager {
	return &CSVPackager{now: time.Now}
}

// Separadores de caminho no label gerariam diretórios dentro do zip
var filenameReplacer = strings.NewReplacer("/", "-", "\\", "-")

func ReportFilename(merchantLabel string, generatedAt time.Time) string {
	return fmt.Sprintf("%s_report_%s.csv", filenameReplacer.Replace(merchantLabel), generatedAt.Format(time.DateOnly))
}

func Footer(report *domain.MerchantReport) string {
	return fmt.Sprintf(
		"Merchant report for %s from %s to %s",
		report.Merchant.Label,
		report.DateRange.StartDate(),
		report.DateRange.EndDate(),
	)
}

func (p *CSVPackager) Serialize(report *domain.MerchantReport, generatedAt time.Time) (*domain.ExportArtifact, error) {
	if report == nil {
		return nil, domain.NewPackagingFailure("relatório vazio não pode ser serializado")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(report.Rows)+3)
	records = append(records, domain.ReportHeader)
	for _, row := range report.Rows {
		records = append(records, row.Record())
	}
	records = append(records, []string{}, []string{Footer(report)})

	if err := w.WriteAll(records); err != nil {
		return nil, packagingFailure(report.Merchant.Label, errors.Wrap(err, "erro ao escrever o CSV"))
	}

	return &domain.ExportArtifact{
		Filename:    ReportFilename(report.Merchant.Label, generatedAt),
		ContentType: domain.ContentTypeCSV,
		Content:     buf.Bytes(),
	}, nil
}

func (p *CSVPackager) Archive(artifacts []*domain.ExportArtifact) (*domain.ExportArtifact, error) {
	if len(artifacts) == 0 {
		return nil, domain.NewPackagingFailure("nenhum relatório gerado para compor o arquivo")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := p.now()

	for _, artifact := range artifacts {
		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:     artifact.Filename,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, packagingFailure("", errors.Wrapf(err, "erro ao criar a entrada %s", artifact.Filename))
		}

		if _, err := entry.Write(artifact.Content); err != nil {
			return nil, packagingFailure("", errors.Wrapf(err, "erro ao escrever a entrada %s", artifact.Filename))
		}
	}

	if err := zw.Close(); err != nil {
		return nil, packagingFailure("", errors.Wrap(err, "erro ao finalizar o zip"))
	}

	return &domain.ExportArtifact{
		Filename:    domain.ArchiveFilename,
		ContentType: domain.ContentTypeZip,
		Content:     buf.Bytes(),
	}, nil
}

func packagingFailure(merchantLabel string, err error) *domain.ReportFailure {
	failure := domain.NewPackagingFailure(err.Error())
	failure.MerchantLabel = merchantLabel
	return failure
}
