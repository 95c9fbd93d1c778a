package domain

const (
	ContentTypeCSV = "text/csv; charset=utf-8"
	ContentTypeZip = "application/zip"

	// ArchiveFilename é o nome fixo do arquivo que agrega todos os relatórios de uma execução
	ArchiveFilename = "awin_reports.zip"
)

type ExportArtifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}
