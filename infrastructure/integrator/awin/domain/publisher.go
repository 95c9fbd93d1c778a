package awindomain

// PublisherRecord é uma entrada do relatório de publishers da Awin.
// Os campos ficam sem tipo para que valores ausentes ou malformados sejam
// normalizados depois, sem falhar a decodificação da resposta inteira.
type PublisherRecord struct {
	PublisherID   any `json:"publisherId"`
	PublisherName any `json:"publisherName"`
	Clicks        any `json:"clicks"`
	TotalNo       any `json:"totalNo"`
	TotalValue    any `json:"totalValue"`
}
