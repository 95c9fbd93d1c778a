package domain

import (
	"errors"
	"fmt"
)

// AllMerchants é o token de seleção que expande para todos os merchants configurados
const AllMerchants = "All"

var ErrUnknownMerchant = errors.New("merchant não configurado")

type Merchant struct {
	Label string `json:"label"`
	ID    string `json:"id"`
}

// MerchantSelection é a lista ordenada de merchants processados em uma execução
type MerchantSelection []Merchant

func (s MerchantSelection) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, m := range s {
		labels = append(labels, m.Label)
	}
	return labels
}

// ExpandSelection resolve o token de seleção em uma lista concreta de merchants,
// preservando a ordem da configuração.
func ExpandSelection(configured []Merchant, token string) (MerchantSelection, error) {
	if token == AllMerchants {
		selection := make(MerchantSelection, len(configured))
		copy(selection, configured)
		return selection, nil
	}

	for _, m := range configured {
		if m.Label == token {
			return MerchantSelection{m}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMerchant, token)
}
