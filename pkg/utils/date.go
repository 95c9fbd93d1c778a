package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "data inválida %q, esperado YYYY-MM-DD", dateStr)
	}

	return date, nil
}
