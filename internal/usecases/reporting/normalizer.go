package reporting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	awindomain "github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/domain"
	"github.com/vfg2006/awin-report-api/internal/domain"
)

// Normalize converte um registro bruto da Awin em uma linha do relatório.
// Valores ausentes ou inválidos viram zero; a função nunca falha.
func Normalize(record awindomain.PublisherRecord) domain.ReportRow {
	clicks := toInt64(record.Clicks)
	sales := toInt64(record.TotalNo)

	return domain.ReportRow{
		PublisherID:    toString(record.PublisherID),
		PublisherName:  toString(record.PublisherName),
		Clicks:         clicks,
		SalesCount:     sales,
		TotalValue:     FormatTotalValue(toDecimal(record.TotalValue)),
		ConversionRate: FormatConversionRate(sales, clicks),
	}
}

// FormatConversionRate calcula vendas / max(cliques, 1) * 100 com duas casas
func FormatConversionRate(sales, clicks int64) string {
	divisor := clicks
	if divisor < 1 {
		divisor = 1
	}

	return fmt.Sprintf("%.2f%%", float64(sales)/float64(divisor)*100)
}

// FormatTotalValue usa a menor representação decimal do valor, sempre com ao menos uma casa
func FormatTotalValue(value decimal.Decimal) string {
	s := value.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return "$" + s
}

func toString(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func toInt64(v any) int64 {
	if v == nil {
		return 0
	}

	if n, err := cast.ToInt64E(v); err == nil {
		return n
	}

	// Valores fracionários ("12.5") são truncados
	if f, err := cast.ToFloat64E(v); err == nil {
		return int64(f)
	}

	return 0
}

func toDecimal(v any) decimal.Decimal {
	s, err := cast.ToStringE(v)
	if err != nil || strings.TrimSpace(s) == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
