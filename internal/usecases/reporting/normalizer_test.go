package reporting

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	awindomain "github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/domain"
	"github.com/vfg2006/awin-report-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		record awindomain.PublisherRecord
		want   domain.ReportRow
	}{
		{
			name: "registro completo",
			record: awindomain.PublisherRecord{
				PublisherID:   json.Number("1"),
				PublisherName: "P1",
				Clicks:        json.Number("100"),
				TotalNo:       json.Number("5"),
				TotalValue:    json.Number("250.0"),
			},
			want: domain.ReportRow{
				PublisherID:    "1",
				PublisherName:  "P1",
				Clicks:         100,
				SalesCount:     5,
				TotalValue:     "$250.0",
				ConversionRate: "5.00%",
			},
		},
		{
			name:   "campos ausentes viram zero",
			record: awindomain.PublisherRecord{},
			want: domain.ReportRow{
				TotalValue:     "$0.0",
				ConversionRate: "0.00%",
			},
		},
		{
			name: "sem cliques usa divisor 1",
			record: awindomain.PublisherRecord{
				PublisherID: json.Number("7"),
				TotalNo:     json.Number("3"),
				TotalValue:  json.Number("19.99"),
			},
			want: domain.ReportRow{
				PublisherID:    "7",
				SalesCount:     3,
				TotalValue:     "$19.99",
				ConversionRate: "300.00%",
			},
		},
		{
			name: "números em texto e float",
			record: awindomain.PublisherRecord{
				PublisherID:   float64(12345),
				PublisherName: "Cashback Co",
				Clicks:        "7",
				TotalNo:       "2",
				TotalValue:    "250.50",
			},
			want: domain.ReportRow{
				PublisherID:    "12345",
				PublisherName:  "Cashback Co",
				Clicks:         7,
				SalesCount:     2,
				TotalValue:     "$250.5",
				ConversionRate: "28.57%",
			},
		},
		{
			name: "valores fracionários são truncados",
			record: awindomain.PublisherRecord{
				Clicks:     json.Number("12.0"),
				TotalNo:    json.Number("1.5"),
				TotalValue: float64(0.1),
			},
			want: domain.ReportRow{
				Clicks:         12,
				SalesCount:     1,
				TotalValue:     "$0.1",
				ConversionRate: "8.33%",
			},
		},
		{
			name: "valores inválidos viram zero",
			record: awindomain.PublisherRecord{
				PublisherName: "Broken",
				Clicks:        "abc",
				TotalNo:       map[string]any{"x": 1},
				TotalValue:    "n/a",
			},
			want: domain.ReportRow{
				PublisherName:  "Broken",
				TotalValue:     "$0.0",
				ConversionRate: "0.00%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.record))
		})
	}
}

func TestNormalize_IsPure(t *testing.T) {
	record := awindomain.PublisherRecord{
		PublisherID:   json.Number("9"),
		PublisherName: "P9",
		Clicks:        json.Number("33"),
		TotalNo:       json.Number("4"),
		TotalValue:    json.Number("120.75"),
	}
	equivalent := awindomain.PublisherRecord{
		PublisherID:   json.Number("9"),
		PublisherName: "P9",
		Clicks:        json.Number("33"),
		TotalNo:       json.Number("4"),
		TotalValue:    json.Number("120.75"),
	}

	first := Normalize(record)
	assert.Equal(t, first, Normalize(record))
	assert.Equal(t, first, Normalize(equivalent))
}

func TestFormatConversionRate(t *testing.T) {
	t.Run("sem cliques a taxa é vendas * 100", func(t *testing.T) {
		for sales := int64(1); sales <= 20; sales++ {
			assert.Equal(t, fmt.Sprintf("%d00.00%%", sales), FormatConversionRate(sales, 0))
		}
	})

	t.Run("com cliques a taxa é vendas / cliques * 100", func(t *testing.T) {
		for clicks := int64(1); clicks <= 60; clicks++ {
			for sales := int64(0); sales <= 12; sales++ {
				expected := fmt.Sprintf("%.2f%%", float64(sales)/float64(clicks)*100)
				assert.Equal(t, expected, FormatConversionRate(sales, clicks))
			}
		}
	})

	t.Run("valores conhecidos", func(t *testing.T) {
		assert.Equal(t, "5.00%", FormatConversionRate(5, 100))
		assert.Equal(t, "33.33%", FormatConversionRate(1, 3))
		assert.Equal(t, "66.67%", FormatConversionRate(2, 3))
		assert.Equal(t, "0.00%", FormatConversionRate(0, 0))
		assert.Equal(t, "200.00%", FormatConversionRate(2, -4))
	})
}
