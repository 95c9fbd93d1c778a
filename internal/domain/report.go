package domain

import (
	"strconv"
	"time"
)

type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func (d DateRange) StartDate() string {
	return d.Start.Format(time.DateOnly)
}

func (d DateRange) EndDate() string {
	return d.End.Format(time.DateOnly)
}

// ReportRow representa uma linha normalizada do relatório de performance por publisher
type ReportRow struct {
	PublisherID    string `json:"publisher_id"`
	PublisherName  string `json:"publisher_name"`
	Clicks         int64  `json:"clicks"`
	SalesCount     int64  `json:"sales_count"`
	TotalValue     string `json:"total_value"`
	ConversionRate string `json:"conversion_rate"`
}

// ReportHeader são os rótulos das colunas do relatório, na ordem de ReportRow
var ReportHeader = []string{
	"Publisher ID",
	"Publisher Name",
	"Clicks",
	"# of Sales",
	"Total Value",
	"Conv. Rate",
}

func (r ReportRow) Record() []string {
	return []string{
		r.PublisherID,
		r.PublisherName,
		strconv.FormatInt(r.Clicks, 10),
		strconv.FormatInt(r.SalesCount, 10),
		r.TotalValue,
		r.ConversionRate,
	}
}

type MerchantReport struct {
	Merchant  Merchant    `json:"merchant"`
	Rows      []ReportRow `json:"rows"`
	DateRange DateRange   `json:"date_range"`
}
