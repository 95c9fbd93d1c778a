package awinclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/awin-report-api/internal/config"
)

const defaultRequestTimeout = 30 * time.Second

// Os números da resposta são lidos como json.Number para não perder precisão
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

type Client interface {
	GetPublisherReport(ctx context.Context, params PublisherReportParams) (PublisherReportResponse, error)
}

type AwinClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Awin.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &AwinClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
