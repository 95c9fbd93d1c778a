package awinclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	awindomain "github.com/vfg2006/awin-report-api/infrastructure/integrator/awin/domain"
)

// Limite de leitura do corpo de erro, suficiente para a mensagem da Awin
const maxErrorBodySize = 4 << 10

type PublisherReportParams struct {
	MerchantID  string
	StartDate   string
	EndDate     string
	AccessToken string
}

type PublisherReportResponse []awindomain.PublisherRecord

// StatusError é retornado quando a Awin responde com status diferente de 2xx
type StatusError struct {
	StatusCode int
	Status     string
	Body       *awindomain.ErrorResponse
}

func (e *StatusError) Error() string {
	if e.Body != nil && e.Body.Detail() != "" {
		return fmt.Sprintf("requisição falhou com status: %s (%s)", e.Status, e.Body.Detail())
	}
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

func (c *AwinClient) GetPublisherReport(ctx context.Context, params PublisherReportParams) (PublisherReportResponse, error) {
	var response PublisherReportResponse

	endpoint, err := url.Parse(c.config.Awin.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "advertisers", url.PathEscape(params.MerchantID), "reports", "publisher")

	query := endpoint.Query()
	query.Set("accessToken", params.AccessToken)
	query.Set("dateType", "transaction")
	query.Set("startDate", params.StartDate)
	query.Set("endDate", params.EndDate)
	query.Set("timezone", "UTC")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error carrega a URL completa, com o accessToken
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		var errResp awindomain.ErrorResponse
		if len(body) > 0 && json.Unmarshal(body, &errResp) == nil {
			statusErr.Body = &errResp
		}

		return response, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if len(body) == 0 {
		return response, nil
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
