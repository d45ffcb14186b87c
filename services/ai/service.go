package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/cellstrat/invoicestack/config"
	"github.com/cellstrat/invoicestack/dto"
	"github.com/cellstrat/invoicestack/interfaces"
	"github.com/cellstrat/invoicestack/internal/tracing"
)

// systemPrompt instructs the model to classify the email body and extract
// the amount, leaving the date unset unless it is stated explicitly.
const systemPrompt = `You will be given an email body. First check if the email body is asking for an invoice with some defined amount. If it is, extract the invoice amount and the invoice date (if mentioned explicitly in the body). If it is not, return None for the amount and date can be the email date.`

// invoiceParamsSchema is the JSON schema the completion must conform to.
// The invoice_date format matches the display format used on invoices,
// like "30 April 2025".
var invoiceParamsSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "is_invoice": {
      "type": "boolean",
      "description": "Whether the email body is asking for an invoice"
    },
    "invoice_amount": {
      "type": ["integer", "null"],
      "description": "The amount in the invoice"
    },
    "invoice_date": {
      "type": ["string", "null"],
      "description": "The date for the invoice in format like '30 April 2025'"
    }
  },
  "required": ["is_invoice", "invoice_amount", "invoice_date"],
  "additionalProperties": false
}`)

type extractionService struct {
	cfg *config.ExtractionConfig
}

func NewExtractionService(cfg *config.ExtractionConfig) interfaces.ExtractionService {
	return &extractionService{
		cfg: cfg,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type       string     `json:"type"`
	JSONSchema jsonSchema `json:"json_schema"`
}

type jsonSchema struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Refusal string `json:"refusal"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *extractionService) ExtractInvoiceParams(ctx context.Context, emailBody string) (*dto.InvoiceParams, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "extractionService.ExtractInvoiceParams")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	request := chatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: emailBody},
		},
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchema{
				Name:   "invoice_params",
				Strict: true,
				Schema: invoiceParamsSchema,
			},
		},
	}

	payload, err := json.Marshal(request)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.cfg.ApiUrl+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Authorization", "Bearer "+s.cfg.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		Timeout: 60 * time.Second,
	}
	// Execute the request
	resp, err := client.Do(req)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "unable to read response body")
	}

	// Check status code
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err = fmt.Errorf("request failed with status code %d: %s", resp.StatusCode, string(body))
		tracing.TraceErr(span, err)
		return nil, err
	}

	var response chatCompletionResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}

	if len(response.Choices) == 0 {
		err = errors.New("completion returned no choices")
		tracing.TraceErr(span, err)
		return nil, err
	}
	if response.Choices[0].Message.Refusal != "" {
		err = fmt.Errorf("completion refused: %s", response.Choices[0].Message.Refusal)
		tracing.TraceErr(span, err)
		return nil, err
	}

	var params dto.InvoiceParams
	err = json.Unmarshal([]byte(response.Choices[0].Message.Content), &params)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "completion content does not conform to schema")
	}
	tracing.LogObjectAsJson(span, "invoice_params", params)

	return &params, nil
}
