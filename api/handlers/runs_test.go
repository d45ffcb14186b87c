package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellstrat/invoicestack/dto"
)

type fakeOrchestrator struct {
	result *dto.RunResult
	err    error
}

func (f *fakeOrchestrator) Run(ctx context.Context) (*dto.RunResult, error) {
	return f.result, f.err
}

func performRun(orchestrator *fakeOrchestrator) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/v1/runs", TriggerRun(orchestrator))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/runs", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestTriggerRun_ReturnsProcessedCount(t *testing.T) {
	orchestrator := &fakeOrchestrator{
		result: &dto.RunResult{
			RunID:     "run_abc123",
			Processed: 2,
			Invoices: []dto.InvoiceOutcome{
				{InvoiceNumber: 13, Amount: 25000, Sent: true, Archived: true},
				{InvoiceNumber: 14, Amount: 30000, Sent: true, Archived: true},
			},
		},
	}

	w := performRun(orchestrator)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Successfully processed 2 invoices", body["message"])
	assert.Equal(t, "run_abc123", body["runId"])
}

func TestTriggerRun_ZeroInvoicesStillOk(t *testing.T) {
	orchestrator := &fakeOrchestrator{
		result: &dto.RunResult{RunID: "run_empty", Processed: 0},
	}

	w := performRun(orchestrator)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully processed 0 invoices")
}

func TestTriggerRun_PipelineErrorIs500(t *testing.T) {
	orchestrator := &fakeOrchestrator{
		err: errors.New("imap: connection refused"),
	}

	w := performRun(orchestrator)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
