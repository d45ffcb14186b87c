package interfaces

import (
	"context"

	"github.com/cellstrat/invoicestack/dto"
)

type OrchestratorService interface {
	// Run executes one linear batch: scan, number, classify, render,
	// deliver, archive.
	Run(ctx context.Context) (*dto.RunResult, error)
}
