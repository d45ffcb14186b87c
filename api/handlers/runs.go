package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cellstrat/invoicestack/interfaces"
)

// TriggerRun executes one batch run. The response is 200 with a processed
// count whenever the run completes, regardless of how many invoices were
// produced; a failed run surfaces as 500.
func TriggerRun(orchestrator interfaces.OrchestratorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := orchestrator.Run(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  fmt.Sprintf("Successfully processed %d invoices", result.Processed),
			"runId":    result.RunID,
			"invoices": result.Invoices,
		})
	}
}
