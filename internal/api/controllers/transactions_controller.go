package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clubpuntos/internal/models/db_models"
	"clubpuntos/internal/models/request_models"
	"clubpuntos/internal/services"
	"clubpuntos/pkg/utils"
)

type TransactionsController struct {
	transactionService services.TransactionServiceInterface
	reportService      services.ReportServiceInterface
}

func NewTransactionsController(transactionService services.TransactionServiceInterface, reportService services.ReportServiceInterface) *TransactionsController {
	return &TransactionsController{
		transactionService: transactionService,
		reportService:      reportService,
	}
}

// Record godoc
// @Summary Record a point transaction
// @Description Append a credit (positive amount) or debit (negative amount) entry to a member's ledger
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body request_models.RecordTransactionRequest true "Transaction payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/transactions [post]
func (t *TransactionsController) Record(c *gin.Context) {
	var req request_models.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := t.transactionService.RecordTransaction(
		c.Request.Context(),
		req.MemberID,
		req.Amount,
		req.Concept,
		db_models.EntryCategory(req.Category),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Transaction recorded successfully")
}

// List godoc
// @Summary List ledger entries
// @Description All entries, newest first, optionally limited
// @Tags Transactions
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/transactions [get]
func (t *TransactionsController) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	entries, err := t.reportService.ListEntries(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Transactions fetched successfully")
}

// Export godoc
// @Summary Export the ledger as CSV
// @Description Optional q filter matches concept substrings case-insensitively, or member ids
// @Tags Transactions
// @Produce text/csv
// @Param q query string false "Filter text"
// @Success 200 {string} string
// @Security BearerAuth
// @Router /api/transactions/export [get]
func (t *TransactionsController) Export(c *gin.Context) {
	csvBytes, err := t.reportService.ExportCSV(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ledger.csv"`)
	c.Data(http.StatusOK, "text/csv", csvBytes)
}
