package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"clubpuntos/internal/models/db_models"
	"clubpuntos/internal/repositories"
	"clubpuntos/pkg/utils"
)

type ReportServiceInterface interface {
	ListEntries(ctx context.Context, limit int) ([]db_models.LedgerEntry, error)
	// ExportCSV renders the ledger as delimited text. A non-empty filter
	// keeps entries whose concept contains it case-insensitively, or
	// whose stringified member id contains it.
	ExportCSV(ctx context.Context, filter string) ([]byte, error)
}

type ReportService struct {
	ledgerRepo repositories.LedgerRepository
}

func NewReportService(ledgerRepo repositories.LedgerRepository) ReportServiceInterface {
	return &ReportService{
		ledgerRepo: ledgerRepo,
	}
}

func (r *ReportService) ListEntries(ctx context.Context, limit int) ([]db_models.LedgerEntry, error) {
	entries, err := r.ledgerRepo.ListAll(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (r *ReportService) ExportCSV(ctx context.Context, filter string) ([]byte, error) {

	entries, err := r.ledgerRepo.ListAll(ctx, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if filter != "" {
		entries = filterEntries(entries, filter)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "member_id", "concept", "amount", "category", "status", "created_at"}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		record := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			strconv.FormatUint(uint64(e.MemberID), 10),
			e.Concept,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			strconv.Itoa(int(e.Category)),
			string(e.Status),
			e.CreatedAt.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func filterEntries(entries []db_models.LedgerEntry, filter string) []db_models.LedgerEntry {
	needle := strings.ToLower(filter)
	kept := entries[:0:0]
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Concept), needle) {
			kept = append(kept, e)
			continue
		}
		if strings.Contains(strconv.FormatUint(uint64(e.MemberID), 10), filter) {
			kept = append(kept, e)
		}
	}
	return kept
}
