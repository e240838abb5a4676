package services

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"clubpuntos/internal/models/db_models"
)

func seedLedger(t *testing.T) (*stubLedgerRepo, *stubMemberRepo) {
	t.Helper()
	ledger := newStubLedgerRepo()
	members := newStubMemberRepo(ledger)
	a := members.add(db_models.Member{Email: "a@example.com"})
	b := members.add(db_models.Member{Email: "b@example.com"})

	ctx := context.Background()
	for _, e := range []db_models.LedgerEntry{
		{MemberID: a.ID, Concept: "Visita al local", Amount: 50, Category: db_models.CategoryCredit},
		{MemberID: a.ID, Concept: "Canje de premio", Amount: -30, Category: db_models.CategoryDebit},
		{MemberID: b.ID, Concept: "VISITA especial", Amount: 20, Category: db_models.CategoryCredit},
		{MemberID: b.ID, Concept: "Bono", Amount: 5, Category: db_models.CategoryCredit},
	} {
		entry := e
		require.NoError(t, ledger.Insert(ctx, &entry))
	}
	return ledger, members
}

func TestReportService_ExportCSV_ConceptFilterIsCaseInsensitive(t *testing.T) {
	ledger, _ := seedLedger(t)
	svc := NewReportService(ledger)

	out, err := svc.ExportCSV(context.Background(), "visita")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)

	// Header plus the two Visita entries, nothing else.
	require.Len(t, records, 3)
	require.Equal(t, []string{"id", "member_id", "concept", "amount", "category", "status", "created_at"}, records[0])
	for _, record := range records[1:] {
		require.Contains(t, strings.ToLower(record[2]), "visita")
	}
}

func TestReportService_ExportCSV_MemberIDFilter(t *testing.T) {
	ledger, _ := seedLedger(t)
	svc := NewReportService(ledger)

	out, err := svc.ExportCSV(context.Background(), "2")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + member 2's two entries
	for _, record := range records[1:] {
		require.Equal(t, "2", record[1])
	}
}

func TestReportService_ExportCSV_NoFilterExportsEverything(t *testing.T) {
	ledger, _ := seedLedger(t)
	svc := NewReportService(ledger)

	out, err := svc.ExportCSV(context.Background(), "")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
}

func TestReportService_ListEntries_LimitAndOrder(t *testing.T) {
	ledger, _ := seedLedger(t)
	svc := NewReportService(ledger)

	entries, err := svc.ListEntries(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first; same-day entries fall back to descending id.
	require.Greater(t, entries[0].ID, entries[1].ID)

	all, err := svc.ListEntries(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
}
