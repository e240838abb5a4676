package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestLedgerRepository_ListByMember_OrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	day := time.Date(2022, 1, 5, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "ledger_entries" WHERE member_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "concept", "amount", "category", "status", "created_at"}).
			AddRow(2, 1, "Canje", -30.0, 200, "A", day).
			AddRow(1, 1, "Visita", 50.0, 100, "A", day))

	entries, err := repo.ListByMember(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, uint(2), entries[0].ID)
	require.Equal(t, -30.0, entries[0].Amount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_ListAll_AppliesLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	day := time.Date(2022, 1, 5, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "ledger_entries" ORDER BY created_at DESC, id DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "concept", "amount", "category", "status", "created_at"}).
			AddRow(3, 2, "Bono", 5.0, 100, "A", day))

	entries, err := repo.ListAll(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_ListWithBalances_SingleAggregateQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemberRepository(db)

	day := time.Date(2020, 5, 20, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT m\.id, m\.email, m\.name, m\.referral_link, m\.status, m\.created_at, COALESCE\(SUM\(e\.amount\), 0\) AS balance FROM members m LEFT JOIN ledger_entries e ON e\.member_id = m\.id GROUP BY m\.id ORDER BY m\.id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "referral_link", "status", "created_at", "balance"}).
			AddRow(1, "maria@example.com", "Maria", "", "A", day, 37.5).
			AddRow(2, "ana@example.com", "Ana", "", "A", day, 0.0))

	rows, err := repo.ListWithBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 37.5, rows[0].Balance)
	require.Equal(t, 0.0, rows[1].Balance)
	require.NoError(t, mock.ExpectationsWereMet())
}
