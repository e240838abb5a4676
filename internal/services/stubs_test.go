package services

import (
	"context"
	"errors"
	"sort"

	"clubpuntos/internal/models/db_models"
	"clubpuntos/internal/repositories"
)

// In-memory repository stubs. Ids are assigned sequentially the way the
// storage layer would.

type stubLedgerRepo struct {
	entries []db_models.LedgerEntry
	nextID  uint
	failing bool
}

func newStubLedgerRepo() *stubLedgerRepo {
	return &stubLedgerRepo{nextID: 1}
}

func (s *stubLedgerRepo) Insert(_ context.Context, entry *db_models.LedgerEntry) error {
	if s.failing {
		return errors.New("insert failed")
	}
	entry.ID = s.nextID
	s.nextID++
	if entry.Status == "" {
		entry.Status = db_models.StatusActive
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = db_models.Today()
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *stubLedgerRepo) ListByMember(_ context.Context, memberID uint) ([]db_models.LedgerEntry, error) {
	var out []db_models.LedgerEntry
	for _, e := range s.entries {
		if e.MemberID == memberID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *stubLedgerRepo) ListAll(_ context.Context, limit int) ([]db_models.LedgerEntry, error) {
	out := make([]db_models.LedgerEntry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubLedgerRepo) BulkInsert(ctx context.Context, entries []db_models.LedgerEntry) error {
	for i := range entries {
		if err := s.Insert(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}

type stubMemberRepo struct {
	members     map[uint]db_models.Member
	nextID      uint
	ledger      *stubLedgerRepo
	failWelcome bool
}

func newStubMemberRepo(ledger *stubLedgerRepo) *stubMemberRepo {
	return &stubMemberRepo{
		members: make(map[uint]db_models.Member),
		nextID:  1,
		ledger:  ledger,
	}
}

func (s *stubMemberRepo) add(member db_models.Member) db_models.Member {
	if member.ID == 0 {
		member.ID = s.nextID
	}
	if member.ID >= s.nextID {
		s.nextID = member.ID + 1
	}
	if member.Status == "" {
		member.Status = db_models.StatusActive
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = db_models.Today()
	}
	s.members[member.ID] = member
	return member
}

func (s *stubMemberRepo) FindByID(_ context.Context, id uint) (*db_models.Member, error) {
	if m, ok := s.members[id]; ok {
		clone := m
		return &clone, nil
	}
	return nil, nil
}

func (s *stubMemberRepo) FindByEmail(_ context.Context, email string) (*db_models.Member, error) {
	for _, m := range s.members {
		if m.Email == email {
			clone := m
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *stubMemberRepo) ListAll(_ context.Context) ([]db_models.Member, error) {
	return s.sorted(), nil
}

func (s *stubMemberRepo) RegisterWithWelcome(ctx context.Context, member *db_models.Member, welcome *db_models.LedgerEntry) error {
	if s.failWelcome {
		// Welcome insert failure rolls the member back too.
		return errors.New("welcome entry failed")
	}
	*member = s.add(*member)
	welcome.MemberID = member.ID
	return s.ledger.Insert(ctx, welcome)
}

func (s *stubMemberRepo) BulkInsert(_ context.Context, members []db_models.Member) error {
	for _, m := range members {
		if _, exists := s.members[m.ID]; !exists {
			s.add(m)
		}
	}
	return nil
}

func (s *stubMemberRepo) ListWithBalances(_ context.Context) ([]repositories.MemberBalanceRow, error) {
	var rows []repositories.MemberBalanceRow
	for _, m := range s.sorted() {
		var balance float64
		for _, e := range s.ledger.entries {
			if e.MemberID == m.ID {
				balance += e.Amount
			}
		}
		rows = append(rows, repositories.MemberBalanceRow{
			ID:           m.ID,
			Email:        m.Email,
			Name:         m.Name,
			ReferralLink: m.ReferralLink,
			Status:       string(m.Status),
			CreatedAt:    m.CreatedAt,
			Balance:      balance,
		})
	}
	return rows, nil
}

func (s *stubMemberRepo) sorted() []db_models.Member {
	out := make([]db_models.Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type stubAdminRepo struct {
	admins map[string]db_models.Admin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]db_models.Admin)}
}

func (s *stubAdminRepo) FindByEmail(_ context.Context, email string) (*db_models.Admin, error) {
	if a, ok := s.admins[email]; ok {
		clone := a
		return &clone, nil
	}
	return nil, nil
}

func (s *stubAdminRepo) FindByID(_ context.Context, id uint) (*db_models.Admin, error) {
	for _, a := range s.admins {
		if a.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *stubAdminRepo) BulkInsert(_ context.Context, admins []db_models.Admin) error {
	for _, a := range admins {
		s.admins[a.Email] = a
	}
	return nil
}
