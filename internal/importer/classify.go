// Package importer loads historical club records from a mixed-schema CSV
// dump. The dump concatenates admin, member and movement tables without a
// discriminant column, so rows are classified heuristically by shape and
// content the same way the club's original export was.
package importer

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"clubpuntos/internal/models/db_models"
)

// Batch holds one classified pass over the dump, ready for bulk insert.
type Batch struct {
	Admins  []db_models.Admin
	Members []db_models.Member
	Entries []db_models.LedgerEntry
	Skipped int
}

var headerIDs = map[string]bool{
	"adm_id": true,
	"usp_id": true,
	"mov_id": true,
	"con_id": true,
}

// Classify sorts raw CSV rows into the three collections.
//
// Heuristics, in precedence order:
//   - rows whose first cell is a known header id are skipped
//   - column 4 ADM/OPE        -> admin
//   - column 4 100/200        -> ledger entry
//   - column 1 contains '@'   -> member; a long column 3 means the
//     newer schema with a referral link, otherwise the legacy layout
//     with status and date shifted right
//
// Rows matching nothing are counted as skipped, never guessed at.
func Classify(rows [][]string) Batch {
	var b Batch

	for _, row := range rows {
		if len(row) == 0 || headerIDs[row[0]] {
			continue
		}

		switch {
		case len(row) > 6 && (row[4] == "ADM" || row[4] == "OPE"):
			if admin, ok := parseAdmin(row); ok {
				b.Admins = append(b.Admins, admin)
				continue
			}
		case len(row) > 6 && (row[4] == "100" || row[4] == "200"):
			if entry, ok := parseEntry(row); ok {
				b.Entries = append(b.Entries, entry)
				continue
			}
		case len(row) > 6 && strings.Contains(row[1], "@"):
			if member, ok := parseMember(row); ok {
				b.Members = append(b.Members, member)
				continue
			}
		}

		b.Skipped++
	}

	return b
}

func parseAdmin(row []string) (db_models.Admin, bool) {
	id, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return db_models.Admin{}, false
	}
	return db_models.Admin{
		ID:           uint(id),
		Email:        row[1],
		Name:         row[2],
		PasswordHash: row[3], // hashed by the caller before insert
		Role:         row[4],
		Status:       db_models.AccountStatus(row[5]),
		CreatedAt:    parseDate(row[6]),
	}, true
}

func parseEntry(row []string) (db_models.LedgerEntry, bool) {
	id, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return db_models.LedgerEntry{}, false
	}
	memberID, err := strconv.ParseUint(row[1], 10, 64)
	if err != nil {
		return db_models.LedgerEntry{}, false
	}
	amount, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return db_models.LedgerEntry{}, false
	}
	category, _ := strconv.Atoi(row[4])

	raw, _ := json.Marshal(row)
	return db_models.LedgerEntry{
		ID:        uint(id),
		MemberID:  uint(memberID),
		Concept:   row[2],
		Amount:    amount,
		Category:  db_models.EntryCategory(category),
		Status:    db_models.AccountStatus(row[5]),
		CreatedAt: parseDate(row[6]),
		Metadata:  datatypes.JSON(raw),
	}, true
}

func parseMember(row []string) (db_models.Member, bool) {
	id, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return db_models.Member{}, false
	}

	member := db_models.Member{
		ID:    uint(id),
		Email: row[1],
		Name:  row[2],
	}

	if len(row[3]) > 10 {
		// Newer schema: referral link in column 3, status then password.
		member.ReferralLink = row[3]
		member.Status = db_models.AccountStatus(row[4])
		if len(row) > 5 {
			member.PasswordHash = row[5]
		}
		if len(row) > 6 {
			member.CreatedAt = parseDate(row[6])
		}
	} else {
		// Legacy schema: no link, status and date shifted right.
		if len(row) > 5 {
			member.PasswordHash = row[5]
		}
		member.Status = db_models.StatusActive
		if len(row) > 7 && row[7] != "" {
			member.Status = db_models.AccountStatus(row[7])
		}
		if len(row) > 8 && row[8] != "" {
			member.CreatedAt = parseDate(row[8])
		} else if len(row) > 6 {
			member.CreatedAt = parseDate(row[6])
		}
	}

	return member, true
}

func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", "02/01/2006", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return db_models.Today()
}
