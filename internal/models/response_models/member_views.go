package response_models

import (
	"clubpuntos/internal/models/db_models"
)

// AccountView is the member dashboard payload: the account, its derived
// balance and the full entry history, newest first.
type AccountView struct {
	Member  db_models.Member        `json:"member"`
	Balance float64                 `json:"balance"`
	Entries []db_models.LedgerEntry `json:"entries"`
}

// MemberBalance pairs a member with their derived balance. Used both
// for the admin directory listing and as ranking input.
type MemberBalance struct {
	Member  db_models.Member `json:"member"`
	Balance float64          `json:"balance"`
}

type RankedMember struct {
	Position int              `json:"position"`
	Member   db_models.Member `json:"member"`
	Balance  float64          `json:"balance"`
}

type RankPosition struct {
	Position int `json:"position"`
	Total    int `json:"total"`
}
