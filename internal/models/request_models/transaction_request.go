package request_models

// RecordTransactionRequest is the single authoring entry point for both
// awards and deductions: the sign of Amount decides the direction.
// Category may be omitted (derived from the sign) but when present it
// must agree with the sign.
type RecordTransactionRequest struct {
	MemberID uint    `json:"member_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Concept  string  `json:"concept" binding:"required"`
	Category int16   `json:"category"`
}
