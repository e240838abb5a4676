package response_models

// AccountClass distinguishes the two account collections a credential
// can resolve into.
const (
	ClassAdmin  = "admin"
	ClassMember = "member"
)

type LoginResponse struct {
	Token        string      `json:"token"`
	Account      interface{} `json:"account"`
	AccountClass string      `json:"account_class"`
}
