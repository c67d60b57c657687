package dto

type PersonSummaryResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	NIC       string `json:"nic"`
}

type BankSummaryResponse struct {
	PersonID      int64  `json:"personId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	Branch        string `json:"branch"`
}

type FamilySummaryResponse struct {
	PersonID       int64  `json:"personId"`
	MemberID       int64  `json:"memberId"`
	Relation       string `json:"relation"`
	CustomRelation string `json:"customRelation,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
}

// SearchResponse is the grouped result of a scope=all search.
type SearchResponse struct {
	Personal []PersonSummaryResponse `json:"personal"`
	Banking  []BankSummaryResponse   `json:"banking"`
	Family   []FamilySummaryResponse `json:"family"`
}
