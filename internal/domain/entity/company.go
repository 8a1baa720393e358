package entity

// Company is the issuer printed in the invoice header.
type Company struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	Address   string `json:"address"` // may contain line breaks
	GSTIN     string `json:"gstin"`
	State     string `json:"state"`
	StateCode string `json:"stateCode"`
	Phone     string `json:"phone"`
}
