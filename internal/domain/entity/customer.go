package entity

import "strings"

// Customer is the receiver / billed-to party. Cached by Name.
type Customer struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
	State     string `json:"state"`
	StateCode string `json:"stateCode"`
}

// CacheKey returns the identity used by the customer cache.
func (c Customer) CacheKey() string { return c.Name }

// HasKey reports whether the record can be cached at all.
func (c Customer) HasKey() bool { return strings.TrimSpace(c.Name) != "" }
