package entity

import "strings"

// Transportation describes how the goods travel. Cached by VehicleNo.
type Transportation struct {
	EWayBill           string `json:"eWayBill"`
	TransportationMode string `json:"transportationMode"`
	VehicleNo          string `json:"vehicleNo"`
	State              string `json:"state"`
	StateCode          string `json:"stateCode"`
}

// CacheKey returns the identity used by the transportation cache.
func (t Transportation) CacheKey() string { return t.VehicleNo }

// HasKey reports whether the record can be cached at all.
func (t Transportation) HasKey() bool { return strings.TrimSpace(t.VehicleNo) != "" }
