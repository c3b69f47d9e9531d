package models

import "strings"

// PartyKind says on which side of the ledger a plan sits.
type PartyKind string

const (
	PartyClient   PartyKind = "client"
	PartySupplier PartyKind = "supplier"
)

func (k PartyKind) Valid() bool {
	return k == PartyClient || k == PartySupplier
}

// Party is a snapshot of a client or supplier record taken when the plan is created.
// Later edits of the master record do not reach existing plans.
type Party struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
}

func (p Party) IsZero() bool {
	return strings.TrimSpace(p.Name) == "" &&
		strings.TrimSpace(p.TaxID) == "" &&
		strings.TrimSpace(p.Address) == ""
}
