package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletRequestType is the requested funds direction.
type WalletRequestType string

const (
	WalletDeposit    WalletRequestType = "Ingreso"
	WalletWithdrawal WalletRequestType = "Retiro"
)

var ValidWalletRequestTypes = map[WalletRequestType]bool{
	WalletDeposit:    true,
	WalletWithdrawal: true,
}

// WalletRequestStatus is the approval state. Pendiente is initial;
// Aprobada and Rechazada are terminal.
type WalletRequestStatus string

const (
	WalletPending  WalletRequestStatus = "Pendiente"
	WalletApproved WalletRequestStatus = "Aprobada"
	WalletRejected WalletRequestStatus = "Rechazada"
)

var ValidWalletRequestStatuses = map[WalletRequestStatus]bool{
	WalletPending:  true,
	WalletApproved: true,
	WalletRejected: true,
}

// Terminal reports whether no further transition is allowed from s.
func (s WalletRequestStatus) Terminal() bool {
	return s == WalletApproved || s == WalletRejected
}

// WalletRequest is a deposit or withdrawal awaiting approval. Moving out of
// Pendiente stamps ProcessedAt.
type WalletRequest struct {
	ID          string              `json:"id"`
	Type        WalletRequestType   `json:"type"`
	Status      WalletRequestStatus `json:"status"`
	Amount      decimal.Decimal     `json:"amount"`
	CreatedAt   time.Time           `json:"createdAt"`
	ProcessedAt *time.Time          `json:"processedAt,omitempty"`
	Reference   string              `json:"reference"`
}
