package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType is the ledger entry direction.
type MovementType string

const (
	MovementIncome  MovementType = "Ingreso"
	MovementExpense MovementType = "Egreso"
)

var ValidMovementTypes = map[MovementType]bool{
	MovementIncome:  true,
	MovementExpense: true,
}

// MovementCategory classifies wallet ledger entries.
type MovementCategory string

const (
	MovementTopUp             MovementCategory = "Recarga"
	MovementOrderConfirmation MovementCategory = "Confirmación pedido"
	MovementAccreditation     MovementCategory = "Acreditación"
	MovementCommission        MovementCategory = "Comisión"
	MovementShipping          MovementCategory = "Envío"
)

var ValidMovementCategories = map[MovementCategory]bool{
	MovementTopUp:             true,
	MovementOrderConfirmation: true,
	MovementAccreditation:     true,
	MovementCommission:        true,
	MovementShipping:          true,
}

// Movement is an append-only wallet ledger entry. Amounts are signed:
// expenses are negative.
type Movement struct {
	ID          string           `json:"id"`
	Type        MovementType     `json:"type"`
	Category    MovementCategory `json:"category"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Date        time.Time        `json:"date"`
}
