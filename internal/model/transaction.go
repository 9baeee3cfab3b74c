package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "DEPOSITO"
	TransactionWithdrawal TransactionKind = "SAQUE"
	TransactionTransfer   TransactionKind = "TRANSFERENCIA"
)

// Transaction mirrors the wire shape of the /transacoes resource. The create
// payload references accounts by id; responses may embed the full account
// records instead.
type Transaction struct {
	ID              int64           `json:"id,omitempty"`
	SourceAccountID *int64          `json:"contaOrigemId,omitempty"`
	DestAccountID   int64           `json:"contaDestinoId,omitempty"`
	SourceAccount   *Account        `json:"contaOrigem,omitempty"`
	DestAccount     *Account        `json:"contaDestino,omitempty"`
	Amount          decimal.Decimal `json:"valor"`
	Kind            TransactionKind `json:"tipoTransacao"`
	Description     string          `json:"descricao,omitempty"`
	Timestamp       *time.Time      `json:"dataHora,omitempty"`
	Status          string          `json:"statusTransacao,omitempty"`
}

// NeedsSource reports whether the transaction kind requires a source account.
// Deposits only credit a destination.
func (k TransactionKind) NeedsSource() bool {
	return k == TransactionWithdrawal || k == TransactionTransfer
}
