package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountChecking AccountType = "CORRENTE"
	AccountSavings  AccountType = "POUPANCA"
)

type AccountStatus string

const (
	AccountActive AccountStatus = "ATIVA"
	AccountClosed AccountStatus = "ENCERRADA"
)

// Account mirrors the wire shape of the /contas resource. Checking accounts
// carry an overdraft limit, savings accounts an interest rate plus an
// anniversary date; the fields for the other variant stay nil.
type Account struct {
	ID              int64            `json:"id,omitempty"`
	Number          string           `json:"numeroConta"`
	Branch          string           `json:"agencia"`
	Balance         decimal.Decimal  `json:"saldo"`
	OpenedAt        *time.Time       `json:"dataAbertura,omitempty"`
	Status          AccountStatus    `json:"statusConta"`
	Type            AccountType      `json:"tipoConta,omitempty"`
	OverdraftLimit  *decimal.Decimal `json:"limiteChequeEspecial,omitempty"`
	InterestRate    *decimal.Decimal `json:"taxaJuros,omitempty"`
	AnniversaryDate *time.Time       `json:"dataAniversario,omitempty"`
	Cards           []Card           `json:"cartoes,omitempty"`
	Holders         []Customer       `json:"titulares,omitempty"`
}

// Ref returns a reference carrying only the account id, the shape the backend
// expects when another payload links to an account.
func (a Account) Ref() *Account {
	return &Account{ID: a.ID}
}
