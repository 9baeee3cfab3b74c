package prompts

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bankdesk/internal/model"
	"bankdesk/internal/validation"
)

// PromptTransactionKind prompts for the transaction kind selection
func PromptTransactionKind() (model.TransactionKind, error) {
	options := []string{
		"DEPOSITO - Deposit",
		"SAQUE - Withdrawal",
		"TRANSFERENCIA - Transfer",
	}

	selected, err := PromptSelect("Transaction kind:", options, "TRANSFERENCIA - Transfer")
	if err != nil {
		return "", err
	}

	return model.TransactionKind(strings.Split(selected, " ")[0]), nil
}

// PromptTransaction collects a new transaction. Deposits take only a
// destination; withdrawals and transfers also need a source, and a transfer
// must not have the same account on both ends.
func PromptTransaction(accounts []model.Account) (model.Transaction, error) {
	kind, err := PromptTransactionKind()
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{Kind: kind}

	if kind.NeedsSource() {
		source, err := PromptSelectAccount("Source account:", accounts)
		if err != nil {
			return model.Transaction{}, err
		}
		tx.SourceAccountID = &source.ID
	}

	dest, err := PromptSelectAccount("Destination account:", accounts)
	if err != nil {
		return model.Transaction{}, err
	}
	tx.DestAccountID = dest.ID

	if kind == model.TransactionTransfer && tx.SourceAccountID != nil && *tx.SourceAccountID == tx.DestAccountID {
		return model.Transaction{}, fmt.Errorf("destination account must differ from the source account")
	}

	amountInput, err := PromptInput("Amount:", "", validation.ValidateAmount)
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(amountInput))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}
	tx.Amount = amount

	description, err := PromptOptional("Description")
	if err != nil {
		return model.Transaction{}, err
	}
	tx.Description = description

	return tx, nil
}
