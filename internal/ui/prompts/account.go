package prompts

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"bankdesk/internal/model"
	"bankdesk/internal/validation"
)

// PromptAccountType prompts for the account type selection
func PromptAccountType() (model.AccountType, error) {
	options := []string{
		"CORRENTE - Checking",
		"POUPANCA - Savings",
	}

	selected, err := PromptSelect("Account type:", options, options[0])
	if err != nil {
		return "", err
	}

	return model.AccountType(strings.Split(selected, " ")[0]), nil
}

// PromptAccount collects a new account record. Checking accounts get an
// overdraft limit step, savings accounts an interest rate plus anniversary.
func PromptAccount() (model.Account, error) {
	accType, err := PromptAccountType()
	if err != nil {
		return model.Account{}, err
	}

	number, err := PromptInput("Account number:", "", validation.Required("account number"))
	if err != nil {
		return model.Account{}, err
	}

	branch, err := PromptInput("Branch:", "", validation.Required("branch"))
	if err != nil {
		return model.Account{}, err
	}

	balanceInput, err := PromptInput("Initial balance (press Enter for 0):", "0", validation.ValidateNonNegativeAmount)
	if err != nil {
		return model.Account{}, err
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(balanceInput))
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid balance: %w", err)
	}

	now := time.Now()
	account := model.Account{
		Number:   number,
		Branch:   branch,
		Balance:  balance,
		OpenedAt: &now,
		Status:   model.AccountActive,
		Type:     accType,
	}

	switch accType {
	case model.AccountChecking:
		limitInput, err := PromptInput("Overdraft limit:", "0", validation.ValidateNonNegativeAmount)
		if err != nil {
			return model.Account{}, err
		}
		limit, err := decimal.NewFromString(strings.TrimSpace(limitInput))
		if err != nil {
			return model.Account{}, fmt.Errorf("invalid overdraft limit: %w", err)
		}
		account.OverdraftLimit = &limit

	case model.AccountSavings:
		rateInput, err := PromptInput("Monthly interest rate (%):", "0.5", validation.ValidateNonNegativeAmount)
		if err != nil {
			return model.Account{}, err
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rateInput))
		if err != nil {
			return model.Account{}, fmt.Errorf("invalid interest rate: %w", err)
		}
		account.InterestRate = &rate
		account.AnniversaryDate = &now
	}

	return account, nil
}

// PromptSelectAccount picks one account from a previously fetched list.
func PromptSelectAccount(message string, accounts []model.Account) (*model.Account, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts available")
	}

	var opts []huh.Option[int]
	for i, acc := range accounts {
		label := fmt.Sprintf("%s - branch %s (balance R$ %s)", acc.Number, acc.Branch, acc.Balance.StringFixed(2))
		opts = append(opts, huh.NewOption(label, i))
	}

	var selected int
	err := huh.NewSelect[int]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return nil, err
	}

	return &accounts[selected], nil
}
