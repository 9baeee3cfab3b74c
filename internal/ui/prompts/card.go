package prompts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bankdesk/internal/model"
	"bankdesk/internal/validation"
)

// PromptCardType prompts for the card type selection
func PromptCardType() (model.CardType, error) {
	options := []string{
		"CREDITO - Credit",
		"DEBITO - Debit",
	}

	selected, err := PromptSelect("Card type:", options, options[0])
	if err != nil {
		return "", err
	}

	return model.CardType(strings.Split(selected, " ")[0]), nil
}

// PromptCard collects a new card record bound to one of the given accounts.
// Leaving the number or CVV empty generates them, as the back office usually
// does not type card numbers by hand.
func PromptCard(accounts []model.Account) (model.Card, error) {
	cardType, err := PromptCardType()
	if err != nil {
		return model.Card{}, err
	}

	account, err := PromptSelectAccount("Associated account:", accounts)
	if err != nil {
		return model.Card{}, err
	}

	holder, err := PromptInput("Holder name (as printed):", "", validation.Required("holder name"))
	if err != nil {
		return model.Card{}, err
	}

	expiry, err := PromptDate("Expiry date (YYYY-MM-DD):", "", validation.ValidateDate)
	if err != nil {
		return model.Card{}, err
	}
	expiresAt, err := time.Parse("2006-01-02", strings.TrimSpace(expiry))
	if err != nil {
		return model.Card{}, fmt.Errorf("invalid expiry date: %w", err)
	}

	number, err := PromptOptional("Card number (empty to generate)")
	if err != nil {
		return model.Card{}, err
	}
	if number == "" {
		number = model.GenerateCardNumber(cardType)
	}

	cvv, err := PromptOptional("CVV (empty to generate)")
	if err != nil {
		return model.Card{}, err
	}
	if cvv == "" {
		cvv = model.GenerateCVV()
	}

	now := time.Now()
	card := model.Card{
		Number:     number,
		HolderName: holder,
		Type:       cardType,
		IssuedAt:   &now,
		ExpiresAt:  expiresAt,
		CVVHash:    cvv,
		Status:     model.CardActive,
		Account:    account.Ref(),
	}

	if cardType == model.CardCredit {
		limitInput, err := PromptInput("Credit limit:", "", validation.ValidateAmount)
		if err != nil {
			return model.Card{}, err
		}
		limit, err := decimal.NewFromString(strings.TrimSpace(limitInput))
		if err != nil {
			return model.Card{}, fmt.Errorf("invalid credit limit: %w", err)
		}
		card.CreditLimit = &limit

		closingInput, err := PromptInput("Statement closing day (1-31):", "", validation.ValidateMonthDay)
		if err != nil {
			return model.Card{}, err
		}
		closing, _ := strconv.Atoi(strings.TrimSpace(closingInput))
		card.ClosingDay = &closing

		dueInput, err := PromptInput("Payment due day (1-31):", "", validation.ValidateMonthDay)
		if err != nil {
			return model.Card{}, err
		}
		due, _ := strconv.Atoi(strings.TrimSpace(dueInput))
		card.DueDay = &due
	}

	return card, nil
}
