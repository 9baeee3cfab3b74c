package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
	"bankdesk/internal/ui"
)

func RenderAccountDetail(a *model.Account) error {
	pterm.Println()
	ui.PrintL2Title("Account #%d", a.ID)

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Number", a.Number},
		{"Branch", a.Branch},
		{"Type", string(a.Type)},
		{"Status", string(a.Status)},
		{"Balance", formatMoney(a.Balance)},
		{"Opened", formatDate(a.OpenedAt)},
	}

	switch a.Type {
	case model.AccountChecking:
		infoData = append(infoData, []string{"Overdraft limit", formatOptionalMoney(a.OverdraftLimit)})
	case model.AccountSavings:
		rate := "-"
		if a.InterestRate != nil {
			rate = a.InterestRate.StringFixed(2) + "%"
		}
		infoData = append(infoData,
			[]string{"Interest rate", rate},
			[]string{"Anniversary", formatDate(a.AnniversaryDate)},
		)
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	if len(a.Cards) > 0 {
		pterm.Println()
		ui.PrintL2Title("Cards on this account")
		cardData := pterm.TableData{{"Number", "Holder", "Type", "Status"}}
		for _, card := range a.Cards {
			cardData = append(cardData, []string{
				card.MaskedNumber(),
				card.HolderName,
				string(card.Type),
				string(card.Status),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(cardData).Render(); err != nil {
			return err
		}
	}

	pterm.Info.Printf("Holders: %d | Cards: %d\n", len(a.Holders), len(a.Cards))
	fmt.Println()

	return nil
}
