package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
)

type CardListView struct{}

func NewCardListView() *CardListView {
	return &CardListView{}
}

func (v *CardListView) Render(cards []model.Card) error {
	headers := []string{"ID", "Number", "Holder", "Type", "Status", "Limit"}
	tableData := pterm.TableData{headers}

	for _, card := range cards {
		var coloredStatus string
		switch card.Status {
		case model.CardActive:
			coloredStatus = pterm.Green(string(card.Status))
		case model.CardBlocked:
			coloredStatus = pterm.Red(string(card.Status))
		default:
			coloredStatus = pterm.Gray(string(card.Status))
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", card.ID),
			card.MaskedNumber(),
			card.HolderName,
			string(card.Type),
			coloredStatus,
			formatOptionalMoney(card.CreditLimit),
		})
	}

	pterm.DefaultSection.Printf("Cards")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d cards\n", len(cards))

	return nil
}
