package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
	"bankdesk/internal/ui"
)

func RenderCardDetail(c *model.Card) error {
	pterm.Println()
	ui.PrintL2Title("Card #%d", c.ID)

	expires := c.ExpiresAt.Format("2006-01")
	if c.ExpiresAt.IsZero() {
		expires = "-"
	}

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Number", c.MaskedNumber()},
		{"Holder", c.HolderName},
		{"Type", string(c.Type)},
		{"Status", string(c.Status)},
		{"Issued", formatDate(c.IssuedAt)},
		{"Expires", expires},
	}

	if c.Type == model.CardCredit {
		closing, due := "-", "-"
		if c.ClosingDay != nil {
			closing = fmt.Sprintf("day %d", *c.ClosingDay)
		}
		if c.DueDay != nil {
			due = fmt.Sprintf("day %d", *c.DueDay)
		}
		infoData = append(infoData,
			[]string{"Credit limit", formatOptionalMoney(c.CreditLimit)},
			[]string{"Statement closes", closing},
			[]string{"Payment due", due},
		)
	}

	if c.Account != nil {
		infoData = append(infoData, []string{
			"Account",
			fmt.Sprintf("%s / branch %s", c.Account.Number, c.Account.Branch),
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	fmt.Println()

	return nil
}
