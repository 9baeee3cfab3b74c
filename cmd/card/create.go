package card

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/model"
	"bankdesk/internal/ui/prompts"
	"bankdesk/internal/ui/views"
	"bankdesk/internal/validation"
)

type createFlags struct {
	Type       string
	AccountID  int64
	Holder     string
	Expiry     string
	Limit      string
	ClosingDay int
	DueDay     int
}

func NewCreateCmd(client *api.Client) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a new card",
		Long: `Issue a new credit (CREDITO) or debit (DEBITO) card. The card number
and CVV are generated.

Without flags the command walks through the steps interactively.

Example: bankdesk card create -t CREDITO --account 3 --holder "ANA SOUZA" \
    --expiry 2030-01-31 --limit 2500 --closing 5 --due 15`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input model.Card
			var err error

			if cmd.Flags().Changed("account") {
				input, err = flags.build()
				if err != nil {
					return err
				}
			} else {
				accounts, err := client.ListAccounts(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list accounts: %w", err)
				}
				input, err = prompts.PromptCard(accounts)
				if err != nil {
					return err
				}
			}

			var created model.Card
			switch input.Type {
			case model.CardCredit:
				created, err = client.CreateCreditCard(cmd.Context(), input)
			default:
				created, err = client.CreateDebitCard(cmd.Context(), input)
			}
			if err != nil {
				return fmt.Errorf("failed to issue card: %w", err)
			}

			pterm.Success.Printf("Card %s issued with ID %d\n", created.MaskedNumber(), created.ID)
			return views.RenderCardDetail(&created)
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "DEBITO", "Card type (CREDITO, DEBITO)")
	cmd.Flags().Int64Var(&flags.AccountID, "account", 0, "Associated account ID")
	cmd.Flags().StringVar(&flags.Holder, "holder", "", "Holder name as printed on the card")
	cmd.Flags().StringVar(&flags.Expiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Limit, "limit", "", "Credit limit (credit only)")
	cmd.Flags().IntVar(&flags.ClosingDay, "closing", 0, "Statement closing day (credit only)")
	cmd.Flags().IntVar(&flags.DueDay, "due", 0, "Payment due day (credit only)")

	return cmd
}

func (f *createFlags) build() (model.Card, error) {
	cardType := model.CardType(f.Type)
	if cardType != model.CardCredit && cardType != model.CardDebit {
		return model.Card{}, fmt.Errorf("invalid card type %q (want CREDITO or DEBITO)", f.Type)
	}
	if f.AccountID <= 0 {
		return model.Card{}, fmt.Errorf("--account must be a positive account ID")
	}
	if err := validation.Required("holder name")(f.Holder); err != nil {
		return model.Card{}, err
	}
	if err := validation.ValidateDate(f.Expiry); err != nil {
		return model.Card{}, fmt.Errorf("invalid expiry date: %w", err)
	}
	expiresAt, err := time.Parse("2006-01-02", f.Expiry)
	if err != nil {
		return model.Card{}, fmt.Errorf("invalid expiry date: %w", err)
	}

	now := time.Now()
	card := model.Card{
		Number:     model.GenerateCardNumber(cardType),
		HolderName: f.Holder,
		Type:       cardType,
		IssuedAt:   &now,
		ExpiresAt:  expiresAt,
		CVVHash:    model.GenerateCVV(),
		Status:     model.CardActive,
		Account:    &model.Account{ID: f.AccountID},
	}

	if cardType == model.CardCredit {
		if err := validation.ValidateAmount(f.Limit); err != nil {
			return model.Card{}, fmt.Errorf("invalid credit limit: %w", err)
		}
		limit, err := decimal.NewFromString(f.Limit)
		if err != nil {
			return model.Card{}, fmt.Errorf("invalid credit limit: %w", err)
		}
		card.CreditLimit = &limit

		if f.ClosingDay < 1 || f.ClosingDay > 31 {
			return model.Card{}, fmt.Errorf("--closing must be between 1 and 31")
		}
		if f.DueDay < 1 || f.DueDay > 31 {
			return model.Card{}, fmt.Errorf("--due must be between 1 and 31")
		}
		card.ClosingDay = &f.ClosingDay
		card.DueDay = &f.DueDay
	}

	return card, nil
}
