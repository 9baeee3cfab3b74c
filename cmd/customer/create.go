package customer

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/model"
	"bankdesk/internal/ui/prompts"
	"bankdesk/internal/ui/views"
	"bankdesk/internal/validation"
)

type createFlags struct {
	Name      string
	CPF       string
	BirthDate string
	Address   string
	Phone     string
	Email     string
	Login     string
	Password  string
}

func NewCreateCmd(client *api.Client) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new customer",
		Long: `Register a new customer.

Without flags the command walks through the registration steps
interactively. With flags it registers in one shot:

Example: bankdesk customer create -n "Ana Souza" --cpf 52998224725 \
    --birth 1990-04-12 --phone 11987654321 --email ana@example.com \
    --login ana --password secret`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input model.Customer
			var err error

			if cmd.Flags().Changed("name") || cmd.Flags().Changed("cpf") {
				input, err = flags.build()
			} else {
				input, err = prompts.PromptCustomer(nil)
			}
			if err != nil {
				return err
			}

			hash, err := model.HashPassword(input.PasswordHash)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			input.PasswordHash = hash

			now := time.Now()
			input.RegisteredAt = &now

			created, err := client.CreateCustomer(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			pterm.Success.Printf("Customer %q registered with ID %d\n", created.Name, created.ID)
			return views.RenderCustomerDetail(&created)
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Full name")
	cmd.Flags().StringVar(&flags.CPF, "cpf", "", "CPF (11 digits, punctuation allowed)")
	cmd.Flags().StringVar(&flags.BirthDate, "birth", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Address, "address", "", "Address (optional)")
	cmd.Flags().StringVar(&flags.Phone, "phone", "", "Phone (10-11 digits)")
	cmd.Flags().StringVar(&flags.Email, "email", "", "Email")
	cmd.Flags().StringVar(&flags.Login, "login", "", "Login")
	cmd.Flags().StringVar(&flags.Password, "password", "", "Password")

	return cmd
}

func (f *createFlags) build() (model.Customer, error) {
	steps := []struct {
		validate func(string) error
		value    string
	}{
		{validation.Required("name"), f.Name},
		{validation.ValidateCPF, f.CPF},
		{validation.ValidateDate, f.BirthDate},
		{validation.ValidatePhone, f.Phone},
		{validation.ValidateEmail, f.Email},
		{validation.Required("login"), f.Login},
		{validation.Required("password"), f.Password},
	}
	for _, s := range steps {
		if err := s.validate(s.value); err != nil {
			return model.Customer{}, err
		}
	}

	return model.Customer{
		Name:         f.Name,
		CPF:          validation.OnlyDigits(f.CPF),
		BirthDate:    f.BirthDate,
		Address:      f.Address,
		Phone:        validation.OnlyDigits(f.Phone),
		Email:        f.Email,
		Login:        f.Login,
		PasswordHash: f.Password,
	}, nil
}
