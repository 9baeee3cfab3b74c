package console

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"bankdesk/internal/model"
	"bankdesk/internal/nav"
	"bankdesk/internal/ui/prompts"
	"bankdesk/internal/ui/views"
)

func (c *Console) fetchCustomers(ctx context.Context) []model.Customer {
	spinner, _ := pterm.DefaultSpinner.Start("Loading customers...")
	customers, err := c.client.ListCustomers(ctx)
	if err != nil {
		spinner.Fail("Could not load customers")
		notifyFailure("list customers", err)
		return nil
	}
	spinner.Stop()
	return customers
}

func (c *Console) customerList(ctx context.Context) (nav.State, error) {
	customers := c.fetchCustomers(ctx)
	if err := views.NewCustomerListView().Render(customers); err != nil {
		return c.state, err
	}

	opts := make([]huh.Option[int], 0, len(customers)+2)
	for i, cust := range customers {
		opts = append(opts, huh.NewOption(fmt.Sprintf("View %s (CPF %s)", cust.Name, cust.FormattedCPF()), i))
	}
	opts = append(opts,
		huh.NewOption("+ Register customer", actionCreate),
		huh.NewOption("< Back to overview", actionBack),
	)

	choice, err := selectIndex("Customers:", opts)
	if err != nil {
		return c.state, err
	}

	switch choice {
	case actionCreate:
		return c.state.StartCreate(nav.SectionCustomers), nil
	case actionBack:
		return c.state.ChangeSection(nav.SectionOverview), nil
	default:
		return c.state.Select(nav.SectionCustomers, &customers[choice], ""), nil
	}
}

func (c *Console) customerDetail(ctx context.Context, entity any) (nav.State, error) {
	customer, ok := entity.(*model.Customer)
	if !ok {
		return c.state.GoBack(nav.SectionCustomers), nil
	}

	if err := views.RenderCustomerDetail(customer); err != nil {
		return c.state, err
	}

	choice, err := prompts.PromptSelect("Actions:", []string{"Edit", "Delete", "Back"}, "Back")
	if err != nil {
		return c.state, err
	}

	switch choice {
	case "Edit":
		return c.state.StartEdit(customer), nil
	case "Delete":
		confirmed, err := prompts.PromptConfirm(
			fmt.Sprintf("Delete customer %q? This cannot be undone.", customer.Name), false)
		if err != nil {
			return c.state, err
		}
		if !confirmed {
			return c.state, nil
		}
		if err := c.client.DeleteCustomer(ctx, customer.ID); err != nil {
			notifyFailure("delete customer", err)
			return c.state, nil
		}
		pterm.Success.Printf("Customer %q deleted\n", customer.Name)
		return c.state.GoBack(nav.SectionCustomers), nil
	default:
		return c.state.GoBack(nav.SectionCustomers), nil
	}
}

func (c *Console) customerCreate(ctx context.Context) (nav.State, error) {
	input, err := prompts.PromptCustomer(nil)
	if err != nil {
		return c.state, err
	}

	hash, err := model.HashPassword(input.PasswordHash)
	if err != nil {
		return c.state, fmt.Errorf("hash password: %w", err)
	}
	input.PasswordHash = hash

	now := time.Now()
	input.RegisteredAt = &now

	created, err := c.client.CreateCustomer(ctx, input)
	if err != nil {
		notifyFailure("create customer", err)
		return c.state, nil
	}

	pterm.Success.Printf("Customer %q registered with ID %d\n", created.Name, created.ID)
	return c.state.Save(nav.SectionCustomers, &created), nil
}

func (c *Console) customerEdit(ctx context.Context, entity any) (nav.State, error) {
	customer, ok := entity.(*model.Customer)
	if !ok {
		return c.state.GoBack(nav.SectionCustomers), nil
	}

	input, err := prompts.PromptCustomer(customer)
	if err != nil {
		return c.state, err
	}

	// An empty password on the edit form keeps the stored hash.
	if input.PasswordHash == "" {
		input.PasswordHash = customer.PasswordHash
	} else {
		hash, err := model.HashPassword(input.PasswordHash)
		if err != nil {
			return c.state, fmt.Errorf("hash password: %w", err)
		}
		input.PasswordHash = hash
	}

	updated, err := c.client.UpdateCustomer(ctx, customer.ID, input)
	if err != nil {
		notifyFailure("update customer", err)
		return c.state, nil
	}

	pterm.Success.Printf("Customer %q updated\n", updated.Name)
	return c.state.Save(nav.SectionCustomers, &updated), nil
}
