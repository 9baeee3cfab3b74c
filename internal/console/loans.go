package console

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"bankdesk/internal/model"
	"bankdesk/internal/nav"
	"bankdesk/internal/ui/prompts"
	"bankdesk/internal/ui/views"
)

func (c *Console) fetchLoans(ctx context.Context) []model.Loan {
	spinner, _ := pterm.DefaultSpinner.Start("Loading loans...")
	loans, err := c.client.ListLoans(ctx)
	if err != nil {
		spinner.Fail("Could not load loans")
		notifyFailure("list loans", err)
		return nil
	}
	spinner.Stop()
	return loans
}

func (c *Console) loanList(ctx context.Context) (nav.State, error) {
	loans := c.fetchLoans(ctx)
	if err := views.NewLoanListView().Render(loans); err != nil {
		return c.state, err
	}

	opts := make([]huh.Option[int], 0, len(loans)+2)
	for i, loan := range loans {
		label := fmt.Sprintf("View #%d R$ %s (%s)", loan.ID, loan.RequestedAmount.StringFixed(2), loan.Status)
		opts = append(opts, huh.NewOption(label, i))
	}
	opts = append(opts,
		huh.NewOption("+ Request loan", actionCreate),
		huh.NewOption("< Back to overview", actionBack),
	)

	choice, err := selectIndex("Loans:", opts)
	if err != nil {
		return c.state, err
	}

	switch choice {
	case actionCreate:
		return c.state.StartCreate(nav.SectionLoans), nil
	case actionBack:
		return c.state.ChangeSection(nav.SectionOverview), nil
	default:
		return c.state.Select(nav.SectionLoans, &loans[choice], ""), nil
	}
}

func (c *Console) loanDetail(ctx context.Context, entity any) (nav.State, error) {
	loan, ok := entity.(*model.Loan)
	if !ok {
		return c.state.GoBack(nav.SectionLoans), nil
	}

	if err := views.RenderLoanDetail(loan); err != nil {
		return c.state, err
	}

	// Only pending loans can still be decided.
	options := []string{"Back"}
	if loan.Status == model.LoanPending {
		options = []string{"Approve", "Reject", "Back"}
	}

	choice, err := prompts.PromptSelect("Actions:", options, "Back")
	if err != nil {
		return c.state, err
	}

	switch choice {
	case "Approve":
		amount, err := prompts.PromptApprovalAmount(loan.RequestedAmount)
		if err != nil {
			return c.state, err
		}
		updated, err := c.client.ApproveLoan(ctx, loan.ID, amount)
		if err != nil {
			notifyFailure("approve loan", err)
			return c.state, nil
		}
		pterm.Success.Printf("Loan #%d approved for R$ %s\n", updated.ID, amount.StringFixed(2))
		// Back to the list so it re-fetches with the new status.
		return c.state.GoBack(nav.SectionLoans), nil
	case "Reject":
		reason, err := prompts.PromptRejectionReason()
		if err != nil {
			return c.state, err
		}
		updated, err := c.client.RejectLoan(ctx, loan.ID, reason)
		if err != nil {
			notifyFailure("reject loan", err)
			return c.state, nil
		}
		pterm.Success.Printf("Loan #%d rejected\n", updated.ID)
		return c.state.GoBack(nav.SectionLoans), nil
	default:
		return c.state.GoBack(nav.SectionLoans), nil
	}
}

func (c *Console) loanCreate(ctx context.Context) (nav.State, error) {
	customers := c.fetchCustomers(ctx)
	if len(customers) == 0 {
		pterm.Warning.Println("No customers available; register a customer before requesting a loan")
		return c.state.GoBack(nav.SectionLoans), nil
	}
	accounts := c.fetchAccounts(ctx)
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts available; open an account before requesting a loan")
		return c.state.GoBack(nav.SectionLoans), nil
	}

	input, err := prompts.PromptLoan(customers, accounts)
	if err != nil {
		return c.state, err
	}

	created, err := c.client.CreateLoan(ctx, input)
	if err != nil {
		notifyFailure("request loan", err)
		return c.state, nil
	}

	pterm.Success.Printf("Loan #%d requested for R$ %s\n", created.ID, created.RequestedAmount.StringFixed(2))
	return c.state.Save(nav.SectionLoans, &created), nil
}
