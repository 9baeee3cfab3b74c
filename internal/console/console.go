// Package console runs the interactive back-office session: a loop that
// renders whatever screen the navigation state selects, collects one user
// action, and applies the resulting transition.
package console

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"bankdesk/internal/api"
	"bankdesk/internal/errhandler"
	"bankdesk/internal/logger"
	"bankdesk/internal/nav"
)

// Menu sentinels shared by the section list screens.
const (
	actionCreate = -1
	actionBack   = -2
)

var errQuit = errors.New("quit console")

type Console struct {
	client *api.Client
	state  nav.State
}

func New(client *api.Client) *Console {
	return &Console{
		client: client,
		state:  nav.NewState(),
	}
}

// Run loops until the user quits from the overview. Backing out of a prompt
// (Esc / Ctrl-C) climbs one level instead of terminating: list from detail
// or form, overview from list, exit from overview.
func (c *Console) Run(ctx context.Context) error {
	for {
		screen := c.state.Screen()

		next, err := c.dispatch(ctx, screen)
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			if errhandler.IsCancellation(err) {
				switch screen.Kind {
				case nav.ScreenOverview:
					return nil
				case nav.ScreenList:
					c.state = c.state.ChangeSection(nav.SectionOverview)
				default:
					c.state = c.state.GoBack(screen.Section)
				}
				continue
			}
			return err
		}

		c.state = next
	}
}

func (c *Console) dispatch(ctx context.Context, screen nav.Screen) (nav.State, error) {
	switch screen.Kind {
	case nav.ScreenOverview:
		return c.overview(ctx)
	case nav.ScreenList:
		switch screen.Section {
		case nav.SectionCustomers:
			return c.customerList(ctx)
		case nav.SectionAccounts:
			return c.accountList(ctx)
		case nav.SectionCards:
			return c.cardList(ctx)
		case nav.SectionTransactions:
			return c.transactionList(ctx)
		case nav.SectionLoans:
			return c.loanList(ctx)
		}
	case nav.ScreenCreate:
		switch screen.Section {
		case nav.SectionCustomers:
			return c.customerCreate(ctx)
		case nav.SectionAccounts:
			return c.accountCreate(ctx)
		case nav.SectionCards:
			return c.cardCreate(ctx)
		case nav.SectionTransactions:
			return c.transactionCreate(ctx)
		case nav.SectionLoans:
			return c.loanCreate(ctx)
		}
	case nav.ScreenEdit:
		return c.customerEdit(ctx, screen.Entity)
	case nav.ScreenDetail:
		switch screen.Section {
		case nav.SectionCustomers:
			return c.customerDetail(ctx, screen.Entity)
		case nav.SectionAccounts:
			return c.accountDetail(ctx, screen.Entity)
		case nav.SectionCards:
			return c.cardDetail(ctx, screen.Entity)
		case nav.SectionTransactions:
			return c.transactionDetail(screen.Entity)
		case nav.SectionLoans:
			return c.loanDetail(ctx, screen.Entity)
		}
	}

	return c.state.ChangeSection(nav.SectionOverview), nil
}

// notifyFailure logs an API failure and shows the blocking error notice.
// The current screen stays up so the user can retry.
func notifyFailure(action string, err error) {
	logger.Error(action, err, nil)
	pterm.Error.Printfln("%s: %v", action, err)
}

// selectIndex shows a single-choice menu over pre-built options whose values
// are row indexes or the action sentinels above.
func selectIndex(title string, opts []huh.Option[int]) (int, error) {
	var selected int
	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Height(12).
		Run()
	return selected, err
}
