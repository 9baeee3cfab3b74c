// Package nav holds the console's navigation state: which top-level section
// is active and, per entity section, the interaction mode and the currently
// selected record. Transitions are pure; callers keep the returned State.
package nav

type Section string

const (
	SectionOverview     Section = "overview"
	SectionCustomers    Section = "customers"
	SectionAccounts     Section = "accounts"
	SectionCards        Section = "cards"
	SectionTransactions Section = "transactions"
	SectionLoans        Section = "loans"
)

// EntitySections lists the five entity sections, excluding the overview.
func EntitySections() []Section {
	return []Section{
		SectionCustomers,
		SectionAccounts,
		SectionCards,
		SectionTransactions,
		SectionLoans,
	}
}

type Mode string

const (
	ModeList   Mode = "list"
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

// SectionState is the interaction state of one entity section. Selected is
// an opaque record previously fetched from the API; nav never reads into it.
type SectionState struct {
	Mode     Mode
	Selected any
}

// State is the whole console's navigation state. One instance exists per
// running console; it is only ever replaced wholesale by a transition.
type State struct {
	Active       Section
	Customers    SectionState
	Accounts     SectionState
	Cards        SectionState
	Transactions SectionState
	Loans        SectionState
}

// NewState starts at the overview with every section listing.
func NewState() State {
	s := State{Active: SectionOverview}
	for _, sec := range EntitySections() {
		s = s.withSection(sec, SectionState{Mode: ModeList})
	}
	return s
}

// SectionState returns the interaction state for sec. Non-entity sections
// report a listing state.
func (s State) SectionState(sec Section) SectionState {
	switch sec {
	case SectionCustomers:
		return s.Customers
	case SectionAccounts:
		return s.Accounts
	case SectionCards:
		return s.Cards
	case SectionTransactions:
		return s.Transactions
	case SectionLoans:
		return s.Loans
	default:
		return SectionState{Mode: ModeList}
	}
}

func (s State) withSection(sec Section, ss SectionState) State {
	switch sec {
	case SectionCustomers:
		s.Customers = ss
	case SectionAccounts:
		s.Accounts = ss
	case SectionCards:
		s.Cards = ss
	case SectionTransactions:
		s.Transactions = ss
	case SectionLoans:
		s.Loans = ss
	}
	return s
}

// ChangeSection activates sec and resets every entity section back to an
// empty listing, including the one being activated. Switching away from a
// section deliberately discards any in-progress create or edit there.
func (s State) ChangeSection(sec Section) State {
	s.Active = sec
	for _, entity := range EntitySections() {
		s = s.withSection(entity, SectionState{Mode: ModeList})
	}
	return s
}

// Select stores entity as sec's current selection. An empty mode means view.
func (s State) Select(sec Section, entity any, mode Mode) State {
	if mode == "" {
		mode = ModeView
	}
	return s.withSection(sec, SectionState{Mode: mode, Selected: entity})
}

// StartCreate clears sec's selection and opens its create form.
func (s State) StartCreate(sec Section) State {
	return s.withSection(sec, SectionState{Mode: ModeCreate})
}

// GoBack returns sec to an empty listing. Idempotent.
func (s State) GoBack(sec Section) State {
	return s.withSection(sec, SectionState{Mode: ModeList})
}

// Save records a persisted entity as sec's selection and shows its detail
// view. Callers invoke this only after the API confirmed the write.
func (s State) Save(sec Section, entity any) State {
	return s.withSection(sec, SectionState{Mode: ModeView, Selected: entity})
}

// StartEdit opens the customer edit form for entity. Customers are the only
// section with an edit mode.
func (s State) StartEdit(entity any) State {
	return s.withSection(SectionCustomers, SectionState{Mode: ModeEdit, Selected: entity})
}
