package nav

type ScreenKind string

const (
	ScreenOverview ScreenKind = "overview"
	ScreenList     ScreenKind = "list"
	ScreenCreate   ScreenKind = "create"
	ScreenEdit     ScreenKind = "edit"
	ScreenDetail   ScreenKind = "detail"
)

// Screen identifies what the console should render right now.
type Screen struct {
	Kind    ScreenKind
	Section Section
	Entity  any
}

// Screen maps the current state to a screen, a pure function of State. Any
// combination the switch does not recognize falls back to the section list
// (or the overview for an unknown section) so the console never ends up with
// nothing to render. A view mode with no selection is treated the same way;
// a nil record must not reach a detail screen.
func (s State) Screen() Screen {
	switch s.Active {
	case SectionCustomers, SectionAccounts, SectionCards, SectionTransactions, SectionLoans:
	default:
		return Screen{Kind: ScreenOverview, Section: SectionOverview}
	}

	ss := s.SectionState(s.Active)
	switch ss.Mode {
	case ModeCreate:
		return Screen{Kind: ScreenCreate, Section: s.Active, Entity: ss.Selected}
	case ModeEdit:
		if s.Active == SectionCustomers && ss.Selected != nil {
			return Screen{Kind: ScreenEdit, Section: s.Active, Entity: ss.Selected}
		}
		return Screen{Kind: ScreenList, Section: s.Active}
	case ModeView:
		if ss.Selected == nil {
			return Screen{Kind: ScreenList, Section: s.Active}
		}
		return Screen{Kind: ScreenDetail, Section: s.Active, Entity: ss.Selected}
	default:
		return Screen{Kind: ScreenList, Section: s.Active}
	}
}
