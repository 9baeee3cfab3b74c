package nav

import "testing"

type record struct{ id int64 }

func dirtyState() State {
	s := NewState()
	s = s.Select(SectionCustomers, &record{1}, ModeEdit)
	s = s.StartCreate(SectionAccounts)
	s = s.Select(SectionCards, &record{2}, "")
	s = s.StartCreate(SectionTransactions)
	s = s.Select(SectionLoans, &record{3}, "")
	return s
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Active != SectionOverview {
		t.Errorf("Active = %q, want overview", s.Active)
	}
	for _, sec := range EntitySections() {
		ss := s.SectionState(sec)
		if ss.Mode != ModeList || ss.Selected != nil {
			t.Errorf("%s = %+v, want empty listing", sec, ss)
		}
	}
}

func TestChangeSectionResetsEverySection(t *testing.T) {
	s := dirtyState()

	for _, target := range append(EntitySections(), SectionOverview) {
		got := s.ChangeSection(target)
		if got.Active != target {
			t.Errorf("Active = %q, want %q", got.Active, target)
		}
		for _, sec := range EntitySections() {
			ss := got.SectionState(sec)
			if ss.Mode != ModeList {
				t.Errorf("ChangeSection(%s): %s mode = %q, want list", target, sec, ss.Mode)
			}
			if ss.Selected != nil {
				t.Errorf("ChangeSection(%s): %s still has a selection", target, sec)
			}
		}
	}
}

func TestGoBackAlwaysYieldsEmptyListing(t *testing.T) {
	for _, start := range []State{
		NewState(),
		dirtyState(),
		NewState().StartCreate(SectionCards),
		NewState().Save(SectionCards, &record{7}),
	} {
		got := start.GoBack(SectionCards).SectionState(SectionCards)
		if got.Mode != ModeList || got.Selected != nil {
			t.Errorf("GoBack = %+v, want empty listing", got)
		}
	}

	// Idempotent.
	s := dirtyState().GoBack(SectionLoans).GoBack(SectionLoans)
	if got := s.SectionState(SectionLoans); got.Mode != ModeList || got.Selected != nil {
		t.Errorf("repeated GoBack = %+v, want empty listing", got)
	}
}

func TestSelectDefaultsToView(t *testing.T) {
	e := &record{1}

	got := NewState().Select(SectionAccounts, e, "").SectionState(SectionAccounts)
	if got.Mode != ModeView || got.Selected != e {
		t.Errorf("Select with empty mode = %+v, want view of entity", got)
	}

	got = NewState().Select(SectionCustomers, e, ModeEdit).SectionState(SectionCustomers)
	if got.Mode != ModeEdit || got.Selected != e {
		t.Errorf("Select with edit mode = %+v, want edit of entity", got)
	}
}

func TestStartCreateClearsSelection(t *testing.T) {
	s := NewState().Select(SectionLoans, &record{4}, "")
	got := s.StartCreate(SectionLoans).SectionState(SectionLoans)
	if got.Mode != ModeCreate || got.Selected != nil {
		t.Errorf("StartCreate = %+v, want create with no selection", got)
	}
}

func TestSaveOverwritesSelection(t *testing.T) {
	old := &record{1}
	saved := &record{2}

	s := NewState().Select(SectionCustomers, old, ModeEdit).Save(SectionCustomers, saved)
	got := s.SectionState(SectionCustomers)
	if got.Mode != ModeView || got.Selected != saved {
		t.Errorf("Save = %+v, want view of saved entity", got)
	}
}

func TestStartEditTargetsCustomers(t *testing.T) {
	e := &record{9}
	got := NewState().StartEdit(e).SectionState(SectionCustomers)
	if got.Mode != ModeEdit || got.Selected != e {
		t.Errorf("StartEdit = %+v, want customer edit", got)
	}
}

func TestScreenSelection(t *testing.T) {
	e := &record{1}

	tests := []struct {
		name string
		s    State
		want Screen
	}{
		{
			name: "initial state shows overview",
			s:    NewState(),
			want: Screen{Kind: ScreenOverview, Section: SectionOverview},
		},
		{
			name: "unknown section falls back to overview",
			s:    State{Active: Section("billing")},
			want: Screen{Kind: ScreenOverview, Section: SectionOverview},
		},
		{
			name: "active section lists by default",
			s:    NewState().ChangeSection(SectionCards),
			want: Screen{Kind: ScreenList, Section: SectionCards},
		},
		{
			name: "create mode shows create form",
			s:    NewState().ChangeSection(SectionAccounts).StartCreate(SectionAccounts),
			want: Screen{Kind: ScreenCreate, Section: SectionAccounts},
		},
		{
			name: "view with selection shows detail",
			s:    NewState().ChangeSection(SectionLoans).Select(SectionLoans, e, ""),
			want: Screen{Kind: ScreenDetail, Section: SectionLoans, Entity: e},
		},
		{
			name: "view without selection falls back to list",
			s:    NewState().ChangeSection(SectionLoans).Select(SectionLoans, nil, ""),
			want: Screen{Kind: ScreenList, Section: SectionLoans},
		},
		{
			name: "customer edit shows edit form",
			s:    NewState().ChangeSection(SectionCustomers).StartEdit(e),
			want: Screen{Kind: ScreenEdit, Section: SectionCustomers, Entity: e},
		},
		{
			name: "edit mode outside customers falls back to list",
			s: NewState().ChangeSection(SectionCards).
				Select(SectionCards, e, ModeEdit),
			want: Screen{Kind: ScreenList, Section: SectionCards},
		},
		{
			name: "unrecognized mode falls back to list",
			s: NewState().ChangeSection(SectionAccounts).
				Select(SectionAccounts, e, Mode("archive")),
			want: Screen{Kind: ScreenList, Section: SectionAccounts},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.Screen()
			if got != tt.want {
				t.Errorf("Screen() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
