package pagination

import "testing"

func TestValidate_ClampsOutOfRangeValues(t *testing.T) {
	cases := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{0, 0, 1, 15},
		{-3, -1, 1, 15},
		{2, 250, 2, 100},
		{5, 30, 5, 30},
	}
	for _, tc := range cases {
		p := &PaginationParams{Page: tc.page, PerPage: tc.perPage}
		p.Validate()
		if p.Page != tc.wantPage || p.PerPage != tc.wantPerPage {
			t.Fatalf("Validate(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.perPage, p.Page, p.PerPage, tc.wantPage, tc.wantPerPage)
		}
	}
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	if got := p.Offset(); got != 30 {
		t.Fatalf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 15, 31)
	if pg.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("middle page should have next and prev, got next=%v prev=%v", pg.HasNext, pg.HasPrev)
	}

	last := NewPagination(3, 15, 31)
	if last.HasNext {
		t.Fatal("last page should not have next")
	}

	empty := NewPagination(1, 15, 0)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty result: %+v", empty)
	}
}
