package bcma

import "testing"

func TestManualPagesBundleRejectsUnpermittedLanguage(t *testing.T) {
	m := NewManual()
	if _, err := m.PagesBundle(RegionJPN, "de"); err == nil {
		t.Fatal("expected an error for a language not permitted in RegionJPN")
	}
}

func TestManualPagesBundleCreatesAndReuses(t *testing.T) {
	m := NewManual()
	b1, err := m.PagesBundle(RegionEUR, "en")
	if err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	b2, err := m.PagesBundle(RegionEUR, "en")
	if err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	if b1 != b2 {
		t.Fatal("expected the same bundle to be returned for a repeated region/lang")
	}
}

func TestPageListSmallLargeSeparation(t *testing.T) {
	m := NewManual()
	b, err := m.PagesBundle(RegionEUR, "en")
	if err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	small := b.AddSmallPage("001")
	large := b.AddLargePage("001")
	if small == nil || large == nil {
		t.Fatal("expected non-nil pages")
	}
	if len(b.SmallPages) != 1 || len(b.LargePages) != 1 {
		t.Fatalf("expected one page in each list, got small=%d large=%d", len(b.SmallPages), len(b.LargePages))
	}
	// same page number in each list must be independent pages, not shared.
	small.SubPages = append(small.SubPages, SubPage{Tag: "top"})
	if len(large.SubPages) != 0 {
		t.Fatal("small and large page lists must not alias each other")
	}
}

func TestManualValidateRequiresIndex(t *testing.T) {
	m := NewManual()
	if _, err := m.PagesBundle(RegionEUR, "en"); err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	if err := m.Validate(); err == nil {
		t.Fatal("expected Validate to fail when a bundle has no Index layout")
	}
}

func TestSortedRegionLangsOrdering(t *testing.T) {
	m := NewManual()
	if _, err := m.PagesBundle(RegionUSA, "fr"); err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	if _, err := m.PagesBundle(RegionEUR, "en"); err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	if _, err := m.PagesBundle(RegionEUR, "de"); err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}

	got := m.sortedRegionLangs()
	want := []string{"EUR_de", "EUR_en", "USA_fr"}
	if len(got) != len(want) {
		t.Fatalf("expected %d pairs, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if regLangKey(got[i].Region, got[i].Lang) != w {
			t.Fatalf("pair %d = %q, want %q", i, regLangKey(got[i].Region, got[i].Lang), w)
		}
	}
}
