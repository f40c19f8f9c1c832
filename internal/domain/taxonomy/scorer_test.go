package taxonomy

import "testing"

func TestCategorizeNoMatch(t *testing.T) {
	s := NewScorer(DefaultRules())

	for _, title := range []string{"", "   ", "xyz123qqq"} {
		if m, ok := s.Categorize(title); ok {
			t.Fatalf("Categorize(%q) = %+v, want no match", title, m)
		}
	}
}

func TestCategorizeAccentAndCaseInsensitive(t *testing.T) {
	s := NewScorer(DefaultRules())

	a, okA := s.Categorize("Développeur Web")
	b, okB := s.Categorize("developpeur web")
	c, okC := s.Categorize("DEVELOPPEUR WEB")

	if !okA || !okB || !okC {
		t.Fatalf("expected all variants to match: %v %v %v", okA, okB, okC)
	}
	if a != b || b != c {
		t.Fatalf("variants disagree: %+v %+v %+v", a, b, c)
	}
	if a.SubCategory != "Développeur Web" {
		t.Fatalf("unexpected sub-category: %+v", a)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	s := NewScorer(DefaultRules())

	first, ok := s.Categorize("Chef de Projet Digital")
	if !ok {
		t.Fatalf("expected a match")
	}
	for i := 0; i < 10; i++ {
		got, ok := s.Categorize("Chef de Projet Digital")
		if !ok || got != first {
			t.Fatalf("run %d: got %+v ok=%v, want %+v", i, got, ok, first)
		}
	}
}

func TestCategorizeTieBreakFirstDeclaredWins(t *testing.T) {
	rules := []Rule{
		{Category: "A", SubCategory: "A1", Keywords: []string{"alpha"}},
		{Category: "B", SubCategory: "B1", Keywords: []string{"beta"}},
	}
	s := NewScorer(rules)

	// Both rules score 10; the first declared must win.
	m, ok := s.Categorize("alpha beta")
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Category != "A" || m.SubCategory != "A1" || m.Score != 10 {
		t.Fatalf("tie not broken by declaration order: %+v", m)
	}

	// Reversed declaration order flips the winner.
	s = NewScorer([]Rule{rules[1], rules[0]})
	m, ok = s.Categorize("alpha beta")
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Category != "B" || m.SubCategory != "B1" {
		t.Fatalf("tie not broken by declaration order after reversal: %+v", m)
	}
}

func TestCategorizeMultiWordKeywordOutweighsSingleWord(t *testing.T) {
	rules := []Rule{
		{Category: "Gestion", SubCategory: "Générique", Keywords: []string{"projet"}},
		{Category: "Gestion", SubCategory: "Chef de Projet", Keywords: []string{"chef de projet"}},
	}
	s := NewScorer(rules)

	m, ok := s.Categorize("Chef de Projet")
	if !ok {
		t.Fatalf("expected a match")
	}
	// 30 for the three-word phrase beats 10 for the single word, even though
	// the single-word rule is declared first.
	if m.SubCategory != "Chef de Projet" || m.Score != 30 {
		t.Fatalf("multi-word keyword did not win: %+v", m)
	}
}

func TestCategorizeDesignerUX(t *testing.T) {
	s := NewScorer(DefaultRules())

	m, ok := s.Categorize("Designer UX")
	if !ok {
		t.Fatalf("expected a match")
	}
	want := Match{Category: "Design & Création", SubCategory: "Designer UI/UX", Score: 20}
	if m != want {
		t.Fatalf("Categorize(\"Designer UX\") = %+v, want %+v", m, want)
	}
}

func TestDefaultRulesSubCategoryOwnership(t *testing.T) {
	owner := map[string]string{}
	for _, r := range DefaultRules() {
		if r.Category == "" || r.SubCategory == "" {
			t.Fatalf("rule with empty names: %+v", r)
		}
		if len(r.Keywords) == 0 {
			t.Fatalf("rule without keywords: %+v", r)
		}
		if prev, ok := owner[r.SubCategory]; ok && prev != r.Category {
			t.Fatalf("sub-category %q mapped to both %q and %q", r.SubCategory, prev, r.Category)
		}
		owner[r.SubCategory] = r.Category
	}
}
