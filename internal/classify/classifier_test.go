package classify

import (
	"testing"

	"github.com/ppiankov/tagtrend/internal/model"
)

func newTestClassifier() *Classifier {
	return New(model.DefaultConfig().Classifier)
}

func TestClassifier_ParentheticalRule(t *testing.T) {
	c := newTestClassifier()

	cases := []struct {
		tag  string
		want bool
	}{
		{"rem_(re:zero)", true},
		{"ram_(re:zero)", true},
		{"artoria_pendragon_(fate)", true},
		{"black_hair", false},
		{"maid", false},
		{"", false},
		// Multiple parenthetical groups: any well-formed one suffices.
		{"jack_(fate)_(alternate)", true},
	}

	for _, tc := range cases {
		if got := c.IsCharacter(tc.tag); got != tc.want {
			t.Errorf("IsCharacter(%q) = %v, want %v", tc.tag, got, tc.want)
		}
	}
}

func TestClassifier_VIPAllowList(t *testing.T) {
	c := newTestClassifier()

	// VIPs have no parenthetical but always classify as characters.
	for _, vip := range []string{"hatsune_miku", "cirno", "kagamine_rin"} {
		if !c.IsCharacter(vip) {
			t.Errorf("IsCharacter(%q) = false, want true (VIP)", vip)
		}
	}
}

func TestClassifier_DenyLists(t *testing.T) {
	c := newTestClassifier()

	// Suffix deny-list rejects tags despite a valid parenthetical.
	for _, tag := range []string{
		"pokemon_(game)", "vocaloid_(series)", "sketch_(medium)",
		"watercolor_(style)", "link_(cosplay)",
	} {
		if c.IsCharacter(tag) {
			t.Errorf("IsCharacter(%q) = true, want false (banned suffix)", tag)
		}
	}

	// Specific deny-list rejects individually known non-characters.
	for _, tag := range []string{
		"star_(symbol)", "pom_pom_(clothes)", "admiral_(kancolle)",
		"traveler_(genshin_impact)", "original_(character)",
	} {
		if c.IsCharacter(tag) {
			t.Errorf("IsCharacter(%q) = true, want false (banned tag)", tag)
		}
	}
}

func TestClassifier_Normalization(t *testing.T) {
	c := newTestClassifier()

	// Case-insensitive, space/underscore equivalent.
	if !c.IsCharacter("Rem_(Re:Zero)") {
		t.Error("expected case-insensitive match for Rem_(Re:Zero)")
	}
	if !c.IsCharacter("hatsune miku") {
		t.Error("expected space/underscore equivalence for VIP")
	}
	if c.IsCharacter("Star_(Symbol)") {
		t.Error("expected deny-list match to be case-insensitive")
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := newTestClassifier()

	for _, tag := range []string{"rem_(re:zero)", "maid", "hatsune_miku", "star_(symbol)", ""} {
		first := c.IsCharacter(tag)
		for i := 0; i < 10; i++ {
			if c.IsCharacter(tag) != first {
				t.Fatalf("IsCharacter(%q) not deterministic", tag)
			}
		}
	}
}

func TestClassifier_VIPOverridesDenyRules(t *testing.T) {
	// A VIP entry wins even when it would match a banned suffix.
	c := New(model.ClassifierConfig{
		VIPs:        []string{"mascot_(series)"},
		BanSuffixes: []string{"_(series)"},
	})

	if !c.IsCharacter("mascot_(series)") {
		t.Error("VIP entry must override the suffix deny-list")
	}
	if c.IsCharacter("other_(series)") {
		t.Error("non-VIP banned suffix must still be rejected")
	}
}
