package taxonomy

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Développeur Web", "developpeur web"},
		{"DÉVELOPPEUR   WEB", "developpeur web"},
		{"Chargé de Communication", "charge de communication"},
		{"Designer UI/UX", "designer ui ux"},
		{"chef-de-projet!!", "chef de projet"},
		{"  C++ / C#  ", "c c"},
		{"téléconseiller (h/f)", "teleconseiller h f"},
		{"ingénieur n°1", "ingenieur n 1"},
	}

	for _, tc := range cases {
		got := Normalize(tc.in)
		if got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Développeur Web",
		"  Chef   de --- Projet  ",
		"ÉÈÀÙÇ œuf",
		"plain ascii title 42",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
