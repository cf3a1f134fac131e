package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Asha  Rao  ", "Asha Rao"},
		{"\tKolkata\n", "Kolkata"},
		{"already clean", "already clean"},
		{"   ", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := TrimAndNormalize(tc.in); got != tc.want {
			t.Errorf("TrimAndNormalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeBloodGroup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"o+", "O+"},
		{" ab- ", "AB-"},
		{"B+", "B+"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeBloodGroup(tc.in); got != tc.want {
			t.Errorf("NormalizeBloodGroup(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
