package cmd

import (
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "USD", []string{"USD"}},
		{"multiple", "USD,EUR,PLN", []string{"USD", "EUR", "PLN"}},
		{"spaces trimmed", " USD , EUR ", []string{"USD", "EUR"}},
		{"blanks dropped", "USD,,EUR,", []string{"USD", "EUR"}},
		{"only separators", ", ,", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
