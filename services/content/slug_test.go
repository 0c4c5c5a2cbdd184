package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Buying Your First Apartment", "buying-your-first-apartment"},
		{"  Market Report: Q3 2026!  ", "market-report-q3-2026"},
		{"---already---slugged---", "already-slugged"},
		{"UPPER case & symbols #1", "upper-case-symbols-1"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
