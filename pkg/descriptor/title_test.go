package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TitleParts
	}{
		{
			name:  "vocabulary subtype",
			input: "Carnival Phantasm - DVD Special [2011]",
			want:  TitleParts{Title: "Carnival Phantasm", Subtype: "DVD Special", Year: "2011"},
		},
		{
			name:  "no subtype",
			input: "Show Name [2020]",
			want:  TitleParts{Title: "Show Name", Year: "2020"},
		},
		{
			name:  "no year means whole string is title",
			input: "Show Name - OVA",
			want:  TitleParts{Title: "Show Name - OVA"},
		},
		{
			name:  "rightmost vocabulary match wins",
			input: "Movie - The Beginning - OVA [1999]",
			want:  TitleParts{Title: "Movie - The Beginning", Subtype: "OVA", Year: "1999"},
		},
		{
			name:  "longer entry preferred over embedded one",
			input: "Series X - Live Action TV Series [2005]",
			want:  TitleParts{Title: "Series X", Subtype: "Live Action TV Series", Year: "2005"},
		},
		{
			name:  "short free-form subtype via fallback",
			input: "Title - Recap [2018]",
			want:  TitleParts{Title: "Title", Subtype: "Recap", Year: "2018"},
		},
		{
			name:  "long free-form suffix stays in the title",
			input: "Title - An Exceedingly Long Subtitle Fragment [2018]",
			want:  TitleParts{Title: "Title - An Exceedingly Long Subtitle Fragment", Year: "2018"},
		},
		{
			name:  "trailing whitespace tolerated",
			input: "  Show Name [2020]  ",
			want:  TitleParts{Title: "Show Name", Year: "2020"},
		},
		{
			name:  "empty input",
			input: "",
			want:  TitleParts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTitle(tt.input))
		})
	}
}
