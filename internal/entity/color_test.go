package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "white with hash", input: "#FFFFFF", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "black without hash", input: "000000", want: color.NRGBA{A: 255}},
		{name: "mixed case", input: "#1a2B3c", want: color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}},
		{name: "empty", input: "", wantErr: true},
		{name: "short form", input: "#fff", wantErr: true},
		{name: "non-hex digits", input: "#GGGGGG", wantErr: true},
		{name: "named color", input: "white", wantErr: true},
		{name: "too long", input: "#1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
