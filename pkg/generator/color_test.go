package generator

import (
	"encoding/json"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRGB(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGB
	}{
		{"hex", "#4caf50", RGB{76, 175, 80}},
		{"hex without hash", "4caf50", RGB{76, 175, 80}},
		{"uppercase hex", "#4CAF50", RGB{76, 175, 80}},
		{"short hex", "#fff", RGB{255, 255, 255}},
		{"triplet", "76,175,80", RGB{76, 175, 80}},
		{"triplet with spaces", " 76, 175, 80 ", RGB{76, 175, 80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRGB(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseRGBErrors(t *testing.T) {
	for _, in := range []string{"", "#zzzzzz", "256,0,0", "1,2", "red"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseRGB(in)
			require.Error(t, err)
		})
	}
}

func TestParseRGBRandom(t *testing.T) {
	_, err := ParseRGB("random")
	require.NoError(t, err)
}

func TestRGBText(t *testing.T) {
	c := RGB{76, 175, 80}
	require.Equal(t, "#4caf50", c.String())
	require.Equal(t, color.RGBA{76, 175, 80, 255}, c.RGBA())

	data, err := json.Marshal(struct{ C RGB }{c})
	require.NoError(t, err)
	require.JSONEq(t, `{"C":"#4caf50"}`, string(data))

	var decoded struct{ C RGB }
	require.NoError(t, json.Unmarshal([]byte(`{"C":"0,0,255"}`), &decoded))
	require.Equal(t, RGB{0, 0, 255}, decoded.C)
}

func TestRGBFlag(t *testing.T) {
	var c RGB
	require.NoError(t, c.UnmarshalFlag("#ff0000"))
	require.Equal(t, RGB{255, 0, 0}, c)

	s, err := c.MarshalFlag()
	require.NoError(t, err)
	require.Equal(t, "#ff0000", s)

	require.Error(t, c.UnmarshalFlag("nope"))
	require.Equal(t, RGB{255, 0, 0}, c, "failed parse must not modify the value")
}

func TestNewSolidImage(t *testing.T) {
	c := color.RGBA{76, 175, 80, 255}
	img := NewSolidImage(3, 2, c)

	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, c, img.RGBAAt(x, y))
		}
	}
}
