package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Single Room":        "single-room",
		"Kost  Putri (Baru)": "kost-putri-baru",
		"WiFi & AC":          "wifi-ac",
		"already-sluggy":     "already-sluggy",
		"  Trailing!  ":      "trailing",
		"123 Main":           "123-main",
		"":                   "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
