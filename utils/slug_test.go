package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"PoE Switches", "poe-switches"},
		{"Cat6 UTP Cable (305m)", "cat6-utp-cable-305m"},
		{"  Access   Control  ", "access-control"},
		{"Power & Cables", "power-and-cables"},
		{"switch-24", "switch-24"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.name), "Slugify(%q)", tc.name)
	}
}

func TestSlugifyIsStable(t *testing.T) {
	// Re-slugging an existing slug must not change it, otherwise
	// renames would silently break public URLs.
	s := Slugify("Wireless Routers")
	assert.Equal(t, s, Slugify(s))
}
