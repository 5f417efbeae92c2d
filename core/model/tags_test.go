package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "Thermal", []string{"thermal"}},
		{"mixed case and spacing", " Thermal , DGCA,mapping ", []string{"thermal", "dgca", "mapping"}},
		{"trailing comma", "thermal,", []string{"thermal"}},
		{"only commas", ",,", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTags(tc.in))
		})
	}
}

func TestMissingTags(t *testing.T) {
	req := ParseTags("thermal,dgca")
	assert.Empty(t, MissingTags(req, ParseTags("DGCA, Thermal, lidar")))
	assert.Equal(t, []string{"dgca"}, MissingTags(req, ParseTags("thermal")))
	assert.Equal(t, []string{"thermal", "dgca"}, MissingTags(req, nil))
}

func TestContainsTag(t *testing.T) {
	assert.True(t, ContainsTag("Thermal, Mapping", "thermal"))
	assert.True(t, ContainsTag("Thermal, Mapping", " MAP "))
	assert.False(t, ContainsTag("Thermal", "lidar"))
}
