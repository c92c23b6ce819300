package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxtally/internal/domain"
	"taxtally/internal/gst"
)

func TestResolveType(t *testing.T) {
	cases := []struct {
		name        string
		seller      string
		buyer       string
		want        domain.GstType
	}{
		{"same_state", "Karnataka", "Karnataka", domain.GstTypeIntraState},
		{"different_states", "Karnataka", "Maharashtra", domain.GstTypeInterState},
		{"case_insensitive", "karnataka", "KARNATAKA", domain.GstTypeIntraState},
		{"surrounding_whitespace", " Karnataka ", "Karnataka", domain.GstTypeIntraState},
		{"unrecognized_buyer_defaults_interstate", "Karnataka", "Atlantis", domain.GstTypeInterState},
		{"empty_buyer_defaults_interstate", "Karnataka", "", domain.GstTypeInterState},
		{"union_territory", "Delhi", "Delhi", domain.GstTypeIntraState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gst.ResolveType(tc.seller, tc.buyer))
		})
	}
}

func TestKnownState(t *testing.T) {
	assert.True(t, gst.KnownState("Tamil Nadu"))
	assert.True(t, gst.KnownState("puducherry"))
	assert.False(t, gst.KnownState("Atlantis"))
	assert.False(t, gst.KnownState(""))
}
