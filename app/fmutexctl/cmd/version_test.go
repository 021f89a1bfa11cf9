package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{name: "newer patch", latest: "v1.0.1", current: "v1.0.0", want: true},
		{name: "same version", latest: "v1.0.0", current: "v1.0.0", want: false},
		{name: "older version", latest: "v0.9.0", current: "v1.0.0", want: false},
		{name: "newer minor", latest: "1.2.0", current: "1.1.9", want: true},
		{name: "newer major", latest: "v2.0.0", current: "v1.9.9", want: true},
		{name: "dev build always updatable", latest: "v0.0.1", current: "dev", want: true},
		{name: "unparseable current", latest: "v1.0.0", current: "garbage", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNewerVersion(tt.latest, tt.current))
		})
	}
}

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "abcdef12", shortCommit("abcdef1234567890"))
	assert.Equal(t, "unknown", shortCommit("unknown"))
}
