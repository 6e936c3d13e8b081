package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", ":8080", "-x", "ignored"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":8080"},
		},
		{
			name:    "equals form",
			args:    []string{"-k=keys/filekey.key", "-z=ignored"},
			allowed: []string{"-k"},
			want:    []string{"-k=keys/filekey.key"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-a", "-u", "uploads"},
			allowed: []string{"-a", "-u"},
			want:    []string{"-a", "-u", "uploads"},
		},
		{
			name:    "no allowed flags present",
			args:    []string{"-x", "1", "-y=2"},
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			assert.Equal(t, tc.want, got)
		})
	}
}
