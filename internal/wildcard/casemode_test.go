package wildcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaseMode(t *testing.T) {
	tests := []struct {
		in   string
		want CaseMode
	}{
		{"sensitive", Sensitive},
		{"insensitive", Insensitive},
		{"system", System},
		{"SENSITIVE", Sensitive},
		{"  Insensitive ", Insensitive},
	}

	for _, tt := range tests {
		got, err := ParseCaseMode(tt.in)
		require.NoError(t, err, "ParseCaseMode(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseCaseMode(%q)", tt.in)
	}
}

func TestParseCaseModeUnknown(t *testing.T) {
	_, err := ParseCaseMode("fuzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuzzy")
}

func TestCaseModeResolve(t *testing.T) {
	assert.Equal(t, Sensitive, Sensitive.Resolve())
	assert.Equal(t, Insensitive, Insensitive.Resolve())

	// System must resolve to one of the two concrete modes, and resolve
	// consistently with its own sensitivity report.
	resolved := System.Resolve()
	assert.Contains(t, []CaseMode{Sensitive, Insensitive}, resolved)
	assert.Equal(t, System.IsSensitive(), resolved.IsSensitive())

	// Resolution is idempotent.
	assert.Equal(t, resolved, resolved.Resolve())
}

func TestCaseModeString(t *testing.T) {
	assert.Equal(t, "sensitive", Sensitive.String())
	assert.Equal(t, "insensitive", Insensitive.String())
	assert.Equal(t, "system", System.String())
	assert.Equal(t, "CaseMode(42)", CaseMode(42).String())
}
