package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMatchPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false)

	p.PrintMatch("a.go")
	p.PrintMatch("sub/b.go")
	p.Finalize()

	assert.Equal(t, "a.go\nsub/b.go\n", buf.String())
	assert.Equal(t, int64(2), p.GetCount())
}

func TestPrintMatchJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false).WithJSON(true)

	p.PrintMatch("a.go")
	p.PrintMatch(`we"ird.go`)
	p.Finalize()

	var got []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"a.go", `we"ird.go`}, got)
}

func TestPrintMatchJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithJSON(true)

	p.Finalize()

	var got []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Empty(t, got)
	assert.Equal(t, int64(0), p.GetCount())
}

func TestPrintMatchNul(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithNul(true)

	p.PrintMatch("a b.go")
	p.PrintMatch("c.go")
	p.Finalize()

	assert.Equal(t, "a b.go\x00c.go\x00", buf.String())
}
