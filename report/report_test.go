package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquity(t *testing.T) {
	r := Result{WinsA: 60, WinsB: 30, Draws: 10}
	assert.Equal(t, 100, r.Total())
	assert.InDelta(t, 0.60, r.PercentA(), 1e-9)
	assert.InDelta(t, 0.30, r.PercentB(), 1e-9)
	assert.InDelta(t, 0.65, r.EquityA(), 1e-9)
	assert.InDelta(t, 0.35, r.EquityB(), 1e-9)
	assert.InDelta(t, 1.0, r.EquityA()+r.EquityB(), 1e-9)
}

func TestEquityWithoutShowdowns(t *testing.T) {
	r := Result{Collisions: 20}
	assert.Zero(t, r.Total())
	assert.Zero(t, r.EquityA())
	assert.Zero(t, r.PercentB())
}

func TestWriteReadFile(t *testing.T) {
	r := Result{
		RangeA:        "QQ,AA",
		RangeB:        "KK",
		ComponentsA:   2,
		ComponentsB:   1,
		CombinationsA: 12,
		CombinationsB: 6,
		Evaluations:   20,
		Dealings:      200,
		WinsA:         2900,
		WinsB:         1050,
		Draws:         50,
		Collisions:    0,
		Seed:          1234567890123,
		Secure:        true,
	}
	path := filepath.Join(t.TempDir(), "result.pb")
	require.NoError(t, WriteFile(path, r))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}
