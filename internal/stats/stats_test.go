package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGenerateProfile_TiroTriple checks the reference example:
// Tiro boosts shot/dribble/speed, Triple adds to shot only.
func TestGenerateProfile_TiroTriple(t *testing.T) {
	p := GenerateProfile("Tiro", "Triple")

	assert.Equal(t, 70, p.Shot)    // 65 + 3 + 2
	assert.Equal(t, 66, p.Dribble) // 65 + 1
	assert.Equal(t, 66, p.Speed)   // 65 + 1
	assert.Equal(t, 65, p.Pass)
	assert.Equal(t, 65, p.Defense)
	assert.Equal(t, 65, p.Jump)

	// round((70+66+66+65+65+65)/6) = round(66.17) = 66
	assert.Equal(t, 66, p.Rating)
}

func TestGenerateProfile_VolcadasBonuses(t *testing.T) {
	p := GenerateProfile("Rebote", "Volcadas")

	assert.Equal(t, 71, p.Jump)    // 65 + 3 + 3
	assert.Equal(t, 67, p.Defense) // 65 + 2
	assert.Equal(t, 67, p.Speed)   // 65 + 2
	assert.Equal(t, 65, p.Shot)
}

// TestGenerateProfile_Deterministic verifies every catalog pair is
// reproducible across calls.
func TestGenerateProfile_Deterministic(t *testing.T) {
	for _, specialty := range Specialties() {
		for _, move := range Moves() {
			first := GenerateProfile(specialty, move)
			second := GenerateProfile(specialty, move)
			assert.Equal(t, first, second, "specialty=%s move=%s", specialty, move)
		}
	}
}

// TestGenerateProfile_UnknownTags verifies unrecognized tags are a silent
// no-op, not an error.
func TestGenerateProfile_UnknownTags(t *testing.T) {
	p := GenerateProfile("Tiro con efecto", "Molinete")

	assert.Equal(t, 65, p.Shot)
	assert.Equal(t, 65, p.Pass)
	assert.Equal(t, 65, p.Dribble)
	assert.Equal(t, 65, p.Speed)
	assert.Equal(t, 65, p.Defense)
	assert.Equal(t, 65, p.Jump)
	assert.Equal(t, 65, p.Rating)
}

func TestGenerateProfile_EmptyTags(t *testing.T) {
	p := GenerateProfile("", "")
	assert.Equal(t, 65, p.Rating)
}

// TestGenerateProfile_RoundHalfToEven pins the rounding rule on a mean
// that lands exactly on .5: Tiro+Tapa sums to 399, mean 66.5, which
// rounds to the even 66.
func TestGenerateProfile_RoundHalfToEven(t *testing.T) {
	p := GenerateProfile("Tiro", "Tapa")

	sum := p.Shot + p.Pass + p.Dribble + p.Speed + p.Defense + p.Jump
	assert.Equal(t, 399, sum)
	assert.Equal(t, 66, p.Rating)
}

func TestCatalogSize(t *testing.T) {
	assert.Len(t, Specialties(), 7)
	assert.Len(t, Moves(), 7)
}
