package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearch(t *testing.T) {
	assert.Equal(t, "jorge perez", NormalizeSearch("Jorge Pérez"))
	assert.Equal(t, "camion", NormalizeSearch("CAMIÓN"))
	assert.Equal(t, "nino", NormalizeSearch("Niño"))
	assert.Equal(t, "ord-9001", NormalizeSearch("ORD-9001"))
	assert.Equal(t, "", NormalizeSearch(""))
}

func TestMatchesSearch(t *testing.T) {
	needle := NormalizeSearch("pérez")
	assert.True(t, MatchesSearch(needle, "Jorge Pérez", "Zapatillas"))
	assert.True(t, MatchesSearch(NormalizeSearch("faja"), "Faja Reductora Post Parto"))
	assert.False(t, MatchesSearch(NormalizeSearch("inexistente"), "Faja Reductora"))
}
