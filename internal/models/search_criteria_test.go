package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchCriteria_Normalization(t *testing.T) {
	c := NewSearchCriteria("  Colosseo  ", " attivo ")
	assert.Equal(t, "Colosseo", c.Search)
	assert.Equal(t, StatoAttivo, c.Stato)

	// Пустой и невалидный ввод схлопывается в отсутствие фильтра
	c = NewSearchCriteria("   ", "not-a-status")
	assert.Equal(t, "", c.Search)
	assert.Equal(t, Stato(""), c.Stato)
	assert.False(t, c.HasFilters())
}

func TestNewSearchCriteria_Idempotent(t *testing.T) {
	first := NewSearchCriteria("  Duomo ", " in_allarme ")
	second := NewSearchCriteria(first.Search, string(first.Stato))
	require.Equal(t, first, second)
}

func TestSearchCriteria_Fingerprint_Deterministic(t *testing.T) {
	a := NewSearchCriteria(" Colosseo ", "attivo")
	b := NewSearchCriteria("Colosseo", " attivo")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// md5("Colosseo|attivo"), hex в нижнем регистре, 32 символа
	require.Len(t, a.Fingerprint(), 32)
	assert.Equal(t, "07083f376af2b421d4514c7f705212e7", a.Fingerprint())
}

func TestSearchCriteria_Fingerprint_DistinguishesFields(t *testing.T) {
	assert.NotEqual(t,
		NewSearchCriteria("Colosseo", "").Fingerprint(),
		NewSearchCriteria("", "attivo").Fingerprint(),
	)
	assert.NotEqual(t,
		NewSearchCriteria("Colosseo", "attivo").Fingerprint(),
		NewSearchCriteria("Colosseo", "disattivo").Fingerprint(),
	)
}

func TestSearchCriteria_HasFilters(t *testing.T) {
	assert.False(t, NewSearchCriteria("", "").HasFilters())
	assert.True(t, NewSearchCriteria("Colosseo", "").HasFilters())
	assert.True(t, NewSearchCriteria("", "disattivo").HasFilters())
}
