package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMovementType_TokensValidos(t *testing.T) {
	cases := map[string]MovementType{
		"IN":        MovementTypeIN,
		"out":       MovementTypeOUT,
		" Adjust ":  MovementTypeADJUST,
		"tRanSfer":  MovementTypeTRANSFER,
		"TRANSFER":  MovementTypeTRANSFER,
	}
	for in, want := range cases {
		got, ok := ParseMovementType(in)
		assert.True(t, ok, "entrada %q", in)
		assert.Equal(t, want, got)
	}
}

func TestParseMovementType_TokensInvalidos(t *testing.T) {
	for _, in := range []string{"", "  ", "ENTRADA", "INOUT", "OUT2", "TRANS FER"} {
		_, ok := ParseMovementType(in)
		assert.False(t, ok, "entrada %q", in)
	}
}

func TestIsCredit_SoloOUTDebita(t *testing.T) {
	assert.False(t, MovementTypeOUT.IsCredit())
	assert.True(t, MovementTypeIN.IsCredit())
	assert.True(t, MovementTypeADJUST.IsCredit())
	assert.True(t, MovementTypeTRANSFER.IsCredit())
}
