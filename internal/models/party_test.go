package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParty_IsZero(t *testing.T) {
	assert.True(t, Party{}.IsZero())
	assert.True(t, Party{Name: "  ", Address: "\t"}.IsZero())
	assert.False(t, Party{TaxID: "1234567/A"}.IsZero())
	assert.False(t, Party{Name: "Société Exemple"}.IsZero())
}
