package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	t.Run("Strips all non-digit characters", func(t *testing.T) {
		assert.Equal(t, "919876543210", NormalizePhone("+91 98765-43210"))
		assert.Equal(t, "9876543210", NormalizePhone("987-654-3210"))
		assert.Equal(t, "9876543210", NormalizePhone("(987) 654 3210"))
	})

	t.Run("Leaves digit-only input unchanged", func(t *testing.T) {
		assert.Equal(t, "9876543210", NormalizePhone("9876543210"))
	})

	t.Run("Empty input passes through", func(t *testing.T) {
		assert.Equal(t, "", NormalizePhone(""))
	})

	t.Run("Idempotent", func(t *testing.T) {
		inputs := []string{"+91 98765-43210", "", "12ab34", "no digits at all"}
		for _, input := range inputs {
			once := NormalizePhone(input)
			assert.Equal(t, once, NormalizePhone(once))
		}
	})
}
