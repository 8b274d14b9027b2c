package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPlate(t *testing.T) {
	tests := []struct {
		plate string
		want  bool
	}{
		{"ABC1234", true},
		{"ABC-1234", true},
		{"abc1234", true}, // normalized before matching
		{" ABC1234 ", true},
		{"ABC1D23", true}, // Mercosul
		{"ABC12D3", false},
		{"AB1234", false},
		{"ABCD1234", false},
		{"ABC123", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.plate, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPlate(tt.plate))
		})
	}
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC1234", NormalizePlate("  abc1234 "))
	assert.Equal(t, "ABC-1234", NormalizePlate("abc-1234"))
}

func TestValidatePlates(t *testing.T) {
	bad := "NOPE"
	good := "XYZ9876"

	t.Run("all valid", func(t *testing.T) {
		b := &Booking{TractorPlate: "ABC1234", TrailerPlate1: &good}
		assert.NoError(t, ValidatePlates(b))
	})

	t.Run("empty trailer plates are skipped", func(t *testing.T) {
		empty := ""
		b := &Booking{TractorPlate: "ABC1D23", TrailerPlate2: &empty}
		assert.NoError(t, ValidatePlates(b))
	})

	t.Run("invalid trailer plate reports the field", func(t *testing.T) {
		b := &Booking{TractorPlate: "ABC1234", TrailerPlate1: &bad}
		err := ValidatePlates(b)
		require.Error(t, err)

		var perr *PlateFormatError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "trailer_plate_1", perr.Field)
		assert.Equal(t, "NOPE", perr.Plate)
	})
}
