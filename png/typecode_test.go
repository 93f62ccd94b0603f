package png

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeCodeFromBytes(t *testing.T) {
	expected := [4]byte{82, 117, 83, 116}
	actual, err := TypeCodeFromBytes([4]byte{82, 117, 83, 116})
	require.NoError(t, err)
	assert.Equal(t, expected, actual.Bytes())
}

func TestParseTypeCode(t *testing.T) {
	expected, err := TypeCodeFromBytes([4]byte{82, 117, 83, 116})
	require.NoError(t, err)

	actual, err := ParseTypeCode("RuSt")
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.True(t, expected == actual)
	assert.Equal(t, "RuSt", actual.String())
}

func TestTypeCodeProperties(t *testing.T) {
	tests := []struct {
		code          string
		critical      bool
		public        bool
		reservedValid bool
		safeToCopy    bool
		valid         bool
	}{
		{"RuSt", true, false, true, true, true},
		{"ruSt", false, false, true, true, true},
		{"RUSt", true, true, true, true, true},
		{"Rust", true, false, false, true, false},
		{"RuST", true, false, true, false, true},
		{"IHDR", true, true, true, false, true},
		{"tEXt", false, true, true, true, true},
		{"zzzz", false, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			code, err := ParseTypeCode(tt.code)
			require.NoError(t, err)

			assert.Equal(t, tt.critical, code.IsCritical(), "IsCritical")
			assert.Equal(t, tt.public, code.IsPublic(), "IsPublic")
			assert.Equal(t, tt.reservedValid, code.IsReservedBitValid(), "IsReservedBitValid")
			assert.Equal(t, tt.safeToCopy, code.IsSafeToCopy(), "IsSafeToCopy")
			assert.Equal(t, tt.valid, code.IsValid(), "IsValid")
		})
	}
}

func TestTypeCodeNonConformingStillConstructs(t *testing.T) {
	code, err := ParseTypeCode("Rust")
	require.NoError(t, err)
	assert.False(t, code.IsValid())
	assert.Equal(t, "Rust", code.String())
}

func TestTypeCodeRejectsNonLetters(t *testing.T) {
	inputs := [][4]byte{
		{'R', 'u', '1', 't'},
		{' ', 'A', 'B', 'C'},
		{'A', 'B', 'C', 0x00},
		{'A', '@', 'B', 'C'},
		{'A', 'B', '[', 'C'},
		{'A', 'B', 'C', 0xC1},
	}

	for _, in := range inputs {
		_, err := TypeCodeFromBytes(in)
		require.Error(t, err, "%q", in[:])
		assert.True(t, errors.Is(err, ErrInvalidTypeCode))
		assert.Equal(t, KindInvalidTypeCode, KindOf(err))
	}

	_, err := ParseTypeCode("Ru1t")
	assert.ErrorIs(t, err, ErrInvalidTypeCode)
}

func TestParseTypeCodeLength(t *testing.T) {
	for _, s := range []string{"", "abc", "abcde", "Rüst"} {
		_, err := ParseTypeCode(s)
		require.Error(t, err, "%q", s)
		assert.ErrorIs(t, err, ErrInvalidLength)

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, uint64(4), e.Expected)
		assert.Equal(t, uint64(len(s)), e.Actual)
	}
}
