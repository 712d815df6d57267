package message

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SrihariX911/Secure-Drone-Communication/ntru"
)

func textParams(t *testing.T) ntru.Params {
	t.Helper()
	par, err := ntru.PresetTextN16()
	require.NoError(t, err)
	return par
}

func TestTextEncodeHI(t *testing.T) {
	par := textParams(t)
	m, err := Text("HI").Encode(par)
	require.NoError(t, err)
	require.Len(t, m, par.N)
	want := ntru.Poly{7, 8, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}
	require.Equal(t, want, m)
}

func TestTextBijection(t *testing.T) {
	par := textParams(t)
	for _, s := range []Text{"", "A", "HI", "DRONE SEVEN", "HOLD POSITION.", "ZQX. .B"} {
		m, err := s.Encode(par)
		require.NoError(t, err, "encode %q", s)
		got, err := DecodeText(par, m)
		require.NoError(t, err, "decode %q", s)
		require.Equal(t, s, got)
	}
}

func TestNumericBijection(t *testing.T) {
	par := textParams(t)
	for _, v := range []Numeric{{0}, {7, 8}, {0, 27, 1, 13}} {
		m, err := v.Encode(par)
		require.NoError(t, err)
		got, err := DecodeNumeric(par, m)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	m, err := Numeric{}.Encode(par)
	require.NoError(t, err)
	got, err := DecodeNumeric(par, m)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMessageTooLong(t *testing.T) {
	par := textParams(t)
	_, err := Text("THIS TEXT DOES NOT FIT IN THE RING").Encode(par)
	require.ErrorIs(t, err, ErrMessageTooLong)
	_, err = make(Numeric, par.N+1).Encode(par)
	require.ErrorIs(t, err, ErrMessageTooLong)
}

func TestOutOfAlphabet(t *testing.T) {
	par := textParams(t)
	_, err := Text("hi").Encode(par)
	require.ErrorIs(t, err, ErrOutOfAlphabet)
	_, err = Numeric{0, 28}.Encode(par) // 28 is the sentinel, outside the domain
	require.ErrorIs(t, err, ErrOutOfAlphabet)
	_, err = Numeric{-1}.Encode(par)
	require.ErrorIs(t, err, ErrOutOfAlphabet)
}

func TestAlphabetNeedsRoom(t *testing.T) {
	par, err := ntru.PresetToyN11()
	require.NoError(t, err)
	_, err = Text("HI").Encode(par) // 28 symbols never fit mod p=3
	require.Error(t, err)
}

func TestDecodeRejectsWrongDimension(t *testing.T) {
	par := textParams(t)
	_, err := DecodeText(par, ntru.NewPoly(par.N-1))
	require.ErrorIs(t, err, ntru.ErrDimension)
}

func TestNumericDomainTracksModulus(t *testing.T) {
	par, err := ntru.PresetToyN11()
	require.NoError(t, err)
	m, err := Numeric{1, 0, 1}.Encode(par)
	require.NoError(t, err)
	got, err := DecodeNumeric(par, m)
	require.NoError(t, err)
	require.Equal(t, Numeric{1, 0, 1}, got)
	_, err = Numeric{2}.Encode(par) // 2 is the sentinel when p=3
	require.ErrorIs(t, err, ErrOutOfAlphabet)
}
