package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	sealed, err := sealToken("bearer-token-value")
	require.NoError(t, err)
	require.NotEqual(t, "bearer-token-value", sealed)

	got, err := openToken(sealed)
	require.NoError(t, err)
	require.Equal(t, "bearer-token-value", got)
}

func TestOpenRejectsTampering(t *testing.T) {
	sealed, err := sealToken("secret")
	require.NoError(t, err)

	// flip a character of the base64 payload
	tampered := []byte(sealed)
	if tampered[len(tampered)-5] == 'A' {
		tampered[len(tampered)-5] = 'B'
	} else {
		tampered[len(tampered)-5] = 'A'
	}
	_, err = openToken(string(tampered))
	require.Error(t, err)
}

func TestOpenRejectsGarbage(t *testing.T) {
	_, err := openToken("not base64 !!!")
	require.Error(t, err)

	_, err = openToken("c2hvcnQ=")
	require.Error(t, err)
}
