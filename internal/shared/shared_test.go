package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	require.Equal(t, 5.4, Round2(5.4000000001))
	require.Equal(t, 2.68, Round2(2.675000001))
	require.Equal(t, 0.0, Round2(0))
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "$6.00", FormatAmount(6))
	require.Equal(t, "$5.40", FormatAmount(5.4))
}

func TestSanitizeLine(t *testing.T) {
	require.Equal(t, "1: Apple: 1.0: 2.0: 10", SanitizeLine("1: Apple\x00: 1.0: 2.0: 10\r"))
	require.Equal(t, "Total de ventas del da: ", SanitizeLine("Total de ventas del día: "))
	require.Equal(t, "plain ascii", SanitizeLine("plain ascii"))
}
