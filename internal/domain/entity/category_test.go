package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategory_Attributes(t *testing.T) {
	require.Equal(t, "green", Recyclable.Color())
	require.Equal(t, "red", Landfill.Color())
	require.Equal(t, "orange", NotSure.Color())

	for _, c := range Categories() {
		require.NotEmpty(t, c.DisplayName())
		require.NotEmpty(t, c.Message())
		require.NotEmpty(t, c.Emoji())
	}
}

func TestCategory_UnknownFallsBackToNotSure(t *testing.T) {
	c := Category(42)
	require.Equal(t, NotSure.String(), c.String())
	require.Equal(t, NotSure.Color(), c.Color())
	require.Equal(t, NotSure.Message(), c.Message())
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	_, err := ParseCategory("compost")
	require.Error(t, err)
}
