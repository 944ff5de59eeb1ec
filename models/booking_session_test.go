package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectedAddons_InsertionOrder(t *testing.T) {
	s := SelectedAddons{}.Set(2, 1).Set(5, 2).Set(3, 1)

	// Updating keeps the position.
	s = s.Set(5, 4)
	require.Equal(t, SelectedAddons{{2, 1}, {5, 4}, {3, 1}}, s)

	// Removing and re-adding moves the entry to the end.
	s = s.Set(2, 0).Set(2, 1)
	require.Equal(t, SelectedAddons{{5, 4}, {3, 1}, {2, 1}}, s)
}

func TestSelectedAddons_NoZeroEntries(t *testing.T) {
	s := SelectedAddons{}.Set(1, 3)
	s = s.Set(1, -2)
	require.Empty(t, s)
	require.Equal(t, 0, s.Quantity(1))

	require.Empty(t, SelectedAddons{}.Set(7, 0))
	require.Empty(t, SelectedAddons{}.Remove(7))
}

func TestSelectedAddons_CopyOnWrite(t *testing.T) {
	orig := SelectedAddons{}.Set(1, 1)
	next := orig.Set(1, 2)
	require.Equal(t, 1, orig.Quantity(1))
	require.Equal(t, 2, next.Quantity(1))
}

func TestUserDetails_Complete(t *testing.T) {
	require.False(t, UserDetails{Name: "Asha", Phone: "555"}.Complete())
	require.True(t, UserDetails{Name: "Asha", Phone: "555", Date: "2024-12-01"}.Complete())
}

func TestSelection_SetupTitle(t *testing.T) {
	require.Equal(t, "General", Selection{}.SetupTitle())
	require.Equal(t, "General", Selection{Setup: &SetupImage{}}.SetupTitle())
	require.Equal(t, "Pastel", Selection{Setup: &SetupImage{Title: "Pastel"}}.SetupTitle())
}
