package booking

import (
	"testing"

	"decorquote/models"

	"github.com/stretchr/testify/require"
)

func TestFilterAddons_DropsIncludedFeatures(t *testing.T) {
	plan := models.Plan{Name: "Gold", Price: "$500", Features: []string{"Balloon Arch"}}
	catalog := []models.AddOn{
		{ID: 1, Name: "Balloon Arch", Type: models.AddOnCheckbox},
		{ID: 2, Name: "Fairy Lights", Type: models.AddOnQuantity},
	}

	got := FilterAddons(catalog, plan)
	require.Len(t, got, 1)
	require.Equal(t, "Fairy Lights", got[0].Name)
}

func TestFilterAddons_CaseInsensitiveSubstring(t *testing.T) {
	plan := models.Plan{Features: []string{"Premium BALLOON ARCH with LED", "Welcome board"}}
	catalog := []models.AddOn{
		{ID: 1, Name: "balloon arch", Type: models.AddOnCheckbox},
		{ID: 2, Name: "Welcome Board Deluxe", Type: models.AddOnCheckbox},
		{ID: 3, Name: "LED", Type: models.AddOnCheckbox},
		{ID: 4, Name: "Photo Booth", Type: models.AddOnCheckbox},
	}

	got := FilterAddons(catalog, plan)
	names := make([]string, 0, len(got))
	for _, a := range got {
		names = append(names, a.Name)
	}
	// Only the feature has to contain the add-on name, not the other way round.
	require.Equal(t, []string{"Welcome Board Deluxe", "Photo Booth"}, names)
}

func TestFilterAddons_NoFeaturesKeepsCatalogOrder(t *testing.T) {
	catalog := testCatalog()
	got := FilterAddons(catalog, models.Plan{Name: "Basic"})
	require.Equal(t, catalog, got)
}

func TestFilterAddons_EmptyCatalog(t *testing.T) {
	got := FilterAddons(nil, models.Plan{Features: []string{"x"}})
	require.NotNil(t, got)
	require.Empty(t, got)
}
