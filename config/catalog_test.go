package config

import (
	"os"
	"path/filepath"
	"testing"

	"decorquote/models"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCatalogFile_Nested(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
catalog:
  addons:
    - id: 1
      name: Balloon Arch
      price: "$150"
      type: checkbox
    - id: 2
      name: Fairy Lights
      price: "$25"
      type: quantity
  selection:
    mode: OUTDOOR
    decoration:
      title: Wedding
    plan:
      name: Gold
      price: "$500"
      features: [Balloon Arch]
`)

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Equal(t, []models.AddOn{
		{ID: 1, Name: "Balloon Arch", Price: "$150", Type: models.AddOnCheckbox},
		{ID: 2, Name: "Fairy Lights", Price: "$25", Type: models.AddOnQuantity},
	}, c.Addons)
	require.NotNil(t, c.Selection)
	require.Equal(t, models.ModeOutdoor, c.Selection.Mode)
	require.Equal(t, []string{"Balloon Arch"}, c.Selection.Plan.Features)
	require.Nil(t, c.Selection.Setup)
}

func TestLoadCatalogFile_TopLevelJSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `{"addons":[{"id":7,"name":"Photo Booth","price":"$200","type":"checkbox"}]}`)

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, c.Addons, 1)
	require.Equal(t, 7, c.Addons[0].ID)
	require.Nil(t, c.Selection)
}

func TestLoadCatalogFile_Missing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefaultAddons_ReturnsCopy(t *testing.T) {
	AppConfig.Catalog.Addons = []models.AddOn{{ID: 1, Name: "A", Type: models.AddOnCheckbox}}
	t.Cleanup(func() { AppConfig.Catalog.Addons = nil })

	got := DefaultAddons()
	got[0].Name = "changed"
	require.Equal(t, "A", AppConfig.Catalog.Addons[0].Name)
}
