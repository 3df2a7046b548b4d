package toolbar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"modebar/internal/locale"
	"modebar/internal/mode"
	"modebar/internal/preset"
)

func mustCatalog(t *testing.T) *preset.Catalog {
	t.Helper()
	cat, err := preset.Default()
	require.NoError(t, err)
	return cat
}

func TestDeriveFavoriteModes(t *testing.T) {
	tr := locale.English()
	modes := DeriveFavoriteModes([]preset.Favorite{coffeePoint}, mustCatalog(t), tr, nil)
	require.Len(t, modes, 1)

	m := modes[0]
	require.Equal(t, coffeePointID, m.ID)
	require.Equal(t, coffeePointID, m.Button)
	require.Equal(t, "Coffee Shop", m.Title)
	require.Equal(t, "#maki-cafe-11", m.Icon)
	require.Equal(t, mode.Point, m.Geometry)
	require.Equal(t, mode.KindAddPoint, m.Kind)
	require.Empty(t, m.Key)
	require.Equal(t, "shop/coffee", m.Preset.ID)
	// Coffee shops can be points or areas, so the phrasing names the geometry.
	require.Equal(t, "Add Coffee Shop as a point.", m.Description)
}

func TestDeriveFavoriteModesGeometryDispatch(t *testing.T) {
	tr := locale.English()
	favs := []preset.Favorite{
		{PresetID: "highway/residential", Geom: "line"},
		{PresetID: "building", Geom: "area"},
		{PresetID: "amenity/drinking_water", Geom: "vertex"},
	}
	modes := DeriveFavoriteModes(favs, mustCatalog(t), tr, nil)
	require.Len(t, modes, 3)

	require.Equal(t, mode.KindAddLine, modes[0].Kind)
	require.Equal(t, "#iD-highway-residential", modes[0].Icon, "non-maki icons get no size suffix")
	require.Equal(t, "Add Residential Road.", modes[0].Description)

	require.Equal(t, mode.KindAddArea, modes[1].Kind)
	require.Equal(t, "add-preset add-area add-preset-Building-area", modes[1].ID)

	// Vertex favorites are added with the point mode.
	require.Equal(t, mode.KindAddPoint, modes[2].Kind)
	require.Equal(t, mode.Vertex, modes[2].Geometry)
	require.Equal(t, "add-preset add-vertex add-preset-Drinking_Water-vertex", modes[2].ID)
	require.Equal(t, "Add Drinking Water.", modes[2].Description, "vertex does not count as a choice")
}

func TestDeriveFavoriteModesSkipsInvalid(t *testing.T) {
	tr := locale.English()
	favs := []preset.Favorite{
		{PresetID: "gone/preset", Geom: "point"},
		coffeePoint,
		{PresetID: "shop/coffee", Geom: "relation"},
	}
	modes := DeriveFavoriteModes(favs, mustCatalog(t), tr, nil)
	require.Len(t, modes, 1)
	require.Equal(t, coffeePointID, modes[0].ID)
}

func TestDeriveFavoriteModesCollapsesUnicodeSpaces(t *testing.T) {
	cat, err := preset.New(&preset.Preset{
		ID:       "shop/odd",
		Label:    "Coffee \u00a0\u3000Shop\ufeffNo\u2009 1",
		Icon:     "maki-cafe",
		Geometry: []string{"point"},
	})
	require.NoError(t, err)

	modes := DeriveFavoriteModes([]preset.Favorite{{PresetID: "shop/odd", Geom: "point"}}, cat, locale.English(), nil)
	require.Len(t, modes, 1)
	require.Equal(t, "add-preset add-point add-preset-Coffee_Shop_No_1-point", modes[0].ID)
}

func TestTooltipTitleKey(t *testing.T) {
	tests := []struct {
		geometry []string
		geom     string
		want     string
	}{
		{[]string{"point"}, "point", "modes.add_preset.title"},
		{[]string{"point", "vertex"}, "point", "modes.add_preset.title"},
		{[]string{"point", "area"}, "point", "modes.add_preset.point.title"},
		{[]string{"point", "vertex", "line"}, "vertex", "modes.add_preset.vertex.title"},
		{[]string{"vertex"}, "vertex", "modes.add_preset.vertex.title"},
	}
	for _, tt := range tests {
		p := &preset.Preset{ID: "x", Geometry: tt.geometry}
		require.Equal(t, tt.want, tooltipTitleKey(p, tt.geom), "geometry %v", tt.geometry)
	}
}

func TestTooltipText(t *testing.T) {
	tr := locale.English()
	require.Equal(t, "Add things.  Shortcut: 1", TooltipText(tr, "Add things.", "1"))
	require.Equal(t, "Add things.", TooltipText(tr, "Add things.", ""))
	require.Equal(t, "Shortcut: 4", TooltipText(tr, "", "4"))
}
