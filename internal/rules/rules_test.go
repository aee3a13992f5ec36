package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernheim/dressroom/internal/model"
)

func bay800() model.BayConfig { return model.NewBay(82.5, model.BayNormal) }
func bay400() model.BayConfig { return model.NewBay(42.5, model.BayNormal) }
func bay1200() model.BayConfig {
	return model.NewBay(122.5, model.BayNormal)
}
func bayCorner() model.BayConfig { return model.NewBay(62.5, model.BayCorner) }

// levelsOf collects the levels holding an item of the given type.
func levelsOf(items []model.BayItem, t model.ItemType) []int {
	var levels []int
	for _, it := range items {
		if it.Type == t {
			levels = append(levels, it.LevelIndex)
		}
	}
	return levels
}

func TestCanPlace_ShelfAlwaysAllowed(t *testing.T) {
	for level := 0; level < model.NumLevels; level++ {
		assert.True(t, CanPlace(bay800(), level, model.ItemShelf).Allowed)
		assert.True(t, CanPlace(bayCorner(), level, model.ItemCornerShelf).Allowed)
	}
}

func TestCanPlace_HangerNotOnFloorLevel(t *testing.T) {
	d := CanPlace(bay800(), 0, model.ItemHanger)
	assert.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason)

	assert.True(t, CanPlace(bay800(), 1, model.ItemHanger).Allowed)
}

func TestCanPlace_CornerHangerNeedsCornerShelf(t *testing.T) {
	b := bayCorner() // default corner shelves at 0, 2, 5

	assert.True(t, CanPlace(b, 2, model.ItemHanger).Allowed)
	assert.False(t, CanPlace(b, 3, model.ItemHanger).Allowed, "no corner shelf at level 3")

	// A plain shelf does not satisfy the corner dependency.
	b.Items = append(b.Items, model.NewBayItem(model.ItemShelf, 3))
	assert.False(t, CanPlace(b, 3, model.ItemHanger).Allowed)
}

func TestCanPlace_HangerBlockedByStorage(t *testing.T) {
	b := bay800()
	b.Items = Apply(b, 1, model.ItemDrawer)
	assert.False(t, CanPlace(b, 1, model.ItemHanger).Allowed)
	assert.True(t, CanPlace(b, 3, model.ItemHanger).Allowed)
}

func TestCanPlace_HangerBlockedAtLevelOneByCabinet(t *testing.T) {
	b := bay800()
	b.Items = Apply(b, 0, model.ItemCabinet800Door)

	assert.False(t, CanPlace(b, 1, model.ItemHanger).Allowed, "cabinet carcass reaches level 1")
	assert.True(t, CanPlace(b, 2, model.ItemHanger).Allowed)
}

func TestCanPlace_DrawerWidthAndLevel(t *testing.T) {
	tests := []struct {
		name    string
		bay     model.BayConfig
		level   int
		allowed bool
	}{
		{"800 level 0", bay800(), 0, true},
		{"800 level 1", bay800(), 1, true},
		{"800 level 2", bay800(), 2, false},
		{"400 bay", bay400(), 0, false},
		{"1200 bay", bay1200(), 0, false},
		{"corner bay", bayCorner(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanPlace(tt.bay, tt.level, model.ItemDrawer).Allowed)
		})
	}
}

func TestCanPlace_FabricDrawer(t *testing.T) {
	assert.True(t, CanPlace(bay400(), 0, model.ItemFabricDrawer).Allowed)
	assert.True(t, CanPlace(bay800(), 1, model.ItemFabricDrawer).Allowed)
	assert.False(t, CanPlace(bay1200(), 0, model.ItemFabricDrawer).Allowed)
	assert.False(t, CanPlace(bayCorner(), 0, model.ItemFabricDrawer).Allowed)
	assert.False(t, CanPlace(bay800(), 2, model.ItemFabricDrawer).Allowed)
}

func TestCanPlace_CabinetFloorOnly(t *testing.T) {
	assert.True(t, CanPlace(bay800(), 0, model.ItemCabinet800Open).Allowed)
	assert.False(t, CanPlace(bay800(), 1, model.ItemCabinet800Open).Allowed)
	assert.False(t, CanPlace(bay400(), 0, model.ItemCabinet800Door).Allowed)
	assert.False(t, CanPlace(bayCorner(), 0, model.ItemCabinet800Door).Allowed)
}

func TestCanPlace_Mirror400Only(t *testing.T) {
	assert.True(t, CanPlace(bay400(), 0, model.ItemMirror).Allowed)
	assert.False(t, CanPlace(bay800(), 0, model.ItemMirror).Allowed)
	assert.False(t, CanPlace(bayCorner(), 0, model.ItemMirror).Allowed)
}

func TestCanPlace_CurtainBands(t *testing.T) {
	// 400 curtains fit only 400 bays.
	assert.True(t, CanPlace(bay400(), 5, model.ItemCurtain400Short).Allowed)
	assert.False(t, CanPlace(bay800(), 5, model.ItemCurtain400Short).Allowed)
	assert.False(t, CanPlace(bay1200(), 5, model.ItemCurtain400Long).Allowed)

	// 800 curtains fit 800 and 1200, never 400.
	assert.True(t, CanPlace(bay800(), 5, model.ItemCurtain800Short).Allowed)
	assert.True(t, CanPlace(bay1200(), 5, model.ItemCurtain800Long).Allowed)
	assert.False(t, CanPlace(bay400(), 5, model.ItemCurtain800Short).Allowed)

	// No curtain on corner bays.
	assert.False(t, CanPlace(bayCorner(), 5, model.ItemCurtain800Short).Allowed)
}

func TestCanPlace_CurtainBlockedByMirror(t *testing.T) {
	b := bay400()
	b.Items = Apply(b, 0, model.ItemMirror)

	d := CanPlace(b, 5, model.ItemCurtain400Short)
	assert.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason)

	// Removing the mirror unblocks the curtain.
	b.Items = Apply(b, 0, model.ItemMirror) // toggle off
	assert.True(t, CanPlace(b, 5, model.ItemCurtain400Short).Allowed)
}

func TestCanPlace_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { CanPlace(bay800(), -1, model.ItemShelf) })
	assert.Panics(t, func() { CanPlace(bay800(), model.NumLevels, model.ItemShelf) })
	assert.Panics(t, func() { CanPlace(bay800(), 0, model.ItemType("bogus")) })
	assert.Panics(t, func() { Apply(bay800(), 9, model.ItemShelf) })
}

func TestApply_ToggleRemovesIdenticalPlacement(t *testing.T) {
	b := bay800()
	before := levelsOf(b.Items, model.ItemShelf)

	b.Items = Apply(b, 3, model.ItemShelf)
	assert.ElementsMatch(t, []int{0, 2, 3, 5}, levelsOf(b.Items, model.ItemShelf))

	b.Items = Apply(b, 3, model.ItemShelf)
	assert.ElementsMatch(t, before, levelsOf(b.Items, model.ItemShelf))
}

func TestApply_ToggleLaw(t *testing.T) {
	// Placing the same kind twice at the same level restores the level.
	b := bay800()
	b.Items = Apply(b, 4, model.ItemHanger)
	b.Items = Apply(b, 4, model.ItemHanger)

	assert.Empty(t, levelsOf(b.Items, model.ItemHanger))
	assert.ElementsMatch(t, []int{0, 2, 5}, levelsOf(b.Items, model.ItemShelf))
}

func TestApply_DrawerAutoInsertsShelves(t *testing.T) {
	b := bay800()
	b.Items = nil // strip defaults: no shelf boundary anywhere

	b.Items = Apply(b, 0, model.ItemDrawer)

	assert.ElementsMatch(t, []int{0}, levelsOf(b.Items, model.ItemDrawer))
	assert.ElementsMatch(t, []int{0, 1}, levelsOf(b.Items, model.ItemShelf),
		"drawer needs a shelf boundary below and above")
}

func TestApply_DrawerKeepsExistingShelves(t *testing.T) {
	b := bay800() // default shelves at 0, 2, 5
	b.Items = Apply(b, 0, model.ItemDrawer)

	assert.ElementsMatch(t, []int{0, 1, 2, 5}, levelsOf(b.Items, model.ItemShelf),
		"only the missing level-1 shelf is inserted")
}

func TestApply_DrawerAtTopLevelSkipsShelfAbove(t *testing.T) {
	// A drawer would never pass CanPlace above level 1; Apply itself
	// still guards the level+1 bound.
	b := bay800()
	b.Items = nil
	b.Items = Apply(b, model.NumLevels-1, model.ItemDrawer)

	assert.ElementsMatch(t, []int{model.NumLevels - 1}, levelsOf(b.Items, model.ItemShelf))
}

func TestApply_DrawerDisplacesHangerAndPeers(t *testing.T) {
	b := bay800()
	b.Items = Apply(b, 1, model.ItemHanger)
	b.Items = Apply(b, 1, model.ItemFabricDrawer)

	require.Empty(t, levelsOf(b.Items, model.ItemHanger))

	// A wood drawer at the same level displaces the fabric drawer.
	b.Items = Apply(b, 1, model.ItemDrawer)
	assert.Empty(t, levelsOf(b.Items, model.ItemFabricDrawer))
	assert.ElementsMatch(t, []int{1}, levelsOf(b.Items, model.ItemDrawer))
}

func TestApply_DrawerDisplacesCabinet(t *testing.T) {
	b := bay800()
	b.Items = Apply(b, 0, model.ItemCabinet800Open)
	b.Items = Apply(b, 1, model.ItemDrawer)

	assert.Empty(t, levelsOf(b.Items, model.ItemCabinet800Open))
	assert.ElementsMatch(t, []int{1}, levelsOf(b.Items, model.ItemDrawer))
}

func TestApply_CabinetClearsBothFootprintLevels(t *testing.T) {
	b := bay800()
	b.Items = Apply(b, 1, model.ItemDrawer) // also auto-inserts shelves at 1 and 2

	b.Items = Apply(b, 0, model.ItemCabinet800Door)

	for _, it := range b.Items {
		if it.Type == model.ItemCabinet800Door {
			continue
		}
		assert.Greater(t, it.LevelIndex, 1,
			"nothing besides the cabinet may remain at levels 0 and 1, found %s at %d", it.Type, it.LevelIndex)
	}
	assert.ElementsMatch(t, []int{0}, levelsOf(b.Items, model.ItemCabinet800Door))
}

func TestApply_MirrorIsSingletonPerBay(t *testing.T) {
	b := bay400()
	b.Items = Apply(b, 0, model.ItemMirror)
	b.Items = Apply(b, 2, model.ItemMirror)

	assert.ElementsMatch(t, []int{2}, levelsOf(b.Items, model.ItemMirror))
}

func TestApply_CurtainIsSingletonPerBay(t *testing.T) {
	b := bay800()
	b.Items = Apply(b, 5, model.ItemCurtain800Short)
	b.Items = Apply(b, 5, model.ItemCurtain800Long)

	assert.Empty(t, levelsOf(b.Items, model.ItemCurtain800Short))
	assert.ElementsMatch(t, []int{5}, levelsOf(b.Items, model.ItemCurtain800Long))
}

func TestApply_ShelfDisplacesStorageAtLevel(t *testing.T) {
	b := bay800()
	b.Items = Apply(b, 1, model.ItemDrawer)
	require.NotEmpty(t, levelsOf(b.Items, model.ItemDrawer))

	// The auto-inserted shelf at level 1 toggles off first; placing
	// again displaces the drawer.
	b.Items = Apply(b, 1, model.ItemShelf)
	b.Items = Apply(b, 1, model.ItemShelf)

	assert.Empty(t, levelsOf(b.Items, model.ItemDrawer))
	assert.Contains(t, levelsOf(b.Items, model.ItemShelf), 1)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	b := bay800()
	original := len(b.Items)

	_ = Apply(b.Clone(), 3, model.ItemShelf)
	assert.Len(t, b.Items, original)
}
