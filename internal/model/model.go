// Package model defines the configuration data model for the modular
// wardrobe system: bays, attachable items, global color options, and the
// static dimension and price catalogs everything else derives from.
package model

import "github.com/google/uuid"

// NumLevels is the number of rung levels per bay. Items attach at level
// indices 0 (floor-most) through NumLevels-1 (top).
const NumLevels = 6

// ItemType identifies the kind of an attachable part.
type ItemType string

const (
	ItemShelf           ItemType = "shelf"
	ItemCornerShelf     ItemType = "corner" // shelf variant used in corner bays
	ItemHanger          ItemType = "hanger"
	ItemDrawer          ItemType = "drawer" // 2-tier wood drawer, 800 only
	ItemFabricDrawer    ItemType = "fabric_drawer"
	ItemCabinet800Open  ItemType = "cabinet_800_open"
	ItemCabinet800Door  ItemType = "cabinet_800_door"
	ItemMirror          ItemType = "mirror"
	ItemCurtain400Short ItemType = "curtain_400_1500"
	ItemCurtain400Long  ItemType = "curtain_400_2100"
	ItemCurtain800Short ItemType = "curtain_800_1500"
	ItemCurtain800Long  ItemType = "curtain_800_2100"
)

// AllItemTypes lists every valid item type, used for validation and
// exhaustive iteration.
var AllItemTypes = []ItemType{
	ItemShelf, ItemCornerShelf, ItemHanger, ItemDrawer, ItemFabricDrawer,
	ItemCabinet800Open, ItemCabinet800Door, ItemMirror,
	ItemCurtain400Short, ItemCurtain400Long, ItemCurtain800Short, ItemCurtain800Long,
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	for _, k := range AllItemTypes {
		if t == k {
			return true
		}
	}
	return false
}

// IsShelf reports whether t is a shelf of either variant.
func (t ItemType) IsShelf() bool {
	return t == ItemShelf || t == ItemCornerShelf
}

// IsDrawer reports whether t belongs to the drawer family (wood or fabric).
func (t ItemType) IsDrawer() bool {
	return t == ItemDrawer || t == ItemFabricDrawer
}

// IsCabinet reports whether t is one of the 800 cabinet variants.
func (t ItemType) IsCabinet() bool {
	return t == ItemCabinet800Open || t == ItemCabinet800Door
}

// IsStorage reports whether t occupies a level as closed storage
// (drawer family or cabinet family). Storage conflicts with hangers.
func (t ItemType) IsStorage() bool {
	return t.IsDrawer() || t.IsCabinet()
}

// IsCurtain reports whether t is one of the curtain rod sets.
func (t ItemType) IsCurtain() bool {
	switch t {
	case ItemCurtain400Short, ItemCurtain400Long, ItemCurtain800Short, ItemCurtain800Long:
		return true
	}
	return false
}

// CurtainBand returns the width band a curtain set is made for
// (Band400 or Band800), or BandNone for non-curtain types.
func (t ItemType) CurtainBand() WidthBand {
	switch t {
	case ItemCurtain400Short, ItemCurtain400Long:
		return Band400
	case ItemCurtain800Short, ItemCurtain800Long:
		return Band800
	}
	return BandNone
}

// BayType distinguishes straight modules from the corner-turn module.
type BayType string

const (
	BayNormal BayType = "normal"
	BayCorner BayType = "corner"
)

// FrameColor is the metal frame finish.
type FrameColor string

const (
	FrameBlack FrameColor = "black"
	FrameWhite FrameColor = "white"
)

// Label returns the display name used on quotations.
func (c FrameColor) Label() string {
	if c == FrameWhite {
		return "White"
	}
	return "Black"
}

// ShelfColor is the wood panel finish shared by shelves, drawers and cabinets.
type ShelfColor string

const (
	ShelfAcacia ShelfColor = "acacia"
	ShelfWalnut ShelfColor = "walnut"
	ShelfWhite  ShelfColor = "white"
)

// Label returns the display name used on quotations.
func (c ShelfColor) Label() string {
	switch c {
	case ShelfWalnut:
		return "Walnut"
	case ShelfWhite:
		return "White"
	default:
		return "Acacia"
	}
}

// WidthBand classifies a bay's nominal width into one of the product's
// module size buckets. Nominal widths are not round numbers (42.5, 82.5,
// 122.5 cm), so bands are matched by open intervals rather than equality.
type WidthBand int

const (
	BandNone WidthBand = iota
	Band400
	Band800
	Band1200
	BandCorner
)

func (b WidthBand) String() string {
	switch b {
	case Band400:
		return "400"
	case Band800:
		return "800"
	case Band1200:
		return "1200"
	case BandCorner:
		return "corner"
	default:
		return "none"
	}
}

// ClassifyWidth maps a nominal width (cm) onto its band. The intervals
// are the single source of truth for width checks; every placement and
// pricing rule goes through this function.
func ClassifyWidth(width float64) WidthBand {
	switch {
	case width > 40 && width < 50:
		return Band400
	case width > 80 && width < 90:
		return Band800
	case width > 100:
		return Band1200
	default:
		return BandNone
	}
}

// BayItem is one attachable part mounted at a rung level inside a bay.
type BayItem struct {
	ID         string   `json:"id"`
	Type       ItemType `json:"type"`
	LevelIndex int      `json:"level_index"` // 0..NumLevels-1, 0 = floor-most
}

// NewBayItem creates a BayItem with a generated ID.
func NewBayItem(t ItemType, level int) BayItem {
	return BayItem{
		ID:         uuid.New().String()[:8],
		Type:       t,
		LevelIndex: level,
	}
}

// BayConfig is one structural module in the assembly sequence.
type BayConfig struct {
	ID      string    `json:"id"`
	Type    BayType   `json:"type"`
	Width   float64   `json:"width"` // nominal width in cm
	HasXBar bool      `json:"has_xbar"`
	Items   []BayItem `json:"items"`
}

// defaultShelfLevels are the rung levels a fresh bay is preloaded with:
// floor, a middle level, and the top. They establish the structural
// minimum without requiring the user to place starter shelves by hand.
var defaultShelfLevels = []int{0, 2, 5}

// NewBay creates a bay of the given width and type with its default
// shelf set. Corner bays get the corner shelf variant.
func NewBay(width float64, t BayType) BayConfig {
	shelfType := ItemShelf
	if t == BayCorner {
		shelfType = ItemCornerShelf
	}
	items := make([]BayItem, 0, len(defaultShelfLevels))
	for _, lvl := range defaultShelfLevels {
		items = append(items, NewBayItem(shelfType, lvl))
	}
	return BayConfig{
		ID:      uuid.New().String()[:8],
		Type:    t,
		Width:   width,
		HasXBar: true,
		Items:   items,
	}
}

// Band returns the bay's width band. Corner bays classify by type,
// independent of their nominal width.
func (b BayConfig) Band() WidthBand {
	if b.Type == BayCorner {
		return BandCorner
	}
	return ClassifyWidth(b.Width)
}

// ItemAt returns the item of the given type at the given level, if present.
func (b BayConfig) ItemAt(level int, t ItemType) (BayItem, bool) {
	for _, it := range b.Items {
		if it.LevelIndex == level && it.Type == t {
			return it, true
		}
	}
	return BayItem{}, false
}

// HasItem reports whether any item in the bay satisfies pred.
func (b BayConfig) HasItem(pred func(BayItem) bool) bool {
	for _, it := range b.Items {
		if pred(it) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the bay.
func (b BayConfig) Clone() BayConfig {
	out := b
	out.Items = make([]BayItem, len(b.Items))
	copy(out.Items, b.Items)
	return out
}

// GlobalConfig is the root configuration snapshot. The bay order is the
// physical assembly order: left to right, turning at each corner bay.
// Snapshots are treated as immutable once committed; mutations clone
// and replace rather than edit in place.
type GlobalConfig struct {
	FrameColor FrameColor  `json:"frame_color"`
	ShelfColor ShelfColor  `json:"shelf_color"`
	Bays       []BayConfig `json:"bays"`
}

// DefaultConfig returns the starting configuration: no bays, black
// frame, acacia shelves.
func DefaultConfig() GlobalConfig {
	return GlobalConfig{
		FrameColor: FrameBlack,
		ShelfColor: ShelfAcacia,
		Bays:       []BayConfig{},
	}
}

// Clone returns a deep copy of the configuration.
func (c GlobalConfig) Clone() GlobalConfig {
	out := c
	out.Bays = make([]BayConfig, len(c.Bays))
	for i, b := range c.Bays {
		out.Bays[i] = b.Clone()
	}
	return out
}

// FindBay returns the index of the bay with the given ID, or -1.
func (c GlobalConfig) FindBay(id string) int {
	for i, b := range c.Bays {
		if b.ID == id {
			return i
		}
	}
	return -1
}
