// Package rules implements the placement rule engine: which item kinds
// may be mounted where, and what a successful placement does to a bay's
// item set. The rule table encodes physical constraints of the product
// (a curtain rail and a mirror door both claim the bay's front face, a
// cabinet carcass is two rung levels tall, a hanger needs garment
// clearance), so an allowed placement is a buildable one.
package rules

import (
	"fmt"

	"github.com/modernheim/dressroom/internal/model"
)

// Decision is the outcome of a placement check. Reason carries a
// ready-to-display message when the placement is not allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// validateTarget panics on malformed input. Level and kind come from
// the UI layer resolving clicks; anything out of range here is a caller
// bug, not a user mistake, and must not be silently coerced.
func validateTarget(level int, kind model.ItemType) {
	if level < 0 || level >= model.NumLevels {
		panic(fmt.Sprintf("rules: level index %d out of range 0..%d", level, model.NumLevels-1))
	}
	if !kind.Valid() {
		panic(fmt.Sprintf("rules: unknown item kind %q", kind))
	}
}

// CanPlace decides whether an item of the given kind may be placed at
// the given rung level of the bay. It never mutates anything and never
// fails for well-formed input; rejections are values, not errors.
//
// Note the check runs before toggle resolution: clicking an illegal
// target is rejected even if an identical item already sits there.
func CanPlace(bay model.BayConfig, level int, kind model.ItemType) Decision {
	validateTarget(level, kind)
	band := bay.Band()

	switch kind {
	case model.ItemShelf, model.ItemCornerShelf:
		return allow()

	case model.ItemHanger:
		if level == 0 {
			return deny("A hanger rod cannot be mounted at the lowest level.")
		}
		if bay.Type == model.BayCorner {
			if _, ok := bay.ItemAt(level, model.ItemCornerShelf); !ok {
				return deny("A corner hanger can only be mounted at a level that has a corner shelf.")
			}
		}
		storageAtLevel := bay.HasItem(func(it model.BayItem) bool {
			return it.LevelIndex == level && it.Type.IsStorage()
		})
		tallCabinet := bay.HasItem(func(it model.BayItem) bool {
			return it.LevelIndex == 0 && it.Type.IsCabinet()
		})
		if storageAtLevel || (level == 1 && tallCabinet) {
			return deny("A hanger rod cannot share a level with a drawer or cabinet.")
		}
		return allow()

	case model.ItemDrawer:
		if band != model.Band800 {
			return deny("The 800 wood drawer unit only fits 800-width modules.")
		}
		if level > 1 {
			return deny("Drawer units can only be mounted at the two lowest levels.")
		}
		return allow()

	case model.ItemFabricDrawer:
		if bay.Type == model.BayCorner {
			return deny("Drawer units cannot be mounted in a corner module.")
		}
		if band != model.Band400 && band != model.Band800 {
			return deny("Fabric drawers only fit 400 or 800 modules, not 1200.")
		}
		if level > 1 {
			return deny("Drawer units can only be mounted at the two lowest levels.")
		}
		return allow()

	case model.ItemCabinet800Open, model.ItemCabinet800Door:
		if bay.Type == model.BayCorner {
			return deny("Cabinets cannot be mounted in a corner module.")
		}
		if band != model.Band800 {
			return deny("Cabinets only fit 800-width modules.")
		}
		if level != 0 {
			return deny("Cabinets can only be mounted on the floor level.")
		}
		return allow()

	case model.ItemMirror:
		if bay.Type == model.BayCorner {
			return deny("A mirror cannot be mounted in a corner module.")
		}
		if band != model.Band400 {
			return deny("The full-length mirror only fits 400-width modules.")
		}
		return allow()

	case model.ItemCurtain400Short, model.ItemCurtain400Long,
		model.ItemCurtain800Short, model.ItemCurtain800Long:
		if bay.Type == model.BayCorner {
			return deny("A curtain cannot be mounted in a corner module.")
		}
		if bay.HasItem(func(it model.BayItem) bool { return it.Type == model.ItemMirror }) {
			return deny("A curtain cannot be mounted in a module that has a mirror.")
		}
		switch kind.CurtainBand() {
		case model.Band400:
			if band != model.Band400 {
				return deny("The 400 curtain rod set only fits 400-width modules.")
			}
		case model.Band800:
			if band == model.Band400 {
				return deny("The 800 curtain rod set does not fit a 400-width module.")
			}
			if band != model.Band800 && band != model.Band1200 {
				return deny("The 800 curtain rod set only fits 800 or 1200 modules.")
			}
		}
		return allow()
	}

	panic(fmt.Sprintf("rules: unhandled item kind %q", kind))
}

// Apply computes the bay's new item set for a placement that CanPlace
// has already allowed. If an identical (kind, level) item exists the
// placement toggles it off with no further side effects. Otherwise
// conflicting items are displaced, the new item is inserted, and for
// drawer-family items supporting shelves are auto-inserted at the
// drawer's level and the level above (a free-floating drawer with no
// shelf boundary is not a buildable product).
func Apply(bay model.BayConfig, level int, kind model.ItemType) []model.BayItem {
	validateTarget(level, kind)

	items := make([]model.BayItem, len(bay.Items))
	copy(items, bay.Items)

	// Toggle off an identical placement.
	if existing, ok := bay.ItemAt(level, kind); ok {
		return removeByID(items, existing.ID)
	}

	switch {
	case kind.IsDrawer():
		// A drawer displaces the hanger on its level, the cabinet whose
		// footprint it would overlap, and any other drawer on the level.
		items = removeIf(items, func(it model.BayItem) bool {
			return it.LevelIndex == level && it.Type == model.ItemHanger
		})
		if level <= 1 {
			items = removeIf(items, func(it model.BayItem) bool {
				return it.Type.IsCabinet()
			})
		}
		items = removeIf(items, func(it model.BayItem) bool {
			return it.LevelIndex == level && it.Type.IsDrawer()
		})

	case kind.IsCabinet():
		// The cabinet carcass spans levels 0 and 1; clear both.
		items = removeIf(items, func(it model.BayItem) bool {
			return it.LevelIndex <= 1
		})

	case kind == model.ItemMirror:
		// One mirror per bay.
		items = removeIf(items, func(it model.BayItem) bool {
			return it.Type == model.ItemMirror
		})

	case kind.IsCurtain():
		// One curtain per bay.
		items = removeIf(items, func(it model.BayItem) bool {
			return it.Type.IsCurtain()
		})

	case kind.IsShelf():
		// A shelf displaces storage sitting on its exact level.
		items = removeIf(items, func(it model.BayItem) bool {
			return it.LevelIndex == level && it.Type.IsStorage()
		})
	}

	items = append(items, model.NewBayItem(kind, level))

	if kind.IsDrawer() {
		items = ensureShelf(items, level)
		if above := level + 1; above < model.NumLevels {
			items = ensureShelf(items, above)
		}
	}

	return items
}

// ensureShelf inserts a plain shelf at the level unless one is already
// there. Auto-inserted shelves are always the plain variant; drawers
// are never placeable in corner bays.
func ensureShelf(items []model.BayItem, level int) []model.BayItem {
	for _, it := range items {
		if it.LevelIndex == level && it.Type == model.ItemShelf {
			return items
		}
	}
	return append(items, model.NewBayItem(model.ItemShelf, level))
}

func removeByID(items []model.BayItem, id string) []model.BayItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func removeIf(items []model.BayItem, pred func(model.BayItem) bool) []model.BayItem {
	out := items[:0]
	for _, it := range items {
		if !pred(it) {
			out = append(out, it)
		}
	}
	return out
}
