// Package session orchestrates configuration mutations: every committed
// operation runs through the rule engine, produces a brand-new snapshot,
// and is pushed onto the undo/redo history. Readers (layout, BOM) always
// derive from a fully-formed snapshot; there is no partially-mutated
// state to observe.
package session

import (
	"github.com/modernheim/dressroom/internal/bom"
	"github.com/modernheim/dressroom/internal/layout"
	"github.com/modernheim/dressroom/internal/model"
	"github.com/modernheim/dressroom/internal/rules"
)

// Mode is the active interaction mode: which item kind a placement
// click resolves to. It is explicit session state passed into the
// mutation layer, never ambient.
type Mode string

const (
	ModeNone            Mode = ""
	ModeShelf           Mode = "shelf"
	ModeHanger          Mode = "hanger"
	ModeDrawer          Mode = "drawer"
	ModeFabricDrawer    Mode = "fabric_drawer"
	ModeCabinetOpen     Mode = "cabinet_open"
	ModeCabinetDoor     Mode = "cabinet_door"
	ModeMirror          Mode = "mirror"
	ModeCurtain400Short Mode = "curtain_400_1500"
	ModeCurtain400Long  Mode = "curtain_400_2100"
	ModeCurtain800Short Mode = "curtain_800_1500"
	ModeCurtain800Long  Mode = "curtain_800_2100"
)

// ItemType resolves the mode to a concrete item kind for the target
// bay. Shelf mode resolves to the corner shelf variant in corner bays.
func (m Mode) ItemType(bay model.BayConfig) (model.ItemType, bool) {
	switch m {
	case ModeShelf:
		if bay.Type == model.BayCorner {
			return model.ItemCornerShelf, true
		}
		return model.ItemShelf, true
	case ModeHanger:
		return model.ItemHanger, true
	case ModeDrawer:
		return model.ItemDrawer, true
	case ModeFabricDrawer:
		return model.ItemFabricDrawer, true
	case ModeCabinetOpen:
		return model.ItemCabinet800Open, true
	case ModeCabinetDoor:
		return model.ItemCabinet800Door, true
	case ModeMirror:
		return model.ItemMirror, true
	case ModeCurtain400Short:
		return model.ItemCurtain400Short, true
	case ModeCurtain400Long:
		return model.ItemCurtain400Long, true
	case ModeCurtain800Short:
		return model.ItemCurtain800Short, true
	case ModeCurtain800Long:
		return model.ItemCurtain800Long, true
	}
	return "", false
}

// Session holds the working configuration, its history, and the small
// amount of UI-facing state (selection, interaction mode) the mutation
// operations need.
type Session struct {
	history *model.History
	dims    model.Dimensions
	prices  model.PriceTable

	selectedBayID string
	mode          Mode
}

// New creates a session starting from the default empty configuration
// with the default dimension and price tables.
func New() *Session {
	return NewWithConfig(model.DefaultConfig())
}

// NewWithConfig creates a session seeded with cfg.
func NewWithConfig(cfg model.GlobalConfig) *Session {
	return &Session{
		history: model.NewHistory(cfg),
		dims:    model.DefaultDimensions(),
		prices:  model.DefaultPrices(),
	}
}

// Config returns the current configuration snapshot.
func (s *Session) Config() model.GlobalConfig { return s.history.Current() }

// Dimensions returns the dimension table in use.
func (s *Session) Dimensions() model.Dimensions { return s.dims }

// Prices returns the price table in use.
func (s *Session) Prices() model.PriceTable { return s.prices }

// SetPrices replaces the price table, e.g. with a dealer override.
func (s *Session) SetPrices(p model.PriceTable) { s.prices = p }

// SelectedBayID returns the currently selected bay, or "".
func (s *Session) SelectedBayID() string { return s.selectedBayID }

// SelectBay sets the current selection.
func (s *Session) SelectBay(id string) { s.selectedBayID = id }

// Mode returns the active interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode activates a placement mode; setting the active mode again
// turns it off.
func (s *Session) SetMode(m Mode) {
	if s.mode == m {
		s.mode = ModeNone
		return
	}
	s.mode = m
}

// AddBay appends a bay of the given width and type, commits the new
// snapshot, and selects the new bay. It returns the bay as committed.
func (s *Session) AddBay(width float64, t model.BayType) model.BayConfig {
	cfg := s.Config()
	bay := model.NewBay(width, t)
	cfg.Bays = append(cfg.Bays, bay)
	s.history.Push(cfg)
	s.selectedBayID = bay.ID
	s.mode = ModeNone
	return bay
}

// RemoveBay deletes the bay with the given ID, preserving the order of
// the remaining bays. If the removed bay was selected, selection falls
// back to the new last bay or none. It reports whether a bay was removed.
func (s *Session) RemoveBay(id string) bool {
	cfg := s.Config()
	idx := cfg.FindBay(id)
	if idx < 0 {
		return false
	}
	cfg.Bays = append(cfg.Bays[:idx], cfg.Bays[idx+1:]...)
	s.history.Push(cfg)
	if s.selectedBayID == id {
		s.selectedBayID = ""
		if n := len(cfg.Bays); n > 0 {
			s.selectedBayID = cfg.Bays[n-1].ID
		}
	}
	s.mode = ModeNone
	return true
}

// ToggleItem resolves the active mode against the target bay and level,
// validates the placement, and commits the transformed item set when
// allowed. A rejected placement leaves the configuration untouched.
func (s *Session) ToggleItem(bayID string, level int) rules.Decision {
	if s.mode == ModeNone {
		return rules.Decision{Reason: "No placement mode is active."}
	}
	cfg := s.Config()
	idx := cfg.FindBay(bayID)
	if idx < 0 {
		return rules.Decision{Reason: "The target module no longer exists."}
	}
	bay := cfg.Bays[idx]

	kind, ok := s.mode.ItemType(bay)
	if !ok {
		return rules.Decision{Reason: "No placement mode is active."}
	}

	decision := rules.CanPlace(bay, level, kind)
	if !decision.Allowed {
		return decision
	}

	bay.Items = rules.Apply(bay, level, kind)
	cfg.Bays[idx] = bay
	s.history.Push(cfg)
	return decision
}

// SetFrameColor commits a frame color change.
func (s *Session) SetFrameColor(c model.FrameColor) {
	cfg := s.Config()
	cfg.FrameColor = c
	s.history.Push(cfg)
}

// SetShelfColor commits a shelf color change.
func (s *Session) SetShelfColor(c model.ShelfColor) {
	cfg := s.Config()
	cfg.ShelfColor = c
	s.history.Push(cfg)
}

// Undo steps the history back. The interaction mode is cleared and a
// selection pointing at a bay that no longer exists is dropped.
func (s *Session) Undo() bool {
	if !s.history.Undo() {
		return false
	}
	s.mode = ModeNone
	if s.selectedBayID != "" && s.Config().FindBay(s.selectedBayID) < 0 {
		s.selectedBayID = ""
	}
	return true
}

// Redo steps the history forward. Like Undo, the interaction mode is
// cleared and the selection survives only if its bay still exists.
func (s *Session) Redo() bool {
	if !s.history.Redo() {
		return false
	}
	s.mode = ModeNone
	if s.selectedBayID != "" && s.Config().FindBay(s.selectedBayID) < 0 {
		s.selectedBayID = ""
	}
	return true
}

// CanUndo reports whether Undo would move.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would move.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Reset discards history and starts over from the default configuration.
func (s *Session) Reset() {
	s.history.Reset(model.DefaultConfig())
	s.selectedBayID = ""
	s.mode = ModeNone
}

// Layout computes the world-space plan for the current configuration.
func (s *Session) Layout() layout.Plan {
	return layout.Compute(s.Config().Bays, s.dims)
}

// BOM computes the priced parts list for the current configuration.
func (s *Session) BOM() bom.BOM {
	return bom.Compute(s.Config(), s.prices)
}
