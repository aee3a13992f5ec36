// Package bom derives the priced bill of materials from a configuration
// snapshot. The BOM is a multiset grouped by part key, not a per-bay
// listing: identical parts anywhere in the configuration aggregate into
// one line. It is recomputed from scratch on every change, since a
// single edit (removing a bay) shifts the shared frame count for the
// whole assembly.
package bom

import (
	"fmt"

	"github.com/modernheim/dressroom/internal/model"
)

// Category groups line items for display (row colors, section order).
type Category string

const (
	CategoryFrame        Category = "frame"
	CategoryLPost        Category = "lpost"
	CategoryXBar         Category = "xbar"
	CategoryShelf        Category = "shelf"
	CategoryHanger       Category = "hanger"
	CategoryDrawer       Category = "drawer"
	CategoryFabricDrawer Category = "fabric_drawer"
	CategoryCabinet      Category = "cabinet"
	CategoryMirror       Category = "mirror"
	CategoryCurtain      Category = "curtain"
)

// LineItem is one aggregated row of the bill of materials.
type LineItem struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	NominalWidth int      `json:"nominal_width,omitempty"` // cm bucket: 40, 80, 120, 59 for corner
	UnitPrice    int      `json:"unit_price"`              // KRW
	Quantity     int      `json:"quantity"`
}

// Amount returns the line total.
func (li LineItem) Amount() int { return li.UnitPrice * li.Quantity }

// BOM is the complete priced parts list.
type BOM struct {
	Lines    []LineItem `json:"lines"`
	Subtotal int        `json:"subtotal"`
	VAT      float64    `json:"vat"`      // 10% of subtotal
	Shipping float64    `json:"shipping"` // flat 10% of subtotal
	Total    float64    `json:"total"`
}

// builder aggregates line items by key while preserving first-seen order.
type builder struct {
	index map[string]int
	lines []LineItem
}

func newBuilder() *builder {
	return &builder{index: map[string]int{}}
}

func (b *builder) add(key, name string, cat Category, width, price, qty int) {
	if i, ok := b.index[key]; ok {
		b.lines[i].Quantity += qty
		return
	}
	b.index[key] = len(b.lines)
	b.lines = append(b.lines, LineItem{
		Key:          key,
		Name:         name,
		Category:     cat,
		NominalWidth: width,
		UnitPrice:    price,
		Quantity:     qty,
	})
}

// Compute derives the BOM for a configuration. An empty bay sequence
// yields an empty, all-zero BOM; the shared-frame "+1" rule only
// applies once at least one bay exists.
func Compute(cfg model.GlobalConfig, prices model.PriceTable) BOM {
	b := newBuilder()

	if len(cfg.Bays) > 0 {
		frameName := cfg.FrameColor.Label()

		// N chained bays share N+1 ladder frames. Bays carrying a
		// mirror door need the reinforced mount variant instead of a
		// standard frame.
		mirrorBays := 0
		for _, bay := range cfg.Bays {
			if bay.HasItem(func(it model.BayItem) bool { return it.Type == model.ItemMirror }) {
				mirrorBays++
			}
		}
		standard := len(cfg.Bays) + 1 - mirrorBays

		if mirrorBays > 0 {
			b.add("frame_mirror",
				fmt.Sprintf("Ladder Frame 2040, Mirror Mount [%s]", frameName),
				CategoryFrame, 0, prices.Frame, mirrorBays)
		}
		if standard > 0 {
			b.add("frame",
				fmt.Sprintf("Ladder Frame 2040 [%s]", frameName),
				CategoryFrame, 0, prices.Frame, standard)
		}

		for _, bay := range cfg.Bays {
			addBayParts(b, cfg, bay, prices)
		}
	}

	bom := BOM{Lines: b.lines}
	for _, li := range bom.Lines {
		bom.Subtotal += li.Amount()
	}
	bom.VAT = float64(bom.Subtotal) * 0.1
	bom.Shipping = float64(bom.Subtotal) * 0.1
	bom.Total = float64(bom.Subtotal) + bom.VAT + bom.Shipping
	return bom
}

func addBayParts(b *builder, cfg model.GlobalConfig, bay model.BayConfig, prices model.PriceTable) {
	frameName := cfg.FrameColor.Label()
	shelfName := cfg.ShelfColor.Label()
	band := priceBand(bay)

	if bay.Type == model.BayCorner {
		b.add("lpost",
			fmt.Sprintf("L-Post, Corner Pillar [%s]", frameName),
			CategoryLPost, 0, prices.LPost, 1)
	}

	if bay.HasXBar {
		switch band {
		case model.BandCorner:
			b.add("xbar-corner", "X-Bar Set (Corner)", CategoryXBar, 59, prices.XBarSetCorner, 1)
		case model.Band1200:
			b.add("xbar-1200", "X-Bar Set (1200)", CategoryXBar, 120, prices.XBarSet1200, 1)
		case model.Band800:
			b.add("xbar-800", "X-Bar Set (800)", CategoryXBar, 80, prices.XBarSet800, 1)
		default:
			b.add("xbar-400", "X-Bar Set (400)", CategoryXBar, 40, prices.XBarSet400, 1)
		}
	}

	for _, item := range bay.Items {
		switch {
		case item.Type == model.ItemShelf:
			// A plain shelf inside a corner bay prices by its physical
			// width, not by the corner part.
			shelfBand := band
			if shelfBand == model.BandCorner {
				shelfBand = nearestBand(bay.Width)
			}
			switch shelfBand {
			case model.Band1200:
				b.add("shelf-1200", fmt.Sprintf("Shelf 1200 [%s]", shelfName), CategoryShelf, 120, prices.Shelf1200, 1)
			case model.Band800:
				b.add("shelf-800", fmt.Sprintf("Shelf 800 [%s]", shelfName), CategoryShelf, 80, prices.Shelf800, 1)
			default:
				b.add("shelf-400", fmt.Sprintf("Shelf 400 [%s]", shelfName), CategoryShelf, 40, prices.Shelf400, 1)
			}
		case item.Type == model.ItemCornerShelf:
			b.add("shelf-corner", fmt.Sprintf("Corner Shelf 600 [%s]", shelfName), CategoryShelf, 59, prices.ShelfCorner, 1)
		case item.Type == model.ItemHanger:
			switch band {
			case model.BandCorner:
				b.add("hanger-corner", "Hanger Rod (Corner)", CategoryHanger, 59, prices.HangerCorner, 1)
			case model.Band1200:
				b.add("hanger-1200", "Hanger Rod (1200)", CategoryHanger, 120, prices.Hanger1200, 1)
			case model.Band800:
				b.add("hanger-800", "Hanger Rod (800)", CategoryHanger, 80, prices.Hanger800, 1)
			default:
				b.add("hanger-400", "Hanger Rod (400)", CategoryHanger, 40, prices.Hanger400, 1)
			}
		case item.Type == model.ItemDrawer:
			b.add("drawer-800", fmt.Sprintf("2-Tier Wood Drawer 800 [%s]", shelfName), CategoryDrawer, 80, prices.Drawer800, 1)
		case item.Type == model.ItemFabricDrawer:
			if band == model.Band400 {
				b.add("fabric-drawer-400", "Fabric Drawer 2-Box 400 [Gray]", CategoryFabricDrawer, 40, prices.FabricDrawer400, 1)
			} else {
				b.add("fabric-drawer-800", "Fabric Drawer 4-Box 800 [Gray]", CategoryFabricDrawer, 80, prices.FabricDrawer800, 1)
			}
		case item.Type == model.ItemCabinet800Open:
			b.add("cabinet-open", fmt.Sprintf("Open Cabinet 800 [%s]", shelfName), CategoryCabinet, 80, prices.Cabinet800Open, 1)
		case item.Type == model.ItemCabinet800Door:
			b.add("cabinet-door", fmt.Sprintf("Door Cabinet 800 [%s]", shelfName), CategoryCabinet, 80, prices.Cabinet800Door, 1)
		case item.Type == model.ItemMirror:
			b.add("mirror-400", fmt.Sprintf("Full-Length Mirror Door 400 [%s]", shelfName), CategoryMirror, 40, prices.Mirror400, 1)
		case item.Type.IsCurtain():
			addCurtain(b, item.Type, prices)
		}
	}
}

func addCurtain(b *builder, t model.ItemType, prices model.PriceTable) {
	length := "1500"
	if t == model.ItemCurtain400Long || t == model.ItemCurtain800Long {
		length = "2100"
	}
	if t.CurtainBand() == model.Band400 {
		b.add(string(t), fmt.Sprintf("Curtain Rod Set 400 (%s)", length), CategoryCurtain, 40, prices.Curtain400, 1)
	} else {
		b.add(string(t), fmt.Sprintf("Curtain Rod Set 800 (%s)", length), CategoryCurtain, 80, prices.Curtain800, 1)
	}
}

// priceBand returns the band used for pricing. Bays added through the
// normal flow always classify cleanly; a legacy or hand-edited width
// that falls between bands is quoted by the nearest module size.
func priceBand(bay model.BayConfig) model.WidthBand {
	if band := bay.Band(); band != model.BandNone {
		return band
	}
	return nearestBand(bay.Width)
}

// nearestBand maps a width onto the closest module size bucket.
func nearestBand(width float64) model.WidthBand {
	switch {
	case width > 100:
		return model.Band1200
	case width > 60:
		return model.Band800
	default:
		return model.Band400
	}
}

// FormatKRW renders an amount with thousands separators.
func FormatKRW(v int) string {
	if v < 0 {
		return "-" + FormatKRW(-v)
	}
	s := fmt.Sprintf("%d", v)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
