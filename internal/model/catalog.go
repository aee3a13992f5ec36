package model

// Dimensions holds the fixed geometry of the product line. All values
// are centimeters. These are catalog data, not tunables: the layout
// engine and the renderer both assume them.
type Dimensions struct {
	FrameMetalHeight float64 // 2040mm main metal frame
	FrameDepth       float64 // 300mm depth
	FrameThickness   float64 // 25mm square tube

	FootCapHeight  float64 // 50mm cap
	AdjusterHeight float64 // 10mm adjuster
	BaseHeight     float64 // floor to bottom of metal frame

	ShelfThickness float64
	ShelfDepth     float64

	CornerOuterSize  float64 // outer footprint of the corner module
	CornerExitOffset float64 // entry-to-exit offset per axis through a corner
	LPostSize        float64
	LPostThickness   float64

	BayWidth1200   float64
	BayWidth800    float64
	BayWidth600    float64
	BayWidth400    float64
	BayWidthCorner float64 // nominal identifier for corner bays

	XBarDiameter float64

	// RungLevels is the height from the floor to the center of each of
	// the six rungs.
	RungLevels [NumLevels]float64

	// XBarPositions are the mounting heights of the two cross-brace
	// sets, centered in the voids between rungs.
	XBarPositions [2]float64
}

// DefaultDimensions returns the production dimension table.
func DefaultDimensions() Dimensions {
	const base = 6.0 // adjuster 1.0 + foot cap 5.0
	return Dimensions{
		FrameMetalHeight: 204,
		FrameDepth:       30,
		FrameThickness:   2.5,

		FootCapHeight:  5.0,
		AdjusterHeight: 1.0,
		BaseHeight:     base,

		ShelfThickness: 1.8,
		ShelfDepth:     30.0,

		CornerOuterSize:  62.5,
		CornerExitOffset: 46.25,
		LPostSize:        4.0,
		LPostThickness:   1.0,

		BayWidth1200:   122.5,
		BayWidth800:    82.5,
		BayWidth600:    62.5,
		BayWidth400:    42.5,
		BayWidthCorner: 62.5,

		XBarDiameter: 1.0,

		RungLevels: [NumLevels]float64{
			base + 5.25,   // level 0: 11.25
			base + 50.75,  // level 1: 56.75
			base + 96.25,  // level 2: 102.25
			base + 131.75, // level 3: 137.75
			base + 167.25, // level 4: 173.25
			base + 202.75, // level 5: 208.75, flush with the top
		},
		XBarPositions: [2]float64{
			(base + 5.25 + base + 50.75) / 2,
			(base + 131.75 + base + 167.25) / 2,
		},
	}
}

// TotalHeight returns the overall height from the floor to the top of
// the frame, including foot cap and adjuster.
func (d Dimensions) TotalHeight() float64 {
	return d.FrameMetalHeight + d.FootCapHeight + d.AdjusterHeight
}

// PriceTable holds unit prices in KRW per part key. Dealers can
// override individual entries from a TOML price list; zero values are
// never written by DefaultPrices so a partial override file works with
// toml.Decode on top of the defaults.
type PriceTable struct {
	Frame int `json:"frame" toml:"frame"`
	LPost int `json:"l_post" toml:"l_post"`

	Shelf1200   int `json:"shelf_1200" toml:"shelf_1200"`
	Shelf800    int `json:"shelf_800" toml:"shelf_800"`
	Shelf400    int `json:"shelf_400" toml:"shelf_400"`
	ShelfCorner int `json:"shelf_corner" toml:"shelf_corner"`

	Hanger1200   int `json:"hanger_1200" toml:"hanger_1200"`
	Hanger800    int `json:"hanger_800" toml:"hanger_800"`
	Hanger400    int `json:"hanger_400" toml:"hanger_400"`
	HangerCorner int `json:"hanger_corner" toml:"hanger_corner"`

	XBarSet1200   int `json:"xbar_set_1200" toml:"xbar_set_1200"`
	XBarSet800    int `json:"xbar_set_800" toml:"xbar_set_800"`
	XBarSet400    int `json:"xbar_set_400" toml:"xbar_set_400"`
	XBarSetCorner int `json:"xbar_set_corner" toml:"xbar_set_corner"`

	Drawer800 int `json:"drawer_800" toml:"drawer_800"`

	FabricDrawer800 int `json:"fabric_drawer_800" toml:"fabric_drawer_800"`
	FabricDrawer400 int `json:"fabric_drawer_400" toml:"fabric_drawer_400"`

	Cabinet800Open int `json:"cabinet_800_open" toml:"cabinet_800_open"`
	Cabinet800Door int `json:"cabinet_800_door" toml:"cabinet_800_door"`

	Mirror400 int `json:"mirror_400" toml:"mirror_400"`

	Curtain400 int `json:"curtain_400" toml:"curtain_400"`
	Curtain800 int `json:"curtain_800" toml:"curtain_800"`
}

// DefaultPrices returns the list prices.
func DefaultPrices() PriceTable {
	return PriceTable{
		Frame: 55000,
		LPost: 35000,

		Shelf1200:   38000,
		Shelf800:    28000,
		Shelf400:    19000,
		ShelfCorner: 42000,

		Hanger1200:   16000,
		Hanger800:    12000,
		Hanger400:    9000,
		HangerCorner: 11000,

		XBarSet1200:   18000,
		XBarSet800:    15000,
		XBarSet400:    15000,
		XBarSetCorner: 25000,

		Drawer800: 95000,

		FabricDrawer800: 65000,
		FabricDrawer400: 38000,

		Cabinet800Open: 110000,
		Cabinet800Door: 150000,

		Mirror400: 85000,

		Curtain400: 35000,
		Curtain800: 45000,
	}
}
