package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modernheim/dressroom/internal/bom"
	"github.com/modernheim/dressroom/internal/layout"
	"github.com/modernheim/dressroom/internal/model"
)

var (
	colorCyan  = lipgloss.Color("36")  // headings
	colorWhite = lipgloss.Color("255") // values
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // rules, muted text
	colorGreen = lipgloss.Color("35")  // totals
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleTotal  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

// renderBOM formats the bill of materials as a terminal table.
func renderBOM(cfg model.GlobalConfig, b bom.BOM) string {
	var sb strings.Builder

	sb.WriteString(styleTitle.Render("Bill of Materials"))
	sb.WriteString("\n")
	sb.WriteString(styleDim.Render(fmt.Sprintf("Frame: %s | Shelf: %s | Modules: %d",
		cfg.FrameColor.Label(), cfg.ShelfColor.Label(), len(cfg.Bays))))
	sb.WriteString("\n\n")

	if len(b.Lines) == 0 {
		sb.WriteString(styleDim.Render("(empty configuration)"))
		sb.WriteString("\n")
		return sb.String()
	}

	nameW := len("Item")
	for _, li := range b.Lines {
		if len(li.Name) > nameW {
			nameW = len(li.Name)
		}
	}

	sb.WriteString(styleHeader.Render(fmt.Sprintf("%-*s  %4s  %12s  %12s", nameW, "Item", "Qty", "Unit", "Amount")))
	sb.WriteString("\n")
	sb.WriteString(styleDim.Render(strings.Repeat("-", nameW+34)))
	sb.WriteString("\n")

	for _, li := range b.Lines {
		sb.WriteString(styleValue.Render(fmt.Sprintf("%-*s  %4d  %12s  %12s",
			nameW, li.Name, li.Quantity, bom.FormatKRW(li.UnitPrice), bom.FormatKRW(li.Amount()))))
		sb.WriteString("\n")
	}

	sb.WriteString(styleDim.Render(strings.Repeat("-", nameW+34)))
	sb.WriteString("\n")
	sb.WriteString(styleValue.Render(fmt.Sprintf("%-*s  %32s", nameW, "Subtotal", bom.FormatKRW(b.Subtotal))))
	sb.WriteString("\n")
	sb.WriteString(styleValue.Render(fmt.Sprintf("%-*s  %32s", nameW, "VAT (10%)", bom.FormatKRW(int(b.VAT)))))
	sb.WriteString("\n")
	sb.WriteString(styleValue.Render(fmt.Sprintf("%-*s  %32s", nameW, "Shipping (10%)", bom.FormatKRW(int(b.Shipping)))))
	sb.WriteString("\n")
	sb.WriteString(styleTotal.Render(fmt.Sprintf("%-*s  %32s", nameW, "Total", bom.FormatKRW(int(b.Total)))))
	sb.WriteString("\n")
	return sb.String()
}

// renderLayout formats the computed plan as one row per bay.
func renderLayout(plan layout.Plan) string {
	var sb strings.Builder

	sb.WriteString(styleTitle.Render("Layout"))
	sb.WriteString("\n\n")

	if len(plan.Placements) == 0 {
		sb.WriteString(styleDim.Render("(empty configuration)"))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(styleHeader.Render(fmt.Sprintf("%-3s %-8s %7s %9s  %-22s %-22s", "#", "Type", "Width", "Heading", "Entry", "Exit")))
	sb.WriteString("\n")

	for i, p := range plan.Placements {
		sb.WriteString(styleValue.Render(fmt.Sprintf("%-3d %-8s %7.1f %8.1f°  %-22s %-22s",
			i+1, p.Bay.Type, p.Bay.Width, p.Rotation*180/math.Pi,
			formatPoint(p.EntryPoint), formatPoint(p.ExitPoint))))
		sb.WriteString("\n")
	}

	if plan.HasCorner {
		sb.WriteString("\n")
		sb.WriteString(styleDim.Render("Layout contains a corner turn."))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderProject formats a project summary: colors and the per-module
// item sets, ordered floor to top.
func renderProject(name string, cfg model.GlobalConfig) string {
	var sb strings.Builder

	sb.WriteString(styleTitle.Render(name))
	sb.WriteString("\n")
	sb.WriteString(styleDim.Render(fmt.Sprintf("Frame: %s | Shelf: %s | Modules: %d",
		cfg.FrameColor.Label(), cfg.ShelfColor.Label(), len(cfg.Bays))))
	sb.WriteString("\n\n")

	if len(cfg.Bays) == 0 {
		sb.WriteString(styleDim.Render("(empty configuration)"))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, bay := range cfg.Bays {
		header := fmt.Sprintf("Module %d: %s %.1f cm", i+1, bay.Type, bay.Width)
		if !bay.HasXBar {
			header += " (no x-bar)"
		}
		sb.WriteString(styleHeader.Render(header))
		sb.WriteString("\n")

		items := make([]model.BayItem, len(bay.Items))
		copy(items, bay.Items)
		sort.Slice(items, func(a, b int) bool {
			if items[a].LevelIndex != items[b].LevelIndex {
				return items[a].LevelIndex < items[b].LevelIndex
			}
			return items[a].Type < items[b].Type
		})
		for _, it := range items {
			sb.WriteString(styleValue.Render(fmt.Sprintf("  level %d  %s", it.LevelIndex, it.Type)))
			sb.WriteString("\n")
		}
		if len(items) == 0 {
			sb.WriteString(styleDim.Render("  (no items)"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func formatPoint(v layout.Vec3) string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Z)
}
