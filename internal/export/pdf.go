// Package export renders packing results as a PDF report and as QR-coded
// item labels.
package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

// Packing is one container together with the tree packed into it.
type Packing struct {
	Container model.Container
	Tree      *space.Tree
}

// itemColor represents an RGB color for an item line.
type itemColor struct {
	R, G, B int
}

var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 5.5
	gaugeWidth   = 120.0
)

// ExportPDF writes a packing report: one page per container with its usage
// gauges, the space tree and the item legend, followed by a summary page.
func ExportPDF(path string, packings []Packing, settings model.PackSettings) error {
	if len(packings) == 0 {
		return fmt.Errorf("no packings to export")
	}
	for i, p := range packings {
		if p.Tree == nil {
			return fmt.Errorf("packing %d (%s) has no space tree", i+1, p.Container.Label)
		}
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, p := range packings {
		pdf.AddPage()
		renderPackingPage(pdf, p, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, packings, settings)

	return pdf.OutputFileAndClose(path)
}

// renderPackingPage draws a single packed container on the current page.
func renderPackingPage(pdf *fpdf.Fpdf, p Packing, num int) {
	tree := p.Tree
	root := tree.Root()
	c := p.Container

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Container %d: %s (%s x %s x %s)", num, c.Label,
		model.FormatMeasure(c.Length), model.FormatMeasure(c.Width), model.FormatMeasure(c.Height))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Spaces: %d | Item lines: %d | Units: %d | Volume used: %.2f%%",
		tree.Spaces(root), tree.ItemLines(root), totalUnits(tree), tree.VolumePercent(root))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	pdf.SetFont("Courier", "", 8)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(marginLeft, marginTop+headerHeight+6)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, tree.String(), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	y := marginTop + headerHeight + 14
	n := tree.Node(root)
	y = drawGauge(pdf, y, "Length", tree.TotalLength(root), n.MaxLength)
	y = drawGauge(pdf, y, "Width", tree.TotalWidth(root), n.MaxWidth)
	y = drawGauge(pdf, y, "Height", tree.TotalHeight(root), n.MaxHeight)
	if n.MaxWeight > 0 {
		y = drawGauge(pdf, y, "Weight", tree.TotalWeight(root), n.MaxWeight)
	}

	colors := colorIndex(tree)
	y = drawSpaceTable(pdf, tree, colors, y+4)
	drawItemLegend(pdf, tree, colors, y+4)
}

// drawGauge renders one labelled usage bar and returns the next y position.
func drawGauge(pdf *fpdf.Fpdf, y float64, label string, used, limit float64) float64 {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(20, 5, label+":", "", 0, "L", false, 0, "")

	frac := 0.0
	if limit > 0 {
		frac = math.Max(0, math.Min(1, used/limit))
	}
	x := marginLeft + 22
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.2)
	pdf.SetFillColor(235, 235, 235)
	pdf.Rect(x, y+0.75, gaugeWidth, 3.5, "FD")
	pdf.SetFillColor(33, 150, 243)
	if frac > 0 {
		pdf.Rect(x, y+0.75, gaugeWidth*frac, 3.5, "F")
	}

	pdf.SetXY(x+gaugeWidth+3, y)
	pdf.CellFormat(60, 5, fmt.Sprintf("%.2f / %s (%.1f%%)", used, model.FormatMeasure(limit), frac*100), "", 0, "L", false, 0, "")
	return y + 6
}

// drawSpaceTable lists every attached space in tree order, indented by depth.
func drawSpaceTable(pdf *fpdf.Fpdf, tree *space.Tree, colors map[string]itemColor, y float64) float64 {
	colWidths := []float64{50, 25, 55, 55, 82}
	headers := []string{"Space", "Type", "Used L x W x H", "Max L x W x H", "Items"}

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		x := marginLeft
		for i, h := range headers {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
			x += colWidths[i]
		}
		y += 6
	}
	header()

	row := 0
	tree.Walk(tree.Root(), func(n *space.Node, depth int) {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
			header()
		}

		cells := []string{
			strings.Repeat("  ", depth) + fmt.Sprintf("#%d", n.ID),
			n.Orientation.String(),
			fmt.Sprintf("%.2f x %.2f x %.2f", tree.TotalLength(n.ID), tree.TotalWidth(n.ID), tree.TotalHeight(n.ID)),
			fmt.Sprintf("%s x %s x %s", model.FormatMeasure(n.MaxLength), model.FormatMeasure(n.MaxWidth), model.FormatMeasure(n.MaxHeight)),
			leafItems(n),
		}

		if row%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Helvetica", "", 8)
		x := marginLeft
		for j, cell := range cells {
			align := "C"
			if j == 0 || j == 4 {
				align = "L"
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, align, true, 0, "")
			x += colWidths[j]
		}

		// Swatches for the items held by a leaf
		if n.IsLeaf() {
			sx := marginLeft + colWidths[0] - 4
			for _, it := range n.Items {
				col := colors[it.ID]
				pdf.SetFillColor(col.R, col.G, col.B)
				pdf.Rect(sx, y+1.5, 2.5, 2.5, "F")
				sx -= 3
			}
		}
		y += rowHeight
		row++
	})
	return y
}

// drawItemLegend renders the packed item lines with their quantities.
func drawItemLegend(pdf *fpdf.Fpdf, tree *space.Tree, colors map[string]itemColor, startY float64) {
	qty := tree.Quantities(tree.Root())
	if len(qty) == 0 {
		return
	}
	if startY+10 > pageHeight-marginBottom {
		pdf.AddPage()
		startY = marginTop
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items packed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, it := range distinctItems(tree) {
		col := colors[it.ID]
		label := fmt.Sprintf("%s (%sx%sx%s) x%d", it.ID,
			model.FormatMeasure(it.Length), model.FormatMeasure(it.Width), model.FormatMeasure(it.Height), qty[it.ID])
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the overview of all packed containers.
func renderSummaryPage(pdf *fpdf.Fpdf, packings []Packing, settings model.PackSettings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	units, volume := 0, 0.0
	for _, p := range packings {
		units += totalUnits(p.Tree)
		volume += p.Tree.VolumeUsed(p.Tree.Root())
	}

	summaryItems := []struct {
		label string
		value string
	}{
		{"Containers", fmt.Sprintf("%d", len(packings))},
		{"Units packed", fmt.Sprintf("%d", units)},
		{"Volume packed", fmt.Sprintf("%.2f", volume)},
		{"Orientation", settings.Orientation.String()},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Container Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 70, 55, 25, 25, 30, 30}
	headers := []string{"#", "Container", "Dimensions", "Spaces", "Units", "Weight", "Volume"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range packings {
		root := p.Tree.Root()
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			p.Container.Label,
			fmt.Sprintf("%s x %s x %s", model.FormatMeasure(p.Container.Length), model.FormatMeasure(p.Container.Width), model.FormatMeasure(p.Container.Height)),
			fmt.Sprintf("%d", p.Tree.Spaces(root)),
			fmt.Sprintf("%d", totalUnits(p.Tree)),
			fmt.Sprintf("%.3f", p.Tree.TotalWeight(root)),
			fmt.Sprintf("%.2f%%", p.Tree.VolumePercent(root)),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
		if y+6 > pageHeight-marginBottom-6 {
			pdf.AddPage()
			y = marginTop
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by cubefit", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// leafItems describes the items held by a leaf; inner nodes get an empty cell.
func leafItems(n *space.Node) string {
	if !n.IsLeaf() || len(n.Items) == 0 {
		return ""
	}
	parts := make([]string, len(n.Items))
	for i, it := range n.Items {
		parts[i] = fmt.Sprintf("%s x%d", it.ID, it.Units())
	}
	return strings.Join(parts, ", ")
}

// distinctItems returns one item per ID in first-seen tree order.
func distinctItems(tree *space.Tree) []model.Item {
	seen := make(map[string]bool)
	var out []model.Item
	for _, it := range tree.Items(tree.Root()) {
		if !seen[it.ID] {
			seen[it.ID] = true
			out = append(out, it)
		}
	}
	return out
}

// colorIndex assigns each item ID a stable color, ordered by ID.
func colorIndex(tree *space.Tree) map[string]itemColor {
	ids := make([]string, 0)
	for id := range tree.Quantities(tree.Root()) {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	colors := make(map[string]itemColor, len(ids))
	for i, id := range ids {
		colors[id] = itemColors[i%len(itemColors)]
	}
	return colors
}

// totalUnits returns the number of units packed into the tree.
func totalUnits(tree *space.Tree) int {
	total := 0
	for _, q := range tree.Quantities(tree.Root()) {
		total += q
	}
	return total
}
