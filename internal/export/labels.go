package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/cubefit/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each unit label's QR code.
type LabelInfo struct {
	ItemID      string  `json:"item"`
	Unit        int     `json:"unit"`
	Units       int     `json:"units"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Container   string  `json:"container"`
	Packing     int     `json:"packing"`
	Space       int     `json:"space"`
	Orientation string  `json:"orientation"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF with one QR-coded label per packed unit.
// Each label names the item, its dimensions and the space holding it; the
// QR code carries the same data as JSON. Labels are laid out on a standard
// label sheet (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, packings []Packing) error {
	if len(packings) == 0 {
		return fmt.Errorf("no packings to generate labels for")
	}

	labels := CollectLabelInfos(packings)
	if len(labels) == 0 {
		return fmt.Errorf("no items packed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.ItemID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, index int, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d", index)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, info.ItemID, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%s x %s x %s", model.FormatMeasure(info.Length), model.FormatMeasure(info.Width), model.FormatMeasure(info.Height))
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	where := fmt.Sprintf("%s / space %d", info.Container, info.Space)
	pdf.CellFormat(textW, 3, truncate(pdf, where, textW), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Unit %d of %d", info.Unit, info.Units), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// truncate shortens s with an ellipsis until it fits into width w.
func truncate(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// CollectLabelInfos expands every packed item line into one label per unit,
// in tree order. Units are numbered per item ID across all packings.
func CollectLabelInfos(packings []Packing) []LabelInfo {
	totals := make(map[string]int)
	for _, p := range packings {
		if p.Tree == nil {
			continue
		}
		for id, q := range p.Tree.Quantities(p.Tree.Root()) {
			totals[id] += q
		}
	}

	seen := make(map[string]int)
	var labels []LabelInfo
	for pi, p := range packings {
		if p.Tree == nil {
			continue
		}
		for _, leaf := range p.Tree.Leaves(p.Tree.Root()) {
			n := p.Tree.Node(leaf)
			for _, it := range n.Items {
				for u := 0; u < it.Units(); u++ {
					seen[it.ID]++
					labels = append(labels, LabelInfo{
						ItemID:      it.ID,
						Unit:        seen[it.ID],
						Units:       totals[it.ID],
						Length:      it.Length,
						Width:       it.Width,
						Height:      it.Height,
						Weight:      it.Weight,
						Container:   p.Container.Label,
						Packing:     pi + 1,
						Space:       int(n.ID),
						Orientation: n.Orientation.String(),
					})
				}
			}
		}
	}
	return labels
}
