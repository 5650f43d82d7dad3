package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cubefit/internal/engine"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/space"
)

func pack(t *testing.T, items []model.Item, c model.Container) Packing {
	t.Helper()
	p := engine.New(model.DefaultSettings(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	tree, err := p.Pack(items, c.Limits(), model.OrientationHorizontal)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	return Packing{Container: c, Tree: tree}
}

// buildTestPackings packs two realistic containers: a pallet bay with two
// books and a cube split into four boxes.
func buildTestPackings(t *testing.T) []Packing {
	t.Helper()
	books := []model.Item{
		model.NewItem("25845880", 24.4, 16.8, 2.0, 0.5),
		model.NewItem("29854048", 22.9, 15.2, 2.5, 0.028).WithQuantity(3),
	}
	boxes := []model.Item{model.NewItem("box", 10, 5, 5, 0).WithQuantity(4)}
	return []Packing{
		pack(t, books, model.NewContainer("Pallet bay", 300, 300, 30, 0)),
		pack(t, boxes, model.NewContainer("Cube", 10, 10, 10, 0)),
	}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:4]) != "%PDF" {
		t.Errorf("expected PDF header, got %q", data[:4])
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := ExportPDF(path, buildTestPackings(t), model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertPDF(t, path)
}

func TestExportPDF_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportPDF(path, nil, model.DefaultSettings()); err == nil {
		t.Fatal("expected error for no packings, got nil")
	}
}

func TestExportPDF_MissingTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notree.pdf")
	packings := []Packing{{Container: model.NewContainer("Bin", 1, 1, 1, 0)}}

	if err := ExportPDF(path, packings, model.DefaultSettings()); err == nil {
		t.Fatal("expected error for packing without tree, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written on error")
	}
}

func TestExportPDF_WeightLimitedContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weight.pdf")
	items := []model.Item{model.NewItem("heavy", 2, 2, 2, 3).WithQuantity(2)}
	packings := []Packing{pack(t, items, model.NewContainer("Crate", 10, 10, 10, 8))}

	if err := ExportPDF(path, packings, model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertPDF(t, path)
}

func TestExportPDF_EmptyTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emptytree.pdf")
	c := model.NewContainer("Unused", 10, 10, 10, 0)
	packings := []Packing{{Container: c, Tree: space.NewTree(c.Limits())}}

	if err := ExportPDF(path, packings, model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertPDF(t, path)
}

func TestExportPDF_ManyItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	// More item lines than colors, and enough units to overflow the space table
	items := make([]model.Item, 12)
	for i := range items {
		items[i] = model.NewItem(fmt.Sprintf("sku-%02d", i), 10, 10, 1, 0.1).WithQuantity(5)
	}
	packings := []Packing{pack(t, items, model.NewContainer("Pallet bay", 300, 300, 30, 0))}

	if err := ExportPDF(path, packings, model.DefaultSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertPDF(t, path)
}

func TestTotalUnits(t *testing.T) {
	packings := buildTestPackings(t)

	if got := totalUnits(packings[0].Tree); got != 4 {
		t.Errorf("totalUnits(books) = %d, want 4", got)
	}
	if got := totalUnits(packings[1].Tree); got != 4 {
		t.Errorf("totalUnits(boxes) = %d, want 4", got)
	}
}

func TestColorIndex(t *testing.T) {
	packings := buildTestPackings(t)
	colors := colorIndex(packings[0].Tree)

	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(colors))
	}
	if colors["25845880"] != itemColors[0] || colors["29854048"] != itemColors[1] {
		t.Errorf("expected colors assigned in ID order, got %v", colors)
	}
}

func TestDistinctItems(t *testing.T) {
	packings := buildTestPackings(t)
	items := distinctItems(packings[0].Tree)

	if len(items) != 2 {
		t.Fatalf("expected 2 distinct items, got %d", len(items))
	}
	if items[0].ID != "29854048" {
		t.Errorf("expected the first packed item first, got %s", items[0].ID)
	}
}

func TestLeafItems(t *testing.T) {
	packings := buildTestPackings(t)
	tree := packings[0].Tree

	got := leafItems(tree.Node(tree.Root()))
	want := "29854048 x1, 29854048 x1, 29854048 x1, 25845880 x1"
	if got != want {
		t.Errorf("leafItems() = %q, want %q", got, want)
	}

	split := packings[1].Tree
	if got := leafItems(split.Node(split.Root())); got != "" {
		t.Errorf("expected no items on an inner node, got %q", got)
	}
}
