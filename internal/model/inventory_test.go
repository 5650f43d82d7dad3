package model

import (
	"testing"
)

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()
	if len(inv.Containers) == 0 {
		t.Fatal("expected default containers")
	}
	if inv.Products == nil {
		t.Error("expected non-nil products slice")
	}
	if inv.FindContainerByName("Pallet bay 300x300x30") == nil {
		t.Error("expected pallet bay preset")
	}
}

func TestContainerPresetToContainer(t *testing.T) {
	cp := NewContainerPreset("Bin", "picking", 25, 25, 3.5, 7)
	c := cp.ToContainer()
	if c.ID != cp.ID || c.Label != "Bin" {
		t.Errorf("unexpected container identity: %+v", c)
	}
	if c.Limits() != (Limits{Length: 25, Width: 25, Height: 3.5, Weight: 7}) {
		t.Errorf("unexpected limits: %+v", c.Limits())
	}
}

func TestFindContainerByID(t *testing.T) {
	inv := DefaultInventory()
	id := inv.Containers[1].ID
	if got := inv.FindContainerByID(id); got == nil || got.ID != id {
		t.Error("expected to find preset by ID")
	}
	if inv.FindContainerByID("missing") != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestContainerNames(t *testing.T) {
	inv := Inventory{Containers: []ContainerPreset{
		NewContainerPreset("A", "", 1, 1, 1, 0),
		NewContainerPreset("B", "", 1, 1, 1, 0),
	}}
	names := inv.ContainerNames()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestProductDimensions(t *testing.T) {
	inv := Inventory{Products: []Product{{ID: "P1", Length: 10, Width: 5, Height: 2, Weight: 1}}}

	p, err := inv.ProductDimensions("P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Length != 10 {
		t.Errorf("expected length 10, got %v", p.Length)
	}

	if _, err := inv.ProductDimensions("P2"); err == nil {
		t.Error("expected error for unknown product")
	}
}

func TestCandidateContainers_ZoneFilter(t *testing.T) {
	inv := DefaultInventory()

	all, err := inv.CandidateContainers(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(inv.Containers) {
		t.Errorf("expected %d candidates, got %d", len(inv.Containers), len(all))
	}

	shipping, err := inv.CandidateContainers([]string{"shipping"})
	if err != nil {
		t.Fatal(err)
	}
	if len(shipping) != 2 {
		t.Errorf("expected 2 shipping cartons, got %d", len(shipping))
	}

	if _, err := inv.CandidateContainers([]string{"mezzanine"}); err == nil {
		t.Error("expected error for a zone with no containers")
	}
}

func TestAllContainers(t *testing.T) {
	inv := DefaultInventory()
	cs := inv.AllContainers()
	if len(cs) != len(inv.Containers) {
		t.Fatalf("expected %d containers, got %d", len(inv.Containers), len(cs))
	}
	if cs[0].Label != inv.Containers[0].Name {
		t.Error("container label should carry the preset name")
	}
}
