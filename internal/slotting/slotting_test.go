package slotting

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/piwi3910/cubefit/internal/engine"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testInventory() *model.Inventory {
	return &model.Inventory{
		Containers: []model.ContainerPreset{
			model.NewContainerPreset("Tall shelf", "picking", 30, 30, 30, 0.5),
			model.NewContainerPreset("Shelf", "picking", 40, 30, 10, 15),
			model.NewContainerPreset("Carton", "shipping", 45, 35, 30, 20),
		},
		Products: []model.Product{
			{ID: "25845880", Title: "Atlas", Length: 24.4, Width: 16.8, Height: 2.0, Weight: 0.5},
			{ID: "heavy", Title: "Anvil", Length: 10, Width: 10, Height: 5, Weight: 100},
		},
	}
}

func newTestSlotter(inv *model.Inventory) *Slotter {
	packer := engine.New(model.DefaultSettings(), quietLogger())
	return New(inv, inv, packer, quietLogger())
}

func TestItemFor_ShortestSideBecomesLength(t *testing.T) {
	it := ItemFor(model.Product{ID: "p", Length: 24.4, Width: 16.8, Height: 2, Weight: 0.5}, 3)

	assert.Equal(t, 16.8, it.Length)
	assert.Equal(t, 24.4, it.Width)
	assert.Equal(t, 2.0, it.Height)
	assert.Equal(t, 3, it.Quantity)
	assert.Equal(t, "p", it.ID)

	same := ItemFor(model.Product{ID: "q", Length: 5, Width: 9, Height: 1}, 1)
	assert.Equal(t, 5.0, same.Length)
	assert.Equal(t, 9.0, same.Width)
}

func TestFindProductSlot(t *testing.T) {
	s := newTestSlotter(testInventory())

	res, err := s.FindProductSlot("25845880", 2, []string{"picking"})
	require.NoError(t, err)

	// The tall shelf sorts first but carries only half a unit of weight.
	assert.Equal(t, "Shelf", res.Container.Label)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "Tall shelf", res.Rejected[0].Container.Label)
	assert.Equal(t, 2, res.Item.Quantity)
	assert.Contains(t, res.Summary, "cubes=1")
}

func TestFindProductSlot_UnknownProduct(t *testing.T) {
	s := newTestSlotter(testInventory())

	_, err := s.FindProductSlot("missing", 1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestFindProductSlot_NoContainersInZone(t *testing.T) {
	s := newTestSlotter(testInventory())

	_, err := s.FindProductSlot("25845880", 1, []string{"mezzanine"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing containers")
}

func TestFindProductSlot_NothingFits(t *testing.T) {
	s := newTestSlotter(testInventory())

	_, err := s.FindProductSlot("heavy", 1, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrNoCandidate))
	assert.Equal(t, engine.ExitNoCandidate, engine.ExitCode(err))
	assert.Contains(t, err.Error(), "Anvil")
}
