package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cubefit/internal/engine"
	"github.com/piwi3910/cubefit/internal/logging"
	"github.com/piwi3910/cubefit/internal/model"
	"github.com/piwi3910/cubefit/internal/project"
)

// testEnv points every persistent file flag at a temp directory.
type testEnv struct {
	dir           string
	configPath    string
	inventoryPath string
	manifestPath  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		dir:           dir,
		configPath:    filepath.Join(dir, "config.yaml"),
		inventoryPath: filepath.Join(dir, "inventory.json"),
		manifestPath:  filepath.Join(dir, "manifests.json"),
	}
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

func (e *testEnv) run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := logging.Stdout, logging.Stderr
	logging.Stdout, logging.Stderr = &out, &errOut
	defer func() { logging.Stdout, logging.Stderr = oldOut, oldErr }()

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{
		"--config", e.configPath,
		"--inventory", e.inventoryPath,
		"--manifests", e.manifestPath,
	}, args...))

	err := cmd.Execute()
	return runResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

const twoBooks = "PID,weight,length,width,height,quantity\n" +
	"25845880,0.500,24.4,16.8,2.0,1\n" +
	"29854048,0.028,22.9,15.2,2.5,3\n"

const fourBoxes = "box,0,10,5,5,4\n"

// ─── pack ──────────────────────────────────────────────────

func TestPack_IntoGivenContainer(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, twoBooks, "pack", "-", "--container", "300x300x30")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout,
		"A[0.0,0.0,0.0] spaces=1 cubes=2 l=24.40/300.0, w=62.40/300.0 h=02.50/30.0 volume=00.14%")
	assert.Contains(t, r.stdout, "✓ Packed 4 units into Container[300x300x30]")
	assert.Contains(t, r.stdout, "29854048 x1")
}

func TestPack_SelectsFromInventory(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, fourBoxes, "pack", "-", "--zone", "picking")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Shelf bin large 60x40x30")
	assert.Contains(t, r.stdout, "spaces=1 cubes=1")

	// The default inventory was written on first use
	_, err := os.Stat(env.inventoryPath)
	assert.NoError(t, err)
}

func TestPack_FromCSVFileWithReports(t *testing.T) {
	env := setupTestEnv(t)
	items := filepath.Join(env.dir, "items.csv")
	require.NoError(t, os.WriteFile(items, []byte(twoBooks), 0644))
	pdfPath := filepath.Join(env.dir, "report.pdf")
	labelPath := filepath.Join(env.dir, "labels.pdf")

	r := env.run(t, "", "pack", items, "-c", "300x300x30", "--pdf", pdfPath, "--labels", labelPath)

	require.NoError(t, r.err)
	for _, p := range []string{pdfPath, labelPath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(500))
	}
}

func TestPack_ImportWarningsAreLogged(t *testing.T) {
	env := setupTestEnv(t)
	items := filepath.Join(env.dir, "items.csv")
	require.NoError(t, os.WriteFile(items, []byte(twoBooks), 0644))

	r := env.run(t, "", "pack", items, "-c", "300x300x30")

	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "level=WARN")
	assert.Contains(t, r.stderr, "Detected header row")
}

func TestPack_DoesNotFit(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, "box,0,10,5,5,5\n", "pack", "-", "--container", "10x10x10")

	require.Error(t, r.err)
	assert.ErrorIs(t, r.err, engine.CauseWidthExceeded)
	assert.Equal(t, engine.ExitDoesNotFit, exitCode(r.err))
}

func TestPack_NoCandidate(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, "huge,0,500,500,500,1\n", "pack", "-")

	require.Error(t, r.err)
	assert.Equal(t, engine.ExitNoCandidate, exitCode(r.err))
}

func TestPack_AnyOrientationUnsupported(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, fourBoxes, "pack", "-", "-c", "10x10x10", "-o", "any")

	require.Error(t, r.err)
	assert.Equal(t, engine.ExitUnsupported, exitCode(r.err))
}

func TestPack_InvalidInput(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"bad container", []string{"pack", "-", "--container", "10x10"}},
		{"bad orientation", []string{"pack", "-", "-c", "10x10x10", "-o", "diagonal"}},
		{"unknown preset", []string{"pack", "-", "--preset", "Nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := env.run(t, fourBoxes, tt.args...)
			require.Error(t, r.err)
			assert.Equal(t, engine.ExitInvalidInput, exitCode(r.err))
		})
	}

	r := env.run(t, "", "pack", "-", "-c", "10x10x10")
	require.Error(t, r.err, "empty stdin")
	assert.Equal(t, engine.ExitInvalidInput, exitCode(r.err))
}

func TestPack_VerticalFromConfig(t *testing.T) {
	env := setupTestEnv(t)
	cfg := model.DefaultAppConfig()
	cfg.DefaultOrientation = model.OrientationVertical
	require.NoError(t, project.SaveAppConfig(env.configPath, cfg))

	r := env.run(t, "book,0.5,20,15,3,1\n", "pack", "-", "-c", "20x20x20")

	require.NoError(t, r.err)
	// Stood on end: 15 long, 3 wide, 20 high
	assert.Contains(t, r.stdout, "l=15.00/20.0, w=03.00/20.0 h=20.00/20.0")
}

// ─── capacity / estimate / compare ─────────────────────────

func TestCapacity(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, "", "capacity", "--item", "10x5x5", "--container", "10x10x10", "--id", "box")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "✓ 4 units of box fit")
	assert.Contains(t, r.stdout, "count=4")
}

func TestCapacity_NothingFits(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, "", "capacity", "--item", "20x20x20", "--container", "10x10x10")

	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "does not fit")
}

func TestEstimate(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, fourBoxes, "estimate", "-", "--container", "10x10x10")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "1 (1.00)")
	assert.Contains(t, r.stdout, "With 15% waste")
}

func TestCompare_Containers(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, fourBoxes, "compare", "-")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "★ best")
	assert.Contains(t, r.stdout, "Best fit: Container[Carton 30x22x15]")
	assert.Contains(t, r.stdout, "height-exceeded", "the flat shelf bin is too low")
}

func TestCompare_Orientations(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, fourBoxes, "compare", "-", "-c", "10x10x10")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Current Settings")
	assert.Contains(t, r.stdout, "VERTICAL orientation")
}

// ─── inventory / slot ──────────────────────────────────────

func TestInventoryAndSlot(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, "", "inventory", "add-product", "25845880", "24.4x16.8x2:0.5", "--title", "Atlas")
	require.NoError(t, r.err)

	r = env.run(t, "", "inventory", "add-container", "Tote", "60x40x30:25", "--zone", "totes")
	require.NoError(t, r.err)

	r = env.run(t, "", "inventory", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Tote")
	assert.Contains(t, r.stdout, "Atlas")

	r = env.run(t, "", "slot", "25845880", "--zone", "totes", "--qty", "2")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "goes into Container[Tote]")

	r = env.run(t, "", "slot", "missing")
	require.Error(t, r.err)
	assert.Equal(t, engine.ExitGeneralError, exitCode(r.err))
}

func TestInventoryImportExport(t *testing.T) {
	env := setupTestEnv(t)
	exported := filepath.Join(env.dir, "inv.yaml")

	r := env.run(t, "", "inventory", "export", exported)
	require.NoError(t, r.err)

	other := setupTestEnv(t)
	r = other.run(t, "", "inventory", "import", exported)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Imported")
}

// ─── manifest / export ─────────────────────────────────────

func TestManifestLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	r := env.run(t, twoBooks, "manifest", "save", "books", "-", "-c", "300x300x30", "-d", "two titles")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Saved manifest books")

	r = env.run(t, "", "manifest", "list")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "books")

	r = env.run(t, "", "manifest", "show", "books")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Pinned to Container[300x300x30]")

	r = env.run(t, "", "manifest", "pack", "books")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "volume=00.14%")

	r = env.run(t, "", "manifest", "delete", "books")
	require.NoError(t, r.err)

	r = env.run(t, "", "manifest", "show", "books")
	require.Error(t, r.err)
}

func TestExportBackupRestore(t *testing.T) {
	env := setupTestEnv(t)
	backup := filepath.Join(env.dir, "backup.json")

	r := env.run(t, fourBoxes, "manifest", "save", "boxes", "-")
	require.NoError(t, r.err)

	r = env.run(t, "", "export", "backup", backup)
	require.NoError(t, r.err)

	restored := setupTestEnv(t)
	r = restored.run(t, "", "export", "restore", backup)
	require.NoError(t, r.err)

	store, err := project.LoadManifests(restored.manifestPath)
	require.NoError(t, err)
	assert.NotNil(t, store.FindByName("boxes"))
	_, err = os.Stat(restored.configPath)
	assert.NoError(t, err)
}

// ─── helpers ───────────────────────────────────────────────

func TestParseLimits(t *testing.T) {
	l, err := parseLimits("25x25x3.5:7")
	require.NoError(t, err)
	assert.Equal(t, model.Limits{Length: 25, Width: 25, Height: 3.5, Weight: 7}, l)

	l, err = parseLimits(" 300X300x30 ")
	require.NoError(t, err)
	assert.Equal(t, model.Limits{Length: 300, Width: 300, Height: 30}, l)

	for _, bad := range []string{"", "1x2", "1x2xa", "1x2x3:w", "1x-2x3"} {
		_, err := parseLimits(bad)
		assert.Error(t, err, bad)
	}
}
