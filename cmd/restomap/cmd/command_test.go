package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/restomap/cmd/restomap/cmd"
	"github.com/agentstation/restomap/pkg/geo"
	"github.com/agentstation/restomap/pkg/reconcile"
)

// fakeApp is a minimal AppContext for command tests.
type fakeApp struct {
	logger zerolog.Logger
}

func (f *fakeApp) Logger() *zerolog.Logger { return &f.logger }

func (f *fakeApp) Pipeline() (*reconcile.Pipeline, error) { return reconcile.NewPipeline() }

func (f *fakeApp) Bounds() geo.Bounds { return geo.JakartaBounds() }

func (f *fakeApp) OutputFormat() string { return "json" }

func (f *fakeApp) TopN() int { return 15 }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReconcileCommand(t *testing.T) {
	dir := t.TempDir()
	matched := writeFile(t, dir, "matched.csv",
		"brandName_esb,branchName_esb,latitude_esb,longitude_esb\nA,1,-6.20,106.80\n")
	esb := writeFile(t, dir, "esb.csv",
		"brandName,branchName,latitude,longitude\nA,1,-6.20,106.80\nB,2,-6.21,106.81\n")
	jakarta := writeFile(t, dir, "jakarta.csv",
		"Nama Restoran,latitude,longitude\nA,-6.20,106.80\nC,-6.22,106.82\n")
	outDir := filepath.Join(dir, "out")

	app := &fakeApp{logger: zerolog.Nop()}
	c := cmd.NewReconcileCommand(app)
	c.SetArgs([]string{
		"--matched", matched,
		"--esb", esb,
		"--jakarta", jakarta,
		"--out-dir", outDir,
	})
	require.NoError(t, c.Execute())

	for _, name := range []string{"matched.csv", "esb_only.csv", "jakarta_only.csv"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "identity_display_name")
	}

	jakartaOnly, err := os.ReadFile(filepath.Join(outDir, "jakarta_only.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(jakartaOnly), "Jakarta-only")
	assert.Contains(t, string(jakartaOnly), "C")
}

func TestReconcileCommandRequiresInputs(t *testing.T) {
	app := &fakeApp{logger: zerolog.Nop()}
	c := cmd.NewReconcileCommand(app)
	c.SetArgs([]string{"--esb", "x.csv", "--jakarta", "y.csv"})
	c.SilenceUsage = true
	c.SilenceErrors = true

	assert.Error(t, c.Execute(), "missing --matched must fail")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "esb.csv",
		"brandName,latitude,longitude\nA,-6.20,106.80\nBad,-6.20,200.0\n")

	app := &fakeApp{logger: zerolog.Nop()}
	c := cmd.NewValidateCommand(app)
	c.SetArgs([]string{"--file", file})

	require.NoError(t, c.Execute())
}

func TestSummaryCommand(t *testing.T) {
	dir := t.TempDir()
	matched := writeFile(t, dir, "matched.csv",
		"brandName_esb,branchName_esb,latitude_esb,longitude_esb\nA,1,-6.20,106.80\n")
	esb := writeFile(t, dir, "esb.csv",
		"brandName,branchName,latitude,longitude\nB,2,-6.21,106.81\n")
	jakarta := writeFile(t, dir, "jakarta.csv",
		"Nama Restoran,latitude,longitude\nC,-6.22,106.82\n")

	app := &fakeApp{logger: zerolog.Nop()}
	c := cmd.NewSummaryCommand(app)
	c.SetArgs([]string{"--matched", matched, "--esb", esb, "--jakarta", jakarta, "--top", "5"})

	require.NoError(t, c.Execute())
}
