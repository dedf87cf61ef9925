//-----------------------------------------------------------------------------
/*

meshfx command-line shell.

Two subcommands, per spec.md §6 (listed for completeness, not part of the
core): `interp` copies a time series from a source mesh to a target mesh,
and `diff` reports element-wise differences between two structurally
identical time-series files.

*/
//-----------------------------------------------------------------------------

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gomesh/meshfx/geom"
	"github.com/gomesh/meshfx/interp"
	"github.com/gomesh/meshfx/mesh"
	"github.com/gomesh/meshfx/spatial"
)

//-----------------------------------------------------------------------------

// meshFile is the on-disk JSON shape this CLI reads/writes. It is a
// stand-in for the real mesh container format, which spec.md §6 treats as
// an external, unspecified MeshReader/MeshWriter collaborator.
type meshFile struct {
	Projection string    `json:"projection"`
	X          []float64 `json:"x"`
	Y          []float64 `json:"y"`
	Z          []float64 `json:"z"`
	Code       []int     `json:"code"`
	Elements   [][]int   `json:"elements"`
}

// timeSeriesFile is likewise a stand-in for the unspecified TimeSeriesReader/
// TimeSeriesWriter collaborator: one dense array of element-center values
// per step, plus the delete-value sentinel they were written with.
type timeSeriesFile struct {
	Delete float64     `json:"delete"`
	Steps  [][]float64 `json:"steps"`
}

func loadMesh(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var mf meshFile
	if err := json.NewDecoder(f).Decode(&mf); err != nil {
		return nil, fmt.Errorf("decode mesh %s: %w", path, err)
	}
	return mesh.New(mf.Projection, mf.X, mf.Y, mf.Z, mf.Code, nil, mf.Elements, nil)
}

func loadTimeSeries(path string) (*timeSeriesFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ts timeSeriesFile
	if err := json.NewDecoder(f).Decode(&ts); err != nil {
		return nil, fmt.Errorf("decode time series %s: %w", path, err)
	}
	return &ts, nil
}

func saveTimeSeries(path string, ts *timeSeriesFile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(ts)
}

//-----------------------------------------------------------------------------

func cmdInterp(args []string) error {
	fs := flag.NewFlagSet("interp", flag.ExitOnError)
	sourcePath := fs.String("source", "", "source mesh JSON file")
	targetPath := fs.String("target", "", "target mesh JSON file")
	valuesPath := fs.String("values", "", "source time-series JSON file")
	outPath := fs.String("out", "", "output time-series JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := loadMesh(*sourcePath)
	if err != nil {
		return err
	}
	tgt, err := loadMesh(*targetPath)
	if err != nil {
		return err
	}
	ts, err := loadTimeSeries(*valuesPath)
	if err != nil {
		return err
	}

	topo := mesh.Build(src)
	lap := interp.BuildLaplacian(src, topo)
	idx := spatial.NewRTreeIndex(spatial.MeshAdapter{Mesh: src})
	del := interp.DeleteValue(ts.Delete)
	tr := interp.NewTransfer(src, topo, idx, lap, del, true)

	targets := make([]geom.V2, tgt.ElementCount())
	for i := range targets {
		targets[i] = tgt.ElementCenter(i)
	}

	out := &timeSeriesFile{Delete: ts.Delete, Steps: make([][]float64, len(ts.Steps))}
	for s, step := range ts.Steps {
		result := make([]float64, tgt.ElementCount())
		tr.InterpolateToTargets(targets, step, result)
		out.Steps[s] = result
	}

	return saveTimeSeries(*outPath, out)
}

//-----------------------------------------------------------------------------

func cmdDiff(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	aPath := fs.String("a", "", "first time-series JSON file")
	bPath := fs.String("b", "", "second time-series JSON file")
	deleteAware := fs.Bool("delete-aware", false, "treat delete/value mismatches as differences in their own right")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := loadTimeSeries(*aPath)
	if err != nil {
		return err
	}
	b, err := loadTimeSeries(*bPath)
	if err != nil {
		return err
	}
	if len(a.Steps) != len(b.Steps) {
		return fmt.Errorf("diff: %s has %d steps, %s has %d", *aPath, len(a.Steps), *bPath, len(b.Steps))
	}

	anyDiff := false
	for s := range a.Steps {
		if len(a.Steps[s]) != len(b.Steps[s]) {
			return fmt.Errorf("diff: step %d has mismatched lengths", s)
		}
		for i := range a.Steps[s] {
			av, bv := a.Steps[s][i], b.Steps[s][i]
			aDel := interp.IsDelete(av, interp.DeleteValue(a.Delete))
			bDel := interp.IsDelete(bv, interp.DeleteValue(b.Delete))
			switch {
			case aDel && bDel:
				continue
			case aDel != bDel:
				if *deleteAware {
					fmt.Printf("step %d element %d: delete/value mismatch (%v vs %v)\n", s, i, av, bv)
					anyDiff = true
				}
			case av != bv:
				fmt.Printf("step %d element %d: %v vs %v\n", s, i, av, bv)
				anyDiff = true
			}
		}
	}

	if anyDiff {
		os.Exit(1)
	}
	return nil
}

//-----------------------------------------------------------------------------

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: meshfx <interp|diff> [flags]")
	}

	var err error
	switch os.Args[1] {
	case "interp":
		err = cmdInterp(os.Args[2:])
	case "diff":
		err = cmdDiff(os.Args[2:])
	default:
		log.Fatalf("unknown subcommand %q", os.Args[1])
	}
	if err != nil {
		log.Fatalf("error: %s", err)
	}
}
