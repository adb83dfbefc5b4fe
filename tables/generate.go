package tables

import (
	"sync"

	"github.com/cubeforge/kociemba/cube"
)

// stageResult carries one coordinate space's generation outcome back from
// its goroutine in GenerateAll.
type stageResult struct {
	name  string
	dist  []byte
	total int
	err   error
}

// GenerateAll builds all six pruning tables. The coordinate spaces are
// independent (no shared state, no overlapping memory), so the BFS
// passes run concurrently on a sync.WaitGroup rather than sequentially.
func GenerateAll(opts GenerateOptions) (*Tables, error) {
	if opts.Progress == nil {
		opts.Progress = func(ProgressEvent) {}
	}

	stages := []struct {
		name  string
		build func() moveTable
		seed  int
	}{
		{"CO", buildCOMoveTable, 0},
		{"EO", buildEOMoveTable, 0},
		{"UDS", buildUDSMoveTable, cube.SolvedUDSCoord},
		{"CP", buildCPMoveTable, 0},
		{"EP", buildEPMoveTable, 0},
		{"SliceEP", buildSliceEPMoveTable, 0},
	}

	results := make([]stageResult, len(stages))
	var wg sync.WaitGroup
	wg.Add(len(stages))
	for i, st := range stages {
		i, st := i, st
		go func() {
			defer wg.Done()
			mt := st.build()
			dist, visited, err := generatePruneTable(mt, st.seed)
			results[i] = stageResult{name: st.name, dist: dist, total: len(mt), err: err}
			if err == nil {
				opts.Progress(ProgressEvent{Table: st.name, Visited: visited, Total: len(mt)})
			}
		}()
	}
	wg.Wait()

	t := &Tables{}
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		switch r.name {
		case "CO":
			t.CO = r.dist
		case "EO":
			t.EO = r.dist
		case "UDS":
			t.UDS = r.dist
		case "CP":
			t.CP = r.dist
		case "EP":
			t.EP = r.dist
		case "SliceEP":
			t.SliceEP = r.dist
		}
	}
	return t, nil
}
