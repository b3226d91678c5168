package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// WorkerPool
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if want := runtime.GOMAXPROCS(0); pool.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), want)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	var count atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { count.Add(1) }
	}
	pool.ExecuteAll(work)

	if got := count.Load(); got != 100 {
		t.Errorf("executed %d items, want 100", got)
	}
}

func TestWorkerPool_ExecuteAllWritesDisjointSlots(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	out := make([]int, 64)
	work := make([]func(), len(out))
	for i := range work {
		work[i] = func() { out[i] = i * i }
	}
	pool.ExecuteAll(work)

	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	ran := false
	pool.ExecuteAll([]func(){func() { ran = true }})
	if ran {
		t.Error("ExecuteAll after Close should not run work")
	}
}

// =============================================================================
// SplitRows
// =============================================================================

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name           string
		top, bottom, n int
		want           []Band
	}{
		{"even", 0, 9, 2, []Band{{0, 4}, {5, 9}}},
		{"remainder first", 10, 20, 3, []Band{{10, 13}, {14, 17}, {18, 20}}},
		{"more bands than rows", 5, 6, 8, []Band{{5, 5}, {6, 6}}},
		{"zero bands", 0, 3, 0, []Band{{0, 3}}},
		{"empty", 4, 3, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRows(tt.top, tt.bottom, tt.n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitRows mismatch (-want +got):\n%s", diff)
			}
			total := 0
			for _, b := range got {
				total += b.Rows()
			}
			if rows := max(0, tt.bottom-tt.top+1); total != rows {
				t.Errorf("bands cover %d rows, want %d", total, rows)
			}
		})
	}
}
