package event

import (
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/yk35/revitobjects/errors"
)

func TestRunExecutesJob(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	ran := false
	if err := b.Run(func() error { ran = true; return nil }, nil, "test"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !ran {
		t.Error("job did not run")
	}
}

func TestRunPropagatesJobError(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	boom := stderrors.New("boom")
	err := b.Run(func() error { return boom }, nil, "failing")
	if err != boom {
		t.Errorf("job error must propagate unchanged, got %v", err)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	err := b.Run(func() error { panic("host exploded") }, nil, "panicking")
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindHostFailure}) {
		t.Errorf("want host_failure, got %v", err)
	}

	// The worker must survive a panicking job.
	if err := b.Run(func() error { return nil }, nil, "after panic"); err != nil {
		t.Errorf("bridge dead after panic: %v", err)
	}
}

func TestRunRejectsNilJob(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	err := b.Run(nil, nil, "nil job")
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindInvalidInput}) {
		t.Errorf("want invalid_input, got %v", err)
	}
}

func TestRunSerializesJobs(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	const workers = 8
	const perWorker = 25

	var inFlight, maxInFlight, counter int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_ = b.Run(func() error {
					mu.Lock()
					inFlight++
					if inFlight > maxInFlight {
						maxInFlight = inFlight
					}
					counter++
					mu.Unlock()

					time.Sleep(time.Microsecond)

					mu.Lock()
					inFlight--
					mu.Unlock()
					return nil
				}, nil, "concurrent")
			}
		}()
	}
	wg.Wait()

	if maxInFlight != 1 {
		t.Errorf("max in-flight jobs = %d, want 1", maxInFlight)
	}
	if counter != workers*perWorker {
		t.Errorf("ran %d jobs, want %d", counter, workers*perWorker)
	}
}

func TestRunBlocksUntilDone(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	done := false
	_ = b.Run(func() error {
		time.Sleep(5 * time.Millisecond)
		done = true
		return nil
	}, nil, "slow")

	// Run returned, so the job must have completed.
	if !done {
		t.Error("Run returned before the job finished")
	}
}

func TestRunAfterClose(t *testing.T) {
	b := NewBridge()
	b.Close()

	err := b.Run(func() error { return nil }, nil, "late")
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindBridgeClosed}) {
		t.Errorf("want bridge_closed, got %v", err)
	}
}
