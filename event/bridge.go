// Package event provides the serialized execution bridge. Hosts of this
// family only allow entity mutations inside one host-managed execution
// context; the bridge stands in for that context with a single worker
// goroutine and marshals arbitrary callers' jobs into it.
package event

import (
	"time"

	"go.uber.org/zap"

	"github.com/yk35/revitobjects"
	"github.com/yk35/revitobjects/errors"
)

// Bridge runs submitted jobs one at a time on its worker goroutine and
// implements revitobjects.Runner. At most one job is in flight; further
// submissions block until the worker picks them up. There is no
// cancellation and no timeout: a submitted job runs to completion.
type Bridge struct {
	jobs chan submission
	quit chan struct{}
	done chan struct{}
}

type submission struct {
	job    func() error
	doc    revitobjects.Document
	label  string
	result chan error
}

// NewBridge starts the bridge's execution context.
func NewBridge() *Bridge {
	b := &Bridge{
		jobs: make(chan submission),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go b.loop()
	return b
}

// Run submits job for execution against doc and blocks until it ran
// inside the bridge's context. The job's error is returned unchanged; a
// panicking job is returned as a host_failure error. Run fails with
// bridge_closed after Close.
func (b *Bridge) Run(job func() error, doc revitobjects.Document, label string) error {
	if job == nil {
		return errors.InvalidInput(errors.PhaseEvent, "job cannot be nil")
	}

	sub := submission{
		job:    job,
		doc:    doc,
		label:  label,
		result: make(chan error, 1),
	}

	select {
	case b.jobs <- sub:
		return <-sub.result
	case <-b.quit:
		return errors.BridgeClosed(label)
	}
}

// Close stops accepting jobs and waits for the in-flight job, if any, to
// finish. Close must be called at most once.
func (b *Bridge) Close() {
	close(b.quit)
	<-b.done
}

func (b *Bridge) loop() {
	defer close(b.done)
	for {
		select {
		case sub := <-b.jobs:
			sub.result <- b.execute(sub)
		case <-b.quit:
			return
		}
	}
}

func (b *Bridge) execute(sub submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.PhaseEvent, errors.KindHostFailure).
				Detail("job %q panicked: %v", sub.label, r).
				Build()
		}
	}()

	start := time.Now()
	err = sub.job()

	title := ""
	if sub.doc != nil {
		title = sub.doc.Title()
	}
	Logger().Debug("job executed",
		zap.String("label", sub.label),
		zap.String("document", title),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return err
}
