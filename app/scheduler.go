package app

import (
	"time"

	"github.com/soocke/game-overlay-go/domain/overlay"
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TkScheduler adapts Tk's after mechanism to the overlay Scheduler
// interface. Callbacks run on Tk's event loop thread, same as every
// other UI mutation in this program.
type TkScheduler struct{}

func (TkScheduler) After(d time.Duration, fn func()) (cancel func()) {
	id := TclAfter(d, fn)
	return func() { TclAfterCancel(id) }
}

var _ overlay.Scheduler = TkScheduler{}
