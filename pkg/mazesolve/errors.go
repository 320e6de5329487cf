package mazesolve

import "github.com/gridforge/mazecore/pkg/common"

// errCancelled is returned when a solver observes cfg.Ctx cancelled
// mid-search (spec §5 "Cancellation", §7 "CancelledError").
var errCancelled = common.ErrCancelled
