package boardgraph

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrConstructionInvariant indicates that a pipeline integrity gate failed.
// It always signals an implementation defect; construction aborts and no
// partial Graph is returned. Use errors.Is to branch on it.
var ErrConstructionInvariant = errors.New("boardgraph: construction invariant violated")

// Pipeline phase names used as error and log context.
const (
	phaseMaterialize = "materialize"
	phaseConnect     = "connect"
	phaseDistances   = "distances"
	phaseStatistics  = "statistics"
	phaseAttach      = "attach"
)

// invariantf wraps ErrConstructionInvariant with phase context and a stack.
// The result reads "<phase>: <message>: boardgraph: construction invariant violated".
func invariantf(phase, format string, args ...interface{}) error {
	return errors.Wrapf(ErrConstructionInvariant, "%s: %s", phase, fmt.Sprintf(format, args...))
}
