package seq

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
)

// ensure interface compliance
var _ dispatch.Backend[float64] = Backend[float64]{}

func init() {
	dispatch.Register[float32](dense.Seq, Backend[float32]{})
	dispatch.Register[float64](dense.Seq, Backend[float64]{})
	dispatch.Register[complex64](dense.Seq, Backend[complex64]{})
	dispatch.Register[complex128](dense.Seq, Backend[complex128]{})
}
