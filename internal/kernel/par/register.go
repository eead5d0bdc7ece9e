package par

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
)

var _ dispatch.Backend[complex128] = Backend[complex128]{}

func init() {
	dispatch.Register[float32](dense.Par, Backend[float32]{})
	dispatch.Register[float64](dense.Par, Backend[float64]{})
	dispatch.Register[complex64](dense.Par, Backend[complex64]{})
	dispatch.Register[complex128](dense.Par, Backend[complex128]{})
}
