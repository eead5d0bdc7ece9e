package cblas

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
)

var (
	_ dispatch.Backend[float32]    = (*backend32)(nil)
	_ dispatch.Backend[float64]    = (*backend64)(nil)
	_ dispatch.Backend[complex64]  = (*backendC)(nil)
	_ dispatch.Backend[complex128] = (*backendZ)(nil)
)

func init() {
	dispatch.Register[float32](dense.Vendor, newBackend32())
	dispatch.Register[float64](dense.Vendor, newBackend64())
	dispatch.Register[complex64](dense.Vendor, newBackendC())
	dispatch.Register[complex128](dense.Vendor, newBackendZ())
}
