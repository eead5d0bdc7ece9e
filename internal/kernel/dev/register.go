package dev

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
)

var _ dispatch.Backend[float32] = Backend[float32]{}

func init() {
	s := Default()
	dispatch.Register[float32](dense.Device, New[float32](s))
	dispatch.Register[float64](dense.Device, New[float64](s))
	dispatch.Register[complex64](dense.Device, New[complex64](s))
	dispatch.Register[complex128](dense.Device, New[complex128](s))
}
