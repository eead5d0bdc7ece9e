//go:build cgo

package cblas

// This file is only included when cgo is enabled. It swaps gonum's native
// Go BLAS for the system BLAS through netlib (Accelerate on macOS,
// OpenBLAS on Linux) for all four precisions.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
	"gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas32.Use(netlib.Implementation{})
	blas64.Use(netlib.Implementation{})
	cblas64.Use(netlib.Implementation{})
	cblas128.Use(netlib.Implementation{})
	log.Debug().Msg("⚡ CGO/BLAS Acceleration Enabled (netlib)")
}
