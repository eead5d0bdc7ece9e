package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/23skdu/longbow-bowyer/blas"
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/scalar"
)

var (
	opName     = flag.String("op", "axpy", "Routine to drive (axpy, dot, gemv, gemm)")
	policyName = flag.String("policy", "seq", "Execution policy (seq, par, vendor, device)")
	kindName   = flag.String("kind", "float64", "Element kind (float32, float64, complex64, complex128)")
	probSize   = flag.Int("n", 1024, "Problem size (vector length, matrix order)")
	iters      = flag.Int("iters", 100, "Iterations per measurement")
	duration   = flag.Duration("duration", 0, "Run soak for the given duration instead of a single measurement")
	cpuProfile = flag.String("cpuprofile", "", "Write cpu profile to file")
	listenAddr = flag.String("listen", "", "Address for metrics/pprof HTTP server (e.g. :8080)")
	enableOTel = flag.Bool("otel", false, "Enable OpenTelemetry tracing (stdout)")
	arrowOut   = flag.String("arrow-out", "", "Write measurement samples as an Arrow IPC stream to file ('-' for stdout)")
)

type sample struct {
	iter    int64
	seconds float64
	gflops  float64
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	flag.Parse()

	if err := blas.VerifyRegistry(); err != nil {
		log.Fatal().Err(err).Msg("Dispatch table incomplete")
	}
	log.Info().Interface("policies", blas.Policies()).Msg("Dispatch table verified")

	if *enableOTel {
		shutdown, err := initTracer()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer shutdown(context.Background())
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create CPU profile file")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("Could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	if *listenAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Info().Str("addr", *listenAddr).Msg("Serving metrics and pprof")
			if err := http.ListenAndServe(*listenAddr, nil); err != nil {
				log.Fatal().Err(err).Msg("HTTP server failed")
			}
		}()
	}

	p, err := dense.ParsePolicy(*policyName)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad policy")
	}

	ctx := context.Background()
	tr := otel.Tracer("bowyer")
	ctx, span := tr.Start(ctx, "bench")
	span.SetAttributes(
		attribute.String("op", *opName),
		attribute.String("policy", p.String()),
		attribute.Int("n", *probSize),
	)
	defer span.End()

	var samples []sample
	switch *kindName {
	case "float32":
		samples, err = run[float32](ctx, *opName, p, *probSize, *iters, *duration)
	case "float64":
		samples, err = run[float64](ctx, *opName, p, *probSize, *iters, *duration)
	case "complex64":
		samples, err = run[complex64](ctx, *opName, p, *probSize, *iters, *duration)
	case "complex128":
		samples, err = run[complex128](ctx, *opName, p, *probSize, *iters, *duration)
	default:
		log.Fatal().Str("kind", *kindName).Msg("Unknown element kind")
	}
	if err != nil {
		log.Fatal().Err(err).Str("op", *opName).Msg("Bench failed")
	}

	last := samples[len(samples)-1]
	log.Info().
		Str("op", *opName).
		Str("policy", p.String()).
		Int("n", *probSize).
		Float64("seconds", last.seconds).
		Float64("gflops", last.gflops).
		Msg("Bench complete")

	if *arrowOut != "" {
		if err := writeSamples(*arrowOut, samples); err != nil {
			log.Warn().Err(err).Msg("Failed to write arrow stream")
		}
	}
}

// run drives iters invocations of the named routine, repeating until the
// soak duration elapses when one is set. Operands are seeded uniform random
// data, so repeated runs measure identical inputs. Device dispatch queues
// mutating work asynchronously, so each measurement ends with a stream
// barrier.
func run[T scalar.Scalar](ctx context.Context, op string, p dense.Policy, n, iters int, soak time.Duration) ([]sample, error) {
	x := dense.RandomVector[T](p, n, 1)
	y := dense.RandomVector[T](p, n, 2)
	a := dense.RandomMatrix[T](p, n, n, 3)
	b := dense.RandomMatrix[T](p, n, n, 4)
	c := dense.NewMatrix[T](p, n, n)
	tiny := scalar.FromFloat64[T](1e-9)

	var flopsPer float64
	var body func() error
	switch op {
	case "axpy":
		flopsPer = 2 * float64(n)
		body = func() error { return blas.Axpy(x, y, tiny) }
	case "dot":
		flopsPer = 2 * float64(n)
		body = func() error { _, err := blas.Dot(x, y); return err }
	case "gemv":
		flopsPer = 2 * float64(n) * float64(n)
		body = func() error { return blas.Gemv(a, x, y) }
	case "gemm":
		flopsPer = 2 * float64(n) * float64(n) * float64(n)
		body = func() error { return blas.Gemm(a, b, c) }
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}

	start := time.Now()
	deadline := start.Add(soak)
	var samples []sample
	var total int64
	for round := 0; ; round++ {
		iterStart := time.Now()
		for i := 0; i < iters; i++ {
			if err := body(); err != nil {
				return nil, err
			}
		}
		if p == dense.Device {
			if err := blas.Sync(); err != nil {
				return nil, err
			}
		}
		elapsed := time.Since(iterStart)
		total += int64(iters)
		s := sample{
			iter:    total,
			seconds: elapsed.Seconds(),
			gflops:  flopsPer * float64(iters) / elapsed.Seconds() / 1e9,
		}
		samples = append(samples, s)

		if soak <= 0 || !time.Now().Before(deadline) {
			break
		}
		if round%10 == 0 {
			log.Info().
				Str("elapsed", time.Since(start).Round(time.Second).String()).
				Int64("total_iters", total).
				Float64("gflops", s.gflops).
				Msg("Soak progress")
		}
		if err := ctx.Err(); err != nil {
			return samples, err
		}
	}
	return samples, nil
}

func writeSamples(path string, samples []sample) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	pool := memory.NewGoAllocator()
	schema := arrow.NewSchema(
		[]arrow.Field{
			{Name: "op", Type: arrow.BinaryTypes.String},
			{Name: "policy", Type: arrow.BinaryTypes.String},
			{Name: "n", Type: arrow.PrimitiveTypes.Int64},
			{Name: "iter", Type: arrow.PrimitiveTypes.Int64},
			{Name: "seconds", Type: arrow.PrimitiveTypes.Float64},
			{Name: "gflops", Type: arrow.PrimitiveTypes.Float64},
		},
		nil,
	)

	bld := array.NewRecordBuilder(pool, schema)
	defer bld.Release()
	for _, s := range samples {
		bld.Field(0).(*array.StringBuilder).Append(*opName)
		bld.Field(1).(*array.StringBuilder).Append(*policyName)
		bld.Field(2).(*array.Int64Builder).Append(int64(*probSize))
		bld.Field(3).(*array.Int64Builder).Append(s.iter)
		bld.Field(4).(*array.Float64Builder).Append(s.seconds)
		bld.Field(5).(*array.Float64Builder).Append(s.gflops)
	}
	rec := bld.NewRecordBatch()
	defer rec.Release()

	w := ipc.NewWriter(out, ipc.WithSchema(schema))
	if err := w.Write(rec); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func initTracer() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("bowyer"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
