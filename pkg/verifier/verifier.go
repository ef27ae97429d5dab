package verifier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/certen/poh-verifier/internal/recycler"
	"github.com/certen/poh-verifier/internal/workerpool"
	"github.com/certen/poh-verifier/pkg/dispatch"
	"github.com/certen/poh-verifier/pkg/entry"
	"github.com/certen/poh-verifier/pkg/verify"
	"github.com/certen/poh-verifier/pkg/verify/native"
)

// DeviceData is the backend-specific payload a State carries until
// finalization: nothing for a CPU-terminal state, or the in-flight GPU job
// and its worker handle for a pending one.
type DeviceData struct {
	WorkerHandle uuid.UUID
	GPUJob       *verify.Job
}

// State is the opaque handle produced by StartVerify. It transitions at
// most once, from Pending to a terminal Status, via FinishVerify, and is
// single-shot: finalizing it twice has undefined results.
type State struct {
	ID                    uuid.UUID
	status                Status
	PoHDurationMicros     int64
	TransactionDurationMicros int64
	device                DeviceData
}

// Status returns the state's current status.
func (s *State) Status() Status {
	return s.status
}

// Options configures a verification run.
type Options struct {
	Secp256k1Enabled bool
	Pool             *workerpool.Pool
	NativeCap        native.Capability
	DispatchConfig   dispatch.Config
	Recyclers        recycler.Recyclers
}

// StartVerify runs transaction-signature verification synchronously, then
// either runs a CPU backend synchronously (returning a terminal State) or
// launches the GPU backend and returns immediately with a Pending State.
// Signature verification happens-before PoH verification: a signature
// failure never reaches the hash-chain check.
func StartVerify(ctx context.Context, entries []entry.Entry, startHash entry.Hash, opts Options) *State {
	pool := opts.Pool
	if pool == nil {
		pool = workerpool.Default()
	}
	if opts.Recyclers == (recycler.Recyclers{}) {
		opts.Recyclers = recycler.NewRecyclers()
	}

	txStart := time.Now()
	sigOK := VerifyTransactionSignatures(ctx, pool, entries, opts.Secp256k1Enabled)
	txDuration := time.Since(txStart).Microseconds()

	if !sigOK {
		return &State{
			ID:                        uuid.New(),
			status:                    Failure,
			TransactionDurationMicros: txDuration,
		}
	}

	caps := dispatch.Capabilities{}
	if opts.NativeCap != nil {
		caps.SIMDLibLoaded = opts.NativeCap.Loaded()
		caps.GPUAvailable = opts.NativeCap.GPUAvailable()
	}
	caps.HasAVX2, caps.HasAVX512F = dispatch.DetectCPU()

	backend := dispatch.Select(caps, opts.DispatchConfig, len(entries))

	if backend == dispatch.GPU {
		job := verify.StartGPU(ctx, pool, opts.NativeCap, entries, startHash, opts.Recyclers)
		return &State{
			ID:                        uuid.New(),
			status:                    Pending,
			TransactionDurationMicros: txDuration,
			device:                    DeviceData{WorkerHandle: uuid.New(), GPUJob: job},
		}
	}

	res, err := runCPUBackend(ctx, backend, pool, opts.NativeCap, entries, startHash)
	status := Success
	if err != nil || !res.Verified {
		status = Failure
	}
	return &State{
		ID:                        uuid.New(),
		status:                    status,
		PoHDurationMicros:         res.DurationMicros,
		TransactionDurationMicros: txDuration,
	}
}

// FinishVerify moves a Pending state to its terminal status and returns
// whether verification succeeded. For a CPU-terminal state this is a no-op
// read of the already-decided status. For a Pending (GPU) state it joins
// the GPU worker and runs the finalizing comparison pass exactly once.
func (s *State) FinishVerify(ctx context.Context, pool *workerpool.Pool) bool {
	if s.status != Pending {
		return s.status == Success
	}

	res := s.device.GPUJob.Finish(ctx, pool)
	s.PoHDurationMicros += res.DurationMicros
	if res.Verified {
		s.status = Success
	} else {
		s.status = Failure
	}
	return res.Verified
}

// Verify is the convenience composition StartVerify(...).FinishVerify(...).
// Fresh recyclers are used when opts.Recyclers is the zero value.
func Verify(ctx context.Context, entries []entry.Entry, startHash entry.Hash, opts Options) bool {
	state := StartVerify(ctx, entries, startHash, opts)
	return state.FinishVerify(ctx, opts.Pool)
}

func runCPUBackend(ctx context.Context, backend dispatch.Backend, pool *workerpool.Pool, cap native.Capability, entries []entry.Entry, startHash entry.Hash) (verify.Result, error) {
	switch backend {
	case dispatch.SIMD16:
		return verify.SIMD{Cap: cap, Lanes: 16, Pool: pool}.Verify(ctx, entries, startHash)
	case dispatch.SIMD8:
		return verify.SIMD{Cap: cap, Lanes: 8, Pool: pool}.Verify(ctx, entries, startHash)
	default:
		return verify.Scalar{Pool: pool}.Verify(ctx, entries, startHash)
	}
}
