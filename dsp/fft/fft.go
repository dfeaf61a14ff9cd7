package fft

import (
	"fmt"

	"github.com/cwbudde/algo-imgfft/dsp/core"
)

var (
	ErrNotPowerOfTwo = core.NewKind(core.ErrPrecondition, "fft: length is not a power of two")
	ErrPlaneMismatch = core.NewKind(core.ErrPrecondition, "fft: real and imaginary planes differ in length")
	ErrUnknownKernel = core.NewKind(core.ErrPrecondition, "fft: unknown kernel")
	ErrUnknownPolicy = core.NewKind(core.ErrPrecondition, "fft: unknown size policy")
	ErrBackend       = core.NewKind(core.ErrPrecondition, "fft: algo-fft backend")
)

// Kernel selects the power-of-two transform implementation.
type Kernel int

const (
	KernelIterative Kernel = iota
	KernelRecursive
	KernelSplit
	KernelAlgoFFT
)

var kernelNames = map[Kernel]string{
	KernelIterative: "iterative",
	KernelRecursive: "recursive",
	KernelSplit:     "split",
	KernelAlgoFFT:   "algofft",
}

func (k Kernel) String() string {
	if s, ok := kernelNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kernel(%d)", int(k))
}

// ParseKernel maps a kernel name (as returned by String) to its Kernel.
func ParseKernel(name string) (Kernel, error) {
	for k, s := range kernelNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// SizePolicy decides how lengths that are not a power of two are handled.
type SizePolicy int

const (
	// SizeStrict rejects them with ErrNotPowerOfTwo.
	SizeStrict SizePolicy = iota
	// SizeZeroPad appends zeros up to the next power of two. The spectrum
	// has the padded length.
	SizeZeroPad
	// SizeBluestein computes the exact-length DFT with the chirp-z
	// algorithm.
	SizeBluestein
)

var policyNames = map[SizePolicy]string{
	SizeStrict:    "strict",
	SizeZeroPad:   "pad",
	SizeBluestein: "bluestein",
}

func (p SizePolicy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParseSizePolicy maps a policy name (as returned by String) to its
// SizePolicy.
func ParseSizePolicy(name string) (SizePolicy, error) {
	for p, s := range policyNames {
		if s == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Config holds engine settings.
type Config struct {
	Kernel Kernel
	Policy SizePolicy
}

// Option mutates a Config.
type Option func(*Config)

// WithKernel selects the power-of-two kernel.
func WithKernel(k Kernel) Option {
	return func(cfg *Config) {
		if _, ok := kernelNames[k]; ok {
			cfg.Kernel = k
		}
	}
}

// WithSizePolicy selects the non-power-of-two policy.
func WithSizePolicy(p SizePolicy) Option {
	return func(cfg *Config) {
		if _, ok := policyNames[p]; ok {
			cfg.Policy = p
		}
	}
}

// Engine runs forward transforms with a fixed kernel and size policy.
// An Engine may be shared between goroutines as long as each call works on
// its own slice.
type Engine struct {
	cfg   Config
	plans planCache
}

// New returns an Engine using the iterative kernel and the strict size
// policy unless overridden.
func New(opts ...Option) *Engine {
	cfg := Config{Kernel: KernelIterative, Policy: SizeStrict}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// OutputLen returns the spectrum length Transform produces for an input of
// length n, or an error if the size policy rejects n.
func (e *Engine) OutputLen(n int) (int, error) {
	if n <= 1 || core.IsPowerOfTwo(n) {
		return n, nil
	}

	switch e.cfg.Policy {
	case SizeZeroPad:
		return core.NextPowerOfTwo(n), nil
	case SizeBluestein:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
}

// Transform computes the forward DFT of x. Ownership of x passes to the
// engine: the returned spectrum may reuse its storage. Sequences of length
// 0 or 1 are returned unchanged.
func (e *Engine) Transform(x []complex128) ([]complex128, error) {
	n := len(x)
	outLen, err := e.OutputLen(n)
	if err != nil {
		return nil, err
	}

	if n <= 1 {
		return x, nil
	}

	switch {
	case core.IsPowerOfTwo(n):
		err = e.forward(x)
	case outLen != n:
		padded := make([]complex128, outLen)
		copy(padded, x)
		x = padded
		err = e.forward(x)
	default:
		err = bluestein(x, e.forward)
	}

	if err != nil {
		return nil, err
	}
	return x, nil
}

// TransformReal computes the spectrum of a real-valued sequence.
func (e *Engine) TransformReal(samples []float64) ([]complex128, error) {
	x := make([]complex128, len(samples))
	for i, v := range samples {
		x[i] = complex(v, 0)
	}
	return e.Transform(x)
}

// forward transforms a power-of-two length sequence in place.
func (e *Engine) forward(x []complex128) error {
	switch e.cfg.Kernel {
	case KernelRecursive:
		return Recursive(x)
	case KernelSplit:
		return splitTransform(x)
	case KernelAlgoFFT:
		return e.plans.forward(x)
	default:
		return InPlace(x)
	}
}
