package doc

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors for layout options.
var (
	ErrInvalidWidth  = errors.New("page width must be a positive integer")
	ErrInvalidRibbon = errors.New("ribbon fraction must be in (0, 1]")
)

// Policy selects the line-breaking strategy.
type Policy uint8

const (
	// PolicyPretty is the classic greedy layouter: a group is flattened
	// when its single-line form fits the remaining budget.
	PolicyPretty Policy = iota
	// PolicySmart extends the fitting lookahead past the group, so that a
	// flat choice that would push the following unbreakable content past
	// the margin is rejected.
	PolicySmart
	// PolicyCompact never flattens and ignores indentation; output is as
	// small as possible and the page width is irrelevant.
	PolicyCompact
)

func (p Policy) String() string {
	switch p {
	case PolicyPretty:
		return "pretty"
	case PolicySmart:
		return "smart"
	case PolicyCompact:
		return "compact"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// Options configures a layout call. Construct with NewOptions; the zero
// value is not valid.
type Options struct {
	maxWidth  int
	ribbon    float64
	unbounded bool
	policy    Policy
}

// Option is a functional option for NewOptions.
type Option func(*Options)

// WithMaxWidth sets the page width in display columns.
func WithMaxWidth(w int) Option {
	return func(o *Options) {
		o.maxWidth = w
		o.unbounded = false
	}
}

// WithRibbon sets the fraction of the page width filled before the engine
// prefers to break, measured from the current indentation.
func WithRibbon(r float64) Option {
	return func(o *Options) {
		o.ribbon = r
	}
}

// WithUnbounded disables width-driven breaking entirely: only hard breaks
// are honored.
func WithUnbounded() Option {
	return func(o *Options) {
		o.unbounded = true
	}
}

// WithPolicy selects the line-breaking policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.policy = p
	}
}

// NewOptions builds validated layout options. Defaults: width 80, ribbon
// 1.0, PolicyPretty. Invalid widths and ribbon fractions are rejected
// here rather than surfacing mid-layout.
func NewOptions(opts ...Option) (*Options, error) {
	o := &Options{maxWidth: 80, ribbon: 1.0, policy: PolicyPretty}
	for _, opt := range opts {
		opt(o)
	}
	if !o.unbounded && o.maxWidth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, o.maxWidth)
	}
	if o.ribbon <= 0 || o.ribbon > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRibbon, o.ribbon)
	}
	return o, nil
}

// DefaultOptions returns the standard 80-column pretty configuration.
func DefaultOptions() *Options {
	o, err := NewOptions()
	if err != nil {
		panic(err) // defaults are always valid
	}
	return o
}

// MaxWidth reports the page width; the second result is false when the
// width is unbounded.
func (o *Options) MaxWidth() (int, bool) {
	return o.maxWidth, !o.unbounded
}

// Ribbon reports the configured ribbon fraction.
func (o *Options) Ribbon() float64 { return o.ribbon }

// Policy reports the configured line-breaking policy.
func (o *Options) Policy() Policy { return o.policy }

// ribbonWidth is the ribbon in columns.
func (o *Options) ribbonWidth() int {
	return max(0, int(math.Round(float64(o.maxWidth)*o.ribbon)))
}
