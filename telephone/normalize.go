package telephone

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-telephone/framework/log"
	"github.com/km-arc/go-laravel-telephone/framework/metrics"
	"github.com/km-arc/go-laravel-telephone/phone"
)

// Normalizer turns any Input into a Value for one field.
type Normalizer struct {
	capability     phone.Capability
	defaultCountry string
	handle         string
	logger         *log.Logger
	metrics        *metrics.FieldMetrics
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithHandle names the field in logs and metrics.
func WithHandle(handle string) Option {
	return func(n *Normalizer) { n.handle = handle }
}

// WithLogger reports decode anomalies to logger.
func WithLogger(logger *log.Logger) Option {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithMetrics counts normalize outcomes and decode failures.
func WithMetrics(m *metrics.FieldMetrics) Option {
	return func(n *Normalizer) { n.metrics = m }
}

// NewNormalizer builds a Normalizer that fills in defaultCountry whenever an
// input does not name a region. An empty defaultCountry means
// DefaultCountryCode.
func NewNormalizer(capability phone.Capability, defaultCountry string, opts ...Option) *Normalizer {
	cc := strings.ToUpper(strings.TrimSpace(defaultCountry))
	if cc == "" {
		cc = DefaultCountryCode
	}
	n := &Normalizer{
		capability:     capability,
		defaultCountry: cc,
		handle:         "telephone",
		logger:         log.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// DefaultCountry is the region substituted for inputs that name none.
func (n *Normalizer) DefaultCountry() string { return n.defaultCountry }

// Decode resolves in into a Value. The only error is a *DecodeError for a
// Serialized input that is not valid stored data; the returned Value is then
// the empty value for the default country.
func (n *Normalizer) Decode(in Input) (Value, error) {
	switch v := in.(type) {
	case nil, Absent:
		return n.empty(), nil
	case Value:
		return v, nil
	case Serialized:
		if strings.TrimSpace(string(v)) == "" {
			return n.empty(), nil
		}
		var s stored
		if err := json.Unmarshal([]byte(v), &s); err != nil {
			return n.empty(), &DecodeError{Stored: string(v), Err: err}
		}
		return n.Decode(s.structured())
	case Structured:
		cc := v.CountryCode
		if strings.TrimSpace(cc) == "" {
			cc = n.defaultCountry
		}
		return New(n.capability, cc, v.RawInput), nil
	default:
		return n.empty(), fmt.Errorf("%w: %T", ErrUnsupportedShape, in)
	}
}

// Normalize is Decode for the read path: corrupt stored data degrades to the
// empty value and is logged and counted instead of returned.
func (n *Normalizer) Normalize(in Input) Value {
	v, err := n.Decode(in)
	if err != nil {
		n.reportDecode(in, err)
	}
	n.metrics.ObserveNormalize(n.handle, state(v))
	return v
}

// NormalizeAny resolves a dynamically typed host value and normalizes it.
func (n *Normalizer) NormalizeAny(raw any) Value {
	in, err := FromAny(raw)
	if err != nil {
		n.reportDecode(nil, err)
		in = Absent{}
	}
	return n.Normalize(in)
}

func (n *Normalizer) reportDecode(in Input, err error) {
	var de *DecodeError
	if errors.As(err, &de) {
		n.logger.DecodeFailure(n.handle, de.Stored, err)
	} else {
		n.logger.Warn("field_value_rejected", zap.String("field", n.handle), zap.Error(err))
	}
	n.metrics.ObserveDecodeFailure(n.handle)
}

func (n *Normalizer) empty() Value {
	return New(n.capability, n.defaultCountry, "")
}

func state(v Value) string {
	switch {
	case !v.HasInput():
		return "empty"
	case v.IsEmpty():
		return "unparsed"
	default:
		return "parsed"
	}
}
