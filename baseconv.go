package baseconv

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/wippyai/baseconv/digit"
	"github.com/wippyai/baseconv/errors"
	"github.com/wippyai/baseconv/radix"
	"github.com/wippyai/baseconv/recurring"
)

// Defaults used by New and the package-level helpers.
const (
	DefaultBase     = 10
	DefaultMaxDepth = 10
)

// Converter converts numbers between two fixed bases. The zero value is
// not useful; construct with New and adjust fields before the first call.
// A Converter holds no per-call state: the same instance may be used
// concurrently.
type Converter struct {
	// InputBase interprets digit-sequence inputs. Ignored for direct
	// numeric values, which already denote a value.
	InputBase int
	// OutputBase is the base of the result.
	OutputBase int
	// MaxDepth bounds the fractional digit count of the result.
	MaxDepth int
	// Recurring folds a detected repeating fractional suffix into
	// bracket notation instead of leaving literal digits.
	Recurring bool
}

// New returns a Converter between the two bases with the default
// fractional depth and recurring detection enabled.
func New(inputBase, outputBase int) *Converter {
	return &Converter{
		InputBase:  inputBase,
		OutputBase: outputBase,
		MaxDepth:   DefaultMaxDepth,
		Recurring:  true,
	}
}

// Convert converts number between the given bases using default settings.
func Convert(number any, inputBase, outputBase int) (digit.Sequence, error) {
	return New(inputBase, outputBase).Convert(number)
}

// ConvertString converts number and renders the result as a string.
func ConvertString(number any, inputBase, outputBase int) (string, error) {
	return New(inputBase, outputBase).ConvertString(number)
}

// Convert converts a number to the converter's output base.
//
// number may be:
//   - a string in the glyph alphabet, e.g. "FF0.8" or "0.[3]"
//   - a digit.Sequence or a bare []int of digit values
//   - a direct numeric value: any Go integer type, float32/float64
//     (taken at their exact binary value), *big.Int, or *big.Rat
//
// Digit inputs are validated against InputBase and fail with an
// invalid_digit error when a digit is too high (base 1 permits only the
// tally digit 1 and 0). Negative numeric inputs fail with invalid_value.
// No partial result accompanies an error.
func (c *Converter) Convert(number any) (digit.Sequence, error) {
	if c.InputBase < 1 {
		return nil, errors.InvalidBase(errors.PhaseValidate, c.InputBase)
	}
	if c.OutputBase < 1 {
		return nil, errors.InvalidBase(errors.PhaseValidate, c.OutputBase)
	}
	if c.MaxDepth < 0 {
		return nil, errors.New(errors.PhaseValidate, errors.KindInvalidValue).
			Value(c.MaxDepth).
			Detail("max depth must be non-negative").
			Build()
	}

	Logger().Debug("convert",
		zap.Int("input_base", c.InputBase),
		zap.Int("output_base", c.OutputBase),
		zap.Int("max_depth", c.MaxDepth),
		zap.Bool("recurring", c.Recurring))

	switch v := number.(type) {
	case digit.Sequence:
		return c.convertSequence(v)
	case []int:
		return c.convertSequence(digit.FromDigits(v))
	case string:
		seq, err := digit.Parse(v)
		if err != nil {
			return nil, err
		}
		return c.convertSequence(seq)
	default:
		value, err := toRational(number)
		if err != nil {
			return nil, err
		}
		if value.Sign() < 0 {
			return nil, errors.InvalidValue(errors.PhaseValidate, number)
		}
		return c.convertRational(value)
	}
}

// ConvertString converts a number and renders the result with the glyph
// alphabet.
func (c *Converter) ConvertString(number any) (string, error) {
	seq, err := c.Convert(number)
	if err != nil {
		return "", err
	}
	return seq.String(), nil
}

// convertSequence runs the digit-input pipeline: pre-expand recurring
// notation, parse and validate against the input base, transform both
// halves exactly, then re-detect a repeating suffix in the output.
func (c *Converter) convertSequence(seq digit.Sequence) (digit.Sequence, error) {
	expanded := recurring.Expand(seq, recurring.DefaultExpansion)

	r, err := radix.FromSequence(expanded, c.InputBase)
	if err != nil {
		return nil, err
	}

	integer := radix.ConvertInteger(r.IntegerPart, c.InputBase, c.OutputBase)
	frac, exact := radix.ConvertFractional(r.NonRepeating, c.InputBase, c.OutputBase, c.MaxDepth)

	relation := radix.RelationExact
	if !exact {
		relation = radix.RelationRounded
	}

	out := &radix.Radix{
		IntegerPart:  integer,
		NonRepeating: frac,
		Base:         c.OutputBase,
		Sign:         r.Sign,
	}
	if c.Recurring {
		out.NonRepeating, out.Repeating = recurring.Find(frac, recurring.DefaultMinRepeat)
	}

	return out.Sequence(relation), nil
}

// convertRational runs the direct-value pipeline. The input base plays no
// part: the value is already definite and only the output base applies.
func (c *Converter) convertRational(value *big.Rat) (digit.Sequence, error) {
	r, relation := radix.FromRational(value, c.OutputBase, c.MaxDepth, !c.Recurring)
	return r.Sequence(relation), nil
}

// toRational interprets a direct numeric value as an exact rational.
// Floats contribute their exact binary value, which for most decimal
// literals differs from the decimal string of the same spelling.
func toRational(number any) (*big.Rat, error) {
	switch v := number.(type) {
	case int:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int8:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int16:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int32:
		return new(big.Rat).SetInt64(int64(v)), nil
	case int64:
		return new(big.Rat).SetInt64(v), nil
	case uint:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Rat).SetUint64(v), nil
	case float32:
		return floatRational(float64(v))
	case float64:
		return floatRational(v)
	case *big.Int:
		return new(big.Rat).SetInt(v), nil
	case *big.Rat:
		return new(big.Rat).Set(v), nil
	default:
		return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
			Value(number).
			Detail("cannot interpret %T as a number", number).
			Build()
	}
}

func floatRational(f float64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
			Value(f).
			Detail("non-finite float").
			Build()
	}
	return r, nil
}
