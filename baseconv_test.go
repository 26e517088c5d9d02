package baseconv

import (
	"errors"
	"math/big"
	"slices"
	"testing"

	"github.com/wippyai/baseconv/digit"
	baseconverr "github.com/wippyai/baseconv/errors"
)

func TestConvertString(t *testing.T) {
	tests := []struct {
		name       string
		number     any
		inputBase  int
		outputBase int
		want       string
	}{
		{"hex to decimal", "FF0.8", 16, 10, "4080.5"},
		{"decimal to hex", "4080.5", 10, 16, "FF0.8"},
		{"third becomes recurring", "0.1", 3, 10, "0.[3]"},
		{"fifth to octal", "0.2", 10, 8, "0.[1463]"},
		{"tenth to octal keeps offset digit", "0.1", 10, 8, "0.0[6314]"},
		{"hex to octal", "4567", 16, 8, "42547"},
		{"binary to decimal", "1100", 2, 10, "12"},
		{"integer only", "FF", 16, 10, "255"},
		{"high output base", "35", 10, 99, "Z"},
		{"lowercase glyph range", "36", 10, 99, "a"},
		{"empty input is zero", "", 10, 2, "0"},
		{"identity with fraction", "868.0F", 16, 16, "868.0F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertString(tt.number, tt.inputBase, tt.outputBase)
			if err != nil {
				t.Fatalf("ConvertString failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertString(%v, %d, %d) = %q, want %q",
					tt.number, tt.inputBase, tt.outputBase, got, tt.want)
			}
		})
	}
}

func TestConvert_Sequences(t *testing.T) {
	tests := []struct {
		name       string
		number     any
		inputBase  int
		outputBase int
		want       digit.Sequence
	}{
		{
			name:   "tuple digits hex to octal",
			number: []int{15, 15}, inputBase: 16, outputBase: 8,
			want: digit.Sequence{3, 7, 7},
		},
		{
			name:   "structured sequence with fraction",
			number: digit.Sequence{1, 9, 6, digit.RadixPoint, 5, 1, 6}, inputBase: 17, outputBase: 20,
			want: digit.Sequence{1, 2, 8, digit.RadixPoint, 5, 19, 10, 7, 17, 2, 13, 13, 1, 8},
		},
		{
			name:   "unary tally input",
			number: []int{1, 1, 1}, inputBase: 1, outputBase: 10,
			want: digit.Sequence{3},
		},
		{
			name:   "unary output",
			number: "3", inputBase: 10, outputBase: 1,
			want: digit.Sequence{1, 1, 1},
		},
		{
			name:   "unary zero",
			number: "0", inputBase: 10, outputBase: 1,
			want: digit.Sequence{0},
		},
		{
			name:   "fraction half hex to decimal",
			number: digit.Sequence{15, 15, digit.RadixPoint, 0, 8}, inputBase: 16, outputBase: 10,
			want: digit.Sequence{2, 5, 5, digit.RadixPoint, 0, 3, 1, 2, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.number, tt.inputBase, tt.outputBase)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Convert = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvert_RecurringInputExpanded(t *testing.T) {
	// Input notation is pre-expanded to literal digits before conversion,
	// so the result reflects the truncated expansion, not the limit value.
	got, err := Convert("0.[1]", 3, 2)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := digit.Sequence{0, digit.RadixPoint, 0, digit.RepeatStart, 1, digit.RepeatEnd}
	if !slices.Equal(got, want) {
		t.Errorf("Convert = %v, want %v", got, want)
	}
}

func TestConverter_MaxDepth(t *testing.T) {
	tests := []struct {
		name      string
		converter *Converter
		number    any
		want      digit.Sequence
	}{
		{
			name: "truncates toward zero",
			converter: &Converter{
				InputBase: 10, OutputBase: 10, MaxDepth: 1, Recurring: false,
			},
			number: "0.29",
			want:   digit.Sequence{0, digit.RadixPoint, 2},
		},
		{
			name: "depth one fifth to octal",
			converter: &Converter{
				InputBase: 10, OutputBase: 8, MaxDepth: 1, Recurring: true,
			},
			number: "0.2",
			want:   digit.Sequence{0, digit.RadixPoint, 1},
		},
		{
			name: "zero depth drops fraction",
			converter: &Converter{
				InputBase: 10, OutputBase: 10, MaxDepth: 0, Recurring: true,
			},
			number: "7.29",
			want:   digit.Sequence{7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.converter.Convert(tt.number)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Convert = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConverter_RecurringOff(t *testing.T) {
	c := New(3, 10)
	c.Recurring = false
	got, err := c.ConvertString("0.1")
	if err != nil {
		t.Fatalf("ConvertString failed: %v", err)
	}
	if got != "0.3333333333" {
		t.Errorf("ConvertString = %q, want %q", got, "0.3333333333")
	}
}

func TestConvert_NumericValues(t *testing.T) {
	tests := []struct {
		name       string
		number     any
		outputBase int
		want       string
	}{
		{"int", 42, 16, "2A"},
		{"int zero", 0, 10, "0"},
		{"int64", int64(255), 16, "FF"},
		{"uint64 above int64", uint64(1) << 63, 16, "8000000000000000"},
		{"exact float", 0.5, 2, "0.1"},
		{"big rat third", big.NewRat(1, 3), 10, "0.[3]"},
		{"big int", big.NewInt(4080), 16, "FF0"},
		{"ten in base 99", 10, 99, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertString(tt.number, DefaultBase, tt.outputBase)
			if err != nil {
				t.Fatalf("ConvertString failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertString(%v) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestConvert_FloatUsesBinaryValue(t *testing.T) {
	// The float 0.1 is not the rational 1/10; with recurring detection off
	// the first octal digits still read like 1/10's expansion.
	c := New(10, 8)
	c.Recurring = false
	got, err := c.ConvertString(0.1)
	if err != nil {
		t.Fatalf("ConvertString failed: %v", err)
	}
	if got != "0.0631463146" {
		t.Errorf("ConvertString(0.1) = %q, want %q", got, "0.0631463146")
	}

	// The string "0.1" goes through exact rational arithmetic instead.
	str, err := ConvertString("0.1", 10, 8)
	if err != nil {
		t.Fatalf("ConvertString failed: %v", err)
	}
	if str != "0.0[6314]" {
		t.Errorf("ConvertString(\"0.1\") = %q, want %q", str, "0.0[6314]")
	}
}

func TestConvert_InputBaseIrrelevantForValues(t *testing.T) {
	a, err := ConvertString(42, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ConvertString(42, 16, 10)
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a != "42" {
		t.Errorf("results differ by input base: %q vs %q", a, b)
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name       string
		number     any
		inputBase  int
		outputBase int
		kind       baseconverr.Kind
	}{
		{"digit above input base", []int{8, 1, 15, 9}, 15, 10, baseconverr.KindInvalidDigit},
		{"string digit above base", "19", 8, 10, baseconverr.KindInvalidDigit},
		{"glyph outside alphabet", "12-3", 10, 10, baseconverr.KindInvalidDigit},
		{"base one rejects other digits", []int{2}, 1, 10, baseconverr.KindInvalidDigit},
		{"negative int", -4, 10, 10, baseconverr.KindInvalidValue},
		{"negative float", -0.5, 10, 10, baseconverr.KindInvalidValue},
		{"negative rational", big.NewRat(-1, 2), 10, 10, baseconverr.KindInvalidValue},
		{"zero input base", "1", 0, 10, baseconverr.KindInvalidBase},
		{"negative output base", "1", 10, -2, baseconverr.KindInvalidBase},
		{"unsupported type", struct{}{}, 10, 10, baseconverr.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Convert(tt.number, tt.inputBase, tt.outputBase)
			if err == nil {
				t.Fatalf("expected error, got %v", seq)
			}
			if seq != nil {
				t.Errorf("partial result %v returned with error", seq)
			}
			if !baseconverr.IsKind(err, tt.kind) {
				t.Errorf("error = %v, want kind %q", err, tt.kind)
			}
		})
	}
}

func TestConvert_NegativeMaxDepth(t *testing.T) {
	c := New(10, 10)
	c.MaxDepth = -1
	if _, err := c.Convert("1"); err == nil {
		t.Error("expected error for negative max depth")
	}
}

func TestConvert_ErrorsAreStructured(t *testing.T) {
	_, err := Convert("F", 10, 10)
	var structured *baseconverr.Error
	if !errors.As(err, &structured) {
		t.Fatalf("error %v is not structured", err)
	}
	if structured.Digit != 15 || structured.Base != 10 {
		t.Errorf("error context = digit %d base %d, want 15/10", structured.Digit, structured.Base)
	}
}

func TestRoundTrip(t *testing.T) {
	// Values exactly representable in both bases survive a round trip,
	// modulo trailing-zero normalization.
	tests := []struct {
		number string
		b1, b2 int
	}{
		{"101.011", 2, 10},
		{"0.375", 10, 2},
		{"FF0.8", 16, 10},
		{"Z.Z", 36, 6},
		{"4080.5", 10, 16},
		{"123456789", 10, 7},
		{"0.25", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			forward := &Converter{InputBase: tt.b1, OutputBase: tt.b2, MaxDepth: 20}
			back := &Converter{InputBase: tt.b2, OutputBase: tt.b1, MaxDepth: 20}

			mid, err := forward.Convert(tt.number)
			if err != nil {
				t.Fatalf("forward failed: %v", err)
			}
			got, err := back.ConvertString(mid)
			if err != nil {
				t.Fatalf("back failed: %v", err)
			}
			if got != tt.number {
				t.Errorf("round trip through base %d = %q, want %q", tt.b2, got, tt.number)
			}
		})
	}
}

func TestConverter_Reuse(t *testing.T) {
	c := New(16, 8)
	for i := 0; i < 3; i++ {
		got, err := c.Convert("FF")
		if err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
		if !slices.Equal(got, digit.Sequence{3, 7, 7}) {
			t.Errorf("call %d = %v, want {3 7 7}", i, got)
		}
	}

	tuple, err := c.Convert([]int{15, 15})
	if err != nil {
		t.Fatal(err)
	}
	str, err := c.Convert("FF")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(tuple, str) {
		t.Errorf("tuple and string inputs disagree: %v vs %v", tuple, str)
	}
}

func BenchmarkConvert(b *testing.B) {
	c := New(17, 20)
	for i := 0; i < b.N; i++ {
		if _, err := c.Convert(digit.Sequence{1, 9, 6, digit.RadixPoint, 5, 1, 6}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertRecurring(b *testing.B) {
	c := New(10, 8)
	for i := 0; i < b.N; i++ {
		if _, err := c.Convert("0.1"); err != nil {
			b.Fatal(err)
		}
	}
}
