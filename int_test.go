package bigmath

import (
	"math"
	"testing"
)

func TestInt_ZeroValue(t *testing.T) {
	var x Int
	if got := x.Sign(); got != 0 {
		t.Errorf("Int{}.Sign() = %d, want 0", got)
	}
	if got := x.String(); got != "0" {
		t.Errorf("Int{}.String() = %q, want %q", got, "0")
	}
	if got := x.BitLen(); got != 0 {
		t.Errorf("Int{}.BitLen() = %d, want 0", got)
	}
}

func TestNewInt(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
		{1 << 32, "4294967296"},
		{-(1 << 32), "-4294967296"},
	}
	for _, tt := range tests {
		if got := NewInt(tt.v).String(); got != tt.want {
			t.Errorf("NewInt(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestParseInt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s     string
			radix int
			want  string
		}{
			{"0", 10, "0"},
			{"-0", 10, "0"},
			{"+42", 10, "42"},
			{"ff", 16, "255"},
			{"-FF", 16, "-255"},
			{"101", 2, "5"},
			{"zz", 36, "1295"},
			{"123456789012345678901234567890", 10, "123456789012345678901234567890"},
			{"-123456789012345678901234567890", 10, "-123456789012345678901234567890"},
			{"000000000000000000000000000001", 10, "1"},
		}
		for _, tt := range tests {
			x, err := ParseInt(tt.s, tt.radix)
			if err != nil {
				t.Errorf("ParseInt(%q, %d) failed: %v", tt.s, tt.radix, err)
				continue
			}
			if got := x.String(); got != tt.want {
				t.Errorf("ParseInt(%q, %d) = %q, want %q", tt.s, tt.radix, got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s     string
			radix int
		}{
			"empty":         {"", 10},
			"sign only":     {"-", 10},
			"bad digit":     {"12a", 10},
			"digit 2 in 2":  {"102121", 2},
			"radix low":     {"10", 1},
			"radix high":    {"10", 37},
			"inner space":   {"1 2", 10},
			"double sign":   {"--5", 10},
		}
		for name, tt := range tests {
			if _, err := ParseInt(tt.s, tt.radix); err == nil {
				t.Errorf("%s: ParseInt(%q, %d) did not fail", name, tt.s, tt.radix)
			} else if !ErrInvalidFormat.Has(err) {
				t.Errorf("%s: ParseInt(%q, %d) error = %v, want invalid format", name, tt.s, tt.radix, err)
			}
		}
	})
}

func TestInt_Text_RoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "-1", "35", "-36",
		"4294967295", "4294967296", "-4294967297",
		"18446744073709551615", "18446744073709551616",
		"123456789012345678901234567890",
	}
	for _, s := range values {
		x := MustParseInt(s, 10)
		for radix := MinRadix; radix <= MaxRadix; radix++ {
			text, err := x.Text(radix)
			if err != nil {
				t.Fatalf("Text(%d) of %s failed: %v", radix, s, err)
			}
			back, err := ParseInt(text, radix)
			if err != nil {
				t.Fatalf("ParseInt(%q, %d) failed: %v", text, radix, err)
			}
			if !back.Equal(x) {
				t.Errorf("round trip of %s in radix %d = %s", s, radix, back)
			}
		}
	}
}

func TestInt_Add(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"1", "2", "3"},
		{"-1", "1", "0"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"4294967295", "1", "4294967296"},
		{"18446744073709551615", "1", "18446744073709551616"},
		{"-18446744073709551616", "18446744073709551615", "-1"},
		{"99999999999999999999999999", "1", "100000000000000000000000000"},
	}
	for _, tt := range tests {
		x, y := MustParseInt(tt.x, 10), MustParseInt(tt.y, 10)
		if got := x.Add(y).String(); got != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.x, tt.y, got, tt.want)
		}
		// Addition commutes.
		if got := y.Add(x).String(); got != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.y, tt.x, got, tt.want)
		}
	}
}

func TestInt_Sub(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"3", "5", "-2"},
		{"-3", "-5", "2"},
		{"4294967296", "1", "4294967295"},
		{"100000000000000000000000000", "1", "99999999999999999999999999"},
	}
	for _, tt := range tests {
		x, y := MustParseInt(tt.x, 10), MustParseInt(tt.y, 10)
		if got := x.Sub(y).String(); got != tt.want {
			t.Errorf("%s - %s = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt_Mul(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "123456789012345678901234567890", "0"},
		{"1", "-7", "-7"},
		{"-3", "-4", "12"},
		{"65536", "65536", "4294967296"},
		{"4294967296", "4294967296", "18446744073709551616"},
		{"123456789012345678901234567890", "10", "1234567890123456789012345678900"},
		{
			"123456789012345678901234567890",
			"-987654321098765432109876543210",
			"-121932631137021795226185032733622923332237463801111263526900",
		},
	}
	for _, tt := range tests {
		x, y := MustParseInt(tt.x, 10), MustParseInt(tt.y, 10)
		if got := x.Mul(y).String(); got != tt.want {
			t.Errorf("%s * %s = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt_DivRem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, q, r string
		}{
			{"7", "3", "2", "1"},
			{"-7", "3", "-2", "-1"},
			{"7", "-3", "-2", "1"},
			{"-7", "-3", "2", "-1"},
			{"0", "5", "0", "0"},
			{"3", "7", "0", "3"},
			{"18446744073709551616", "4294967296", "4294967296", "0"},
			{"123456789012345678901234567890", "987654321", "124999998873437499901", "574845669"},
		}
		for _, tt := range tests {
			x, y := MustParseInt(tt.x, 10), MustParseInt(tt.y, 10)
			q, r, err := x.DivRem(y)
			if err != nil {
				t.Fatalf("DivRem(%s, %s) failed: %v", tt.x, tt.y, err)
			}
			if got := q.String(); got != tt.q {
				t.Errorf("%s / %s = %s, want %s", tt.x, tt.y, got, tt.q)
			}
			if got := r.String(); got != tt.r {
				t.Errorf("%s %% %s = %s, want %s", tt.x, tt.y, got, tt.r)
			}
			// q*y + r reconstructs x for every sign combination.
			if got := q.Mul(y).Add(r); !got.Equal(x) {
				t.Errorf("DivRem identity broken: %s*%s+%s = %s, want %s", tt.q, tt.y, tt.r, got, tt.x)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		if _, _, err := NewInt(1).DivRem(NewInt(0)); !ErrDivideByZero.Has(err) {
			t.Errorf("DivRem by zero error = %v, want divide by zero", err)
		}
	})
}

func TestInt_Gcd(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"48", "18", "6"},
		{"18", "48", "6"},
		{"-48", "18", "6"},
		{"48", "-18", "6"},
		{"0", "0", "0"},
		{"0", "5", "5"},
		{"5", "0", "5"},
		{"17", "13", "1"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "9000000000900000000090"},
	}
	for _, tt := range tests {
		x, y := MustParseInt(tt.x, 10), MustParseInt(tt.y, 10)
		if got := x.Gcd(y).String(); got != tt.want {
			t.Errorf("Gcd(%s, %s) = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt_Pow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    string
			n    int
			want string
		}{
			{"0", 0, "1"},
			{"5", 0, "1"},
			{"2", 10, "1024"},
			{"-2", 3, "-8"},
			{"-2", 4, "16"},
			{"10", 30, "1000000000000000000000000000000"},
			{"2", 128, "340282366920938463463374607431768211456"},
		}
		for _, tt := range tests {
			z, err := MustParseInt(tt.x, 10).Pow(tt.n)
			if err != nil {
				t.Fatalf("Pow(%s, %d) failed: %v", tt.x, tt.n, err)
			}
			if got := z.String(); got != tt.want {
				t.Errorf("Pow(%s, %d) = %s, want %s", tt.x, tt.n, got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		if _, err := NewInt(2).Pow(-1); !ErrArgumentOutOfRange.Has(err) {
			t.Errorf("Pow(2, -1) error = %v, want argument out of range", err)
		}
	})
}

func TestInt_Cmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "1", -1},
		{"-1", "-2", 1},
		{"18446744073709551616", "18446744073709551615", 1},
		{"-18446744073709551616", "-18446744073709551615", -1},
	}
	for _, tt := range tests {
		x, y := MustParseInt(tt.x, 10), MustParseInt(tt.y, 10)
		if got := x.Cmp(y); got != tt.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
		if got := y.Cmp(x); got != -tt.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tt.y, tt.x, got, -tt.want)
		}
	}
}

func TestInt_Hash(t *testing.T) {
	// Equal values hash equal; the sign flips the hash.
	x := MustParseInt("123456789012345678901234567890", 10)
	y := MustParseInt("123456789012345678901234567890", 10)
	if x.Hash() != y.Hash() {
		t.Errorf("equal values hash to %d and %d", x.Hash(), y.Hash())
	}
	if x.Hash() != -x.Neg().Hash() {
		t.Errorf("Hash(%s) = %d, Hash(neg) = %d, want negation", x, x.Hash(), x.Neg().Hash())
	}
	if got := NewInt(0).Hash(); got != 0 {
		t.Errorf("Hash(0) = %d, want 0", got)
	}
	// Word order matters: 2^32 and 1 share word values but not positions.
	if NewInt(1).Hash() == MustParseInt("4294967296", 10).Hash() {
		t.Errorf("order-insensitive hash: 1 and 2^32 collide")
	}
	// Pin the published accumulation, most significant word first:
	// 1 has words [1], 2^32 has words [0 1], 2^32+5 has words [5 1].
	if got := NewInt(1).Hash(); got != 1 {
		t.Errorf("Hash(1) = %d, want 1", got)
	}
	if got := MustParseInt("4294967296", 10).Hash(); got != 33 {
		t.Errorf("Hash(2^32) = %d, want 33", got)
	}
	if got := MustParseInt("4294967301", 10).Hash(); got != 38 {
		t.Errorf("Hash(2^32+5) = %d, want 38", got)
	}
}

func TestInt_Int64(t *testing.T) {
	tests := []struct {
		s    string
		want int64
	}{
		{"0", 0},
		{"-1", -1},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
		// Truncation keeps the low 64 bits.
		{"18446744073709551616", 0},
		{"18446744073709551617", 1},
	}
	for _, tt := range tests {
		if got := MustParseInt(tt.s, 10).Int64(); got != tt.want {
			t.Errorf("Int64(%s) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestInt_Float64(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"0", 0},
		{"1", 1},
		{"-2", -2},
		{"9007199254740992", 1 << 53},
		// 2^53 + 1 is the first integer float64 cannot hold exactly.
		{"9007199254740993", 1 << 53},
		{"123456789012345678901234567890", 1.2345678901234568e29},
	}
	for _, tt := range tests {
		if got := MustParseInt(tt.s, 10).Float64(); got != tt.want {
			t.Errorf("Float64(%s) = %g, want %g", tt.s, got, tt.want)
		}
	}
	huge, _ := NewInt(10).Pow(400)
	if got := huge.Float64(); !math.IsInf(got, 1) {
		t.Errorf("Float64(10^400) = %g, want +Inf", got)
	}
	if got := huge.Neg().Float64(); !math.IsInf(got, -1) {
		t.Errorf("Float64(-10^400) = %g, want -Inf", got)
	}
}

func TestInt_Bytes(t *testing.T) {
	tests := []struct {
		s    string
		want []byte
	}{
		{"0", []byte{0x00}},
		{"1", []byte{0x01}},
		{"-1", []byte{0xFF}},
		{"127", []byte{0x7F}},
		{"128", []byte{0x00, 0x80}},
		{"-128", []byte{0x80}},
		{"-129", []byte{0xFF, 0x7F}},
		{"255", []byte{0x00, 0xFF}},
		{"-255", []byte{0xFF, 0x01}},
		{"256", []byte{0x01, 0x00}},
		{"-256", []byte{0xFF, 0x00}},
		{"65536", []byte{0x01, 0x00, 0x00}},
	}
	for _, tt := range tests {
		x := MustParseInt(tt.s, 10)
		got := x.Bytes()
		if len(got) != len(tt.want) {
			t.Errorf("Bytes(%s) = %x, want %x", tt.s, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Bytes(%s) = %x, want %x", tt.s, got, tt.want)
				break
			}
		}
	}
}

func TestIntFromBytes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		values := []string{
			"0", "1", "-1", "127", "-128", "128", "-129", "255", "-255",
			"4294967296", "-4294967296",
			"123456789012345678901234567890",
			"-123456789012345678901234567890",
		}
		for _, s := range values {
			x := MustParseInt(s, 10)
			back, err := IntFromBytes(x.Bytes())
			if err != nil {
				t.Fatalf("IntFromBytes(Bytes(%s)) failed: %v", s, err)
			}
			if !back.Equal(x) {
				t.Errorf("byte round trip of %s = %s", s, back)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		if _, err := IntFromBytes(nil); !ErrInvalidFormat.Has(err) {
			t.Errorf("IntFromBytes(nil) error = %v, want invalid format", err)
		}
	})
}

func TestIntFromSignMagnitude(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			sign int
			mag  []byte
			want string
		}{
			{1, []byte{0x01}, "1"},
			{-1, []byte{0x01}, "-1"},
			{0, []byte{0x00}, "0"},
			{1, []byte{0x00, 0x00, 0x01}, "1"},
			{-1, []byte{0x01, 0x00, 0x00, 0x00, 0x00}, "-4294967296"},
		}
		for _, tt := range tests {
			x, err := IntFromSignMagnitude(tt.sign, tt.mag)
			if err != nil {
				t.Fatalf("IntFromSignMagnitude(%d, %x) failed: %v", tt.sign, tt.mag, err)
			}
			if got := x.String(); got != tt.want {
				t.Errorf("IntFromSignMagnitude(%d, %x) = %s, want %s", tt.sign, tt.mag, got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			sign int
			mag  []byte
		}{
			"empty magnitude": {1, nil},
			"sign too low":    {-2, []byte{0x01}},
			"sign too high":   {2, []byte{0x01}},
			"zero mismatch":   {0, []byte{0x01}},
		}
		for name, tt := range tests {
			if _, err := IntFromSignMagnitude(tt.sign, tt.mag); !ErrInvalidFormat.Has(err) {
				t.Errorf("%s: error = %v, want invalid format", name, err)
			}
		}
	})
}

func TestIntPow10(t *testing.T) {
	for _, n := range []int{0, 1, 19, 63, 64, 100} {
		p, err := IntPow10(n)
		if err != nil {
			t.Fatalf("IntPow10(%d) failed: %v", n, err)
		}
		want, _ := NewInt(10).Pow(n)
		if !p.Equal(want) {
			t.Errorf("IntPow10(%d) = %s, want %s", n, p, want)
		}
	}
	if _, err := IntPow10(-1); !ErrArgumentOutOfRange.Has(err) {
		t.Errorf("IntPow10(-1) error = %v, want argument out of range", err)
	}
}
