package bigmath

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestInt_JSON(t *testing.T) {
	type payload struct {
		Value *Int `json:"value"`
	}
	x := MustParseInt("-123456789012345678901234567890", 10)
	b, err := json.Marshal(payload{Value: x})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	want := `{"value":"-123456789012345678901234567890"}`
	if string(b) != want {
		t.Errorf("json.Marshal = %s, want %s", b, want)
	}
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if !p.Value.Equal(x) {
		t.Errorf("JSON round trip = %s, want %s", p.Value, x)
	}

	// Bare numbers are accepted too.
	if err := json.Unmarshal([]byte(`{"value":42}`), &p); err != nil {
		t.Fatalf("json.Unmarshal bare number failed: %v", err)
	}
	if !p.Value.Equal(NewInt(42)) {
		t.Errorf("bare number = %s, want 42", p.Value)
	}
}

func TestInt_Msgpack(t *testing.T) {
	for _, s := range []string{"0", "-1", "255", "-4294967296", "123456789012345678901234567890"} {
		x := MustParseInt(s, 10)
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		if err := x.EncodeMsgpack(enc); err != nil {
			t.Fatalf("EncodeMsgpack(%s) failed: %v", s, err)
		}
		var y Int
		dec := msgpack.NewDecoder(&buf)
		if err := y.DecodeMsgpack(dec); err != nil {
			t.Fatalf("DecodeMsgpack(%s) failed: %v", s, err)
		}
		if !y.Equal(x) {
			t.Errorf("msgpack round trip of %s = %s", s, &y)
		}
	}
}

func TestDecimal_JSON(t *testing.T) {
	type payload struct {
		Value Decimal `json:"value"`
	}
	d := MustParseDecimal("-123.4500")
	b, err := json.Marshal(payload{Value: d})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	want := `{"value":"-123.4500"}`
	if string(b) != want {
		t.Errorf("json.Marshal = %s, want %s", b, want)
	}
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if !p.Value.Equal(d) {
		t.Errorf("JSON round trip = %s, want %s", p.Value, d)
	}
}

func TestDecimal_Binary(t *testing.T) {
	for _, s := range []string{"0", "0.00", "-1.5", "5E-8", "1.23E+4", "123456789012345678901234567890.123"} {
		d := MustParseDecimal(s)
		b, err := d.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary(%s) failed: %v", s, err)
		}
		var e Decimal
		if err := e.UnmarshalBinary(b); err != nil {
			t.Fatalf("UnmarshalBinary(%s) failed: %v", s, err)
		}
		if !e.Equal(d) {
			t.Errorf("binary round trip of %s = %s", s, e)
		}
	}
	var e Decimal
	if err := e.UnmarshalBinary([]byte{0, 0}); !ErrInvalidFormat.Has(err) {
		t.Errorf("short binary error = %v, want invalid format", err)
	}
}

func TestDecimal_Text(t *testing.T) {
	d := MustParseDecimal("0.500")
	b, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(b) != "0.500" {
		t.Errorf("MarshalText = %s, want 0.500", b)
	}
	var e Decimal
	if err := e.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !e.Equal(d) {
		t.Errorf("text round trip = %s, want %s", e, d)
	}
}
