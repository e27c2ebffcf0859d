package bigmath

import (
	"encoding/binary"

	"github.com/vmihailenco/msgpack/v5"
)

// Serialized forms. Text and JSON use the decimal string notation so
// values survive tools that cannot hold them natively; JSON values are
// quoted to avoid double rounding in consumers, but bare numbers are
// accepted on the way in. Binary carries the exact internal value: the
// two's-complement bytes for Int, the scale plus those bytes for Decimal.

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(b []byte) error {
	v, err := ParseInt(string(b), 10)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (x *Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Int) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := ParseInt(s, 10)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x *Int) MarshalBinary() ([]byte, error) {
	return x.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(b []byte) error {
	v, err := IntFromBytes(b)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, _ := x.MarshalBinary()
	return enc.EncodeBytes(b)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return x.UnmarshalBinary(b)
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(b []byte) error {
	v, err := ParseDecimal(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal) MarshalBinary() ([]byte, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(d.scale))
	return append(b[:], d.UnscaledValue().Bytes()...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(b []byte) error {
	if len(b) < 5 {
		return ErrInvalidFormat.New("decimal binary form needs 5 bytes, got %d", len(b))
	}
	scale := int32(binary.BigEndian.Uint32(b[:4]))
	u, err := IntFromBytes(b[4:])
	if err != nil {
		return err
	}
	*d = newDecimalInt(u, scale)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (d *Decimal) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, _ := d.MarshalBinary()
	return enc.EncodeBytes(b)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (d *Decimal) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return d.UnmarshalBinary(b)
}
