package ilint

import "io"

// ToUnsigned maps i onto the unsigned integers by interleaving negative and
// positive values: 0, -1, 1, -2, 2, ... become 0, 1, 2, 3, 4, ...
func ToUnsigned(i int64) uint64 {
	u := uint64(i) << 1
	if i < 0 {
		return ^u
	}
	return u
}

// ToSigned is the inverse of ToUnsigned.
func ToSigned(u uint64) int64 {
	i := int64(u >> 1)
	if u&1 != 0 {
		return ^i
	}
	return i
}

func AppendInt(dst []byte, i int64) []byte {
	return AppendUint(dst, ToUnsigned(i))
}

func EncodeInt(i int64) []byte {
	return EncodeUint(ToUnsigned(i))
}

func WriteInt(w io.ByteWriter, i int64) error {
	return WriteUint(w, ToUnsigned(i))
}

func Int(b []byte) (int64, int, error) {
	u, n, err := Uint(b)
	return ToSigned(u), n, err
}

func ReadInt(r io.ByteReader) (int64, error) {
	u, err := ReadUint(r)
	return ToSigned(u), err
}
