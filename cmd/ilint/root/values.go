package root

import (
	"fmt"
	"strconv"

	"github.com/brimdata/ilint"
)

// ParseValues parses decimal (or 0x-prefixed hexadecimal) integers.  When
// signed is true, the values are parsed as int64 and zigzag mapped.
func ParseValues(args []string, signed bool) ([]uint64, error) {
	vals := make([]uint64, 0, len(args))
	for _, arg := range args {
		var u uint64
		if signed {
			i, err := strconv.ParseInt(arg, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", arg, err)
			}
			u = ilint.ToUnsigned(i)
		} else {
			var err error
			u, err = strconv.ParseUint(arg, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", arg, err)
			}
		}
		vals = append(vals, u)
	}
	return vals, nil
}

// FormatValue formats u in decimal, as a signed value if signed is true.
func FormatValue(u uint64, signed bool) string {
	if signed {
		return strconv.FormatInt(ilint.ToSigned(u), 10)
	}
	return strconv.FormatUint(u, 10)
}
