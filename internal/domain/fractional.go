package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thirtySecond = decimal.NewFromInt(32)
	twoFiftySix  = decimal.NewFromInt(256)
)

// ParseFractionalPrice converts a Treasury fractional quote "xxx-yyz" into
// a decimal price: xxx is the integer handle, yy is 32nds, and z is a
// 256ths digit in 0..7 where the literal '+' means 4 (a half-32nd).
func ParseFractionalPrice(s string) (decimal.Decimal, error) {
	dash := strings.IndexByte(s, '-')
	if dash < 0 || len(s)-dash-1 != 3 {
		return decimal.Zero, fmt.Errorf("%w: %q is not a fractional price (want xxx-yyz)", ErrMalformedRecord, s)
	}

	handlePart := s[:dash]
	thirtySecondsPart := s[dash+1 : dash+3]
	tickPart := s[dash+3:]

	handle, err := strconv.ParseInt(handlePart, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid handle %q in %q", ErrMalformedRecord, handlePart, s)
	}

	thirtySeconds, err := strconv.ParseInt(thirtySecondsPart, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid 32nds %q in %q", ErrMalformedRecord, thirtySecondsPart, s)
	}

	var tick int64
	if tickPart == "+" {
		tick = 4
	} else {
		tick, err = strconv.ParseInt(tickPart, 10, 64)
		if err != nil || tick < 0 || tick > 7 {
			return decimal.Zero, fmt.Errorf("%w: invalid 256ths digit %q in %q", ErrMalformedRecord, tickPart, s)
		}
	}

	price := decimal.NewFromInt(handle).
		Add(decimal.NewFromInt(thirtySeconds).Div(thirtySecond)).
		Add(decimal.NewFromInt(tick).Div(twoFiftySix))
	return price, nil
}

// FormatFractionalPrice is the inverse of ParseFractionalPrice. The 256ths
// digit renders as '+' when it equals 4, and the 32nds digit is always
// zero-padded to two characters.
func FormatFractionalPrice(price decimal.Decimal) string {
	handle := price.Floor()
	remainder := price.Sub(handle)

	tick256 := remainder.Mul(twoFiftySix).Floor().IntPart()
	thirtySeconds := tick256 / 8
	tick := tick256 % 8

	tickStr := strconv.FormatInt(tick, 10)
	if tick == 4 {
		tickStr = "+"
	}

	return fmt.Sprintf("%s-%02d%s", handle.String(), thirtySeconds, tickStr)
}
