package utils

import (
	"fmt"
	"math"
	"strings"
)

// DigitsToInt extracts an integer from loosely formatted numeric text.
// Every decimal digit in s is kept in order and the result is negated when s
// starts with '-'. Text without digits yields 0, so "12(Lv.5)" becomes 125
// and "N/A" becomes 0.
func DigitsToInt(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}

	n := 0
	for _, r := range digits {
		d := int(r - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			break
		}
		n = n*10 + d
	}
	if strings.HasPrefix(s, "-") {
		return -n
	}
	return n
}

// ToInt converts various types to int using explicit type switching.
// Strings and byte slices go through DigitsToInt.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		return DigitsToInt(v)
	case []byte:
		return DigitsToInt(string(v))
	default:
		return DigitsToInt(fmt.Sprintf("%v", v))
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
