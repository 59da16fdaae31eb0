// Package utils provides small conversion helpers shared by the entity parsers
// and the record sources.
//
// Numeric text in game records is not always clean ("12(Lv.5)", "N/A", "-3"),
// so DigitsToInt applies a lenient policy: keep every digit, honour a leading
// minus sign, default to zero.
package utils
