// Package pair packs and unpacks a single packed BCD byte.
//
// A packed BCD byte carries two decimal digits, one per nibble. The high
// nibble is the tens digit and the low nibble is the ones digit:
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Value |
//	|---------------|---------------||-------|
//	| 0 . 0 . 0 . 0 | 0 . 0 . 0 . 0 ||     0 |
//	| 0 . 1 . 0 . 0 | 0 . 1 . 0 . 1 ||    45 |
//	| 1 . 0 . 0 . 1 | 1 . 0 . 0 . 1 ||    99 |
//	|---------------|---------------||-------|
//	| tens          | ones          ||
//
// Nibble values 10 through 15 (0xA through 0xF) are not decimal digits. A
// byte containing one is invalid and is rejected by Valid, Value and
// Validate.
package pair
