// Package altcode resolves a typed Windows Alt-code numpad sequence (the
// digits held while Alt is down) to the Unicode rune it produces, using the
// three legacy conventions: a leading-zero sequence is looked up in Windows-
// 1252, a bare sequence in the OEM/DOS CP437 table, and a bare sequence
// whose value is above 255 is a direct Unicode code point.
package altcode
