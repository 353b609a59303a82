package altcode

// cp437Upper maps byte values 128-255 of the IBM PC OEM codepage to their
// Unicode runes. 0-127 is plain ASCII in CP437, so it is not tabulated.
var cp437Upper = [128]rune{
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', 'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å',
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', 'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ',
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º', '¿', '⌐', '¬', '½', '¼', '¡', '«', '»',
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖', '╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟', '╚', '╔', '╩', '╦', '╠', '═', '╬', '╧',
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫', '╪', '┘', '┌', '█', '▄', '▌', '▐', '▀',
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ', 'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩',
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈', '°', '∙', '·', '√', 'ⁿ', '²', '■', ' ',
}

// cp1252Upper maps byte values 128-159 of Windows-1252 to their Unicode
// runes, where it diverges from Latin-1. 160-255 is identical to Latin-1
// (the byte value equals the code point), and 0-127 is plain ASCII.
// Positions Windows-1252 leaves undefined (129, 141, 143, 144, 157) have no
// entry; FromCP1252 falls back to the raw byte value for those.
var cp1252Upper = map[int]rune{
	128: '€', 130: '‚', 131: 'ƒ', 132: '„', 133: '…', 134: '†', 135: '‡',
	136: 'ˆ', 137: '‰', 138: 'Š', 139: '‹', 140: 'Œ', 142: 'Ž',
	145: '‘', 146: '’', 147: '“', 148: '”', 149: '•', 150: '–', 151: '—',
	152: '˜', 153: '™', 154: 'š', 155: '›', 156: 'œ', 158: 'ž', 159: 'Ÿ',
}

// FromCP437 resolves an OEM/DOS codepage byte value (the "bare" Alt-code
// convention, e.g. Alt+130 -> é) to its Unicode rune.
func FromCP437(code int) (rune, bool) {
	if code < 0 || code > 255 {
		return 0, false
	}
	if code < 128 {
		return rune(code), true
	}
	return cp437Upper[code-128], true
}

// FromCP1252 resolves a Windows-1252 byte value (the "leading zero"
// Alt-code convention, e.g. Alt+0233 -> é) to its Unicode rune.
func FromCP1252(code int) (rune, bool) {
	if code < 0 || code > 255 {
		return 0, false
	}
	if code < 128 {
		return rune(code), true
	}
	if r, ok := cp1252Upper[code]; ok {
		return r, true
	}
	return rune(code), true
}
