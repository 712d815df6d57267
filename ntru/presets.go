package ntru

// PresetToyN11 returns the smallest demonstration set (N=11, p=3, q=32).
// Weight 1 is the only choice satisfying the decryption bound at q=32.
// Messages are numeric with coefficients below p.
func PresetToyN11() (Params, error) {
	return NewParams(11, 3, 32, 1)
}

// PresetTextN16 returns a set sized for the text alphabet (N=16, p=29,
// q=512): p-1 = 28 symbol values and (6*2+1)*29 = 377 < 512.
func PresetTextN16() (Params, error) {
	return NewParams(16, 29, 512, 2)
}

// PresetN107 returns the classical moderate-security set (N=107, p=3,
// q=128) with the largest weight the bound admits: (6*6+1)*3 = 111 < 128.
func PresetN107() (Params, error) {
	return NewParams(107, 3, 128, 6)
}

// PresetN167 returns the classical standard-security set (N=167, p=3,
// q=128, d=6).
func PresetN167() (Params, error) {
	return NewParams(167, 3, 128, 6)
}
