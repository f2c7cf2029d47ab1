package decswar

// classify checks a magnitude with exactly w.MaxDigits() digits against the
// width's limits. Magnitudes with fewer digits are always in range and must
// not be passed here.
func (w Width) classify(mag U128, neg bool) ErrorKind {
	if neg {
		if mag.GreaterThan(w.minAbs) {
			return NegOverflow
		}
		return 0
	}
	if mag.GreaterThan(w.max) {
		return Overflow
	}
	return 0
}
