package Scoped_String

// Substr returns the sub-view from offset start through the end. A
// negative start counts back from the end of the view. A normalized
// offset of zero or less returns the view unchanged, cached hash
// included; an offset at or past the end returns a null view.
func (v View) Substr(start int) View {
	s := start
	if start < 0 {
		s = len(v.data) + start
	}

	if s <= 0 {
		return v
	}
	if s < len(v.data) {
		return View{data: v.data[s:]}
	}
	return View{}
}

// SubstrLen returns the sub-view selected by normalizing (start, length)
// with clampRange. The result may be empty when the window collapses.
//
//	"hello"  1, 3  => "ell"
//	"hello" -1, 3  => "llo"
//	"hello"  1, -1 => "ell"
func (v View) SubstrLen(start, length int) View {
	lo, hi := clampRange(len(v.data), start, length)
	return View{data: v.data[lo:hi]}
}

// clampRange normalizes a signed (start, length) pair against a range of
// size n into the half-open window [lo, hi), 0 <= lo <= hi <= n.
//
// A negative start counts back from the end. A positive length places
// the end at lo+length; a non-positive length places it at n+length. A
// reversed pair is swapped so the window always runs forward. A window
// anchored from the end (negative start) that overruns n slides back so
// it keeps its width; a front-anchored window is simply cut at n.
// Finally both bounds are clamped into [0, n].
func clampRange(n, start, length int) (int, int) {
	lo := start
	if start < 0 {
		lo = n + start
	}

	hi := lo + length
	if length <= 0 {
		hi = n + length
	}

	if lo > hi {
		lo, hi = hi, lo
	}
	if hi > n {
		if start < 0 {
			lo -= hi - n
		}
		hi = n
	}
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
