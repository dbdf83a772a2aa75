package Scoped_String

import "sync/atomic"

// isTrimSpace 空白字符类: 空格 制表符 回车 换行
func isTrimSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// TrimByte strips trailing, then leading occurrences of c in place.
// Neither pass shrinks the view below one byte, so a view made up
// entirely of c keeps a single instance of it rather than going empty.
// No-op on a null or empty view. Invalidates the cached hash.
func (v *View) TrimByte(c byte) {
	if len(v.data) == 0 {
		return
	}

	d := v.data
	n := len(d)
	for n > 1 && d[n-1] == c {
		n--
	}

	i := 0
	for d[i] == c && n-i > 1 {
		i++
	}

	v.data = d[i:n]
	atomic.StoreUint32(&v.hash, 0)
}

// Trim 去除两端空白字符
//
// Trim is TrimByte with the whitespace class instead of a single byte,
// with the same one-byte floor.
func (v *View) Trim() {
	if len(v.data) == 0 {
		return
	}

	d := v.data
	n := len(d)
	for n > 1 && isTrimSpace(d[n-1]) {
		n--
	}

	i := 0
	for isTrimSpace(d[i]) && n-i > 1 {
		i++
	}

	v.data = d[i:n]
	atomic.StoreUint32(&v.hash, 0)
}
