package Scoped_String

import "bytes"

// StartsWith reports whether the view begins with the bytes of prefix.
// A prefix longer than the view never matches; an empty prefix always
// does.
func (v View) StartsWith(prefix View) bool {
	if prefix.Size() > v.Size() {
		return false
	}
	return bytes.Equal(v.data[:prefix.Size()], prefix.data)
}

// StartsWithByte reports whether the first byte of the view is c.
func (v View) StartsWithByte(c byte) bool {
	return len(v.data) > 0 && v.data[0] == c
}

// EndsWith reports whether the view ends with the bytes of suffix.
func (v View) EndsWith(suffix View) bool {
	if suffix.Size() > v.Size() {
		return false
	}
	return bytes.Equal(v.data[v.Size()-suffix.Size():], suffix.data)
}

// EndsWithByte reports whether the last byte of the view is c.
func (v View) EndsWithByte(c byte) bool {
	return len(v.data) > 0 && v.data[len(v.data)-1] == c
}

// Find 返回字节c首次出现的下标,未找到返回-1
func (v View) Find(c byte) int {
	if v.data == nil {
		return -1
	}
	return bytes.IndexByte(v.data, c)
}

// Equals compares two views by content. Sizes must match first. A
// null-pointer view only equals another null-pointer view; two distinct
// empty-but-non-null views are equal.
func Equals(a, b View) bool {
	if a.Size() != b.Size() {
		return false
	}
	if a.data == nil && b.data == nil {
		return true
	}
	if a.data == nil || b.data == nil {
		return false
	}
	return bytes.Equal(a.data, b.data)
}
