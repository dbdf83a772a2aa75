package Scoped_String

import "testing"

func TestStartsWith(t *testing.T) {
	v := NewString("hello")

	if !v.StartsWith(NewString("he")) {
		t.Error("\"hello\" should start with \"he\"")
	}
	if !v.StartsWith(NewString("hello")) {
		t.Error("a view should start with itself")
	}
	if v.StartsWith(NewString("hello!")) {
		t.Error("a prefix longer than the view should not match")
	}
	if v.StartsWith(NewString("el")) {
		t.Error("\"hello\" should not start with \"el\"")
	}
	if !v.StartsWith(View{}) {
		t.Error("an empty prefix should always match")
	}

	if !v.StartsWithByte('h') {
		t.Error("first byte should match 'h'")
	}
	if v.StartsWithByte('e') {
		t.Error("first byte should not match 'e'")
	}

	var zero View
	if zero.StartsWithByte('h') {
		t.Error("a null view has no first byte")
	}
}

func TestEndsWith(t *testing.T) {
	v := NewString("hello")

	if !v.EndsWith(NewString("lo")) {
		t.Error("\"hello\" should end with \"lo\"")
	}
	if v.EndsWith(NewString("hello!")) {
		t.Error("a suffix longer than the view should not match")
	}
	if v.EndsWith(NewString("ll")) {
		t.Error("\"hello\" should not end with \"ll\"")
	}

	if !v.EndsWithByte('o') {
		t.Error("last byte should match 'o'")
	}
	if v.EndsWithByte('l') {
		t.Error("last byte should not match 'l'")
	}

	var zero View
	if zero.EndsWithByte('o') {
		t.Error("a null view has no last byte")
	}
}

func TestFind(t *testing.T) {
	v := NewString("hello")

	if got := v.Find('l'); got != 2 {
		t.Errorf("Find('l') = %d, want 2", got)
	}
	if got := v.Find('h'); got != 0 {
		t.Errorf("Find('h') = %d, want 0", got)
	}
	if got := v.Find('z'); got != -1 {
		t.Errorf("Find('z') = %d, want -1", got)
	}

	var zero View
	if got := zero.Find('h'); got != -1 {
		t.Errorf("Find on a null view = %d, want -1", got)
	}
}

func TestEqualsContentBased(t *testing.T) {
	a := New([]byte("same bytes"))
	b := New([]byte("same bytes"))

	if !Equals(a, a) {
		t.Error("equality should be reflexive")
	}
	if !Equals(a, b) || !Equals(b, a) {
		t.Error("equal content over distinct buffers should compare equal, both ways")
	}

	c := New([]byte("same byteZ"))
	if Equals(a, c) {
		t.Error("different content should not compare equal")
	}

	d := New([]byte("same"))
	if Equals(a, d) {
		t.Error("different sizes should not compare equal")
	}
}

func TestEqualsNullAndEmpty(t *testing.T) {
	var null1, null2 View
	if !Equals(null1, null2) {
		t.Error("two null views should compare equal")
	}

	empty := NewString("")
	if Equals(null1, empty) {
		t.Error("a null view should not equal an empty non-null view")
	}
	if !Equals(empty, NewString("")) {
		t.Error("two empty non-null views should compare equal")
	}
}

func TestEqualsSharedRange(t *testing.T) {
	buf := []byte("shared")
	a := New(buf)
	b := New(buf)
	if !Equals(a, b) {
		t.Error("views over the identical range should compare equal")
	}

	sub := a.SubstrLen(0, 3)
	if Equals(a, sub) {
		t.Error("a view should not equal its shorter prefix")
	}
}
