package Scoped_String

import (
	"sync/atomic"
	"unsafe"
)

// HashStartValue 哈希计算的初始种子,持久化的哈希值依赖它,不可更改
const HashStartValue uint32 = 0x9E3779B9

// renderLimit String输出的最大字节数
const renderLimit = 250

// View 是对一段连续字节的非拥有引用
//
// View is a non-owning reference to a contiguous byte range. It never
// copies or mutates the bytes it references; the owner of the backing
// buffer must keep that buffer alive for as long as any View derived
// from it is in use. View is a small value type and is copied freely.
//
// A nil backing range is the "null" state; a zero-length but non-nil
// range is the "empty" state. IsNull reports true for both.
type View struct {
	data []byte
	hash uint32 // cached content hash, 0 means not yet computed
}

// emptyRange backs views that are empty but not null.
var emptyRange = make([]byte, 0)

// New returns a view over b. The range is stored as-is and is never
// validated; a nil slice yields a null view.
func New(b []byte) View {
	return View{data: b}
}

// NewString returns a view over the bytes of s without copying them.
// The backing memory belongs to the string and must never be written
// through the view. An empty string yields an empty, non-null view.
func NewString(s string) View {
	if len(s) == 0 {
		return View{data: emptyRange}
	}
	return View{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// IsNull 判断视图是否为空
func (v View) IsNull() bool {
	return len(v.data) == 0
}

// Size 返回视图的字节数
func (v View) Size() int {
	return len(v.data)
}

// Data exposes the underlying range. Callers must treat it as read-only.
func (v View) Data() []byte {
	return v.data
}

// Tail returns a pointer to the last byte of the range. It panics on an
// empty or null view; callers check Size first.
func (v View) Tail() *byte {
	return &v.data[len(v.data)-1]
}

// Reset points the view at a new range in place and drops the cached hash.
func (v *View) Reset(b []byte) {
	v.data = b
	atomic.StoreUint32(&v.hash, 0)
}

// Hash returns the content hash, computing and caching it on first use.
// A null view hashes to 0, which doubles as the "not yet computed"
// sentinel; content that genuinely hashes to 0 is recomputed on every
// call (accepted collision). Concurrent calls on the same instance are
// safe and store the same value.
func (v *View) Hash() uint32 {
	if h := atomic.LoadUint32(&v.hash); h != 0 {
		return h
	}
	if v.data == nil {
		return 0
	}
	h := mixHash(v.data)
	atomic.StoreUint32(&v.hash, h)
	return h
}

// mixHash 两字节一组的混合哈希
//
// mixHash folds the range two bytes at a time with 32-bit wrapping
// arithmetic. An odd trailing byte runs the same step with only the
// first-byte term.
func mixHash(b []byte) uint32 {
	h := HashStartValue
	i := 0
	for ; i+1 < len(b); i += 2 {
		h += uint32(b[i])
		h = (h << 16) ^ (uint32(b[i+1])<<11 ^ h)
		h += h >> 11
	}
	if len(b)&1 == 1 {
		c := uint32(b[len(b)-1])
		h += c
		h = (h << 16) ^ (c<<11 ^ h)
		h += h >> 11
	}
	return h
}

// String renders the view for logging and debugging. The result is a
// fresh allocation, truncated at renderLimit bytes with a "..." marker.
// A null or empty view renders as "".
func (v View) String() string {
	if len(v.data) == 0 {
		return ""
	}
	if len(v.data) >= renderLimit {
		return string(v.data[:renderLimit]) + "..."
	}
	return string(v.data)
}
