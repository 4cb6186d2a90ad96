package simd

// ByteTable marks a set of bytes. It is the fallback representation for
// byte sets too large for Memchr2/Memchr3.
type ByteTable [256]bool

// NewByteTable returns the table holding exactly the bytes of set.
func NewByteTable(set []byte) *ByteTable {
	var t ByteTable
	for _, b := range set {
		t[b] = true
	}
	return &t
}

// MemchrInTable finds the first byte where table[byte] is true.
// Returns position or -1 if not found.
func MemchrInTable(haystack []byte, table *ByteTable) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// MemchrNotInTable finds the first byte where table[byte] is false.
// Returns position or -1 if all bytes have table[byte] == true.
func MemchrNotInTable(haystack []byte, table *ByteTable) int {
	if table == nil {
		if len(haystack) == 0 {
			return -1
		}
		return 0
	}
	for i, b := range haystack {
		if !table[b] {
			return i
		}
	}
	return -1
}

// MemrchrInTable finds the last byte where table[byte] is true.
func MemrchrInTable(haystack []byte, table *ByteTable) int {
	if table == nil {
		return -1
	}
	for i := len(haystack) - 1; i >= 0; i-- {
		if table[haystack[i]] {
			return i
		}
	}
	return -1
}

// MemrchrNotInTable finds the last byte where table[byte] is false.
func MemrchrNotInTable(haystack []byte, table *ByteTable) int {
	if table == nil {
		return len(haystack) - 1
	}
	for i := len(haystack) - 1; i >= 0; i-- {
		if !table[haystack[i]] {
			return i
		}
	}
	return -1
}
