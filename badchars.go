/*
 * The forbidden-byte filter in this file mirrors the HAS_BAD_CHARS check in
 * md5coll.c.
 *
 * Copyright (c) 2017 Mako
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be
 * included in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package collide

// Filter is a 256-entry forbidden-byte table applied to candidate message
// words. A nil *Filter is a no-op: searches run unfiltered when no
// forbidden bytes are configured.
type Filter [256]bool

// NewFilter builds a Filter from the bytes to forbid. A nil or empty bad
// slice yields a Filter that rejects nothing (callers may also just pass a
// nil *Filter directly; both forms are accepted by HasBadByte/Reject).
func NewFilter(bad []byte) *Filter {
	f := &Filter{}
	for _, b := range bad {
		f[b] = true
	}
	return f
}

// HasBadByte reports whether any of w's four bytes is forbidden.
func (f *Filter) HasBadByte(w uint32) bool {
	if f == nil {
		return false
	}
	return f[w&0xff] || f[(w>>8)&0xff] || f[(w>>16)&0xff] || f[(w>>24)&0xff]
}

// Reject reports whether any of the given words contains a forbidden byte.
// Call sites pass a word together with its Δ-offset sibling so both
// variants of a message word are gated in one place.
func (f *Filter) Reject(words ...uint32) bool {
	for _, w := range words {
		if f.HasBadByte(w) {
			return true
		}
	}
	return false
}
