/*
 * The Q-condition tables and tunnel masks in this file are transcribed from
 * the MD5 differential paths in md5coll.c.
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

// QCond is one row of a differential path's Q-condition table. Q[i] is
// sampled as (rand&Mask | Q[i-1]&PMask) ^ Inv, and verified as
// (Q[i]&CBits) ^ (Q[i-1]&PMask) == Inv.
type QCond struct {
	Mask, PMask, Inv, CBits uint32
}

// Sample draws a candidate Q[i] from a fresh random word r and the previous
// trail entry qprev, per this condition row.
func (c QCond) Sample(r, qprev uint32) uint32 {
	return ((r & c.Mask) | (qprev & c.PMask)) ^ c.Inv
}

// Satisfies reports whether q (as Q[i]) is consistent with qprev (as
// Q[i-1]) under this condition row. A false return means the step is
// rejected and the caller must retry.
func (c QCond) Satisfies(q, qprev uint32) bool {
	return ((q & c.CBits) ^ (qprev & c.PMask)) == c.Inv
}

// qBad is Satisfies negated, used at call sites that read more naturally
// as a rejection test than an acceptance test.
func qBad(q, qprev uint32, c QCond) bool {
	return !c.Satisfies(q, qprev)
}

// QCondsBlock0 is the block-0 differential path's condition table, indexed
// 1..24 (index 0 unused).
var QCondsBlock0 = [25]QCond{
	{},
	{0xffffffff, 0x00000000, 0x00000000, 0x00000000}, // 1
	{0xffffffff, 0x00000000, 0x00000000, 0x00000000}, // 2
	{0xfe87bc3f, 0x00000000, 0x017841c0, 0x017843c0}, // 3
	{0x44000033, 0x0287bc00, 0x000002c0, 0x83ffffc8}, // 4  tmask = 0x38000004
	{0x00000000, 0x04000033, 0x41ffffc8, 0xffffffff}, // 5
	{0x00000000, 0x00000000, 0xb84b82d6, 0xffffffff}, // 6
	{0x68000084, 0x00000000, 0x02401b43, 0x97ffff7b}, // 7
	{0x2b8f6e04, 0x40000000, 0x405090d3, 0xd47091fb}, // 8
	{0x00000000, 0x40020000, 0x60040068, 0xf14690e9}, // 9  tmask = 0x0eb94f16 t2mask = 0x00002000
	{0x40000000, 0x00000000, 0x1040b089, 0xbfffff9f}, // 10 t2mask = 0x00000060
	{0x10408008, 0x40002000, 0x4fbb5f16, 0xefbf7ff7}, // 11
	{0x1ed9df7f, 0x40200000, 0x40222080, 0xe1262080}, // 12
	{0x5efb4f77, 0x00000000, 0x20049008, 0xa104b088}, // 13
	{0x1fff5f77, 0x40000000, 0x4000a088, 0xe000a088}, // 14
	{0x5efe7ff7, 0x00010000, 0x80018000, 0xa1018008}, // 15
	{0x1ffdffff, 0x40020000, 0xe0020000, 0xe0020000}, // 16
	{0x3ffd7ff7, 0x40008008, 0xc0000000, 0xc0028008}, // 17
	{0x5ffdffff, 0x20000000, 0x80020000, 0xa0020000}, // 18
	{0x7ffdffff, 0x00000000, 0x80000000, 0x80020000}, // 19
	{0x7ffbffff, 0x00040000, 0x80040000, 0x80040000}, // 20
	{0x7ffdffff, 0x00020000, 0x80000000, 0x80020000}, // 21
	{0x7fffffff, 0x00000000, 0x80000000, 0x80000000}, // 22
	{0x7fffffff, 0x00000000, 0x00000000, 0x80000000}, // 23
	{0x7fffffff, 0x00000000, 0x80000000, 0x80000000}, // 24
}

// QCondsPath00 is the block-1 condition table for path (0,0).
var QCondsPath00 = [25]QCond{
	{},
	{0x7dfdf7be, 0x80000000, 0x00020800, 0x82020841}, // 1
	{0x49a0e73e, 0x80000000, 0x201f0080, 0xb65f18c1}, // 2
	{0x0000040c, 0x8000e000, 0x3dcc1230, 0xfffffbf3}, // 3
	{0x00000004, 0x80000008, 0x93af7963, 0xfffffffb}, // 4
	{0x00000004, 0x00000000, 0xbc429940, 0xfffffffb}, // 5
	{0x00001044, 0x00000000, 0x22576eb9, 0xffffefbb}, // 6
	{0x00200806, 0x00000000, 0xbd0430b0, 0xffdff7f9}, // 7
	{0x60050110, 0x00000004, 0x09581e2a, 0x9ffafeef}, // 8
	{0x40044000, 0x00000000, 0xb9c20041, 0xbbca92ed}, // 9  tmask = 0x04310d12 t2mask = 0x00002000
	{0x00000000, 0x00044000, 0xf28aa209, 0xf7ffffdf}, // 10 t2mask = 0x08000020
	{0x12888008, 0x00012000, 0xa4754f57, 0xed777ff7}, // 11
	{0x1ed98d7f, 0x00200000, 0x41221200, 0xe1267280}, // 12
	{0x0efb1d77, 0x00000000, 0x3100c008, 0xf104e288}, // 13
	{0x0fff5d77, 0x00000000, 0x2000a288, 0xf000a288}, // 14
	{0x0efe7ff7, 0x00010000, 0xe0010008, 0xf1018008}, // 15
	{0x0ffdffff, 0x00020000, 0x50020000, 0xf0020000}, // 16
	{0x7ffd7ff7, 0x00008008, 0x80000000, 0x80028008}, // 17
	{0x5ffdffff, 0x20000000, 0x00020000, 0xa0020000}, // 18
	{0x7ffdffff, 0x00000000, 0x00020000, 0x80020000}, // 19
	{0x7ffbffff, 0x00040000, 0x00040000, 0x80040000}, // 20
	{0x7ffdffff, 0x00020000, 0x00000000, 0x80020000}, // 21
	{0x7fffffff, 0x00000000, 0x00000000, 0x80000000}, // 22
	{0x7fffffff, 0x00000000, 0x00000000, 0x80000000}, // 23
	{0x7fffffff, 0x00000000, 0x80000000, 0x80000000}, // 24
}

// QCondsPath01 is the block-1 condition table for path (0,1).
var QCondsPath01 = [25]QCond{
	{},
	{0x7dfff39e, 0x80000020, 0x00000020, 0x82000c61}, // 1
	{0x4db0e03e, 0x80000000, 0x30460400, 0xb24f1fc1}, // 2
	{0x0c000008, 0x80800002, 0x103c32b0, 0xf3fffff7}, // 3
	{0x00000000, 0x88000000, 0xd157efd1, 0xffffffff}, // 4
	{0x82000000, 0x00000000, 0x151900ab, 0x7dffffff}, // 5
	{0x80000000, 0x00000000, 0x3347f06f, 0x7fffffff}, // 6
	{0x00010130, 0x00000000, 0x79ea9e46, 0xfffefecf}, // 7
	{0x40200800, 0x00000000, 0xa548136d, 0xbfdff7ff}, // 8
	{0x00044000, 0x00000000, 0x394002f1, 0x3bca92fd}, // 9  tmask = 0x44310d02 t2mask = 0x80002000
	{0x00000000, 0x00044000, 0xb288a208, 0xf7ffffcf}, // 10 t2mask = 0x08000030
	{0x12808008, 0x00012000, 0xe4754f47, 0xed7f7ff7}, // 11
	{0x1ef18d7f, 0x00000000, 0x810a1200, 0xe10e7280}, // 12
	{0x1efb1d77, 0x00000000, 0x6104c008, 0xe104e288}, // 13
	{0x1fff5d77, 0x00000000, 0xe000a288, 0xe000a288}, // 14
	{0x1efe7ff7, 0x00010000, 0xa0010008, 0xe1018008}, // 15
	{0x1ffdffff, 0x00020000, 0x80020000, 0xe0020000}, // 16
	{0x7ffd7ff7, 0x00008008, 0x00000000, 0x80028008}, // 17
	{0x5ffdffff, 0x20000000, 0x80020000, 0xa0020000}, // 18
	{0x7ffdffff, 0x00000000, 0x80020000, 0x80020000}, // 19
	{0x7ffbffff, 0x00040000, 0x80040000, 0x80040000}, // 20
	{0x7ffdffff, 0x00020000, 0x80000000, 0x80020000}, // 21
	{0x7fffffff, 0x00000000, 0x80000000, 0x80000000}, // 22
	{0x7fffffff, 0x00000000, 0x00000000, 0x80000000}, // 23
	{0x7fffffff, 0x00000000, 0x80000000, 0x80000000}, // 24
}

// QCondsPath10 is the block-1 condition table for path (1,0).
var QCondsPath10 = [25]QCond{
	{},
	{0x7dfdf6be, 0x80000000, 0x00000940, 0x82020941}, // 1
	{0x79b0c6ba, 0x80000000, 0x004c3800, 0x864f3945}, // 2
	{0x19300210, 0x80000082, 0x2401012c, 0xe6cffdef}, // 3
	{0x10300000, 0x01000030, 0x6287dacb, 0xefcfffff}, // 4
	{0x10000000, 0x00300000, 0x0289955c, 0xefffffff}, // 5
	{0x00000000, 0x00000000, 0x919b0066, 0xffffffff}, // 6
	{0x20444000, 0x00000000, 0x41091e65, 0xdfbbbfff}, // 7
	{0x09040000, 0x00000000, 0xa0d81e79, 0xf6fbffff}, // 8
	{0x00050000, 0x00000000, 0x508851c1, 0xdb8ad9d5}, // 9  tmask = 0x2470042a t2mask = 0x00002200
	{0x00010080, 0x00040000, 0x028aeb11, 0xf7feff7b}, // 10 t2mask = 0x08000004
	{0x128b8110, 0x20002280, 0x2474446b, 0xed747eef}, // 11
	{0x3ef38d7f, 0x00080000, 0x81081200, 0xc10c7280}, // 12
	{0x3efb1d77, 0x00000000, 0x8104c008, 0xc104e288}, // 13
	{0x5fff5d77, 0x00000000, 0x0000a288, 0xa000a288}, // 14
	{0x1efe7ff7, 0x00010000, 0xe0010008, 0xe1018008}, // 15
	{0x5ffdffff, 0x00020000, 0x80020000, 0xa0020000}, // 16
	{0x7ffd7ff7, 0x00008008, 0x00000000, 0x80028008}, // 17
	{0x5ffdffff, 0x20000000, 0x80020000, 0xa0020000}, // 18
	{0x7ffdffff, 0x00000000, 0x80020000, 0x80020000}, // 19
	{0x7ffbffff, 0x00040000, 0x80040000, 0x80040000}, // 20
	{0x7ffdffff, 0x00020000, 0x80000000, 0x80020000}, // 21
	{0x7fffffff, 0x00000000, 0x80000000, 0x80000000}, // 22
	{0x7fffffff, 0x00000000, 0x00000000, 0x80000000}, // 23
	{0x7fffffff, 0x00000000, 0x80000000, 0x80000000}, // 24
}

// QCondsPath11 is the block-1 condition table for path (1,1). Q[6]'s Inv
// carries a corrected MSB (0x89d40058): the value given for this entry in
// Stevens' thesis has an incorrect top bit.
var QCondsPath11 = [25]QCond{
	{},
	{0x7dfff79e, 0x80000020, 0x00000860, 0x82000861}, // 1
	{0x75bef63e, 0x80000000, 0x08410000, 0x8a4109c1}, // 2
	{0x10345614, 0x84000002, 0x0002a1a0, 0xefcba9eb}, // 3
	{0x00145400, 0x00000014, 0x660aa0ca, 0xffebabff}, // 4
	{0x80000000, 0x00145400, 0x1423a220, 0x7fffffff}, // 5
	{0x00000000, 0x80000000, 0x89d40058, 0xffffffff}, // 6  corrected MSB, see design notes
	{0x40000880, 0x00000000, 0x394bd45b, 0xbffff77f}, // 7
	{0x00002090, 0x00000000, 0xa1d85c09, 0xffffdf6f}, // 8
	{0x00044000, 0x00000000, 0x7a803161, 0x7b8ab16d}, // 9  tmask = 0x04710c12 t2mask = 0x80000280
	{0x00002000, 0x00044000, 0xf28a82c9, 0xf7ffdfdf}, // 10 t2mask = 0x08000020
	{0x128a8108, 0x00012280, 0x84754c57, 0xed757ef7}, // 11
	{0x9edb8d7f, 0x00200000, 0x21201200, 0x61247280}, // 12
	{0x3efb1d77, 0x80000000, 0x4104c008, 0xc104e288}, // 13
	{0x1fff5d77, 0x00000000, 0x8000a288, 0xe000a288}, // 14
	{0x1efe7ff7, 0x00010000, 0x20010008, 0xe1018008}, // 15
	{0x1ffdffff, 0x40020000, 0xc0020000, 0xe0020000}, // 16
	{0x3ffd7ff7, 0x40008008, 0xc0000000, 0xc0028008}, // 17
	{0x5ffdffff, 0x20000000, 0x00020000, 0xa0020000}, // 18
	{0x7ffdffff, 0x00000000, 0x00020000, 0x80020000}, // 19
	{0x7ffbffff, 0x00040000, 0x00040000, 0x80040000}, // 20
	{0x7ffdffff, 0x00020000, 0x00000000, 0x80020000}, // 21
	{0x7fffffff, 0x00000000, 0x00000000, 0x80000000}, // 22
	{0x7fffffff, 0x00000000, 0x00000000, 0x80000000}, // 23
	{0x7fffffff, 0x00000000, 0x80000000, 0x80000000}, // 24
}

// QCondsByPath indexes the four block-1 condition tables by the path
// selector computed by PathFromIV.
var QCondsByPath = [4]*[25]QCond{&QCondsPath00, &QCondsPath01, &QCondsPath10, &QCondsPath11}

// Q9M9Masks gives, per path, which bits of Q[9] are free tunnel bits for the
// nine-bit Q[9] enumeration tunnel in block 1.
var Q9M9Masks = [4]uint32{0x04310d12, 0x44310d02, 0x2470042a, 0x04710c12}

// Q9Q10Masks gives, per path, which bits of Q[9]/Q[10] (split by Q10Mask)
// are free tunnel bits for the Q[9,10] enumeration tunnel in block 1.
var Q9Q10Masks = [4]uint32{0x08002020, 0x88002030, 0x08002204, 0x880002a0}

// Q10Mask splits a combined Q[9,10] tunnel word into its Q[10] component.
// Written in full as 0x08000034 rather than 0x8000034 to make the leading
// zero nibble explicit and avoid any ambiguity about the constant's width.
const Q10Mask uint32 = 0x08000034

// Q9M9Mask is the block-0 Q[9] sixteen-bit tunnel's free-bit mask.
const Q9M9Mask uint32 = 0x0eb94f16

// PathFromIV computes the block-1 differential path selector from two bits
// of the post-block-0 IV's B word.
func PathFromIV(b uint32) int {
	return int((b & 1) | ((b >> 5) & 2))
}
