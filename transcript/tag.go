// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transcript

import (
	"encoding/binary"

	"code.hybscloud.com/sponge"
	"golang.org/x/crypto/sha3"
)

// TagSize is the length of a pattern tag in bytes.
const TagSize = 16

var tagFunction = []byte("sponge/transcript/tag")

// Tag derives the SAFE tag for pattern p under domain separator ds.
// p is normalized first, so declared patterns with the same normal form
// share a tag. Each word is encoded as one kind byte and a big-endian
// uint32 length, followed by ds, and hashed with cSHAKE128.
func Tag(p sponge.Pattern, ds uint32) [TagSize]byte {
	p = sponge.Normalize(p)
	enc := make([]byte, 0, 5*len(p)+4)
	for _, w := range p {
		enc = append(enc, byte(w.Kind))
		enc = binary.BigEndian.AppendUint32(enc, w.Len)
	}
	enc = binary.BigEndian.AppendUint32(enc, ds)

	var tag [TagSize]byte
	h := sha3.NewCShake128(tagFunction, nil)
	h.Write(enc)
	h.Read(tag[:])
	return tag
}
