// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import "code.hybscloud.com/atomix"

// Serial identifies a session lineage. Every handle derived from one
// [Start] call carries the same serial; each Start takes the next value.
type Serial = uint32

var serials atomix.Uint32

func nextSerial() Serial {
	return serials.Add(1)
}
