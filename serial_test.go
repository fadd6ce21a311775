// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/sponge"
)

func TestSerialMonotonic(t *testing.T) {
	s1, _, _ := mustStart(t, "")
	s2, _, _ := mustStart(t, "")
	s3, _, _ := mustStart(t, "")
	defer s1.Dispose()
	defer s2.Dispose()
	defer s3.Dispose()

	if s1.Serial() >= s2.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", s1.Serial(), s2.Serial())
	}
	if s2.Serial() >= s3.Serial() {
		t.Fatalf("serials not increasing: %d >= %d", s2.Serial(), s3.Serial())
	}
}

func TestSerialLineage(t *testing.T) {
	s, _, acc := mustStart(t, "A1 S1")
	first := s.Serial()
	s, acc, err := s.Absorb([]byte{1}, acc)
	if err != nil {
		t.Fatal(err)
	}
	s, _, err = s.Squeeze(make([]byte, 1), acc)
	if err != nil {
		t.Fatal(err)
	}
	if s.Serial() != first {
		t.Fatalf("lineage serial changed: %d != %d", s.Serial(), first)
	}
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
}

func TestSerialUniqueConcurrent(t *testing.T) {
	const n = 64
	serials := make([]sponge.Serial, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, _, _ := sponge.Start[byte, int](&basicSponge{}, nil, 0)
			serials[i] = s.Serial()
			s.Dispose()
		}()
	}
	wg.Wait()
	seen := make(map[sponge.Serial]bool, n)
	for _, s := range serials {
		if seen[s] {
			t.Fatalf("serial %d handed out twice", s)
		}
		seen[s] = true
	}
}
