package main

import (
	"encoding/binary"
	"github.com/p7r0x7/bytemix"
	"github.com/p7r0x7/bytemix/internal/keystream"
	"runtime"
	"sync"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints, randSize, flips = 5e4, 1024, 2048

var threads = runtime.NumCPU()

type job struct {
	dex uint32
	msg []byte
}

// sumAll digests count messages produced by gen across a pool of threads workers; gen is only ever
// called from the feeding goroutine, so it need not be safe for concurrent use.
func sumAll(mode bytemix.Mode, count uint32, gen func(i uint32) []byte) []bytemix.Digest {
	digests, to, summing := make([]bytemix.Digest, count), make(chan job, threads), sync.WaitGroup{}
	summing.Add(threads)
	for i := threads; i > 0; i-- {
		go func() {
			for j := range to {
				digests[j.dex], _ = bytemix.SumMode(mode, j.msg)
			}
			summing.Done()
		}()
	}
	for i := uint32(0); i < count; i++ {
		to <- job{i, gen(i)}
	}
	close(to)
	summing.Wait()
	return digests
}

func integerDigests(mode bytemix.Mode) []bytemix.Digest {
	return sumAll(mode, ints, func(i uint32) []byte {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	})
}

func randomDigests(mode bytemix.Mode) []bytemix.Digest {
	r := keystream.New(uint64(mode) + 1)
	return sumAll(mode, ints, func(uint32) []byte {
		b := make([]byte, randSize)
		_, _ = r.Read(b)
		return b
	})
}

// meanBias returns how far, on average, each output bit strays from being set in exactly half of
// digests, as a percentage of that half.
func meanBias(digests []bytemix.Digest) float64 {
	if len(digests) == 0 {
		return 0
	}
	var tally [bytemix.Size * 8]int
	for _, d := range digests {
		for i := range tally {
			tally[i] += int(d[i>>3] >> (7 - i&7) & 1)
		}
	}
	half, total := float64(len(digests))/2, 0.0
	for _, v := range tally {
		dev := float64(v) - half
		if dev < 0 {
			dev = -dev
		}
		total += dev
	}
	return total / float64(len(tally)) / half * 100
}

// meanAvalanche flips one random bit of one random message at a time and averages the number of
// digest bits that change in response.
func meanAvalanche(mode bytemix.Mode) float64 {
	r, total := keystream.New(^uint64(mode)), 0
	msg, pick := make([]byte, randSize), make([]byte, 4)
	for i := 0; i < flips; i++ {
		_, _ = r.Read(msg)
		_, _ = r.Read(pick)
		bit := binary.LittleEndian.Uint32(pick) % (randSize * 8)

		before, _ := bytemix.SumMode(mode, msg)
		msg[bit>>3] ^= 1 << (bit & 7)
		after, _ := bytemix.SumMode(mode, msg)
		total += before.Distance(after)
	}
	return float64(total) / flips
}
