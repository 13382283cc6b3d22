/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package transpositiontable implements a lockless, bucketed transposition
// table for a chess search: entries are addressed by
// (hash XOR baseHash) & mask, probed linearly across a small bucket, and
// verified without locks by storing key XOR data and comparing key XOR data
// against the sought hash on read -- a write torn by a concurrent resize or
// a torn 64-bit store never produces a false hit, it just misses.
//
// The Table type is not safe for concurrent writers; a single owner
// (normally one search thread) reads and writes it, as in the C engine
// this design is based on.
package transpositiontable

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"floyd/logging"
	"floyd/types"
	"floyd/util"
)

var out = message.NewPrinter(language.English)
var log = logging.GetTtLog()

// bucketLen is the number of slots linearly probed per addressed bucket.
const bucketLen = 4

// Bit widths of the fields packed into slot.data.
const (
	moveBits  = 16
	scoreBits = 16
	depthBits = 7
	dateBits  = 6

	moveShift  = 0
	scoreShift = moveShift + moveBits
	depthShift = scoreShift + scoreBits
	dateShift  = depthShift + depthBits

	lowerBoundBit  = dateShift + dateBits
	upperBoundBit  = lowerBoundBit + 1
	hardBoundBit   = upperBoundBit + 1
	winLossBit     = hardBoundBit + 1

	scoreBias = 1 << (scoreBits - 1)
	maxDate   = 1 << dateBits
)

// MaxEval bounds ordinary evaluation scores; any score whose absolute value
// exceeds it is a mate-in-N or a DTZ value and needs ply rebasing on
// store/load (see ttWrite step 3 in the design notes this mirrors).
const MaxEval = 30000

// slot is one lockless-XOR-verified transposition table entry. 16 bytes:
// asserted once at package init via unsafe.Sizeof.
type slot struct {
	key  uint64
	data uint64
}

func init() {
	if unsafe.Sizeof(slot{}) != 16 {
		panic("transpositiontable: slot size must be 16 bytes")
	}
}

// Bound identifies whether a stored score is exact, or merely a bound.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is the decoded, caller-facing view of a slot.
type Entry struct {
	Found      bool
	Move       types.Move
	Score      int16
	Depth      int8
	Bound      Bound
	IsHardBound bool
}

func packData(move types.Move, score int16, depth int8, date uint8, isLower, isUpper, isHard, isWinLoss bool) uint64 {
	d := uint64(move)&(1<<moveBits-1)<<moveShift |
		uint64(uint16(int32(score)+scoreBias))<<scoreShift |
		uint64(uint8(depth))&(1<<depthBits-1)<<depthShift |
		uint64(date)&(1<<dateBits-1)<<dateShift
	if isLower {
		d |= 1 << lowerBoundBit
	}
	if isUpper {
		d |= 1 << upperBoundBit
	}
	if isHard {
		d |= 1 << hardBoundBit
	}
	if isWinLoss {
		d |= 1 << winLossBit
	}
	return d
}

func unpackMove(data uint64) types.Move {
	return types.Move(data >> moveShift & (1<<moveBits - 1))
}

func unpackScore(data uint64) int16 {
	return int16(int32(data>>scoreShift&(1<<scoreBits-1)) - scoreBias)
}

func unpackDepth(data uint64) int8 {
	return int8(data >> depthShift & (1<<depthBits - 1))
}

func unpackDate(data uint64) uint8 {
	return uint8(data >> dateShift & (1<<dateBits - 1))
}

func unpackBound(data uint64) Bound {
	lower := data&(1<<lowerBoundBit) != 0
	upper := data&(1<<upperBoundBit) != 0
	switch {
	case lower && upper:
		return BoundExact // preserve-older rule never sets both; exact scores use neither, see ttWrite
	case lower:
		return BoundLower
	case upper:
		return BoundUpper
	default:
		return BoundExact
	}
}

func unpackIsHardBound(data uint64) bool {
	return data&(1<<hardBoundBit) != 0
}

func unpackIsWinLoss(data uint64) bool {
	return data&(1<<winLossBit) != 0
}

// Table is the transposition table itself: a flat slice of slots addressed
// by bucket, plus the rolling baseHash used for instant "clear".
type Table struct {
	slots    []slot
	mask     uint64 // number of buckets - 1
	baseHash uint64
	now      uint8 // current search generation, advances via Touch
	sizeBytes uint64
}

// bucketCount returns the number of addressable buckets for a requested byte
// budget: the largest power of two not exceeding bytes/bucketLen/16, with a
// floor of one bucket.
func bucketCount(bytes uint64) uint64 {
	slotsWanted := bytes / 16
	bucketsWanted := slotsWanted / bucketLen
	if bucketsWanted == 0 {
		return 1
	}
	return uint64(1) << uint(math.Floor(math.Log2(float64(bucketsWanted))))
}

// NewTable allocates a table sized to the largest power-of-two bucket count
// fitting within sizeBytes. Reallocation retries at successively halved
// sizes if the allocator fails; failure at size zero aborts, matching the
// design this mirrors, though Go's allocator failure surfaces as an OOM
// panic rather than a recoverable error.
func NewTable(sizeBytes uint64) *Table {
	t := &Table{}
	t.SetSize(sizeBytes)
	return t
}

// SetSize grows or shrinks the table to the largest power-of-two bucketed
// size not exceeding sizeBytes. When shrinking, each target bucket keeps,
// per slot index, the surviving source slot with the higher priority among
// all source buckets that alias to it (see prio in ttWrite). When growing,
// newly created buckets are seeded by replicating the modular image of the
// smaller table.
func (t *Table) SetSize(sizeBytes uint64) {
	buckets := bucketCount(sizeBytes)
	for buckets > 0 {
		newSlots, ok := tryAlloc(buckets)
		if ok {
			t.migrate(newSlots, buckets)
			return
		}
		buckets /= 2
	}
	panic("transpositiontable: cannot allocate even the smallest table")
}

func tryAlloc(buckets uint64) (slots []slot, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return make([]slot, buckets*bucketLen), true
}

func (t *Table) migrate(newSlots []slot, newBuckets uint64) {
	oldSlots := t.slots
	oldBuckets := t.mask + 1

	switch {
	case len(oldSlots) == 0:
		// nothing to carry over

	case newBuckets <= oldBuckets:
		// Shrinking: each new bucket aliases every old bucket congruent to
		// it mod newBuckets. Per slot index, keep the highest-priority
		// survivor among all aliasing sources.
		for b := uint64(0); b < newBuckets; b++ {
			for i := uint64(0); i < bucketLen; i++ {
				var best *slot
				var bestPrio int64
				for src := b; src < oldBuckets; src += newBuckets {
					cand := &oldSlots[src*bucketLen+i]
					if cand.key == 0 && cand.data == 0 {
						continue
					}
					p := prioOf(cand.data, t.now)
					if best == nil || p > bestPrio {
						best = cand
						bestPrio = p
					}
				}
				if best != nil {
					newSlots[b*bucketLen+i] = *best
				}
			}
		}

	default:
		// Growing: each new bucket replicates the modular image of the
		// smaller table, i.e. old bucket (b mod oldBuckets) verbatim.
		for b := uint64(0); b < newBuckets; b++ {
			src := b % oldBuckets
			copy(newSlots[b*bucketLen:b*bucketLen+bucketLen], oldSlots[src*bucketLen:src*bucketLen+bucketLen])
		}
	}

	t.slots = newSlots
	t.mask = newBuckets - 1
	t.sizeBytes = newBuckets * bucketLen * 16
	log.Info(out.Sprintf("TT size set to %d MB, %d buckets x %d slots", t.sizeBytes/(1024*1024), newBuckets, bucketLen))
}

func prioOf(data uint64, now uint8) int64 {
	date := unpackDate(data)
	age := int64(now-date) % maxDate
	depth := int64(unpackDepth(data))
	return -(age << depthBits) + depth
}

// Touch advances the table's generation counter, used to compute entry age
// for replacement priority. Call once per new search.
func (t *Table) Touch() {
	t.now = (t.now + 1) % maxDate
}

// ClearFast invalidates every existing entry without touching memory, by
// rolling baseHash through one xorshift64* step. All prior bucket addresses
// become wrong, so every slot reads as a miss until naturally overwritten.
func (t *Table) ClearFast() {
	t.baseHash = ^xorshift64star(^t.baseHash)
}

func xorshift64star(x uint64) uint64 {
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	return x * 0x2545F4914F6CDD1D
}

func (t *Table) bucket(hash uint64) uint64 {
	return (hash ^ t.baseHash) & t.mask
}

// SizeBytes returns the table's actual byte footprint (a power-of-two
// multiple of bucketLen*16).
func (t *Table) SizeBytes() uint64 {
	return t.sizeBytes
}

// Read probes hash and returns the matching entry, rebasing a mate/DTZ
// score from its stored root-relative form back to ply-from-here. Found is
// false on a miss (including one produced by a torn or mismatched XOR
// check), in which case the other fields are zero.
func (t *Table) Read(hash uint64, ply int) Entry {
	base := t.bucket(hash) * bucketLen
	for i := uint64(0); i < bucketLen; i++ {
		s := &t.slots[base+i]
		if s.key^s.data == hash && !(s.key == 0 && s.data == 0) {
			data := s.data
			score := unpackScore(data)
			if unpackIsWinLoss(data) {
				score = rebaseFromRoot(score, ply)
			}
			return Entry{
				Found:       true,
				Move:        unpackMove(data),
				Score:       score,
				Depth:       unpackDepth(data),
				Bound:       unpackBound(data),
				IsHardBound: unpackIsHardBound(data),
			}
		}
	}
	return Entry{}
}

func rebaseFromRoot(score int16, ply int) int16 {
	if int(score) > MaxEval {
		return score - int16(ply)
	}
	if int(score) < -MaxEval {
		return score + int16(ply)
	}
	return score
}

func rebaseToRoot(score int16, ply int) int16 {
	if int(score) > MaxEval {
		return score + int16(ply)
	}
	if int(score) < -MaxEval {
		return score - int16(ply)
	}
	return score
}

// Write stores (depth, score, move) for hash under the alpha/beta window
// that produced it, applying the preserve-older rule, mate/DTZ rebase, and
// priority-based slot replacement described in ttWrite. At halfmoveClock == 0
// (an irreversible-move boundary) no score beyond ±MaxEval is stored: Write
// does not tell mate scores from DTZ scores, so both are refused there.
func (t *Table) Write(hash uint64, depth int8, score, alpha, beta int16, move types.Move, ply int, halfmoveClock int) {
	if len(t.slots) == 0 {
		return
	}
	base := t.bucket(hash) * bucketLen

	isLower := score >= beta
	isUpper := score <= alpha
	isHard := false
	isWinLoss := int(score) > MaxEval || int(score) < -MaxEval

	if isWinLoss {
		if halfmoveClock == 0 {
			return
		}
		score = rebaseToRoot(score, ply)
		if int(score) > MaxEval {
			isHard = isLower
		} else {
			isHard = isUpper
		}
	}

	// Preserve-older rule: an existing hard bound that the new score would
	// only weaken is left untouched.
	for i := uint64(0); i < bucketLen; i++ {
		s := &t.slots[base+i]
		if s.key^s.data == hash && !(s.key == 0 && s.data == 0) {
			old := s.data
			if unpackIsHardBound(old) {
				oldScore := unpackScore(old)
				oldIsLower := old&(1<<lowerBoundBit) != 0
				oldIsUpper := old&(1<<upperBoundBit) != 0
				if (oldIsLower && score <= oldScore) || (oldIsUpper && score >= oldScore) {
					return
				}
			}
			data := packData(move, score, depth, t.now, isLower, isUpper, isHard, isWinLoss)
			s.data = data
			s.key = hash ^ data
			return
		}
	}

	// No existing entry for hash in this bucket: pick the slot with the
	// lowest priority (oldest, shallowest) to overwrite. Ties keep the
	// lowest index.
	var victim uint64
	var victimPrio int64 = math.MaxInt64
	for i := uint64(0); i < bucketLen; i++ {
		s := &t.slots[base+i]
		if s.key == 0 && s.data == 0 {
			victim = i
			victimPrio = math.MinInt64
			break
		}
		p := prioOf(s.data, t.now)
		if p < victimPrio {
			victim = i
			victimPrio = p
		}
	}
	data := packData(move, score, depth, t.now, isLower, isUpper, isHard, isWinLoss)
	t.slots[base+victim].data = data
	t.slots[base+victim].key = hash ^ data
}

// CalcLoad samples up to 10000 slots and returns the fraction currently
// stamped with the table's generation (an estimate of how full the current
// search has made the table, distinct from overall occupancy).
func (t *Table) CalcLoad() float64 {
	if len(t.slots) == 0 {
		return 0
	}
	limit := util.Min(len(t.slots), 10000)
	hits := 0
	for i := 0; i < limit; i++ {
		s := &t.slots[i]
		if s.key == 0 && s.data == 0 {
			continue
		}
		if unpackDate(s.data) == t.now {
			hits++
		}
	}
	return float64(hits) / float64(limit)
}
