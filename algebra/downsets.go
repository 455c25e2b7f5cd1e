package algebra

import "github.com/kst-dev/kst/internal/kutil"

// downsetClosure is the closure operator whose closed sets are exactly the
// downsets of the surmise relation: cl(X) = X ∪ {p : p ≼ q for some q ∈ X}.
// prereq[q] already holds {p : p ≼ q} (reflexive), so cl(X) is simply the
// union of prereq[q] over q ∈ X.
type downsetClosure struct {
	n      int
	prereq []kutil.Bitset // prereq[q] = {p : p ≼ q}, reflexive
}

func newDownsetClosure(sr *SurmiseRelation) *downsetClosure {
	n := sr.dom.Len()
	prereq := make([]kutil.Bitset, n)
	for q := 0; q < n; q++ {
		prereq[q] = kutil.NewBitset(n)
	}
	for p := 0; p < n; p++ {
		for _, q := range sr.reach[p].Bits() {
			prereq[q] = prereq[q].Set(p)
		}
	}
	return &downsetClosure{n: n, prereq: prereq}
}

func (c *downsetClosure) closure(x kutil.Bitset) kutil.Bitset {
	out := kutil.NewBitset(c.n)
	for _, q := range x.Bits() {
		out = kutil.Union(out, c.prereq[q])
	}
	return out
}

// AllDownsets enumerates every downset of sr exactly once, via the
// NextClosure algorithm (Ganter): starting at the bottom closed set cl(∅),
// repeatedly compute the lectically-next closed set until none remains.
// Every closed set of downsetClosure is, by construction, a downset; the
// family always contains ∅ (cl(∅)) and the full domain Q (closure of Q is Q
// itself, the top element), matching spec §4.1's required properties. maxSets
// caps output (0 = unbounded) so callers can bound the worst-case O(2^|Q|)
// blow-up on wide antichains.
func AllDownsets(sr *SurmiseRelation, maxSets int) []kutil.Bitset {
	n := sr.dom.Len()
	cl := newDownsetClosure(sr)

	A := cl.closure(kutil.NewBitset(n))
	var out []kutil.Bitset
	for {
		out = append(out, A)
		if maxSets > 0 && len(out) >= maxSets {
			return out
		}
		next, ok := nextClosure(A, n, cl)
		if !ok {
			return out
		}
		A = next
	}
}

// nextClosure computes the lectically next closed set after A, treating bit
// n-1 as the largest element (so lectic order matches the usual NextClosure
// presentation with elements ordered e_1 < ... < e_n and i = n-1 the last).
func nextClosure(A kutil.Bitset, n int, cl *downsetClosure) (kutil.Bitset, bool) {
	for i := n - 1; i >= 0; i-- {
		if A.Test(i) {
			A = A.Clear(i)
			continue
		}
		B := cl.closure(A.Set(i))
		// B \ A must contain no element < i for A∪{i} to be the lectically
		// minimal generator of the next closed set.
		diff := kutil.Difference(B, A)
		minimal := true
		for _, j := range diff.Bits() {
			if j < i {
				minimal = false
				break
			}
		}
		if minimal {
			return B, true
		}
	}
	return kutil.Bitset{}, false
}

// IsDownsetBitset reports whether the bitset x is a downset of sr, checking
// in O(|x|·avg prereq) by testing each member's prerequisites are present.
func IsDownsetBitset(sr *SurmiseRelation, x kutil.Bitset) bool {
	cl := newDownsetClosure(sr)
	return kutil.Equal(cl.closure(x), x)
}
