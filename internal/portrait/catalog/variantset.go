package catalog

import "sort"

// VariantSet is the set of variant numbers that exist for one index.
//
// Most indices are dense (variants 0..count-1); a few are sparse and list
// their variants explicitly because intermediate sprites were never drawn.
type VariantSet struct {
	count    int
	explicit []int
}

// Dense returns the set 0..count-1.
func Dense(count int) VariantSet {
	if count < 0 {
		count = 0
	}
	return VariantSet{count: count}
}

// Sparse returns an explicit set. Duplicates are dropped and the result is
// kept ascending.
func Sparse(variants ...int) VariantSet {
	seen := make(map[int]struct{}, len(variants))
	out := make([]int, 0, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return VariantSet{explicit: out}
}

// IsSparse reports whether the set was declared explicitly.
func (s VariantSet) IsSparse() bool {
	return s.explicit != nil
}

// Len returns the number of variants.
func (s VariantSet) Len() int {
	if s.explicit != nil {
		return len(s.explicit)
	}
	return s.count
}

// Variants expands the set in ascending order.
func (s VariantSet) Variants() []int {
	if s.explicit != nil {
		out := make([]int, len(s.explicit))
		copy(out, s.explicit)
		return out
	}
	out := make([]int, s.count)
	for i := range out {
		out[i] = i
	}
	return out
}

// Contains reports membership without expanding the set.
func (s VariantSet) Contains(variant int) bool {
	if variant < 0 {
		return false
	}
	if s.explicit == nil {
		return variant < s.count
	}
	i := sort.SearchInts(s.explicit, variant)
	return i < len(s.explicit) && s.explicit[i] == variant
}

// Without returns the variants of s for which exclude is false.
func (s VariantSet) Without(exclude func(variant int) bool) []int {
	all := s.Variants()
	if exclude == nil {
		return all
	}
	out := all[:0]
	for _, v := range all {
		if !exclude(v) {
			out = append(out, v)
		}
	}
	return out
}
