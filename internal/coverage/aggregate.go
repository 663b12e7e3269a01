package coverage

import "math"

// Aggregate recomputes category totals from a filtered file set.
//
// The reduction is commutative and associative, so partial sums over any
// partition of files combine to the same result, and input ordering never
// affects the totals. An empty file set yields zeroed totals with every
// percentage at 0.
func Aggregate(files []File) Summary {
	var totals Summary
	totals.Branches.NotCovered = new(int64)
	totals.Regions.NotCovered = new(int64)

	for i := range files {
		s := &files[i].Summary
		addCounts(&totals.Branches, s.Branches)
		addCounts(&totals.Functions, s.Functions)
		addCounts(&totals.Instantiations, s.Instantiations)
		addCounts(&totals.Lines, s.Lines)
		addCounts(&totals.Regions, s.Regions)
	}

	totals.Branches.Percent = percent(totals.Branches.Covered, totals.Branches.Count)
	totals.Functions.Percent = percent(totals.Functions.Covered, totals.Functions.Count)
	totals.Instantiations.Percent = percent(totals.Instantiations.Covered, totals.Instantiations.Count)
	totals.Lines.Percent = percent(totals.Lines.Covered, totals.Lines.Count)
	totals.Regions.Percent = percent(totals.Regions.Covered, totals.Regions.Count)

	return totals
}

// addCounts folds src into dst. NotCovered is only accumulated when the
// destination category tracks it.
func addCounts(dst *Counts, src Counts) {
	dst.Count += src.Count
	dst.Covered += src.Covered
	if dst.NotCovered != nil && src.NotCovered != nil {
		*dst.NotCovered += *src.NotCovered
	}
}

// percent derives the covered ratio for a category. A zero denominator or a
// non-finite result collapses to 0 instead of propagating NaN into the
// export; degenerate arithmetic is a policy here, not an error.
func percent(covered, count int64) float64 {
	if count == 0 {
		return 0
	}
	p := 100 * float64(covered) / float64(count)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}
