package metrics

import "math"

// AggregateComponents blends per-component metric vectors into one
// whole-graph record. Each component contributes size^exponent divided by
// the sum of those powers; at exponent 0 this is a plain mean, and large
// exponents approach "value of the largest component".
//
// A nil component Fiedler value drops out of the numerator but its
// component keeps its share of the denominator; the aggregate Fiedler is
// nil only when every component's is. The community count is the total
// across components, not a blend. Size entropy is computed over the
// component-size distribution, not weighted.
func AggregateComponents(comps []*Component, exponent float64) *Aggregate {
	agg := &Aggregate{}
	if len(comps) == 0 {
		return agg
	}

	total := 0.0
	for _, c := range comps {
		total += math.Pow(float64(c.Size), exponent)
	}

	fiedler := 0.0
	fiedlerDefined := false
	for _, c := range comps {
		w := math.Pow(float64(c.Size), exponent) / total
		if c.Fiedler != nil {
			fiedler += w * *c.Fiedler
			fiedlerDefined = true
		}
		agg.OutDiameter += w * float64(c.OutDiameter)
		agg.InDiameter += w * float64(c.InDiameter)
		agg.InDegreeAvg += w * c.InDegreeAvg
		agg.InDegreeVar += w * c.InDegreeVar
		agg.OutDegreeAvg += w * c.OutDegreeAvg
		agg.OutDegreeVar += w * c.OutDegreeVar
		agg.Modularity += w * c.Modularity
		agg.Clustering += w * c.Clustering
		agg.CommunityCount += c.CommunityCount
	}
	if fiedlerDefined {
		agg.Fiedler = &fiedler
	}

	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = c.Size
	}
	agg.SizeEntropy = SizeEntropy(sizes)

	return agg
}

// SizeEntropy returns Σ -p·ln(p) over component size fractions
// p = size/total. A single component or an empty list yields 0.
func SizeEntropy(sizes []int) float64 {
	total := 0
	for _, s := range sizes {
		total += s
	}
	if total == 0 {
		return 0.0
	}

	entropy := 0.0
	for _, s := range sizes {
		if s == 0 {
			continue
		}
		p := float64(s) / float64(total)
		entropy -= p * math.Log(p)
	}

	return entropy
}
