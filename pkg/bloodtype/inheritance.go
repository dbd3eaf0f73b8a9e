package bloodtype

import "fmt"

// aboAlleles maps each ABO phenotype to the two alleles a parent with that
// phenotype could pass on. O is homozygous, so it contributes O twice.
var aboAlleles = map[Group][2]Group{
	GroupA:  {GroupA, GroupO},
	GroupB:  {GroupB, GroupO},
	GroupAB: {GroupA, GroupB},
	GroupO:  {GroupO, GroupO},
}

// rhAlleles maps each Rh phenotype to the alleles a parent could pass on.
// A negative parent is assumed homozygous recessive.
var rhAlleles = map[RhFactor][]RhFactor{
	RhPositive: {RhPositive, RhNegative},
	RhNegative: {RhNegative},
}

// Outcome pairs two parents with the distribution of their child's type.
type Outcome struct {
	Mother       BloodType    `json:"mother"`
	Father       BloodType    `json:"father"`
	Distribution Distribution `json:"distribution"`
}

// Compute returns the probability distribution of the child's blood type
// for the given parents. Both inputs are validated before any lookup; an
// invalid label returns an *InvalidBloodTypeError naming the parent.
func Compute(mother, father BloodType) (Distribution, error) {
	if err := validateField("mother", mother); err != nil {
		return nil, err
	}
	if err := validateField("father", father); err != nil {
		return nil, err
	}

	motherGroup, motherRh := Split(string(mother))
	fatherGroup, fatherRh := Split(string(father))

	groupDist, err := ABOProbabilities(motherGroup, fatherGroup)
	if err != nil {
		return nil, err
	}

	rhDist, err := RhProbabilities(motherRh, fatherRh)
	if err != nil {
		return nil, err
	}

	return Combine(groupDist, rhDist), nil
}

// ComputeAll returns the outcome for every ordered pair of parents, mother
// varying slowest, both in display order.
func ComputeAll() []Outcome {
	outcomes := make([]Outcome, 0, len(canonical)*len(canonical))
	for _, mother := range canonical {
		for _, father := range canonical {
			// Canonical inputs cannot fail validation
			dist, _ := Compute(mother, father)
			outcomes = append(outcomes, Outcome{Mother: mother, Father: father, Distribution: dist})
		}
	}
	return outcomes
}

// RhProbabilities returns the probability (as a fraction in [0, 1]) of each
// Rh sign for the child. Every pairing of a mother allele with a father
// allele is equally likely; the child is positive if either allele is.
// The fractions always sum to 1.
func RhProbabilities(motherRh, fatherRh RhFactor) (map[RhFactor]float64, error) {
	motherAlleles, ok := rhAlleles[motherRh]
	if !ok {
		return nil, fmt.Errorf("mother: %w", motherRh.Validate())
	}
	fatherAlleles, ok := rhAlleles[fatherRh]
	if !ok {
		return nil, fmt.Errorf("father: %w", fatherRh.Validate())
	}

	weight := 1.0 / float64(len(motherAlleles)*len(fatherAlleles))

	probabilities := map[RhFactor]float64{
		RhPositive: 0,
		RhNegative: 0,
	}
	for _, m := range motherAlleles {
		for _, f := range fatherAlleles {
			probabilities[childRh(m, f)] += weight
		}
	}

	return probabilities, nil
}

// ABOProbabilities returns the percentage (0-100) of each ABO group for the
// child. The four allele pairings are equally weighted and the buckets are
// renormalized so they sum to exactly 100.
func ABOProbabilities(motherGroup, fatherGroup Group) (map[Group]float64, error) {
	motherAlleles, ok := aboAlleles[motherGroup]
	if !ok {
		return nil, fmt.Errorf("mother: %w", motherGroup.Validate())
	}
	fatherAlleles, ok := aboAlleles[fatherGroup]
	if !ok {
		return nil, fmt.Errorf("father: %w", fatherGroup.Validate())
	}

	weight := 1.0 / float64(len(motherAlleles)*len(fatherAlleles))

	probabilities := map[Group]float64{
		GroupA:  0,
		GroupB:  0,
		GroupAB: 0,
		GroupO:  0,
	}
	for _, m := range motherAlleles {
		for _, f := range fatherAlleles {
			probabilities[childGroup(m, f)] += weight * 100
		}
	}

	// Summed in display order so repeated calls are bit-identical
	var total float64
	for _, g := range groups {
		total += probabilities[g]
	}
	for g, p := range probabilities {
		probabilities[g] = p / total * 100
	}

	return probabilities, nil
}

// Combine joins an ABO distribution (percentages) with an Rh distribution
// (fractions) into the eight-way child distribution, normalized to sum to
// 100. Missing buckets count as zero. If every joint probability is zero
// the all-zero distribution is returned.
func Combine(groupDist map[Group]float64, rhDist map[RhFactor]float64) Distribution {
	dist := make(Distribution, len(canonical))

	var total float64
	for _, g := range groups {
		for _, rh := range rhFactors {
			p := groupDist[g] / 100 * rhDist[rh]
			dist[New(g, rh)] = p
			total += p
		}
	}

	if total == 0 {
		return dist
	}
	for bt, p := range dist {
		dist[bt] = p / total * 100
	}

	return dist
}

// childGroup applies ABO dominance to one allele from each parent.
func childGroup(m, f Group) Group {
	switch {
	case (m == GroupA && f == GroupB) || (m == GroupB && f == GroupA):
		return GroupAB
	case m == f:
		return m
	case m == GroupO:
		return f
	default:
		return m
	}
}

// childRh applies Rh dominance: positive wins.
func childRh(m, f RhFactor) RhFactor {
	if m == RhPositive || f == RhPositive {
		return RhPositive
	}
	return RhNegative
}
