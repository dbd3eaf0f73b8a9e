// Package bloodtype computes blood-type inheritance probabilities and donor
// compatibility for the Blud calculator.
//
// # Overview
//
// The engine is a pure function of two parental blood types. Each parent's
// ABO phenotype and Rh sign is expanded into the alleles that parent could
// carry, every mother-allele × father-allele pairing is weighted equally,
// and the resulting child phenotypes are accumulated into a distribution
// over the eight canonical blood types.
//
// # Genotype Model
//
// ABO phenotypes map to allele pairs:
//
//	A  → {A, O}
//	B  → {B, O}
//	AB → {A, B}
//	O  → {O, O}
//
// Rh signs map to allele sets, with "-" treated as homozygous recessive:
//
//	+ → {+, -}
//	- → {-}
//
// # Usage Example
//
//	mother, err := bloodtype.Parse("AB+")
//	if err != nil {
//		log.Fatal(err)
//	}
//	father, _ := bloodtype.Parse("O-")
//
//	dist, err := bloodtype.Compute(mother, father)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range dist.Entries() {
//		fmt.Printf("%s: %.2f%%\n", e.Type, e.Probability)
//	}
//
// # Donation Compatibility
//
// The donor → recipient table is static data, not derived from the genotype
// model. O- is the universal donor and AB+ the universal recipient.
//
//	recipients, _ := bloodtype.CompatibleRecipients(bloodtype.ONeg)
//	// [A+ A- B+ B- AB+ AB- O+ O-]
//
// All tables are read-only package data; accessors return copies so callers
// can never mutate them.
package bloodtype
