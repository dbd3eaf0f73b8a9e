package bloodtype

import (
	"fmt"
	"strings"
)

// Group is an ABO blood group.
type Group string

const (
	GroupA  Group = "A"
	GroupB  Group = "B"
	GroupAB Group = "AB"
	GroupO  Group = "O"
)

// RhFactor is the Rhesus sign of a blood type.
type RhFactor string

const (
	// RhPositive indicates the Rh antigen is present
	RhPositive RhFactor = "+"

	// RhNegative indicates the Rh antigen is absent
	RhNegative RhFactor = "-"
)

// BloodType is one of the eight canonical labels, e.g. "AB-".
// Values obtained from Parse are always valid; use Validate on values built
// any other way.
type BloodType string

const (
	APos  BloodType = "A+"
	ANeg  BloodType = "A-"
	BPos  BloodType = "B+"
	BNeg  BloodType = "B-"
	ABPos BloodType = "AB+"
	ABNeg BloodType = "AB-"
	OPos  BloodType = "O+"
	ONeg  BloodType = "O-"
)

// canonical holds the eight blood types in display order.
var canonical = [...]BloodType{APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg}

var (
	groups    = [...]Group{GroupA, GroupB, GroupAB, GroupO}
	rhFactors = [...]RhFactor{RhPositive, RhNegative}
)

// All returns the eight canonical blood types in display order.
func All() []BloodType {
	out := make([]BloodType, len(canonical))
	copy(out, canonical[:])
	return out
}

// Groups returns the four ABO groups in display order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups[:])
	return out
}

// New joins a group and Rh sign into a blood type label.
// The result is not validated.
func New(g Group, rh RhFactor) BloodType {
	return BloodType(string(g) + string(rh))
}

// Split separates a label into its group substring and trailing sign
// character. No validation is performed: an unknown label yields parts that
// are not valid members of their enums, and the empty string yields two
// empty parts.
func Split(label string) (Group, RhFactor) {
	if label == "" {
		return "", ""
	}
	return Group(label[:len(label)-1]), RhFactor(label[len(label)-1:])
}

// Parse validates a user-supplied label and returns the matching BloodType.
// Surrounding whitespace is ignored, group letters are case-insensitive and
// the Unicode minus sign (U+2212) is accepted in place of "-".
func Parse(label string) (BloodType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, "−", "-")

	bt := BloodType(normalized)
	if err := bt.Validate(); err != nil {
		return "", &InvalidBloodTypeError{Value: label}
	}
	return bt, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for tests and package-level tables.
func MustParse(label string) BloodType {
	bt, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return bt
}

// Validate checks if the BloodType is one of the eight canonical labels.
func (bt BloodType) Validate() error {
	for _, c := range canonical {
		if bt == c {
			return nil
		}
	}
	return &InvalidBloodTypeError{Value: string(bt)}
}

// Group returns the ABO group of the blood type.
func (bt BloodType) Group() Group {
	g, _ := Split(string(bt))
	return g
}

// Rh returns the Rh sign of the blood type.
func (bt BloodType) Rh() RhFactor {
	_, rh := Split(string(bt))
	return rh
}

// String implements fmt.Stringer.
func (bt BloodType) String() string {
	return string(bt)
}

// index returns the position of bt in display order, or -1.
func (bt BloodType) index() int {
	for i, c := range canonical {
		if bt == c {
			return i
		}
	}
	return -1
}

// Validate checks if the Group is a valid enum value.
func (g Group) Validate() error {
	switch g {
	case GroupA, GroupB, GroupAB, GroupO:
		return nil
	default:
		return fmt.Errorf("unknown ABO group: %q", g)
	}
}

// Validate checks if the RhFactor is a valid enum value.
func (rh RhFactor) Validate() error {
	switch rh {
	case RhPositive, RhNegative:
		return nil
	default:
		return fmt.Errorf("unknown Rh factor: %q", rh)
	}
}

// labelList renders the canonical labels for error messages.
func labelList() string {
	labels := make([]string, len(canonical))
	for i, c := range canonical {
		labels[i] = string(c)
	}
	return strings.Join(labels, ", ")
}
