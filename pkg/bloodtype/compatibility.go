package bloodtype

import "fmt"

// defaultRecipients is the donor → recipients table shown to users.
// It is reference data, not derived from the genotype model.
var defaultRecipients = map[BloodType][]BloodType{
	APos:  {APos, ABPos},
	ANeg:  {APos, ANeg, ABPos, ABNeg},
	BPos:  {BPos, ABPos},
	BNeg:  {BPos, BNeg, ABPos, ABNeg},
	ABPos: {ABPos},
	ABNeg: {ABPos, ABNeg},
	OPos:  {APos, BPos, ABPos, OPos},
	ONeg:  {APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg},
}

// CompatibilityTable is a read-only donor → recipients lookup.
type CompatibilityTable struct {
	recipients map[BloodType][]BloodType
}

var defaultTable = &CompatibilityTable{recipients: defaultRecipients}

// DefaultCompatibility returns the built-in compatibility table.
func DefaultCompatibility() *CompatibilityTable {
	return defaultTable
}

// CompatibleRecipients returns the blood types the donor can give to,
// according to the built-in table.
func CompatibleRecipients(donor BloodType) ([]BloodType, error) {
	return defaultTable.Recipients(donor)
}

// NewCompatibilityTable builds a table from raw labels, as read from a
// config file. Every canonical donor must be present, each recipient list
// must contain valid, unique labels and include the donor itself.
func NewCompatibilityTable(raw map[string][]string) (*CompatibilityTable, error) {
	recipients := make(map[BloodType][]BloodType, len(raw))

	for donorLabel, recipientLabels := range raw {
		donor, err := Parse(donorLabel)
		if err != nil {
			return nil, &InvalidBloodTypeError{Field: "donor", Value: donorLabel}
		}
		if _, dup := recipients[donor]; dup {
			return nil, fmt.Errorf("donor %s listed more than once", donor)
		}

		list := make([]BloodType, 0, len(recipientLabels))
		seen := make(map[BloodType]bool, len(recipientLabels))
		for _, label := range recipientLabels {
			recipient, err := Parse(label)
			if err != nil {
				return nil, fmt.Errorf("donor %s: %w", donor, &InvalidBloodTypeError{Field: "recipient", Value: label})
			}
			if seen[recipient] {
				return nil, fmt.Errorf("donor %s: duplicate recipient %s", donor, recipient)
			}
			seen[recipient] = true
			list = append(list, recipient)
		}

		if !seen[donor] {
			return nil, fmt.Errorf("donor %s must be able to donate to itself", donor)
		}
		recipients[donor] = list
	}

	for _, bt := range canonical {
		if _, ok := recipients[bt]; !ok {
			return nil, fmt.Errorf("missing compatibility entry for donor %s", bt)
		}
	}

	return &CompatibilityTable{recipients: recipients}, nil
}

// Recipients returns a copy of the ordered recipient list for donor.
func (t *CompatibilityTable) Recipients(donor BloodType) ([]BloodType, error) {
	if err := validateField("donor", donor); err != nil {
		return nil, err
	}
	list := t.recipients[donor]
	out := make([]BloodType, len(list))
	copy(out, list)
	return out, nil
}

// Donors returns, in display order, every donor whose recipient list
// contains recipient.
func (t *CompatibilityTable) Donors(recipient BloodType) ([]BloodType, error) {
	if err := validateField("recipient", recipient); err != nil {
		return nil, err
	}
	var donors []BloodType
	for _, donor := range canonical {
		if t.CanDonate(donor, recipient) {
			donors = append(donors, donor)
		}
	}
	return donors, nil
}

// CanDonate reports whether donor's blood can be given to recipient.
// Invalid labels are never compatible.
func (t *CompatibilityTable) CanDonate(donor, recipient BloodType) bool {
	for _, r := range t.recipients[donor] {
		if r == recipient {
			return true
		}
	}
	return false
}

// Raw returns the table as plain labels, suitable for writing to a config
// file. Lists keep their order.
func (t *CompatibilityTable) Raw() map[string][]string {
	raw := make(map[string][]string, len(t.recipients))
	for donor, list := range t.recipients {
		labels := make([]string, len(list))
		for i, r := range list {
			labels[i] = string(r)
		}
		raw[string(donor)] = labels
	}
	return raw
}
