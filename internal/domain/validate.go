package domain

import (
	"fmt"
	"strings"
)

// Validate checks the rules that must hold before an aggregate is written.
// It returns nil or a *ValidationError naming every offending field.
func (a *PersonAggregate) Validate() error {
	ve := &ValidationError{}

	if strings.TrimSpace(a.Personal.FirstName) == "" {
		ve.Add("personal.firstName", "required")
	}
	if strings.TrimSpace(a.Personal.LastName) == "" {
		ve.Add("personal.lastName", "required")
	}
	if strings.TrimSpace(a.Personal.NIC) == "" {
		ve.Add("personal.nic", "required")
	}

	if a.Bank != nil {
		b := a.Bank.Balance
		switch {
		case b.IsNegative():
			ve.Add("bank.balance", "must not be negative")
		case !b.Equal(b.Round(BalanceScale)):
			ve.Add("bank.balance", fmt.Sprintf("at most %d decimal places", BalanceScale))
		case b.GreaterThanOrEqual(maxBalance):
			ve.Add("bank.balance", fmt.Sprintf("at most %d integer digits", BalanceIntDigits))
		}
	}

	for i, f := range a.Family {
		p := fmt.Sprintf("family[%d]", i)
		if !oneOf(f.Relation, Relations) {
			ve.Add(p+".relation", "unknown relation")
		}
		if f.Relation == RelationOther && strings.TrimSpace(f.CustomRelation) == "" {
			ve.Add(p+".customRelation", "required when relation is Other")
		}
		if f.Age != nil && (*f.Age < MinAge || *f.Age > MaxAge) {
			ve.Add(p+".age", fmt.Sprintf("must be between %d and %d", MinAge, MaxAge))
		}
	}
	for i, m := range a.BodyMarks {
		p := fmt.Sprintf("bodyMarks[%d]", i)
		if !oneOf(m.Type, BodyMarkTypes) {
			ve.Add(p+".type", "unknown body mark type")
		}
		if len(m.Picture) > MaxPictureBytes {
			ve.Add(p+".picture", "too large")
		}
	}
	for i, d := range a.UsedDevices {
		p := fmt.Sprintf("usedDevices[%d]", i)
		if !oneOf(d.DeviceType, DeviceTypes) {
			ve.Add(p+".deviceType", "unknown device type")
		}
		if d.IMEI != "" && d.DeviceType != DeviceTypePhone {
			ve.Add(p+".imei", "only phones carry an IMEI")
		}
	}
	for i, c := range a.CallHistory {
		p := fmt.Sprintf("callHistory[%d]", i)
		if !oneOf(c.CallType, CallTypes) {
			ve.Add(p+".callType", "unknown call type")
		}
		if c.Timestamp.IsZero() {
			ve.Add(p+".timestamp", "required")
		}
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
