package domain

const RelationOther = "Other"

var (
	Relations     = []string{"Father", "Mother", "Spouse", "Son", "Daughter", "Brother", "Sister", RelationOther}
	BodyMarkTypes = []string{"Tattoo", "Scar", "Birthmark", "Piercing", "Other"}
	DeviceTypes   = []string{"Phone", "Laptop", "Desktop", "Pager"}
	CallTypes     = []string{"Incoming", "Outgoing", "Missed"}
)

// DeviceTypePhone is the only device type that may carry an IMEI.
const DeviceTypePhone = "Phone"

// MinAge and MaxAge bound FamilyMember.Age.
const (
	MinAge = 0
	MaxAge = 150
)

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
