package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxPictureBytes caps a body-mark picture.
const MaxPictureBytes = 1 << 20

// BalanceScale and BalanceIntDigits match the NUMERIC(15,2) balance column.
const (
	BalanceScale     = 2
	BalanceIntDigits = 13
)

var maxBalance = decimal.New(1, BalanceIntDigits)

type Person struct {
	ID        int64
	FirstName string
	LastName  string
	NIC       string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BankAccount struct {
	ID            int64
	PersonID      int64
	AccountNumber string
	BankName      string
	Branch        string
	Balance       decimal.Decimal
}

type FamilyMember struct {
	ID             int64
	PersonID       int64
	Relation       string
	CustomRelation string
	FirstName      string
	LastName       string
	Age            *int
	NIC            string
	PhoneNumber    string
}

type Vehicle struct {
	ID            int64
	PersonID      int64
	VehicleNumber string
	Make          string
	Model         string
}

type BodyMark struct {
	ID          int64
	PersonID    int64
	Type        string
	Location    string
	Description string
	Picture     []byte
}

type UsedDevice struct {
	ID           int64
	PersonID     int64
	DeviceType   string
	Make         string
	Model        string
	SerialNumber string
	IMEI         string
}

type CallHistoryEntry struct {
	ID          int64
	PersonID    int64
	Device      string
	CallType    string
	PhoneNumber string
	Timestamp   time.Time
}

// PersonAggregate is a person together with every dependent collection.
// Bank is nil when the person has no bank account.
type PersonAggregate struct {
	Personal    Person
	Bank        *BankAccount
	Family      []FamilyMember
	Vehicles    []Vehicle
	BodyMarks   []BodyMark
	UsedDevices []UsedDevice
	CallHistory []CallHistoryEntry
}

type PersonSummary struct {
	ID        int64
	FirstName string
	LastName  string
	NIC       string
}

type BankSummary struct {
	PersonID      int64
	FirstName     string
	LastName      string
	AccountNumber string
	BankName      string
	Branch        string
}

type FamilySummary struct {
	PersonID       int64
	MemberID       int64
	Relation       string
	CustomRelation string
	FirstName      string
	LastName       string
}

// SearchResults groups matches by entity type.
type SearchResults struct {
	Personal []PersonSummary
	Banking  []BankSummary
	Family   []FamilySummary
}
