package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PersonRequest is the aggregate payload accepted by create and update.
type PersonRequest struct {
	Personal    PersonalRequest      `json:"personal"`
	Bank        *BankRequest         `json:"bank"`
	Family      []FamilyRequest      `json:"family" validate:"dive"`
	Vehicles    []VehicleRequest     `json:"vehicles" validate:"dive"`
	BodyMarks   []BodyMarkRequest    `json:"bodyMarks" validate:"dive"`
	UsedDevices []UsedDeviceRequest  `json:"usedDevices" validate:"dive"`
	CallHistory []CallHistoryRequest `json:"callHistory" validate:"dive"`
}

type PersonalRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	NIC       string `json:"nic" validate:"required,max=20"`
	Address   string `json:"address" validate:"max=1000"`
}

type BankRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"max=34"`
	BankName      string          `json:"bankName" validate:"max=100"`
	Branch        string          `json:"branch" validate:"max=100"`
	Balance       decimal.Decimal `json:"balance"`
}

type FamilyRequest struct {
	Relation       string `json:"relation" validate:"required,oneof=Father Mother Spouse Son Daughter Brother Sister Other"`
	CustomRelation string `json:"customRelation" validate:"required_if=Relation Other,max=50"`
	FirstName      string `json:"firstName" validate:"max=100"`
	LastName       string `json:"lastName" validate:"max=100"`
	Age            *int   `json:"age" validate:"omitempty,min=0,max=150"`
	NIC            string `json:"nic" validate:"max=20"`
	PhoneNumber    string `json:"phoneNumber" validate:"max=20"`
}

type VehicleRequest struct {
	VehicleNumber string `json:"vehicleNumber" validate:"max=20"`
	Make          string `json:"make" validate:"max=50"`
	Model         string `json:"model" validate:"max=50"`
}

type BodyMarkRequest struct {
	Type        string `json:"type" validate:"required,oneof=Tattoo Scar Birthmark Piercing Other"`
	Location    string `json:"location" validate:"max=100"`
	Description string `json:"description" validate:"max=2000"`
	Picture     []byte `json:"picture" validate:"max=1048576"`
}

type UsedDeviceRequest struct {
	DeviceType   string `json:"deviceType" validate:"required,oneof=Phone Laptop Desktop Pager"`
	Make         string `json:"make" validate:"max=50"`
	Model        string `json:"model" validate:"max=50"`
	SerialNumber string `json:"serialNumber" validate:"max=50"`
	IMEI         string `json:"imei" validate:"max=20"`
}

// CallHistoryRequest.Timestamp is checked by the domain; validator treats a
// zero time.Time as present.
type CallHistoryRequest struct {
	Device      string    `json:"device" validate:"max=200"`
	CallType    string    `json:"callType" validate:"required,oneof=Incoming Outgoing Missed"`
	PhoneNumber string    `json:"phoneNumber" validate:"max=20"`
	Timestamp   time.Time `json:"timestamp"`
}
