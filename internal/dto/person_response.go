package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PersonResponse struct {
	Personal    PersonalResponse      `json:"personal"`
	Bank        *BankResponse         `json:"bank"`
	Family      []FamilyResponse      `json:"family"`
	Vehicles    []VehicleResponse     `json:"vehicles"`
	BodyMarks   []BodyMarkResponse    `json:"bodyMarks"`
	UsedDevices []UsedDeviceResponse  `json:"usedDevices"`
	CallHistory []CallHistoryResponse `json:"callHistory"`
}

type PersonalResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	NIC       string    `json:"nic"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BankResponse struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	BankName      string          `json:"bankName"`
	Branch        string          `json:"branch"`
	Balance       decimal.Decimal `json:"balance"`
}

type FamilyResponse struct {
	ID             int64  `json:"id"`
	Relation       string `json:"relation"`
	CustomRelation string `json:"customRelation,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Age            *int   `json:"age"`
	NIC            string `json:"nic"`
	PhoneNumber    string `json:"phoneNumber"`
}

type VehicleResponse struct {
	ID            int64  `json:"id"`
	VehicleNumber string `json:"vehicleNumber"`
	Make          string `json:"make"`
	Model         string `json:"model"`
}

type BodyMarkResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Picture     []byte `json:"picture,omitempty"`
}

type UsedDeviceResponse struct {
	ID           int64  `json:"id"`
	DeviceType   string `json:"deviceType"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	IMEI         string `json:"imei,omitempty"`
}

type CallHistoryResponse struct {
	ID          int64     `json:"id"`
	Device      string    `json:"device"`
	CallType    string    `json:"callType"`
	PhoneNumber string    `json:"phoneNumber"`
	Timestamp   time.Time `json:"timestamp"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}
