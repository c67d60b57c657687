package dto

import (
	"strings"

	"github.com/ribnuu/PERN-Task1-sub000/internal/domain"
)

// blank reports an empty bank form, which is stored as no account.
func (b *BankRequest) blank() bool {
	return strings.TrimSpace(b.AccountNumber) == "" && strings.TrimSpace(b.BankName) == "" &&
		strings.TrimSpace(b.Branch) == "" && b.Balance.IsZero()
}

func (r PersonRequest) ToDomain() domain.PersonAggregate {
	a := domain.PersonAggregate{
		Personal: domain.Person{
			FirstName: r.Personal.FirstName,
			LastName:  r.Personal.LastName,
			NIC:       r.Personal.NIC,
			Address:   r.Personal.Address,
		},
	}
	if b := r.Bank; b != nil && !b.blank() {
		a.Bank = &domain.BankAccount{
			AccountNumber: b.AccountNumber,
			BankName:      b.BankName,
			Branch:        b.Branch,
			Balance:       b.Balance,
		}
	}
	for _, f := range r.Family {
		a.Family = append(a.Family, domain.FamilyMember{
			Relation: f.Relation, CustomRelation: f.CustomRelation,
			FirstName: f.FirstName, LastName: f.LastName,
			Age: f.Age, NIC: f.NIC, PhoneNumber: f.PhoneNumber,
		})
	}
	for _, v := range r.Vehicles {
		a.Vehicles = append(a.Vehicles, domain.Vehicle{VehicleNumber: v.VehicleNumber, Make: v.Make, Model: v.Model})
	}
	for _, m := range r.BodyMarks {
		a.BodyMarks = append(a.BodyMarks, domain.BodyMark{
			Type: m.Type, Location: m.Location, Description: m.Description, Picture: m.Picture,
		})
	}
	for _, d := range r.UsedDevices {
		a.UsedDevices = append(a.UsedDevices, domain.UsedDevice{
			DeviceType: d.DeviceType, Make: d.Make, Model: d.Model, SerialNumber: d.SerialNumber, IMEI: d.IMEI,
		})
	}
	for _, c := range r.CallHistory {
		a.CallHistory = append(a.CallHistory, domain.CallHistoryEntry{
			Device: c.Device, CallType: c.CallType, PhoneNumber: c.PhoneNumber, Timestamp: c.Timestamp,
		})
	}
	return a
}

// NewPersonResponse renders an aggregate. Collections are never null.
func NewPersonResponse(a *domain.PersonAggregate) PersonResponse {
	p := a.Personal
	resp := PersonResponse{
		Personal: PersonalResponse{
			ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, NIC: p.NIC,
			Address: p.Address, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		},
		Family:      make([]FamilyResponse, 0, len(a.Family)),
		Vehicles:    make([]VehicleResponse, 0, len(a.Vehicles)),
		BodyMarks:   make([]BodyMarkResponse, 0, len(a.BodyMarks)),
		UsedDevices: make([]UsedDeviceResponse, 0, len(a.UsedDevices)),
		CallHistory: make([]CallHistoryResponse, 0, len(a.CallHistory)),
	}
	if b := a.Bank; b != nil {
		resp.Bank = &BankResponse{
			ID: b.ID, AccountNumber: b.AccountNumber, BankName: b.BankName, Branch: b.Branch, Balance: b.Balance,
		}
	}
	for _, f := range a.Family {
		resp.Family = append(resp.Family, FamilyResponse{
			ID: f.ID, Relation: f.Relation, CustomRelation: f.CustomRelation,
			FirstName: f.FirstName, LastName: f.LastName, Age: f.Age, NIC: f.NIC, PhoneNumber: f.PhoneNumber,
		})
	}
	for _, v := range a.Vehicles {
		resp.Vehicles = append(resp.Vehicles, VehicleResponse{ID: v.ID, VehicleNumber: v.VehicleNumber, Make: v.Make, Model: v.Model})
	}
	for _, m := range a.BodyMarks {
		resp.BodyMarks = append(resp.BodyMarks, BodyMarkResponse{
			ID: m.ID, Type: m.Type, Location: m.Location, Description: m.Description, Picture: m.Picture,
		})
	}
	for _, d := range a.UsedDevices {
		resp.UsedDevices = append(resp.UsedDevices, UsedDeviceResponse{
			ID: d.ID, DeviceType: d.DeviceType, Make: d.Make, Model: d.Model, SerialNumber: d.SerialNumber, IMEI: d.IMEI,
		})
	}
	for _, c := range a.CallHistory {
		resp.CallHistory = append(resp.CallHistory, CallHistoryResponse{
			ID: c.ID, Device: c.Device, CallType: c.CallType, PhoneNumber: c.PhoneNumber, Timestamp: c.Timestamp,
		})
	}
	return resp
}

func NewPersonSummaries(in []domain.PersonSummary) []PersonSummaryResponse {
	out := make([]PersonSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, PersonSummaryResponse{ID: s.ID, FirstName: s.FirstName, LastName: s.LastName, NIC: s.NIC})
	}
	return out
}

func NewSearchResponse(res *domain.SearchResults) SearchResponse {
	out := SearchResponse{
		Personal: NewPersonSummaries(res.Personal),
		Banking:  make([]BankSummaryResponse, 0, len(res.Banking)),
		Family:   make([]FamilySummaryResponse, 0, len(res.Family)),
	}
	for _, b := range res.Banking {
		out.Banking = append(out.Banking, BankSummaryResponse{
			PersonID: b.PersonID, FirstName: b.FirstName, LastName: b.LastName,
			AccountNumber: b.AccountNumber, BankName: b.BankName, Branch: b.Branch,
		})
	}
	for _, f := range res.Family {
		out.Family = append(out.Family, FamilySummaryResponse{
			PersonID: f.PersonID, MemberID: f.MemberID, Relation: f.Relation, CustomRelation: f.CustomRelation,
			FirstName: f.FirstName, LastName: f.LastName,
		})
	}
	return out
}
