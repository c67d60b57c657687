//go:build integration
// +build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribnuu/PERN-Task1-sub000/internal/domain"
	"github.com/ribnuu/PERN-Task1-sub000/internal/pkg/db"
)

// newTestRepo connects to PERN_TEST_DSN, migrates, and empties every table.
func newTestRepo(t *testing.T) (*PgPersonRepo, *pgxpool.Pool) {
	t.Helper()
	dsn := os.Getenv("PERN_TEST_DSN")
	if dsn == "" {
		t.Skip("PERN_TEST_DSN not set")
	}
	ctx := context.Background()

	pool, err := db.NewPool(dsn, db.PoolOptions{MaxConns: 4, ConnectTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = db.Migrate(ctx, pool)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE persons RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return NewPgPersonRepo(pool, 3*time.Second), pool
}

func intPtr(v int) *int { return &v }

func fullAggregate(nic string) domain.PersonAggregate {
	return domain.PersonAggregate{
		Personal: domain.Person{FirstName: "John", LastName: "Doe", NIC: nic, Address: "12 Main St"},
		Bank: &domain.BankAccount{
			AccountNumber: "0012345678", BankName: "Bank of Ceylon", Branch: "Kandy",
			Balance: decimal.RequireFromString("1520.75"),
		},
		Family: []domain.FamilyMember{
			{Relation: "Mother", FirstName: "Mary", LastName: "Doe", Age: intPtr(61), NIC: "196312345678", PhoneNumber: "0711111111"},
			{Relation: "Other", CustomRelation: "Godfather", FirstName: "Ray", LastName: "Silva"},
		},
		Vehicles: []domain.Vehicle{
			{VehicleNumber: "CAB-1234", Make: "Toyota", Model: "Corolla"},
			{VehicleNumber: "BBX-9876", Make: "Honda", Model: "Dio"},
		},
		BodyMarks: []domain.BodyMark{
			{Type: "Scar", Location: "left knee", Description: "childhood fall"},
			{Type: "Tattoo", Location: "right arm", Description: "anchor", Picture: []byte{0xff, 0xd8, 0xff, 0xe0}},
		},
		UsedDevices: []domain.UsedDevice{
			{DeviceType: "Phone", Make: "Samsung", Model: "A52", SerialNumber: "R58N", IMEI: "356938035643809"},
			{DeviceType: "Laptop", Make: "Dell", Model: "XPS 13", SerialNumber: "DX13"},
		},
		CallHistory: []domain.CallHistoryEntry{
			{Device: "Phone Samsung A52", CallType: "Outgoing", PhoneNumber: "0779999999", Timestamp: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
			{Device: "Phone Samsung A52", CallType: "Missed", PhoneNumber: "0778888888", Timestamp: time.Date(2024, 3, 2, 18, 5, 0, 0, time.UTC)},
		},
	}
}

// assertSameAggregate compares two aggregates ignoring ids and timestamps.
func assertSameAggregate(t *testing.T, want, got domain.PersonAggregate) {
	t.Helper()
	assert.Equal(t, want.Personal.FirstName, got.Personal.FirstName)
	assert.Equal(t, want.Personal.LastName, got.Personal.LastName)
	assert.Equal(t, want.Personal.NIC, got.Personal.NIC)
	assert.Equal(t, want.Personal.Address, got.Personal.Address)

	if want.Bank == nil {
		assert.Nil(t, got.Bank)
	} else {
		require.NotNil(t, got.Bank)
		assert.Equal(t, want.Bank.AccountNumber, got.Bank.AccountNumber)
		assert.Equal(t, want.Bank.BankName, got.Bank.BankName)
		assert.Equal(t, want.Bank.Branch, got.Bank.Branch)
		assert.True(t, want.Bank.Balance.Equal(got.Bank.Balance), "balance %s != %s", want.Bank.Balance, got.Bank.Balance)
	}

	require.Len(t, got.Family, len(want.Family))
	for i := range want.Family {
		w, g := want.Family[i], got.Family[i]
		g.ID, g.PersonID = 0, 0
		assert.Equal(t, w, g)
	}
	require.Len(t, got.Vehicles, len(want.Vehicles))
	for i := range want.Vehicles {
		g := got.Vehicles[i]
		g.ID, g.PersonID = 0, 0
		assert.Equal(t, want.Vehicles[i], g)
	}
	require.Len(t, got.BodyMarks, len(want.BodyMarks))
	for i := range want.BodyMarks {
		g := got.BodyMarks[i]
		g.ID, g.PersonID = 0, 0
		assert.Equal(t, want.BodyMarks[i], g)
	}
	require.Len(t, got.UsedDevices, len(want.UsedDevices))
	for i := range want.UsedDevices {
		g := got.UsedDevices[i]
		g.ID, g.PersonID = 0, 0
		assert.Equal(t, want.UsedDevices[i], g)
	}
	require.Len(t, got.CallHistory, len(want.CallHistory))
	for i := range want.CallHistory {
		w, g := want.CallHistory[i], got.CallHistory[i]
		assert.Equal(t, w.Device, g.Device)
		assert.Equal(t, w.CallType, g.CallType)
		assert.Equal(t, w.PhoneNumber, g.PhoneNumber)
		assert.True(t, w.Timestamp.Equal(g.Timestamp))
	}
}

func TestPgPersonRepo_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	want := fullAggregate("199012345678")
	id, err := repo.CreatePerson(ctx, want)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetPerson(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.Personal.ID)
	assert.False(t, got.Personal.CreatedAt.IsZero())
	assertSameAggregate(t, want, *got)
}

func TestPgPersonRepo_NoBankIsNil(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := domain.PersonAggregate{Personal: domain.Person{FirstName: "Jane", LastName: "Smith", NIC: "198505432109"}}
	id, err := repo.CreatePerson(ctx, a)
	require.NoError(t, err)

	got, err := repo.GetPerson(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Bank)
	assert.Empty(t, got.Family)
	assert.Empty(t, got.CallHistory)
}

func TestPgPersonRepo_CascadeDelete(t *testing.T) {
	repo, pool := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePerson(ctx, fullAggregate("199012345678"))
	require.NoError(t, err)
	require.NoError(t, repo.DeletePerson(ctx, id))

	for _, table := range childTables {
		var n int
		require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM `+table+` WHERE person_id=$1`, id).Scan(&n))
		assert.Zero(t, n, table)
	}
	_, err = repo.GetPerson(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPgPersonRepo_UniqueNIC(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := fullAggregate("199012345678")
	id, err := repo.CreatePerson(ctx, first)
	require.NoError(t, err)

	dup := domain.PersonAggregate{Personal: domain.Person{FirstName: "Other", LastName: "Person", NIC: "199012345678"}}
	_, err = repo.CreatePerson(ctx, dup)
	require.ErrorIs(t, err, domain.ErrConflict)

	got, err := repo.GetPerson(ctx, id)
	require.NoError(t, err)
	assertSameAggregate(t, first, *got)
}

func TestPgPersonRepo_UpdateReplacesDependents(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePerson(ctx, fullAggregate("199012345678"))
	require.NoError(t, err)
	before, err := repo.GetPerson(ctx, id)
	require.NoError(t, err)

	next := fullAggregate("199012345678")
	next.Personal.Address = "99 New Rd"
	next.Bank = nil
	next.Family = next.Family[:1]
	next.Vehicles = nil
	require.NoError(t, repo.UpdatePerson(ctx, id, next))

	got, err := repo.GetPerson(ctx, id)
	require.NoError(t, err)
	assertSameAggregate(t, next, *got)
	assert.True(t, got.Personal.UpdatedAt.After(before.Personal.UpdatedAt) || got.Personal.UpdatedAt.Equal(before.Personal.UpdatedAt))
}

func TestPgPersonRepo_FailedUpdateIsAtomic(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePerson(ctx, fullAggregate("199012345678"))
	require.NoError(t, err)
	before, err := repo.GetPerson(ctx, id)
	require.NoError(t, err)

	bad := fullAggregate("199012345678")
	bad.Personal.FirstName = "Changed"
	bad.Vehicles = append(bad.Vehicles, domain.Vehicle{VehicleNumber: "NEW-1"})
	bad.Family[1].Age = intPtr(200) // rejected by family_members_age_check
	err = repo.UpdatePerson(ctx, id, bad)
	require.ErrorIs(t, err, domain.ErrValidation)

	after, err := repo.GetPerson(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPgPersonRepo_FailedCreateLeavesNoRoot(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	bad := fullAggregate("199012345678")
	bad.UsedDevices[1].IMEI = "123" // imei on a laptop
	_, err := repo.CreatePerson(ctx, bad)
	require.ErrorIs(t, err, domain.ErrValidation)

	got, err := repo.SearchPeople(ctx, "199012345678")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPgPersonRepo_Search(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	john := fullAggregate("199012345678")
	johnID, err := repo.CreatePerson(ctx, john)
	require.NoError(t, err)
	_, err = repo.CreatePerson(ctx, domain.PersonAggregate{Personal: domain.Person{FirstName: "Jane", LastName: "Smith", NIC: "198505432109"}})
	require.NoError(t, err)

	want := []domain.PersonSummary{{ID: johnID, FirstName: "John", LastName: "Doe", NIC: "199012345678"}}

	got, err := repo.SearchPeople(ctx, "jo")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = repo.SearchPeople(ctx, "1990")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = repo.SearchPeople(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, got)

	all, err := repo.SearchAll(ctx, "ceylon")
	require.NoError(t, err)
	assert.Empty(t, all.Personal)
	require.Len(t, all.Banking, 1)
	assert.Equal(t, johnID, all.Banking[0].PersonID)
	assert.Empty(t, all.Family)

	all, err = repo.SearchAll(ctx, "godfather")
	require.NoError(t, err)
	require.Len(t, all.Family, 1)
	assert.Equal(t, "Ray", all.Family[0].FirstName)
}

func TestPgPersonRepo_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetPerson(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.DeletePerson(ctx, 999999), domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePerson(ctx, 999999, fullAggregate("1")), domain.ErrNotFound)
}

func TestPgPersonRepo_UnreachableStore(t *testing.T) {
	pool, err := db.NewPool("postgres://u:p@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", db.PoolOptions{MaxConns: 1})
	require.NoError(t, err)
	defer pool.Close()

	repo := NewPgPersonRepo(pool, time.Second)
	_, err = repo.GetPerson(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
