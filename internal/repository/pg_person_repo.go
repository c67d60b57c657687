package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ribnuu/PERN-Task1-sub000/internal/domain"
)

var _ domain.PersonRepository = (*PgPersonRepo)(nil)

type PgPersonRepo struct {
	db             *pgxpool.Pool
	acquireTimeout time.Duration
}

func NewPgPersonRepo(db *pgxpool.Pool, acquireTimeout time.Duration) *PgPersonRepo {
	return &PgPersonRepo{db: db, acquireTimeout: acquireTimeout}
}

// acquire bounds the wait for a pooled connection so an unreachable store
// fails fast with domain.ErrStoreUnavailable.
func (r *PgPersonRepo) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	actx := ctx
	if r.acquireTimeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, r.acquireTimeout)
		defer cancel()
	}
	conn, err := r.db.Acquire(actx)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: acquire timed out after %s", domain.ErrStoreUnavailable, r.acquireTimeout)
		}
		return nil, fmt.Errorf("acquire: %w", classify(err))
	}
	return conn, nil
}

func (r *PgPersonRepo) Ping(ctx context.Context) error {
	conn, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	return classify(conn.Ping(ctx))
}

func (r *PgPersonRepo) GetPerson(ctx context.Context, id int64) (*domain.PersonAggregate, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	// One snapshot for the root and every collection.
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("begin: %w", classify(err))
	}
	defer tx.Rollback(ctx)

	var a domain.PersonAggregate
	p := &a.Personal
	err = tx.QueryRow(ctx,
		`SELECT id, first_name, last_name, nic, address, created_at, updated_at FROM persons WHERE id=$1`, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.NIC, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select person: %w", classify(err))
	}

	if a.Bank, err = selectBank(ctx, tx, id); err != nil {
		return nil, err
	}
	if a.Family, err = selectChildren(ctx, tx, id,
		`SELECT id, person_id, relation, custom_relation, first_name, last_name, age::int, nic, phone_number
		 FROM family_members WHERE person_id=$1 ORDER BY id`,
		func(row pgx.CollectableRow) (domain.FamilyMember, error) {
			var f domain.FamilyMember
			err := row.Scan(&f.ID, &f.PersonID, &f.Relation, &f.CustomRelation, &f.FirstName, &f.LastName, &f.Age, &f.NIC, &f.PhoneNumber)
			return f, err
		}); err != nil {
		return nil, fmt.Errorf("select family: %w", err)
	}
	if a.Vehicles, err = selectChildren(ctx, tx, id,
		`SELECT id, person_id, vehicle_number, make, model FROM vehicles WHERE person_id=$1 ORDER BY id`,
		func(row pgx.CollectableRow) (domain.Vehicle, error) {
			var v domain.Vehicle
			err := row.Scan(&v.ID, &v.PersonID, &v.VehicleNumber, &v.Make, &v.Model)
			return v, err
		}); err != nil {
		return nil, fmt.Errorf("select vehicles: %w", err)
	}
	if a.BodyMarks, err = selectChildren(ctx, tx, id,
		`SELECT id, person_id, type, location, description, picture FROM body_marks WHERE person_id=$1 ORDER BY id`,
		func(row pgx.CollectableRow) (domain.BodyMark, error) {
			var m domain.BodyMark
			err := row.Scan(&m.ID, &m.PersonID, &m.Type, &m.Location, &m.Description, &m.Picture)
			return m, err
		}); err != nil {
		return nil, fmt.Errorf("select body marks: %w", err)
	}
	if a.UsedDevices, err = selectChildren(ctx, tx, id,
		`SELECT id, person_id, device_type, make, model, serial_number, imei FROM used_devices WHERE person_id=$1 ORDER BY id`,
		func(row pgx.CollectableRow) (domain.UsedDevice, error) {
			var d domain.UsedDevice
			err := row.Scan(&d.ID, &d.PersonID, &d.DeviceType, &d.Make, &d.Model, &d.SerialNumber, &d.IMEI)
			return d, err
		}); err != nil {
		return nil, fmt.Errorf("select used devices: %w", err)
	}
	if a.CallHistory, err = selectChildren(ctx, tx, id,
		`SELECT id, person_id, device, call_type, phone_number, called_at FROM call_history WHERE person_id=$1 ORDER BY id`,
		func(row pgx.CollectableRow) (domain.CallHistoryEntry, error) {
			var c domain.CallHistoryEntry
			err := row.Scan(&c.ID, &c.PersonID, &c.Device, &c.CallType, &c.PhoneNumber, &c.Timestamp)
			return c, err
		}); err != nil {
		return nil, fmt.Errorf("select call history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", classify(err))
	}
	return &a, nil
}

func selectBank(ctx context.Context, tx pgx.Tx, personID int64) (*domain.BankAccount, error) {
	var (
		b       domain.BankAccount
		balance string
	)
	err := tx.QueryRow(ctx,
		`SELECT id, person_id, account_number, bank_name, branch, balance::text FROM bank_accounts WHERE person_id=$1`, personID).
		Scan(&b.ID, &b.PersonID, &b.AccountNumber, &b.BankName, &b.Branch, &balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select bank: %w", classify(err))
	}
	if b.Balance, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", balance, err)
	}
	return &b, nil
}

func selectChildren[T any](ctx context.Context, tx pgx.Tx, personID int64, sql string, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := tx.Query(ctx, sql, personID)
	if err != nil {
		return nil, classify(err)
	}
	out, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *PgPersonRepo) CreatePerson(ctx context.Context, a domain.PersonAggregate) (int64, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", classify(err))
	}
	defer tx.Rollback(ctx)

	p := a.Personal
	var id int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO persons (first_name, last_name, nic, address)
		 VALUES ($1,$2,$3,$4) RETURNING id`,
		p.FirstName, p.LastName, p.NIC, p.Address,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert person: %w", classify(err))
	}

	if err := writeChildren(ctx, tx, id, a, false); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", classify(err))
	}
	return id, nil
}

// UpdatePerson rewrites the root row field by field and replaces every
// dependent collection wholesale.
func (r *PgPersonRepo) UpdatePerson(ctx context.Context, id int64, a domain.PersonAggregate) error {
	conn, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", classify(err))
	}
	defer tx.Rollback(ctx)

	p := a.Personal
	tag, err := tx.Exec(ctx,
		`UPDATE persons SET first_name=$1, last_name=$2, nic=$3, address=$4 WHERE id=$5`,
		p.FirstName, p.LastName, p.NIC, p.Address, id)
	if err != nil {
		return fmt.Errorf("update person: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := writeChildren(ctx, tx, id, a, true); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", classify(err))
	}
	return nil
}

// childTables lists every table owned by persons.
var childTables = []string{"bank_accounts", "family_members", "vehicles", "body_marks", "used_devices", "call_history"}

// writeChildren sends every dependent write for one person as a single batch.
// With replace set, existing dependents are deleted first.
func writeChildren(ctx context.Context, tx pgx.Tx, personID int64, a domain.PersonAggregate, replace bool) error {
	b := &pgx.Batch{}
	var labels []string
	queue := func(label, sql string, args ...any) {
		b.Queue(sql, args...)
		labels = append(labels, label)
	}

	if replace {
		for _, t := range childTables {
			queue("delete "+t, `DELETE FROM `+t+` WHERE person_id=$1`, personID)
		}
	}
	if bk := a.Bank; bk != nil {
		queue("insert bank",
			`INSERT INTO bank_accounts (person_id, account_number, bank_name, branch, balance)
			 VALUES ($1,$2,$3,$4,$5::text::numeric)`,
			personID, bk.AccountNumber, bk.BankName, bk.Branch, bk.Balance.String())
	}
	for i, f := range a.Family {
		queue(fmt.Sprintf("insert family[%d]", i),
			`INSERT INTO family_members (person_id, relation, custom_relation, first_name, last_name, age, nic, phone_number)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			personID, f.Relation, f.CustomRelation, f.FirstName, f.LastName, f.Age, f.NIC, f.PhoneNumber)
	}
	for i, v := range a.Vehicles {
		queue(fmt.Sprintf("insert vehicles[%d]", i),
			`INSERT INTO vehicles (person_id, vehicle_number, make, model) VALUES ($1,$2,$3,$4)`,
			personID, v.VehicleNumber, v.Make, v.Model)
	}
	for i, m := range a.BodyMarks {
		queue(fmt.Sprintf("insert bodyMarks[%d]", i),
			`INSERT INTO body_marks (person_id, type, location, description, picture) VALUES ($1,$2,$3,$4,$5)`,
			personID, m.Type, m.Location, m.Description, m.Picture)
	}
	for i, d := range a.UsedDevices {
		queue(fmt.Sprintf("insert usedDevices[%d]", i),
			`INSERT INTO used_devices (person_id, device_type, make, model, serial_number, imei) VALUES ($1,$2,$3,$4,$5,$6)`,
			personID, d.DeviceType, d.Make, d.Model, d.SerialNumber, d.IMEI)
	}
	for i, c := range a.CallHistory {
		queue(fmt.Sprintf("insert callHistory[%d]", i),
			`INSERT INTO call_history (person_id, device, call_type, phone_number, called_at) VALUES ($1,$2,$3,$4,$5)`,
			personID, c.Device, c.CallType, c.PhoneNumber, c.Timestamp)
	}
	if b.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, b)
	for _, label := range labels {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("%s: %w", label, classify(err))
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("batch: %w", classify(err))
	}
	return nil
}

func (r *PgPersonRepo) DeletePerson(ctx context.Context, id int64) error {
	conn, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, `DELETE FROM persons WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
