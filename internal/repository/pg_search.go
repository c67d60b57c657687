package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ribnuu/PERN-Task1-sub000/internal/domain"
)

const (
	searchPeopleSQL = `SELECT id, first_name, last_name, nic FROM persons
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR nic ILIKE $1
		ORDER BY id`

	searchBankingSQL = `SELECT b.person_id, p.first_name, p.last_name, b.account_number, b.bank_name, b.branch
		FROM bank_accounts b JOIN persons p ON p.id = b.person_id
		WHERE b.bank_name ILIKE $1 OR b.account_number ILIKE $1
		ORDER BY b.id`

	searchFamilySQL = `SELECT person_id, id, relation, custom_relation, first_name, last_name
		FROM family_members
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR relation ILIKE $1 OR custom_relation ILIKE $1
		ORDER BY id`
)

func scanPersonSummary(row pgx.CollectableRow) (domain.PersonSummary, error) {
	var s domain.PersonSummary
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.NIC)
	return s, err
}

func scanBankSummary(row pgx.CollectableRow) (domain.BankSummary, error) {
	var s domain.BankSummary
	err := row.Scan(&s.PersonID, &s.FirstName, &s.LastName, &s.AccountNumber, &s.BankName, &s.Branch)
	return s, err
}

func scanFamilySummary(row pgx.CollectableRow) (domain.FamilySummary, error) {
	var s domain.FamilySummary
	err := row.Scan(&s.PersonID, &s.MemberID, &s.Relation, &s.CustomRelation, &s.FirstName, &s.LastName)
	return s, err
}

// SearchPeople matches query as a case-insensitive substring of first name,
// last name or nic.
func (r *PgPersonRepo) SearchPeople(ctx context.Context, query string) ([]domain.PersonSummary, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, searchPeopleSQL, likePattern(query))
	if err != nil {
		return nil, fmt.Errorf("search people: %w", classify(err))
	}
	out, err := pgx.CollectRows(rows, scanPersonSummary)
	if err != nil {
		return nil, fmt.Errorf("search people: %w", classify(err))
	}
	return out, nil
}

// SearchAll runs the person, banking and family searches as one batch.
func (r *PgPersonRepo) SearchAll(ctx context.Context, query string) (*domain.SearchResults, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	pattern := likePattern(query)
	b := &pgx.Batch{}
	b.Queue(searchPeopleSQL, pattern)
	b.Queue(searchBankingSQL, pattern)
	b.Queue(searchFamilySQL, pattern)

	br := conn.SendBatch(ctx, b)
	defer br.Close()

	var res domain.SearchResults
	if res.Personal, err = collectBatch(br, scanPersonSummary); err != nil {
		return nil, fmt.Errorf("search people: %w", err)
	}
	if res.Banking, err = collectBatch(br, scanBankSummary); err != nil {
		return nil, fmt.Errorf("search banking: %w", err)
	}
	if res.Family, err = collectBatch(br, scanFamilySummary); err != nil {
		return nil, fmt.Errorf("search family: %w", err)
	}
	return &res, nil
}

func collectBatch[T any](br pgx.BatchResults, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := br.Query()
	if err != nil {
		return nil, classify(err)
	}
	out, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}
