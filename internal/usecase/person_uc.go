package usecase

import (
	"context"
	"strings"

	"github.com/ribnuu/PERN-Task1-sub000/internal/domain"
)

type personUC struct{ repo domain.PersonRepository }

func NewPersonUC(r domain.PersonRepository) domain.PersonUsecase { return &personUC{repo: r} }

func (u *personUC) Get(ctx context.Context, id int64) (*domain.PersonAggregate, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return u.repo.GetPerson(ctx, id)
}

func (u *personUC) Create(ctx context.Context, a domain.PersonAggregate) (int64, error) {
	normalize(&a)
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return u.repo.CreatePerson(ctx, a)
}

func (u *personUC) Update(ctx context.Context, id int64, a domain.PersonAggregate) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	normalize(&a)
	if err := a.Validate(); err != nil {
		return err
	}
	return u.repo.UpdatePerson(ctx, id, a)
}

func (u *personUC) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return u.repo.DeletePerson(ctx, id)
}

// Search never lists everything: a blank query yields no matches.
func (u *personUC) Search(ctx context.Context, query string) ([]domain.PersonSummary, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []domain.PersonSummary{}, nil
	}
	out, err := u.repo.SearchPeople(ctx, q)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.PersonSummary{}
	}
	return out, nil
}

func (u *personUC) SearchAll(ctx context.Context, query string) (*domain.SearchResults, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return emptyResults(), nil
	}
	res, err := u.repo.SearchAll(ctx, q)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return emptyResults(), nil
	}
	return res, nil
}

func (u *personUC) Ready(ctx context.Context) error {
	return u.repo.Ping(ctx)
}

func emptyResults() *domain.SearchResults {
	return &domain.SearchResults{
		Personal: []domain.PersonSummary{},
		Banking:  []domain.BankSummary{},
		Family:   []domain.FamilySummary{},
	}
}

// normalize trims the identifying text fields and clears values that
// only make sense in another variant (custom relation text without Other).
func normalize(a *domain.PersonAggregate) {
	p := &a.Personal
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.NIC = strings.TrimSpace(p.NIC)
	p.Address = strings.TrimSpace(p.Address)
	a.Family = append([]domain.FamilyMember(nil), a.Family...)
	for i := range a.Family {
		f := &a.Family[i]
		f.FirstName = strings.TrimSpace(f.FirstName)
		f.LastName = strings.TrimSpace(f.LastName)
		f.CustomRelation = strings.TrimSpace(f.CustomRelation)
		if f.Relation != domain.RelationOther {
			f.CustomRelation = ""
		}
	}
}
