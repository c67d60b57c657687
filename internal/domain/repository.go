//go:generate mockery --name=PersonRepository --output=../mocks --case=underscore
package domain

import "context"

type PersonRepository interface {
	GetPerson(ctx context.Context, id int64) (*PersonAggregate, error)
	CreatePerson(ctx context.Context, a PersonAggregate) (int64, error)
	UpdatePerson(ctx context.Context, id int64, a PersonAggregate) error
	DeletePerson(ctx context.Context, id int64) error
	SearchPeople(ctx context.Context, query string) ([]PersonSummary, error)
	SearchAll(ctx context.Context, query string) (*SearchResults, error)
	Ping(ctx context.Context) error
}
