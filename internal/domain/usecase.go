//go:generate mockery --name=PersonUsecase --output=../mocks --case=underscore
package domain

import "context"

type PersonUsecase interface {
	Get(ctx context.Context, id int64) (*PersonAggregate, error)
	Create(ctx context.Context, a PersonAggregate) (int64, error)
	Update(ctx context.Context, id int64, a PersonAggregate) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]PersonSummary, error)
	SearchAll(ctx context.Context, query string) (*SearchResults, error)
	Ready(ctx context.Context) error
}
