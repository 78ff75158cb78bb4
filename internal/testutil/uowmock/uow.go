package uowmock

import (
	"context"
	"errors"

	"ideafund-backend/internal/domain/idea"
	"ideafund-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinIdeaTxFn func(ctx context.Context, ideaID string, fn func(r uow.Repos, i *idea.Idea) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinIdeaTx(ctx context.Context, ideaID string, fn func(r uow.Repos, i *idea.Idea) error) error {
	if m.WithinIdeaTxFn != nil {
		return m.WithinIdeaTxFn(ctx, ideaID, fn)
	}
	return errUnimplemented
}
