// Package mocks provides a testify mock for the rates.Provider interface.
package mocks

import (
	"context"

	"github.com/solistore/digital-storefront/internal/rates"
	"github.com/stretchr/testify/mock"
)

type Provider struct {
	mock.Mock
}

func NewProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *Provider {
	m := &Provider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *Provider) GetRate(ctx context.Context, currency string) (float64, error) {
	args := m.Called(ctx, currency)

	return args.Get(0).(float64), args.Error(1)
}

func (m *Provider) GetTable(ctx context.Context) (*rates.Table, error) {
	args := m.Called(ctx)
	if table, ok := args.Get(0).(*rates.Table); ok {
		return table, args.Error(1)
	}

	return nil, args.Error(1)
}
