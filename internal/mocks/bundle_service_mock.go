// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/bundle-service/internal/domain/model"
)

// MockBundleService is a mock implementation of service.BundleService.
type MockBundleService struct {
	mock.Mock
}

// NewMockBundleService creates a new MockBundleService and registers a
// cleanup function that asserts the mock's expectations.
func NewMockBundleService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBundleService {
	m := &MockBundleService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBundleService) Catalog() []model.Product {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Product)
}

func (m *MockBundleService) Projection(sessionID string) model.BundleView {
	args := m.Called(sessionID)
	return args.Get(0).(model.BundleView)
}

func (m *MockBundleService) Toggle(sessionID string, productID int) (model.BundleView, bool, error) {
	args := m.Called(sessionID, productID)
	return args.Get(0).(model.BundleView), args.Bool(1), args.Error(2)
}

func (m *MockBundleService) AdjustQuantity(sessionID string, productID, delta int) (model.BundleView, error) {
	args := m.Called(sessionID, productID, delta)
	return args.Get(0).(model.BundleView), args.Error(1)
}

func (m *MockBundleService) Remove(sessionID string, productID int) (model.BundleView, error) {
	args := m.Called(sessionID, productID)
	return args.Get(0).(model.BundleView), args.Error(1)
}

func (m *MockBundleService) Reset(sessionID string) model.BundleView {
	args := m.Called(sessionID)
	return args.Get(0).(model.BundleView)
}

func (m *MockBundleService) Confirm(sessionID string) (model.CheckoutPayload, model.BundleView, error) {
	args := m.Called(sessionID)
	return args.Get(0).(model.CheckoutPayload), args.Get(1).(model.BundleView), args.Error(2)
}
