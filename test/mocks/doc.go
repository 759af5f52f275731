// Package mocks holds testify mocks for the interfaces components depend on.
package mocks

import "github.com/stretchr/testify/mock"

// TestingT is satisfied by *testing.T.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}
