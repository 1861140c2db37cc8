package testutil

import (
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockOracle is a mock implementation of types.SignatureOracle
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) Detect(path string) (string, bool) {
	args := m.Called(path)
	return args.String(0), args.Bool(1)
}

// MockInspector is a mock implementation of types.DeepInspector
type MockInspector struct {
	mock.Mock
}

func (m *MockInspector) Inspect(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

// StaticResolver returns a fixed FileType per path, and Fallback otherwise.
type StaticResolver struct {
	Types    map[string]types.FileType
	Fallback types.FileType
	Calls    []string
}

func (r *StaticResolver) Resolve(path string) types.FileType {
	r.Calls = append(r.Calls, path)
	if ft, ok := r.Types[path]; ok {
		return ft
	}
	return r.Fallback
}

var (
	_ types.SignatureOracle = (*MockOracle)(nil)
	_ types.DeepInspector   = (*MockInspector)(nil)
	_ types.Resolver        = (*StaticResolver)(nil)
)
