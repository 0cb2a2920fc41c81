package executors

import (
	"github.com/stretchr/testify/mock"
)

// MockExecutor stands in for a child executor and feeds pre-built logical
// tiles to the operator under test.
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Init() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockExecutor) Execute() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockExecutor) GetOutput() (*LogicalTile, error) {
	args := m.Called()
	t, _ := args.Get(0).(*LogicalTile)
	return t, args.Error(1)
}

func (m *MockExecutor) AddChild(child Executor) {
	m.Called(child)
}

func (m *MockExecutor) GetChildren() []Executor {
	return nil
}
