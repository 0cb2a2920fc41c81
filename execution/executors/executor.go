package executors

import (
	"errors"
)

var (
	// ErrAlreadyInitialized signals a second Init on the same executor.
	ErrAlreadyInitialized = errors.New("executor already initialized")
	// ErrNotInitialized signals Execute before a successful Init.
	ErrNotInitialized = errors.New("executor not initialized")
	// ErrNoOutputAvailable signals GetOutput without a preceding
	// successful Execute, or a second GetOutput for the same Execute.
	ErrNoOutputAvailable = errors.New("no output available")
	// ErrSchemaMismatch signals a materialization configuration that does
	// not line up with the actual input tile.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrInvalidPlan signals an executor tree that contradicts its plan
	// (wrong child count, missing table).
	ErrInvalidPlan = errors.New("invalid plan configuration")
)

type executorState int

const (
	stateUninitialized executorState = iota
	stateInitialized
	stateExhausted
)

// Executor is the Volcano protocol every operator implements. The root
// consumer drives the tree: Init once, then Execute until it returns
// false; every true Execute buffers exactly one logical tile with at
// least one row, released through GetOutput.
//
// Execute returning false strictly means "no more tiles"; failures travel
// through the error return and abort the whole query at the caller.
type Executor interface {
	Init() error
	Execute() (bool, error)
	GetOutput() (*LogicalTile, error)
	AddChild(child Executor)
	GetChildren() []Executor
}

// BaseExecutor carries the state shared by all operators: the child list,
// the execution context, the buffered output tile, and the state machine.
// Concrete executors embed it and implement Init and Execute.
type BaseExecutor struct {
	context  *ExecutorContext
	children []Executor
	output   *LogicalTile
	state    executorState
}

func NewBaseExecutor(context *ExecutorContext) BaseExecutor {
	return BaseExecutor{context: context}
}

func (e *BaseExecutor) AddChild(child Executor) {
	e.children = append(e.children, child)
}

func (e *BaseExecutor) GetChildren() []Executor {
	return e.children
}

func (e *BaseExecutor) GetContext() *ExecutorContext {
	return e.context
}

// GetOutput transfers ownership of the buffered tile to the caller.
func (e *BaseExecutor) GetOutput() (*LogicalTile, error) {
	if e.output == nil {
		return nil, ErrNoOutputAvailable
	}
	out := e.output
	e.output = nil
	return out, nil
}

// Release discards any buffered tile and frees its owned storage. Called
// when a consumer abandons the executor tree mid query.
func (e *BaseExecutor) Release() {
	if e.output != nil {
		e.output.Release()
		e.output = nil
	}
}

func (e *BaseExecutor) markInitialized() error {
	if e.state != stateUninitialized {
		return ErrAlreadyInitialized
	}
	e.state = stateInitialized
	return nil
}

func (e *BaseExecutor) ensureInitialized() error {
	if e.state == stateUninitialized {
		return ErrNotInitialized
	}
	return nil
}

func (e *BaseExecutor) exhausted() bool {
	return e.state == stateExhausted
}

func (e *BaseExecutor) markExhausted() {
	e.state = stateExhausted
}

func (e *BaseExecutor) bufferOutput(t *LogicalTile) {
	e.output = t
}
