package executors

import (
	"github.com/mosaicdb/mosaicdb/storage/access"
	"github.com/mosaicdb/mosaicdb/storage/backend"
)

// ExecutorContext stores everything an executor tree needs at runtime:
// the transaction it reads under, the manager answering visibility, and
// the backend materialization allocates owned storage from. One context
// per query execution; contexts are never shared across trees.
type ExecutorContext struct {
	txnMgr  *access.TransactionManager
	txn     *access.Transaction
	backend backend.Backend
}

func NewExecutorContext(txnMgr *access.TransactionManager, txn *access.Transaction, be backend.Backend) *ExecutorContext {
	return &ExecutorContext{txnMgr: txnMgr, txn: txn, backend: be}
}

func (c *ExecutorContext) GetTransactionManager() *access.TransactionManager { return c.txnMgr }

func (c *ExecutorContext) GetTransaction() *access.Transaction { return c.txn }

func (c *ExecutorContext) GetBackend() backend.Backend { return c.backend }
