package access

import (
	"sync/atomic"

	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/storage/tile"
	"github.com/mosaicdb/mosaicdb/types"
)

// TransactionManager hands out transaction handles and answers tuple
// visibility questions. Executors only ever read visibility; they never
// commit or abort on their own.
type TransactionManager struct {
	nextTxnID int32
}

func NewTransactionManager() *TransactionManager {
	return &TransactionManager{nextTxnID: -1}
}

func (m *TransactionManager) Begin() *Transaction {
	id := types.TxnID(atomic.AddInt32(&m.nextTxnID, 1))
	common.Logger.Debugw("transaction begun", "txn_id", id)
	return newTransaction(id)
}

// Commit marks every slot of the transaction's write set committed, making
// it visible to all transactions.
func (m *TransactionManager) Commit(txn *Transaction) {
	for _, w := range txn.WriteSet() {
		w.Group.GetHeader().SetCommitted(w.Slot, true)
	}
	txn.setState(Committed)
	common.Logger.Debugw("transaction committed", "txn_id", txn.ID(), "writes", len(txn.WriteSet()))
}

// Abort marks every slot of the transaction's write set deleted so no scan
// will ever surface it.
func (m *TransactionManager) Abort(txn *Transaction) {
	for _, w := range txn.WriteSet() {
		w.Group.GetHeader().SetDeleted(w.Slot, true)
	}
	txn.setState(Aborted)
	common.Logger.Debugw("transaction aborted", "txn_id", txn.ID(), "writes", len(txn.WriteSet()))
}

// IsVisible is the visibility oracle: a slot is readable by txn when it is
// occupied, not deleted, and either committed or created by txn itself.
func (m *TransactionManager) IsVisible(header *tile.TileGroupHeader, slot uint32, txn *Transaction) bool {
	if !header.IsOccupied(slot) || header.IsDeleted(slot) {
		return false
	}
	if header.IsCommitted(slot) {
		return true
	}
	return txn != nil && header.GetInsertTxn(slot) == txn.ID()
}
