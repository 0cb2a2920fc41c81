package access

import (
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/storage/tile"
	"github.com/mosaicdb/mosaicdb/types"
)

type TransactionState int

const (
	Growing TransactionState = iota
	Committed
	Aborted
)

// WriteRecord remembers one slot written by a transaction so commit and
// abort can flip its header state.
type WriteRecord struct {
	Group *tile.TileGroup
	Slot  uint32
}

// Transaction is the handle threaded through every executor. It is owned
// by a single query execution thread; the latch only protects the write
// set against host side bookkeeping races.
type Transaction struct {
	id       types.TxnID
	latch    common.ReaderWriterLatch
	state    TransactionState
	writeSet []WriteRecord
}

func newTransaction(id types.TxnID) *Transaction {
	return &Transaction{
		id:    id,
		latch: common.NewRWLatch(),
		state: Growing,
	}
}

func (t *Transaction) ID() types.TxnID { return t.id }

func (t *Transaction) State() TransactionState {
	t.latch.RLock()
	defer t.latch.RUnlock()
	return t.state
}

func (t *Transaction) setState(state TransactionState) {
	t.latch.WLock()
	defer t.latch.WUnlock()
	t.state = state
}

// RecordWrite adds a slot to the transaction's write set. Must be called
// by the insertion path for every slot the transaction creates.
func (t *Transaction) RecordWrite(group *tile.TileGroup, slot uint32) {
	t.latch.WLock()
	defer t.latch.WUnlock()
	t.writeSet = append(t.writeSet, WriteRecord{Group: group, Slot: slot})
}

func (t *Transaction) WriteSet() []WriteRecord {
	t.latch.RLock()
	defer t.latch.RUnlock()
	return t.writeSet
}
