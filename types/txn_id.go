package types

type TxnID int32

const InvalidTxnID TxnID = -1

func (id TxnID) IsValid() bool {
	return id != InvalidTxnID
}
