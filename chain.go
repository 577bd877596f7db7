// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

package yogurt

// Chain-record field offsets (§6). Only decode is specified: the host
// constructs these, the module only ever reads them.

const (
	blockHash            = 0
	blockParentHash      = 4
	blockUnclesHash      = 8
	blockAuthor          = 12
	blockStateRoot       = 16
	blockTransactionsRt  = 20
	blockReceiptsRoot    = 24
	blockNumber          = 28
	blockGasUsed         = 32
	blockGasLimit        = 36
	blockTimestamp       = 40
	blockDifficulty      = 44
	blockTotalDifficulty = 48
	blockSize            = 52
	blockBaseFeePerGas   = 56
)

const (
	txHash     = 0
	txIndex    = 4
	txFrom     = 8
	txTo       = 12
	txValue    = 16
	txGasLimit = 20
	txGasPrice = 24
	txInput    = 28
	txNonce    = 32
)

const (
	eventAddress             = 0
	eventLogIndex            = 4
	eventTransactionLogIndex = 8
	eventLogType             = 12
	eventBlock               = 16
	eventTransaction         = 20
	eventParams              = 24
	eventReceipt             = 28
)

const (
	receiptTransactionHash  = 0
	receiptTransactionIndex = 4
	receiptBlockHash        = 8
	receiptBlockNumber      = 12
	receiptCumulativeGas    = 16
	receiptGasUsed          = 20
	receiptContractAddress  = 24
	receiptStatus           = 28
	receiptRoot             = 32
	receiptLogsBloom        = 36
)

// Block is the native mirror of the host's block record.
//
// Number, GasUsed, GasLimit, Timestamp, Difficulty, TotalDifficulty, Size and
// BaseFeePerGas stay as opaque bigInt wire handles per §3: arbitrary-
// precision numbers are never decoded by this package, only round-tripped
// through the bigInt.* imports (bigint.go).
type Block struct {
	Hash             []byte
	ParentHash       []byte
	UnclesHash       []byte
	Author           Address
	StateRoot        []byte
	TransactionsRoot []byte
	ReceiptsRoot     []byte
	Number           Ptr
	GasUsed          Ptr
	GasLimit         Ptr
	Timestamp        Ptr
	Difficulty       Ptr
	TotalDifficulty  Ptr
	Size             Ptr // nullable
	BaseFeePerGas    Ptr // nullable
}

// DecodeBlock reads a Block record at p using the fixed offsets of §6.
func DecodeBlock(c *Codec, p Ptr) *Block {
	if p.IsNull() {
		return nil
	}
	h := c.h
	b := &Block{
		Hash:             DecodeBytes(h, Ptr(h.ReadU32(p, blockHash))),
		ParentHash:       DecodeBytes(h, Ptr(h.ReadU32(p, blockParentHash))),
		UnclesHash:       DecodeBytes(h, Ptr(h.ReadU32(p, blockUnclesHash))),
		StateRoot:        DecodeBytes(h, Ptr(h.ReadU32(p, blockStateRoot))),
		TransactionsRoot: DecodeBytes(h, Ptr(h.ReadU32(p, blockTransactionsRt))),
		ReceiptsRoot:     DecodeBytes(h, Ptr(h.ReadU32(p, blockReceiptsRoot))),
		Number:           Ptr(h.ReadU32(p, blockNumber)),
		GasUsed:          Ptr(h.ReadU32(p, blockGasUsed)),
		GasLimit:         Ptr(h.ReadU32(p, blockGasLimit)),
		Timestamp:        Ptr(h.ReadU32(p, blockTimestamp)),
		Difficulty:       Ptr(h.ReadU32(p, blockDifficulty)),
		TotalDifficulty:  Ptr(h.ReadU32(p, blockTotalDifficulty)),
		Size:             Ptr(h.ReadU32(p, blockSize)),
		BaseFeePerGas:    Ptr(h.ReadU32(p, blockBaseFeePerGas)),
	}
	copy(b.Author[:], DecodeBytes(h, Ptr(h.ReadU32(p, blockAuthor))))
	return b
}

// Transaction is the native mirror of the host's transaction record. To is
// nullable (contract creation).
type Transaction struct {
	Hash     []byte
	Index    uint32
	From     Address
	To       *Address
	Value    Ptr
	GasLimit Ptr
	GasPrice Ptr
	Input    []byte
	Nonce    Ptr
}

// DecodeTransaction reads a Transaction record at p.
func DecodeTransaction(c *Codec, p Ptr) *Transaction {
	if p.IsNull() {
		return nil
	}
	h := c.h
	t := &Transaction{
		Hash:     DecodeBytes(h, Ptr(h.ReadU32(p, txHash))),
		Index:    h.ReadU32(p, txIndex),
		Value:    Ptr(h.ReadU32(p, txValue)),
		GasLimit: Ptr(h.ReadU32(p, txGasLimit)),
		GasPrice: Ptr(h.ReadU32(p, txGasPrice)),
		Input:    DecodeBytes(h, Ptr(h.ReadU32(p, txInput))),
		Nonce:    Ptr(h.ReadU32(p, txNonce)),
	}
	copy(t.From[:], DecodeBytes(h, Ptr(h.ReadU32(p, txFrom))))
	if toPtr := Ptr(h.ReadU32(p, txTo)); !toPtr.IsNull() {
		var to Address
		copy(to[:], DecodeBytes(h, toPtr))
		t.To = &to
	}
	return t
}

// Receipt is the native mirror of the host's transaction receipt record.
// ContractAddress and Root are nullable.
type Receipt struct {
	TransactionHash    []byte
	TransactionIndex   uint32
	BlockHash          []byte
	BlockNumber        Ptr
	CumulativeGasUsed  Ptr
	GasUsed            Ptr
	ContractAddress    *Address
	Status             uint32
	Root               []byte
	LogsBloom          []byte
}

// DecodeReceipt reads a Receipt record at p.
func DecodeReceipt(c *Codec, p Ptr) *Receipt {
	if p.IsNull() {
		return nil
	}
	h := c.h
	r := &Receipt{
		TransactionHash:   DecodeBytes(h, Ptr(h.ReadU32(p, receiptTransactionHash))),
		TransactionIndex:  h.ReadU32(p, receiptTransactionIndex),
		BlockHash:         DecodeBytes(h, Ptr(h.ReadU32(p, receiptBlockHash))),
		BlockNumber:       Ptr(h.ReadU32(p, receiptBlockNumber)),
		CumulativeGasUsed: Ptr(h.ReadU32(p, receiptCumulativeGas)),
		GasUsed:           Ptr(h.ReadU32(p, receiptGasUsed)),
		Status:            h.ReadU32(p, receiptStatus),
		Root:              DecodeBytes(h, Ptr(h.ReadU32(p, receiptRoot))),
		LogsBloom:         DecodeBytes(h, Ptr(h.ReadU32(p, receiptLogsBloom))),
	}
	if addrPtr := Ptr(h.ReadU32(p, receiptContractAddress)); !addrPtr.IsNull() {
		var addr Address
		copy(addr[:], DecodeBytes(h, addrPtr))
		r.ContractAddress = &addr
	}
	return r
}

// EventParam is one positional argument of an event's params array: a name
// alongside its decoded EthereumValue. Generated per-event param structs
// (ParamsDecoder implementations) are built on top of this generic shape,
// the same way the teacher's codegen builds typed structs on top of a
// generic field-by-field decode.
type EventParam struct {
	Name  string
	Value EthereumValue
}

func decodeEventParam(c *Codec, wire *Ptr, native *EventParam) {
	if wire.IsNull() {
		*native = EventParam{}
		return
	}
	h := c.h
	native.Name = DecodeString(h, Ptr(h.ReadU32(*wire, 0)))
	native.Value = DecodeEthereumValue(c, Ptr(h.ReadU32(*wire, 4)))
}

// DecodeEventParams decodes the Array of event-param objects at p.
func DecodeEventParams(c *Codec, p Ptr) []EventParam {
	return decodeArray(c, p, decodeEventParam)
}

// Event is the native mirror of the host's generic event record. Params
// stays a raw wire pointer: the concrete params type differs per ABI event,
// so generated handler wrappers call DecodeParams[T] (codec.go) against it
// rather than this package deciding the type for them (§9 polymorphism
// design note).
type Event struct {
	Address             Address
	LogIndex            uint32
	TransactionLogIndex uint32
	LogType             string
	Block               *Block
	Transaction         *Transaction
	Params              Ptr
	Receipt             *Receipt
}

// DecodeEvent reads an Event record at p. A null p is a fatal programming
// error (§4.4 edge case) and traps rather than returning a zero Event.
func DecodeEvent(c *Codec, p Ptr) *Event {
	if p.IsNull() {
		Trap(ErrNilEvent.Error())
	}
	h := c.h
	e := &Event{
		LogIndex:            h.ReadU32(p, eventLogIndex),
		TransactionLogIndex: h.ReadU32(p, eventTransactionLogIndex),
		LogType:             DecodeString(h, Ptr(h.ReadU32(p, eventLogType))),
		Block:               DecodeBlock(c, Ptr(h.ReadU32(p, eventBlock))),
		Transaction:         DecodeTransaction(c, Ptr(h.ReadU32(p, eventTransaction))),
		Params:              Ptr(h.ReadU32(p, eventParams)),
		Receipt:             DecodeReceipt(c, Ptr(h.ReadU32(p, eventReceipt))),
	}
	copy(e.Address[:], DecodeBytes(h, Ptr(h.ReadU32(p, eventAddress))))
	return e
}

// --- fixture construction ---
//
// Production modules never build Block/Transaction/Receipt/Event objects -
// only the host does. But a mock host (mock package) needs to build them to
// hand to a handler under test, and the ABI gives no separate "encode"
// contract to reuse for that (§4.4 only specifies decode), so these
// constructors exist purely to let the mock package and this package's own
// tests synthesize well-formed chain records without duplicating the
// offset table.

// EncodeBlock allocates a Block record populated from b.
func EncodeBlock(h Heap, b *Block) Ptr {
	p := h.Alloc(blockBaseFeePerGas+4, ClassObject)
	h.WriteU32(p, blockHash, EncodeBytes(h, b.Hash).Raw())
	h.WriteU32(p, blockParentHash, EncodeBytes(h, b.ParentHash).Raw())
	h.WriteU32(p, blockUnclesHash, EncodeBytes(h, b.UnclesHash).Raw())
	h.WriteU32(p, blockAuthor, EncodeBytes(h, b.Author[:]).Raw())
	h.WriteU32(p, blockStateRoot, EncodeBytes(h, b.StateRoot).Raw())
	h.WriteU32(p, blockTransactionsRt, EncodeBytes(h, b.TransactionsRoot).Raw())
	h.WriteU32(p, blockReceiptsRoot, EncodeBytes(h, b.ReceiptsRoot).Raw())
	h.WriteU32(p, blockNumber, b.Number.Raw())
	h.WriteU32(p, blockGasUsed, b.GasUsed.Raw())
	h.WriteU32(p, blockGasLimit, b.GasLimit.Raw())
	h.WriteU32(p, blockTimestamp, b.Timestamp.Raw())
	h.WriteU32(p, blockDifficulty, b.Difficulty.Raw())
	h.WriteU32(p, blockTotalDifficulty, b.TotalDifficulty.Raw())
	h.WriteU32(p, blockSize, b.Size.Raw())
	h.WriteU32(p, blockBaseFeePerGas, b.BaseFeePerGas.Raw())
	return p
}

// EncodeTransaction allocates a Transaction record populated from t.
func EncodeTransaction(h Heap, t *Transaction) Ptr {
	p := h.Alloc(txNonce+4, ClassObject)
	h.WriteU32(p, txHash, EncodeBytes(h, t.Hash).Raw())
	h.WriteU32(p, txIndex, t.Index)
	h.WriteU32(p, txFrom, EncodeBytes(h, t.From[:]).Raw())
	if t.To != nil {
		h.WriteU32(p, txTo, EncodeBytes(h, t.To[:]).Raw())
	}
	h.WriteU32(p, txValue, t.Value.Raw())
	h.WriteU32(p, txGasLimit, t.GasLimit.Raw())
	h.WriteU32(p, txGasPrice, t.GasPrice.Raw())
	h.WriteU32(p, txInput, EncodeBytes(h, t.Input).Raw())
	h.WriteU32(p, txNonce, t.Nonce.Raw())
	return p
}

// EncodeReceipt allocates a Receipt record populated from r.
func EncodeReceipt(h Heap, r *Receipt) Ptr {
	p := h.Alloc(receiptLogsBloom+4, ClassObject)
	h.WriteU32(p, receiptTransactionHash, EncodeBytes(h, r.TransactionHash).Raw())
	h.WriteU32(p, receiptTransactionIndex, r.TransactionIndex)
	h.WriteU32(p, receiptBlockHash, EncodeBytes(h, r.BlockHash).Raw())
	h.WriteU32(p, receiptBlockNumber, r.BlockNumber.Raw())
	h.WriteU32(p, receiptCumulativeGas, r.CumulativeGasUsed.Raw())
	h.WriteU32(p, receiptGasUsed, r.GasUsed.Raw())
	if r.ContractAddress != nil {
		h.WriteU32(p, receiptContractAddress, EncodeBytes(h, r.ContractAddress[:]).Raw())
	}
	h.WriteU32(p, receiptStatus, r.Status)
	h.WriteU32(p, receiptRoot, EncodeBytes(h, r.Root).Raw())
	h.WriteU32(p, receiptLogsBloom, EncodeBytes(h, r.LogsBloom).Raw())
	return p
}

// EncodeEvent allocates an Event record populated from e. Params must
// already be a wire pointer to an Array of event-param objects (see
// DecodeEventParams for the layout read back).
func EncodeEvent(h Heap, e *Event) Ptr {
	p := h.Alloc(eventReceipt+4, ClassObject)
	h.WriteU32(p, eventAddress, EncodeBytes(h, e.Address[:]).Raw())
	h.WriteU32(p, eventLogIndex, e.LogIndex)
	h.WriteU32(p, eventTransactionLogIndex, e.TransactionLogIndex)
	h.WriteU32(p, eventLogType, EncodeString(h, e.LogType).Raw())
	var blockPtr, txPtr, receiptPtr uint32
	if e.Block != nil {
		blockPtr = EncodeBlock(h, e.Block).Raw()
	}
	if e.Transaction != nil {
		txPtr = EncodeTransaction(h, e.Transaction).Raw()
	}
	if e.Receipt != nil {
		receiptPtr = EncodeReceipt(h, e.Receipt).Raw()
	}
	h.WriteU32(p, eventBlock, blockPtr)
	h.WriteU32(p, eventTransaction, txPtr)
	h.WriteU32(p, eventParams, e.Params.Raw())
	h.WriteU32(p, eventReceipt, receiptPtr)
	return p
}
