// yogurt: Go runtime and ABI bridge for WASM subgraph mappings
// Copyright 2024 yogurt Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mock provides a yogurt.Host implementation that never crosses a
// wasm boundary, grounded in the distilled runtime's own MockContext: an
// in-memory entity store plus working (if approximate, for decimals) host
// arithmetic, so handler logic can be exercised with plain `go test` the
// same way mock_block/mock_transaction/mock_receipt let the original
// runtime's own tests build fixtures without a chain.
package mock

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/yogurt-sh/yogurt"
)

// Default gas fixtures, lifted from the distilled runtime's own
// mock_transaction/mock_receipt helpers so handler tests that lean on
// "a plausible transaction" get the same numbers the original test helpers
// did.
const (
	DefaultGasLimit          = 30_000_000
	DefaultTxGasLimit        = 21_000
	DefaultGasPrice          = 1_000_000_000
	DefaultCumulativeGasUsed = 21_000
)

// LogEntry records one Log call for assertions in tests that care what a
// handler logged.
type LogEntry struct {
	Severity yogurt.LogSeverity
	Message  string
}

// Context is a yogurt.Host bound to a single SimHeap. It is not safe to
// share across goroutines beyond the internal locking needed for the store
// map, matching the single-threaded nature of a real module invocation.
type Context struct {
	Heap *yogurt.SimHeap

	mu    sync.Mutex
	store map[string]map[string]yogurt.Ptr

	bigints    map[yogurt.Ptr]*big.Int
	bigdecs    map[yogurt.Ptr]*big.Float
	jsonValues map[yogurt.Ptr]yogurt.Value

	Address yogurt.Address
	Network string

	dataSourceCtx    yogurt.TypedMap
	hasDataSourceCtx bool

	Logs   []LogEntry
	Logger *logrus.Logger

	ENS  map[[32]byte]string
	IPFS map[string][]byte
}

// New builds an empty mock context over a fresh SimHeap and binds it to
// yogurt.Imports, the way the tinygo build's init binds the real host.
// Tests typically call this once per handler invocation and discard it.
func New() *Context {
	ctx := &Context{
		Heap:    yogurt.NewSimHeap(yogurt.DefaultHeapBase),
		store:   map[string]map[string]yogurt.Ptr{},
		bigints: map[yogurt.Ptr]*big.Int{},
		bigdecs: map[yogurt.Ptr]*big.Float{},
		Network: "mainnet",
		Logger:  logrus.New(),
		ENS:     map[[32]byte]string{},
		IPFS:    map[string][]byte{},
	}
	yogurt.Imports = ctx
	return ctx
}

// WithDataSourceContext sets the TypedMap a subsequent DataSourceContext
// call resolves to, simulating a dynamic data source created with params.
func (c *Context) WithDataSourceContext(ctx yogurt.TypedMap) *Context {
	c.dataSourceCtx, c.hasDataSourceCtx = ctx, true
	return c
}

// SetEntity seeds the store directly, bypassing StoreSet, for tests that
// want an entity to already exist before a handler runs.
func (c *Context) SetEntity(entityType, id string, wire yogurt.Ptr) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(entityType, id, wire)
}

// Entity returns the raw wire pointer stored under (entityType, id), for
// tests asserting on what a handler wrote.
func (c *Context) Entity(entityType, id string) (yogurt.Ptr, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byID, ok := c.store[entityType]
	if !ok {
		return yogurt.Null, false
	}
	p, ok := byID[id]
	return p, ok
}

func (c *Context) putLocked(entityType, id string, wire yogurt.Ptr) {
	byID, ok := c.store[entityType]
	if !ok {
		byID = map[string]yogurt.Ptr{}
		c.store[entityType] = byID
	}
	byID[id] = wire
}

// --- store.* ---

func (c *Context) StoreGet(entity, id yogurt.Ptr) yogurt.Ptr {
	entityType := yogurt.DecodeString(c.Heap, entity)
	idStr := yogurt.DecodeString(c.Heap, id)
	p, ok := c.Entity(entityType, idStr)
	if !ok {
		return yogurt.Null
	}
	return p
}

func (c *Context) StoreSet(entity, id, data yogurt.Ptr) {
	entityType := yogurt.DecodeString(c.Heap, entity)
	idStr := yogurt.DecodeString(c.Heap, id)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(entityType, idStr, data)
}

func (c *Context) StoreRemove(entity, id yogurt.Ptr) {
	entityType := yogurt.DecodeString(c.Heap, entity)
	idStr := yogurt.DecodeString(c.Heap, id)
	c.mu.Lock()
	defer c.mu.Unlock()
	if byID, ok := c.store[entityType]; ok {
		delete(byID, idStr)
	}
}

// --- ethereum.* ---
//
// Contract I/O has no useful simulation without an actual chain or a
// recorded fixture format the distilled source never specified (§9 open
// question), so these three log and return null rather than pretend to
// call out. Tests that need Call to succeed should seed a fixture through
// a handler-specific hook instead of relying on this default.

func (c *Context) EthereumCall(call yogurt.Ptr) yogurt.Ptr {
	c.Logger.Warn("mock: ethereum.call is not simulated, returning null")
	return yogurt.Null
}

func (c *Context) EthereumEncode(params yogurt.Ptr) yogurt.Ptr {
	c.Logger.Warn("mock: ethereum.encode is not simulated, returning null")
	return yogurt.Null
}

func (c *Context) EthereumDecode(types, data yogurt.Ptr) yogurt.Ptr {
	c.Logger.Warn("mock: ethereum.decode is not simulated, returning null")
	return yogurt.Null
}

// --- typeConversion.* ---

func (c *Context) BytesToString(b yogurt.Ptr) yogurt.Ptr {
	return yogurt.EncodeString(c.Heap, string(yogurt.DecodeBytes(c.Heap, b)))
}

func (c *Context) BytesToHex(b yogurt.Ptr) yogurt.Ptr {
	raw := yogurt.DecodeBytes(c.Heap, b)
	return yogurt.EncodeString(c.Heap, "0x"+hex.EncodeToString(raw))
}

func (c *Context) BigIntToString(b yogurt.Ptr) yogurt.Ptr {
	return yogurt.EncodeString(c.Heap, c.bigint(b).String())
}

func (c *Context) BigIntToHex(b yogurt.Ptr) yogurt.Ptr {
	n := c.bigint(b)
	sign := ""
	if n.Sign() < 0 {
		sign = "-"
	}
	return yogurt.EncodeString(c.Heap, fmt.Sprintf("%s0x%x", sign, new(big.Int).Abs(n)))
}

func (c *Context) StringToH160(s yogurt.Ptr) yogurt.Ptr {
	text := yogurt.DecodeString(c.Heap, s)
	if len(text) >= 2 && (text[:2] == "0x" || text[:2] == "0X") {
		text = text[2:]
	}
	raw, err := hex.DecodeString(text)
	if err != nil {
		c.Logger.WithError(err).Warn("mock: stringToH160 could not parse address")
		raw = nil
	}
	addr := make([]byte, 20)
	copy(addr[20-len(raw):], raw)
	return yogurt.EncodeBytes(c.Heap, addr)
}

func (c *Context) BytesToBase58(b yogurt.Ptr) yogurt.Ptr {
	raw := yogurt.DecodeBytes(c.Heap, b)
	return yogurt.EncodeString(c.Heap, base58.Encode(raw))
}

// --- bigInt.* ---
//
// Real arbitrary-precision integers back these handles via math/big.Int
// rather than the package's own holiman/uint256: uint256 is a fixed-width
// unsigned type, unsuitable as the backing representation for a mock that
// must also support negative deltas (entity fields routinely subtract
// balances), whereas bigint.go's own use of uint256 is a read-only,
// non-negative-only convenience projection and does not need to hold the
// canonical value.

func (c *Context) bigint(p yogurt.Ptr) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.bigints[p]; ok {
		return n
	}
	return new(big.Int)
}

func (c *Context) newBigInt(n *big.Int) yogurt.Ptr {
	p := c.Heap.Alloc(8, yogurt.ClassObject)
	c.mu.Lock()
	c.bigints[p] = n
	c.mu.Unlock()
	return p
}

// NewBigInt exposes handle creation to tests that need to seed a BigInt
// field of a fixture entity or chain record.
func (c *Context) NewBigInt(n int64) yogurt.Ptr { return c.newBigInt(big.NewInt(n)) }

func (c *Context) BigIntPlus(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Add(c.bigint(a), c.bigint(b)))
}
func (c *Context) BigIntMinus(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Sub(c.bigint(a), c.bigint(b)))
}
func (c *Context) BigIntTimes(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Mul(c.bigint(a), c.bigint(b)))
}
func (c *Context) BigIntDividedBy(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Quo(c.bigint(a), c.bigint(b)))
}
func (c *Context) BigIntMod(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Rem(c.bigint(a), c.bigint(b)))
}
func (c *Context) BigIntPow(a yogurt.Ptr, exp uint32) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Exp(c.bigint(a), big.NewInt(int64(exp)), nil))
}
func (c *Context) BigIntBitOr(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Or(c.bigint(a), c.bigint(b)))
}
func (c *Context) BigIntBitAnd(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigInt(new(big.Int).And(c.bigint(a), c.bigint(b)))
}
func (c *Context) BigIntLeftShift(a yogurt.Ptr, bits uint32) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Lsh(c.bigint(a), uint(bits)))
}
func (c *Context) BigIntRightShift(a yogurt.Ptr, bits uint32) yogurt.Ptr {
	return c.newBigInt(new(big.Int).Rsh(c.bigint(a), uint(bits)))
}

// --- bigDecimal.* ---
//
// Backed by math/big.Float at a fixed, generous precision: good enough for
// handler unit tests to sanity-check arithmetic, but - like the real ABI's
// own documented equals caveat - never assumed exact against a production
// host's decimal semantics.

const bigDecimalPrec = 256

func (c *Context) bigdecimal(p yogurt.Ptr) *big.Float {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.bigdecs[p]; ok {
		return f
	}
	return new(big.Float).SetPrec(bigDecimalPrec)
}

func (c *Context) newBigDecimal(f *big.Float) yogurt.Ptr {
	p := c.Heap.Alloc(8, yogurt.ClassObject)
	c.mu.Lock()
	c.bigdecs[p] = f
	c.mu.Unlock()
	return p
}

// NewBigDecimal exposes handle creation to tests seeding a BigDecimal field.
func (c *Context) NewBigDecimal(v float64) yogurt.Ptr {
	return c.newBigDecimal(new(big.Float).SetPrec(bigDecimalPrec).SetFloat64(v))
}

func (c *Context) BigDecimalPlus(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigDecimal(new(big.Float).SetPrec(bigDecimalPrec).Add(c.bigdecimal(a), c.bigdecimal(b)))
}
func (c *Context) BigDecimalMinus(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigDecimal(new(big.Float).SetPrec(bigDecimalPrec).Sub(c.bigdecimal(a), c.bigdecimal(b)))
}
func (c *Context) BigDecimalTimes(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigDecimal(new(big.Float).SetPrec(bigDecimalPrec).Mul(c.bigdecimal(a), c.bigdecimal(b)))
}
func (c *Context) BigDecimalDividedBy(a, b yogurt.Ptr) yogurt.Ptr {
	return c.newBigDecimal(new(big.Float).SetPrec(bigDecimalPrec).Quo(c.bigdecimal(a), c.bigdecimal(b)))
}
func (c *Context) BigDecimalEquals(a, b yogurt.Ptr) bool {
	return c.bigdecimal(a).Cmp(c.bigdecimal(b)) == 0
}
func (c *Context) BigDecimalToString(a yogurt.Ptr) yogurt.Ptr {
	return yogurt.EncodeString(c.Heap, c.bigdecimal(a).Text('f', -1))
}
func (c *Context) BigDecimalFromString(s yogurt.Ptr) yogurt.Ptr {
	text := yogurt.DecodeString(c.Heap, s)
	f, _, err := big.ParseFloat(text, 10, bigDecimalPrec, big.ToNearestEven)
	if err != nil {
		c.Logger.WithError(err).Warn("mock: bigDecimal.fromString could not parse")
		f = new(big.Float).SetPrec(bigDecimalPrec)
	}
	return c.newBigDecimal(f)
}

// --- crypto.keccak256 ---
//
// go-ethereum's crypto package is safe to import here: the mock package is
// test-only and never compiled by tinygo. (internal/deploy imports
// go-ethereum's rpc package, and the root package's ethereum.go imports
// accounts/abi.)

func (c *Context) Keccak256(data yogurt.Ptr) yogurt.Ptr {
	raw := yogurt.DecodeBytes(c.Heap, data)
	digest := crypto.Keccak256(raw)
	return yogurt.EncodeBytes(c.Heap, digest)
}

// --- json.* ---

func (c *Context) JSONFromBytes(b yogurt.Ptr) yogurt.Ptr {
	raw := yogurt.DecodeBytes(c.Heap, b)
	v, err := yogurt.ParseValue(raw)
	if err != nil {
		c.Logger.WithError(err).Warn("mock: json.fromBytes could not parse")
		return yogurt.Null
	}
	return c.newJSON(v)
}

func (c *Context) jsonValue(p yogurt.Ptr) yogurt.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.jsonValues[p]; ok {
		return v
	}
	return yogurt.Value{Kind: yogurt.ValueNull}
}

func (c *Context) newJSON(v yogurt.Value) yogurt.Ptr {
	p := c.Heap.Alloc(8, yogurt.ClassObject)
	c.mu.Lock()
	if c.jsonValues == nil {
		c.jsonValues = map[yogurt.Ptr]yogurt.Value{}
	}
	c.jsonValues[p] = v
	c.mu.Unlock()
	return p
}

func (c *Context) JSONToI64(v yogurt.Ptr) int64 { return int64(c.jsonValue(v).Number) }
func (c *Context) JSONToU64(v yogurt.Ptr) uint64 { return uint64(c.jsonValue(v).Number) }
func (c *Context) JSONToF64(v yogurt.Ptr) float64 { return c.jsonValue(v).Number }
func (c *Context) JSONToBigInt(v yogurt.Ptr) yogurt.Ptr {
	return c.newBigInt(big.NewInt(int64(c.jsonValue(v).Number)))
}

// --- ipfs.* ---

// PutIPFS seeds content reachable through a later IPFSCat/IPFSMap call.
func (c *Context) PutIPFS(hashOrPath string, content []byte) {
	c.IPFS[hashOrPath] = content
}

func (c *Context) IPFSCat(hash yogurt.Ptr) yogurt.Ptr {
	key := yogurt.DecodeString(c.Heap, hash)
	content, ok := c.IPFS[key]
	if !ok {
		return yogurt.Null
	}
	return yogurt.EncodeBytes(c.Heap, content)
}

// IPFSMap is not simulated: exercising it for real would mean re-invoking
// a named export from inside a Host method, which only the real runtime
// harness can do safely. Tests that need it call the named handler directly
// against each fixture entry instead.
func (c *Context) IPFSMap(hash, callback, userData, flags yogurt.Ptr) {
	c.Logger.Warn("mock: ipfs.map is not simulated")
}

// --- log.log ---

func (c *Context) recordLog(severity yogurt.LogSeverity, msg string) {
	c.Logs = append(c.Logs, LogEntry{Severity: severity, Message: msg})
	switch severity {
	case yogurt.LogCritical, yogurt.LogError:
		c.Logger.Error(msg)
	case yogurt.LogWarning:
		c.Logger.Warn(msg)
	case yogurt.LogDebug:
		c.Logger.Debug(msg)
	default:
		c.Logger.Info(msg)
	}
}

func (c *Context) Log(level int32, msg yogurt.Ptr) {
	c.recordLog(yogurt.LogSeverity(level), yogurt.DecodeString(c.Heap, msg))
}

// --- dataSource.* ---

func (c *Context) DataSourceCreate(template, params yogurt.Ptr) {
	name := yogurt.DecodeString(c.Heap, template)
	c.Logger.WithField("template", name).Info("mock: dataSource.create")
}

func (c *Context) DataSourceAddress() yogurt.Ptr {
	return yogurt.EncodeBytes(c.Heap, c.Address[:])
}

func (c *Context) DataSourceNetwork() yogurt.Ptr {
	return yogurt.EncodeString(c.Heap, c.Network)
}

func (c *Context) DataSourceContext() yogurt.Ptr {
	if !c.hasDataSourceCtx {
		return yogurt.Null
	}
	enc := yogurt.NewEncoder(c.Heap)
	defer enc.Release()
	ctx := c.dataSourceCtx
	var wire yogurt.Ptr
	yogurt.DefineTypedMap(enc, &wire, &ctx)
	return wire
}

// --- ens.* ---

// PutENS seeds a reverse ENS lookup entry.
func (c *Context) PutENS(hash [32]byte, name string) {
	c.ENS[hash] = name
}

func (c *Context) ENSNameByHash(hash yogurt.Ptr) yogurt.Ptr {
	raw := yogurt.DecodeBytes(c.Heap, hash)
	var key [32]byte
	copy(key[:], raw)
	name, ok := c.ENS[key]
	if !ok {
		return yogurt.Null
	}
	return yogurt.EncodeString(c.Heap, name)
}
