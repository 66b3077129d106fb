// Package tx builds and signs Ethereum transactions across the
// legacy, EIP-155, EIP-2930 (access list), and EIP-1559 (dynamic fee)
// payload formats, each with its own RLP encoding, following
// original_source's types/transaction.rs and types/access_list.rs.
package tx

import (
	"errors"

	"github.com/holiman/uint256"
	"signet.dev/signet/bigint"
	"signet.dev/signet/curve"
	"signet.dev/signet/ecdsa"
	"signet.dev/signet/encoding/rlp"
	"signet.dev/signet/encoding/ssz"
	"signet.dev/signet/ethereum/address"
	"signet.dev/signet/hash/hmac"
	"signet.dev/signet/hash/sha3"
)

// Type distinguishes the four payload formats this package builds.
type Type uint8

const (
	// Legacy is the original pre-EIP-155 format: no chain id is bound
	// into the signature.
	Legacy Type = iota
	// EIP155 is the legacy format with the chain id folded into the
	// signing hash per EIP-155, preventing cross-chain replay.
	EIP155
	// EIP2930 carries an explicit access list and a leading type byte
	// (0x01).
	EIP2930
	// EIP1559 is the dynamic-fee format (type byte 0x02) with separate
	// gas tip and fee caps instead of a single gas price.
	EIP1559
)

var (
	// ErrNotSigned is returned by Hash and MarshalBinary when called
	// before Sign.
	ErrNotSigned = errors.New("tx: transaction has not been signed")
	// ErrMissingChainID is returned by Sign when an EIP-155/2930/1559
	// transaction has no chain id.
	ErrMissingChainID = errors.New("tx: chain id required for this transaction type")
)

// AccessTuple is one entry of an EIP-2930 access list: an address and
// the storage slots the transaction pre-declares it will touch.
type AccessTuple struct {
	Address     address.Address
	StorageKeys [][32]byte
}

// Transaction is a mutable transaction builder; call Sign to populate
// its signature fields before Hash or MarshalBinary.
type Transaction struct {
	Type Type

	ChainID   *uint256.Int // nil for Legacy
	Nonce     uint64
	GasPrice  *uint256.Int // Legacy, EIP155, EIP2930
	GasTipCap *uint256.Int // EIP1559
	GasFeeCap *uint256.Int // EIP1559
	GasLimit  uint64
	To        *address.Address // nil for contract creation
	Value     *uint256.Int
	Data      []byte

	AccessList []AccessTuple // EIP2930, EIP1559

	signed bool
	sig    *ecdsa.Signature
}

// NewLegacyTx builds an unsigned pre-EIP-155 transaction.
func NewLegacyTx(nonce uint64, gasPrice *uint256.Int, gasLimit uint64, to *address.Address, value *uint256.Int, data []byte) *Transaction {
	return &Transaction{Type: Legacy, Nonce: nonce, GasPrice: gasPrice, GasLimit: gasLimit, To: to, Value: value, Data: data}
}

// NewEIP155Tx builds an unsigned transaction whose signature binds
// chainID per EIP-155.
func NewEIP155Tx(chainID *uint256.Int, nonce uint64, gasPrice *uint256.Int, gasLimit uint64, to *address.Address, value *uint256.Int, data []byte) *Transaction {
	return &Transaction{Type: EIP155, ChainID: chainID, Nonce: nonce, GasPrice: gasPrice, GasLimit: gasLimit, To: to, Value: value, Data: data}
}

// NewEIP2930Tx builds an unsigned access-list transaction.
func NewEIP2930Tx(chainID *uint256.Int, nonce uint64, gasPrice *uint256.Int, gasLimit uint64, to *address.Address, value *uint256.Int, data []byte, accessList []AccessTuple) *Transaction {
	return &Transaction{Type: EIP2930, ChainID: chainID, Nonce: nonce, GasPrice: gasPrice, GasLimit: gasLimit, To: to, Value: value, Data: data, AccessList: accessList}
}

// NewEIP1559Tx builds an unsigned dynamic-fee transaction.
func NewEIP1559Tx(chainID *uint256.Int, nonce uint64, gasTipCap, gasFeeCap *uint256.Int, gasLimit uint64, to *address.Address, value *uint256.Int, data []byte, accessList []AccessTuple) *Transaction {
	return &Transaction{Type: EIP1559, ChainID: chainID, Nonce: nonce, GasTipCap: gasTipCap, GasFeeCap: gasFeeCap, GasLimit: gasLimit, To: to, Value: value, Data: data, AccessList: accessList}
}

func (t *Transaction) encodeAccessList() []byte {
	var items [][]byte
	for _, entry := range t.AccessList {
		var keys [][]byte
		for _, k := range entry.StorageKeys {
			keys = append(keys, rlp.EncodeBytes(k[:]))
		}
		addrRLP := rlp.EncodeBytes(entry.Address[:])
		keysRLP := rlp.EncodeList(keys...)
		items = append(items, rlp.EncodeList(addrRLP, keysRLP))
	}
	return rlp.EncodeList(items...)
}

func (t *Transaction) toOrEmpty() []byte {
	if t.To == nil {
		return rlp.EncodeBytes(nil)
	}
	return rlp.EncodeBytes(t.To[:])
}

func encodeU64(n uint64) []byte {
	return rlp.EncodeUint256(uint256.NewInt(n))
}

// unsignedFields builds the RLP field list this transaction's
// signature commits to, before the type byte (for typed transactions)
// or the v/r/s suffix is appended.
func (t *Transaction) unsignedFields() [][]byte {
	switch t.Type {
	case Legacy:
		return [][]byte{
			encodeU64(t.Nonce),
			rlp.EncodeUint256(t.GasPrice),
			encodeU64(t.GasLimit),
			t.toOrEmpty(),
			rlp.EncodeUint256(t.Value),
			rlp.EncodeBytes(t.Data),
		}
	case EIP155:
		return [][]byte{
			encodeU64(t.Nonce),
			rlp.EncodeUint256(t.GasPrice),
			encodeU64(t.GasLimit),
			t.toOrEmpty(),
			rlp.EncodeUint256(t.Value),
			rlp.EncodeBytes(t.Data),
			rlp.EncodeUint256(t.ChainID),
			rlp.EncodeBytes(nil),
			rlp.EncodeBytes(nil),
		}
	case EIP2930:
		return [][]byte{
			rlp.EncodeUint256(t.ChainID),
			encodeU64(t.Nonce),
			rlp.EncodeUint256(t.GasPrice),
			encodeU64(t.GasLimit),
			t.toOrEmpty(),
			rlp.EncodeUint256(t.Value),
			rlp.EncodeBytes(t.Data),
			t.encodeAccessList(),
		}
	case EIP1559:
		return [][]byte{
			rlp.EncodeUint256(t.ChainID),
			encodeU64(t.Nonce),
			rlp.EncodeUint256(t.GasTipCap),
			rlp.EncodeUint256(t.GasFeeCap),
			encodeU64(t.GasLimit),
			t.toOrEmpty(),
			rlp.EncodeUint256(t.Value),
			rlp.EncodeBytes(t.Data),
			t.encodeAccessList(),
		}
	default:
		return nil
	}
}

// signingPreimage returns the bytes Keccak-256 is applied to in order
// to produce this transaction's signing hash.
func (t *Transaction) signingPreimage() []byte {
	payload := rlp.EncodeList(t.unsignedFields()...)
	switch t.Type {
	case Legacy, EIP155:
		return payload
	case EIP2930:
		return append([]byte{0x01}, payload...)
	case EIP1559:
		return append([]byte{0x02}, payload...)
	default:
		return payload
	}
}

// SigningHash returns the Keccak-256 digest that Sign signs over.
func (t *Transaction) SigningHash() [32]byte {
	return sha3.Keccak256(t.signingPreimage())
}

// Sign computes the signing hash and produces an RFC-6979 signature
// over it, filling in the v/r/s fields this transaction's encoding
// carries. hm selects the HMAC hash RFC 6979 uses to draw the nonce.
func (t *Transaction) Sign(priv *ecdsa.PrivateKey, hm hmac.Hash) error {
	if t.Type != Legacy && t.ChainID == nil {
		return ErrMissingChainID
	}
	h := t.SigningHash()
	sig, err := ecdsa.Sign(h[:], priv, hm, ecdsa.SignOptions{LowS: true, AllowLenMismatch: true})
	if err != nil {
		return err
	}
	t.sig = sig
	t.signed = true
	return nil
}

// v returns this transaction's encoded v field, whose meaning depends
// on the payload type: 27/28 for Legacy, chainID*2+35+recoveryParity
// for EIP155, and the bare recovery parity (0 or 1) for the typed
// formats.
func (t *Transaction) v() *uint256.Int {
	parity := uint64(0)
	if t.sig.RecoveryID.OddY() {
		parity = 1
	}
	switch t.Type {
	case Legacy:
		return uint256.NewInt(27 + parity)
	case EIP155:
		v := new(uint256.Int).Mul(t.ChainID, uint256.NewInt(2))
		v.Add(v, uint256.NewInt(35+parity))
		return v
	default:
		return uint256.NewInt(parity)
	}
}

func bigIntToUint256(b bigint.BigInt) *uint256.Int {
	return new(uint256.Int).SetBytes(b.Abs().Bytes())
}

// MarshalBinary renders the fully-signed transaction: bare RLP list
// for Legacy/EIP155, or the type byte followed by the RLP list for
// EIP2930/EIP1559.
func (t *Transaction) MarshalBinary() ([]byte, error) {
	if !t.signed {
		return nil, ErrNotSigned
	}
	fields := t.unsignedFields()

	switch t.Type {
	case Legacy, EIP155:
		// Overwrite the EIP-155 placeholder chainID/0/0 suffix (or
		// append fresh fields for Legacy) with the real v/r/s.
		if t.Type == EIP155 {
			fields = fields[:6]
		}
		fields = append(fields,
			rlp.EncodeUint256(t.v()),
			rlp.EncodeUint256(bigIntToUint256(t.sig.R)),
			rlp.EncodeUint256(bigIntToUint256(t.sig.S)),
		)
		return rlp.EncodeList(fields...), nil

	case EIP2930, EIP1559:
		fields = append(fields,
			rlp.EncodeUint256(t.v()),
			rlp.EncodeUint256(bigIntToUint256(t.sig.R)),
			rlp.EncodeUint256(bigIntToUint256(t.sig.S)),
		)
		payload := rlp.EncodeList(fields...)
		prefix := byte(0x01)
		if t.Type == EIP1559 {
			prefix = 0x02
		}
		return append([]byte{prefix}, payload...), nil

	default:
		return nil, ErrNotSigned
	}
}

// Hash returns the Keccak-256 digest of the fully-signed encoding,
// i.e. the transaction hash as it appears on chain.
func (t *Transaction) Hash() ([32]byte, error) {
	encoded, err := t.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return sha3.Keccak256(encoded), nil
}

// SignatureHashTreeRoot computes the SSZ Merkle root of this
// transaction's signature, for EIP-1559 transactions that want a
// Merkleized commitment to their signature alongside the Keccak-256
// transaction hash.
func (t *Transaction) SignatureHashTreeRoot() ([32]byte, error) {
	if !t.signed {
		return [32]byte{}, ErrNotSigned
	}
	container := ssz.SignatureContainer{V: byte(t.v().Uint64())}
	rBytes := t.sig.R.Abs().Bytes()
	sBytes := t.sig.S.Abs().Bytes()
	copy(container.R[32-len(rBytes):], rBytes)
	copy(container.S[32-len(sBytes):], sBytes)
	return container.HashTreeRoot(), nil
}

// Sender recovers the address that signed this transaction.
func (t *Transaction) Sender(c *curve.Curve) (address.Address, error) {
	if !t.signed {
		return address.Address{}, ErrNotSigned
	}
	h := t.SigningHash()
	keys, err := ecdsa.Recover(t.sig, h[:], c)
	if err != nil {
		return address.Address{}, err
	}
	if len(keys) == 0 {
		return address.Address{}, ecdsa.ErrInvalidPublicKey
	}
	return address.FromPublicKey(keys[0].Point), nil
}
