package util

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/ugorji/go/codec"
)

type PlutusKind uint8

const (
	PlutusConstr PlutusKind = iota
	PlutusMap
	PlutusList
	PlutusInt
	PlutusBytes
)

func (k PlutusKind) String() string {
	switch k {
	case PlutusConstr:
		return "constr"
	case PlutusMap:
		return "map"
	case PlutusList:
		return "list"
	case PlutusInt:
		return "int"
	case PlutusBytes:
		return "bytes"
	}
	return fmt.Sprintf("PlutusKind(%d)", uint8(k))
}

const (
	cborTagPositiveBignum = 2
	cborTagNegativeBignum = 3
	cborTagConstrGeneral  = 102
	cborTagConstrSmall    = 121
	cborTagConstrLarge    = 1280

	// byte strings inside plutus data must be chunked past this size
	maxPlutusBytesChunk = 64
)

// PlutusData is the on-chain data representation used by datums and redeemers.
// Exactly one of the payload fields is meaningful, selected by Kind.
// Integers of any size, including tagged bignums, are held as Int.
type PlutusData struct {
	Kind        PlutusKind
	Constructor uint64
	Fields      []PlutusData
	List        []PlutusData
	Map         []PlutusPair
	Int         *big.Int
	Bytes       []byte
}

type PlutusPair struct {
	Key   PlutusData
	Value PlutusData
}

var ErrPlutusData = errors.New("invalid plutus data")

func NewConstr(alternative uint64, fields ...PlutusData) PlutusData {
	if fields == nil {
		fields = []PlutusData{}
	}
	return PlutusData{Kind: PlutusConstr, Constructor: alternative, Fields: fields}
}

func NewList(items ...PlutusData) PlutusData {
	if items == nil {
		items = []PlutusData{}
	}
	return PlutusData{Kind: PlutusList, List: items}
}

func NewMap(pairs ...PlutusPair) PlutusData {
	if pairs == nil {
		pairs = []PlutusPair{}
	}
	return PlutusData{Kind: PlutusMap, Map: pairs}
}

func NewInt(v int64) PlutusData {
	return PlutusData{Kind: PlutusInt, Int: big.NewInt(v)}
}

func NewUint(v uint64) PlutusData {
	return PlutusData{Kind: PlutusInt, Int: new(big.Int).SetUint64(v)}
}

func NewBigInt(v *big.Int) PlutusData {
	return PlutusData{Kind: PlutusInt, Int: new(big.Int).Set(v)}
}

func NewBytes(b []byte) PlutusData {
	if b == nil {
		b = []byte{}
	}
	return PlutusData{Kind: PlutusBytes, Bytes: b}
}

// NewBool follows the Plutus convention: Constr 0 [] is False, Constr 1 [] is True.
func NewBool(v bool) PlutusData {
	if v {
		return NewConstr(1)
	}
	return NewConstr(0)
}

func (p PlutusData) AsBigInt() (*big.Int, error) {
	if p.Kind != PlutusInt || p.Int == nil {
		return nil, fmt.Errorf("%w: expected int, got %s", ErrPlutusData, p.Kind)
	}
	return new(big.Int).Set(p.Int), nil
}

func (p PlutusData) AsInt64() (int64, error) {
	n, err := p.AsBigInt()
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: int %s overflows int64", ErrPlutusData, n)
	}
	return n.Int64(), nil
}

func (p PlutusData) AsUint64() (uint64, error) {
	n, err := p.AsBigInt()
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: int %s is not a uint64", ErrPlutusData, n)
	}
	return n.Uint64(), nil
}

func (p PlutusData) AsBytes() ([]byte, error) {
	if p.Kind != PlutusBytes {
		return nil, fmt.Errorf("%w: expected bytes, got %s", ErrPlutusData, p.Kind)
	}
	return p.Bytes, nil
}

func (p PlutusData) AsBool() (bool, error) {
	if p.Kind != PlutusConstr || len(p.Fields) != 0 || p.Constructor > 1 {
		return false, fmt.Errorf("%w: expected bool constr", ErrPlutusData)
	}
	return p.Constructor == 1, nil
}

// ConstrFields returns the fields of a constr with the given alternative and arity.
func (p PlutusData) ConstrFields(alternative uint64, arity int) ([]PlutusData, error) {
	if p.Kind != PlutusConstr {
		return nil, fmt.Errorf("%w: expected constr, got %s", ErrPlutusData, p.Kind)
	}
	if p.Constructor != alternative {
		return nil, fmt.Errorf("%w: expected constr %d, got %d", ErrPlutusData, alternative, p.Constructor)
	}
	if len(p.Fields) != arity {
		return nil, fmt.Errorf("%w: constr %d has %d fields, expected %d", ErrPlutusData, alternative, len(p.Fields), arity)
	}
	return p.Fields, nil
}

func (p PlutusData) MarshalCbor() ([]byte, error) {
	v, err := p.cborValue()
	if err != nil {
		return nil, err
	}
	return EncodeCbor(v)
}

func (p PlutusData) cborValue() (interface{}, error) {
	switch p.Kind {
	case PlutusInt:
		if p.Int == nil {
			return nil, fmt.Errorf("%w: nil int", ErrPlutusData)
		}
		return bigIntCborValue(p.Int), nil

	case PlutusBytes:
		if len(p.Bytes) > maxPlutusBytesChunk {
			return nil, fmt.Errorf("%w: byte string of %d bytes exceeds %d", ErrPlutusData, len(p.Bytes), maxPlutusBytesChunk)
		}
		if p.Bytes == nil {
			return []byte{}, nil
		}
		return p.Bytes, nil

	case PlutusList:
		return plutusArray(p.List)

	case PlutusMap:
		type entry struct {
			key   []byte
			value interface{}
		}
		entries := make([]entry, 0, len(p.Map))
		for _, pair := range p.Map {
			k, err := pair.Key.MarshalCbor()
			if err != nil {
				return nil, err
			}
			v, err := pair.Value.cborValue()
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry{key: k, value: v})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return bytes.Compare(entries[i].key, entries[j].key) < 0
		})
		m := make(cborMap, 0, 2*len(entries))
		for _, e := range entries {
			m = append(m, codec.Raw(e.key), e.value)
		}
		return m, nil

	case PlutusConstr:
		fields, err := plutusArray(p.Fields)
		if err != nil {
			return nil, err
		}
		switch {
		case p.Constructor < 7:
			return cborTag(cborTagConstrSmall+p.Constructor, fields), nil
		case p.Constructor < 128:
			return cborTag(cborTagConstrLarge+p.Constructor-7, fields), nil
		default:
			return cborTag(cborTagConstrGeneral, []interface{}{p.Constructor, fields}), nil
		}
	}

	return nil, fmt.Errorf("%w: unknown kind %s", ErrPlutusData, p.Kind)
}

func plutusArray(items []PlutusData) ([]interface{}, error) {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		v, err := item.cborValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func bigIntCborValue(n *big.Int) interface{} {
	if n.IsUint64() {
		return n.Uint64()
	}
	if n.IsInt64() {
		return n.Int64()
	}
	if n.Sign() > 0 {
		return cborTag(cborTagPositiveBignum, n.Bytes())
	}
	// negative bignums carry -1 - n
	abs := new(big.Int).Neg(n)
	abs.Sub(abs, big.NewInt(1))
	return cborTag(cborTagNegativeBignum, abs.Bytes())
}

// ParsePlutusData decodes CBOR encoded plutus data.
// Map entries come back ordered by their encoded key, not by their order on the wire.
func ParsePlutusData(data []byte) (PlutusData, error) {
	var raw interface{}
	if err := DecodeCbor(data, &raw); err != nil {
		return PlutusData{}, err
	}
	return plutusFromCbor(raw)
}

func plutusFromCbor(v interface{}) (PlutusData, error) {
	switch x := v.(type) {
	case uint64:
		return PlutusData{Kind: PlutusInt, Int: new(big.Int).SetUint64(x)}, nil
	case int64:
		return PlutusData{Kind: PlutusInt, Int: big.NewInt(x)}, nil
	case []byte:
		return NewBytes(x), nil
	case string:
		// byte string map keys are surfaced as strings by the decoder
		return NewBytes([]byte(x)), nil
	case []interface{}:
		items, err := plutusItems(x)
		if err != nil {
			return PlutusData{}, err
		}
		return NewList(items...), nil
	case map[interface{}]interface{}:
		return plutusMapFromCbor(x)
	case codec.RawExt:
		return plutusFromTag(x.Tag, x.Value)
	case *codec.RawExt:
		return plutusFromTag(x.Tag, x.Value)
	}
	return PlutusData{}, fmt.Errorf("%w: unsupported cbor value %T", ErrPlutusData, v)
}

func plutusItems(values []interface{}) ([]PlutusData, error) {
	items := make([]PlutusData, 0, len(values))
	for _, value := range values {
		item, err := plutusFromCbor(value)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func plutusMapFromCbor(m map[interface{}]interface{}) (PlutusData, error) {
	type entry struct {
		encoded []byte
		pair    PlutusPair
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		key, err := plutusFromCbor(k)
		if err != nil {
			return PlutusData{}, err
		}
		value, err := plutusFromCbor(v)
		if err != nil {
			return PlutusData{}, err
		}
		encoded, err := key.MarshalCbor()
		if err != nil {
			return PlutusData{}, err
		}
		entries = append(entries, entry{encoded: encoded, pair: PlutusPair{Key: key, Value: value}})
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].encoded, entries[j].encoded) < 0
	})
	pairs := make([]PlutusPair, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, e.pair)
	}
	return NewMap(pairs...), nil
}

func plutusFromTag(tag uint64, value interface{}) (PlutusData, error) {
	switch {
	case tag == cborTagPositiveBignum || tag == cborTagNegativeBignum:
		b, ok := value.([]byte)
		if !ok {
			return PlutusData{}, fmt.Errorf("%w: bignum payload is %T", ErrPlutusData, value)
		}
		n := new(big.Int).SetBytes(b)
		if tag == cborTagNegativeBignum {
			n.Neg(n)
			n.Sub(n, big.NewInt(1))
		}
		return PlutusData{Kind: PlutusInt, Int: n}, nil

	case tag >= cborTagConstrSmall && tag < cborTagConstrSmall+7:
		return constrFromCbor(tag-cborTagConstrSmall, value)

	case tag >= cborTagConstrLarge && tag < cborTagConstrLarge+121:
		return constrFromCbor(tag-cborTagConstrLarge+7, value)

	case tag == cborTagConstrGeneral:
		arr, ok := value.([]interface{})
		if !ok || len(arr) != 2 {
			return PlutusData{}, fmt.Errorf("%w: malformed general constr", ErrPlutusData)
		}
		alternative, ok := arr[0].(uint64)
		if !ok {
			return PlutusData{}, fmt.Errorf("%w: constr alternative is %T", ErrPlutusData, arr[0])
		}
		return constrFromCbor(alternative, arr[1])
	}
	return PlutusData{}, fmt.Errorf("%w: unexpected tag %d", ErrPlutusData, tag)
}

func constrFromCbor(alternative uint64, value interface{}) (PlutusData, error) {
	arr, ok := value.([]interface{})
	if !ok {
		return PlutusData{}, fmt.Errorf("%w: constr %d fields are %T", ErrPlutusData, alternative, value)
	}
	fields, err := plutusItems(arr)
	if err != nil {
		return PlutusData{}, err
	}
	return NewConstr(alternative, fields...), nil
}
