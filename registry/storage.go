// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namesvm/codec"
	"github.com/ava-labs/namesvm/parser"
)

// 0x0/ (space info)
//   -> [space]
// 0x1/ (name info)
//   -> [space]
//     -> [label]
// 0x2/ (owned names) address -> full name
// 0x3/ (balances)
// 0x4/ (pending fees)
// 0x5/ (price index) price -> space, public spaces only
// 0x6/ (burn totals)

const (
	spacePrefix   = 0x0
	namePrefix    = 0x1
	ownedPrefix   = 0x2
	balancePrefix = 0x3
	pendingPrefix = 0x4
	pricePrefix   = 0x5
	burnPrefix    = 0x6
)

var (
	genesisKey     = []byte("genesis")
	burnedTotalKey = []byte("burned_total")
)

func SpaceInfoKey(space string) []byte {
	return append([]byte{spacePrefix, parser.ByteDelimiter}, space...)
}

func NameKey(space string, label string) []byte {
	b := append([]byte{namePrefix, parser.ByteDelimiter}, space...)
	b = append(b, parser.ByteDelimiter)
	return append(b, label...)
}

func OwnedKey(address common.Address) []byte {
	return append([]byte{ownedPrefix, parser.ByteDelimiter}, address[:]...)
}

func BalanceKey(address common.Address) []byte {
	return append([]byte{balancePrefix, parser.ByteDelimiter}, address[:]...)
}

func PendingFeesKey(address common.Address) []byte {
	return append([]byte{pendingPrefix, parser.ByteDelimiter}, address[:]...)
}

func PriceKey(price uint64) []byte {
	b := make([]byte, 2+8)
	b[0] = pricePrefix
	b[1] = parser.ByteDelimiter
	binary.BigEndian.PutUint64(b[2:], price)
	return b
}

func BurnedKey(address common.Address) []byte {
	return append([]byte{burnPrefix, parser.ByteDelimiter}, address[:]...)
}

func GetSpaceInfo(db database.KeyValueReader, space string) (*SpaceInfo, bool, error) {
	k := SpaceInfoKey(space)
	v, err := db.Get(k)
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var i SpaceInfo
	if _, err := codec.Unmarshal(v, &i); err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

func PutSpaceInfo(db database.KeyValueWriter, space string, i *SpaceInfo) error {
	b, err := codec.Marshal(i)
	if err != nil {
		return err
	}
	return db.Put(SpaceInfoKey(space), b)
}

func HasSpace(db database.KeyValueReader, space string) (bool, error) {
	return db.Has(SpaceInfoKey(space))
}

func GetNameInfo(db database.KeyValueReader, space string, label string) (*NameInfo, bool, error) {
	v, err := db.Get(NameKey(space, label))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var i NameInfo
	if _, err := codec.Unmarshal(v, &i); err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

func PutNameInfo(db database.KeyValueWriter, space string, label string, i *NameInfo) error {
	b, err := codec.Marshal(i)
	if err != nil {
		return err
	}
	return db.Put(NameKey(space, label), b)
}

func HasName(db database.KeyValueReader, space string, label string) (bool, error) {
	return db.Has(NameKey(space, label))
}

// GetOwned returns the full name bound to [address], if any.
func GetOwned(db database.KeyValueReader, address common.Address) (string, bool, error) {
	v, err := db.Get(OwnedKey(address))
	if errors.Is(err, database.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

func PutOwned(db database.KeyValueWriter, address common.Address, name string) error {
	return db.Put(OwnedKey(address), []byte(name))
}

func getUint64(db database.KeyValueReader, key []byte) (uint64, error) {
	v, err := database.GetUInt64(db, key)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	return v, err
}

func GetBalance(db database.KeyValueReader, address common.Address) (uint64, error) {
	return getUint64(db, BalanceKey(address))
}

func SetBalance(db database.KeyValueWriter, address common.Address, bal uint64) error {
	return database.PutUInt64(db, BalanceKey(address), bal)
}

// ModifyBalance adds or subtracts [change] from the balance of [address],
// returning the new balance.
func ModifyBalance(
	db database.KeyValueReaderWriter,
	address common.Address,
	add bool,
	change uint64,
) (uint64, error) {
	b, err := GetBalance(db, address)
	if err != nil {
		return 0, err
	}
	var n uint64
	if add {
		n, err = smath.Add64(b, change)
		if err != nil {
			return 0, fmt.Errorf("%w: balance for %s overflows", ErrTransferFailure, address.Hex())
		}
	} else {
		n, err = smath.Sub64(b, change)
		if err != nil {
			return 0, fmt.Errorf("%w: %d < %d", ErrInsufficientFunds, b, change)
		}
	}
	return n, SetBalance(db, address, n)
}

func GetPendingFees(db database.KeyValueReader, address common.Address) (uint64, error) {
	return getUint64(db, PendingFeesKey(address))
}

func addPendingFees(db database.KeyValueReaderWriter, address common.Address, amount uint64) error {
	b, err := GetPendingFees(db, address)
	if err != nil {
		return err
	}
	n, err := smath.Add64(b, amount)
	if err != nil {
		return fmt.Errorf("%w: pending fees for %s overflow", ErrTransferFailure, address.Hex())
	}
	return database.PutUInt64(db, PendingFeesKey(address), n)
}

func zeroPendingFees(db database.KeyValueWriter, address common.Address) error {
	return database.PutUInt64(db, PendingFeesKey(address), 0)
}

// GetSpaceByPrice serves the legacy flow that maps a payment amount back to
// a public space.
func GetSpaceByPrice(db database.KeyValueReader, price uint64) (string, bool, error) {
	v, err := db.Get(PriceKey(price))
	if errors.Is(err, database.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

func HasPrice(db database.KeyValueReader, price uint64) (bool, error) {
	return db.Has(PriceKey(price))
}

func putPriceIndex(db database.KeyValueWriter, price uint64, space string) error {
	return db.Put(PriceKey(price), []byte(space))
}

func GetBurned(db database.KeyValueReader, address common.Address) (uint64, error) {
	return getUint64(db, BurnedKey(address))
}

func GetTotalBurned(db database.KeyValueReader) (uint64, error) {
	return getUint64(db, burnedTotalKey)
}

func addBurned(db database.KeyValueReaderWriter, address common.Address, amount uint64) error {
	b, err := GetBurned(db, address)
	if err != nil {
		return err
	}
	n, err := smath.Add64(b, amount)
	if err != nil {
		return fmt.Errorf("%w: burn total for %s overflows", ErrTransferFailure, address.Hex())
	}
	if err := database.PutUInt64(db, BurnedKey(address), n); err != nil {
		return err
	}
	t, err := GetTotalBurned(db)
	if err != nil {
		return err
	}
	nt, err := smath.Add64(t, amount)
	if err != nil {
		return fmt.Errorf("%w: burned supply overflows", ErrTransferFailure)
	}
	return database.PutUInt64(db, burnedTotalKey, nt)
}

func GetGenesis(db database.KeyValueReader) (*Genesis, bool, error) {
	v, err := db.Get(genesisKey)
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var g Genesis
	if _, err := codec.Unmarshal(v, &g); err != nil {
		return nil, false, err
	}
	return &g, true, nil
}

func SetGenesis(db database.KeyValueWriter, g *Genesis) error {
	b, err := codec.Marshal(g)
	if err != nil {
		return err
	}
	return db.Put(genesisKey, b)
}
