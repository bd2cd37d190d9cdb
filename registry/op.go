// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ava-labs/namesvm/tdata"
)

// Operation (and typed data primary type) names.
const (
	Register  = "register"
	Sponsor   = "sponsor"
	Batch     = "batch"
	Create    = "create"
	Bootstrap = "bootstrap"
	Claim     = "claim"
)

const (
	tdString  = "string"
	tdUint64  = "uint64"
	tdBytes   = "bytes"
	tdAddress = "address"
	tdBool    = "bool"

	tdPayment     = "payment"
	tdLabel       = "label"
	tdSpace       = "space"
	tdRecipient   = "recipient"
	tdProof       = "proof"
	tdItems       = "items"
	tdPrice       = "price"
	tdPrivate     = "private"
	tdBeneficiary = "beneficiary"
)

type Op interface {
	Copy() Op

	SetMagic(uint64)
	GetMagic() uint64
	SetPayment(uint64)
	GetPayment() uint64

	ExecuteBase(*Genesis) error
	Execute(*OpContext) error

	TypedData() *tdata.TypedData
}

type BaseOp struct {
	// Magic is opaque to the registry other than that it must match the
	// genesis value, preventing replay across deployments.
	Magic uint64 `serialize:"true" json:"magic"`

	// Payment is the native-unit value attached to the operation. The
	// operation debits only what it requires; the rest stays with the payer.
	Payment uint64 `serialize:"true" json:"payment"`
}

func (b *BaseOp) SetMagic(magic uint64) { b.Magic = magic }

func (b *BaseOp) GetMagic() uint64 { return b.Magic }

func (b *BaseOp) SetPayment(payment uint64) { b.Payment = payment }

func (b *BaseOp) GetPayment() uint64 { return b.Payment }

func (b *BaseOp) ExecuteBase(g *Genesis) error {
	if b.Magic != g.Magic {
		return ErrInvalidMagic
	}
	return nil
}

func (b *BaseOp) Copy() *BaseOp {
	return &BaseOp{
		Magic:   b.Magic,
		Payment: b.Payment,
	}
}

// DigestHash returns the digest the submitter signs over to prove it issued
// the operation.
func DigestHash(o Op) ([]byte, error) {
	return tdata.DigestHash(o.TypedData())
}

var zeroAddress = common.Address{}

// spaceOrRoot maps the empty space to the reserved sentinel so a bare label
// and label.<root> denote the same registration.
func spaceOrRoot(space string, g *Genesis) string {
	if space == "" {
		return g.RootSpace
	}
	return space
}

// fullName collapses a root-space name to its bare label.
func fullName(label string, space string, g *Genesis) string {
	if space == g.RootSpace {
		return label
	}
	return label + "." + space
}

// Input is the human-readable form of an operation used by clients and the
// CLI; Decode produces the executable op.
type Input struct {
	Typ         string         `json:"type"`
	Label       string         `json:"label"`
	Space       string         `json:"space"`
	Recipient   common.Address `json:"recipient"`
	Proof       hexutil.Bytes  `json:"proof"`
	Items       []*BatchItem   `json:"items"`
	Price       uint64         `json:"price"`
	Private     bool           `json:"private"`
	Beneficiary common.Address `json:"beneficiary"`
	Payment     uint64         `json:"payment"`
}

func (i *Input) Decode() (Op, error) {
	base := &BaseOp{Payment: i.Payment}
	switch i.Typ {
	case Register:
		return &RegisterOp{
			BaseOp: base,
			Label:  i.Label,
			Space:  i.Space,
		}, nil
	case Sponsor:
		return &SponsorOp{
			BaseOp:    base,
			Recipient: i.Recipient,
			Label:     i.Label,
			Space:     i.Space,
			Proof:     i.Proof,
		}, nil
	case Batch:
		return &BatchOp{
			BaseOp: base,
			Items:  i.Items,
		}, nil
	case Create:
		return &CreateOp{
			BaseOp:  base,
			Space:   i.Space,
			Price:   i.Price,
			Private: i.Private,
		}, nil
	case Bootstrap:
		return &BootstrapOp{
			BaseOp:      base,
			Space:       i.Space,
			Price:       i.Price,
			Private:     i.Private,
			Beneficiary: i.Beneficiary,
		}, nil
	case Claim:
		return &ClaimOp{
			BaseOp:    base,
			Recipient: i.Recipient,
		}, nil
	default:
		return nil, ErrInvalidType
	}
}

func parseUint64Message(td *tdata.TypedData, k string) (uint64, error) {
	r, ok := td.Message[k].(string)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, k)
	}
	return strconv.ParseUint(r, 10, 64)
}

func parseStringMessage(td *tdata.TypedData, k string) (string, error) {
	r, ok := td.Message[k].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, k)
	}
	return r, nil
}

func parseBaseOp(td *tdata.TypedData) (*BaseOp, error) {
	payment, err := parseUint64Message(td, tdPayment)
	if err != nil {
		return nil, err
	}
	return &BaseOp{Magic: td.Domain.Magic, Payment: payment}, nil
}

// ParseTypedData reconstructs the operation a submitter signed so the server
// digests exactly what the signature covers.
func ParseTypedData(td *tdata.TypedData) (Op, error) {
	base, err := parseBaseOp(td)
	if err != nil {
		return nil, err
	}

	switch td.PrimaryType {
	case Register:
		label, err := parseStringMessage(td, tdLabel)
		if err != nil {
			return nil, err
		}
		space, err := parseStringMessage(td, tdSpace)
		if err != nil {
			return nil, err
		}
		return &RegisterOp{BaseOp: base, Label: label, Space: space}, nil
	case Sponsor:
		label, err := parseStringMessage(td, tdLabel)
		if err != nil {
			return nil, err
		}
		space, err := parseStringMessage(td, tdSpace)
		if err != nil {
			return nil, err
		}
		recipient, err := parseStringMessage(td, tdRecipient)
		if err != nil {
			return nil, err
		}
		rproof, err := parseStringMessage(td, tdProof)
		if err != nil {
			return nil, err
		}
		proof, err := hexutil.Decode(rproof)
		if err != nil {
			return nil, err
		}
		return &SponsorOp{
			BaseOp:    base,
			Recipient: common.HexToAddress(recipient),
			Label:     label,
			Space:     space,
			Proof:     proof,
		}, nil
	case Batch:
		ritems, ok := td.Message[tdItems].([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdItems)
		}
		items := make([]*BatchItem, 0, len(ritems))
		for _, ri := range ritems {
			m, ok := ri.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdItems)
			}
			recipient, ok := m[tdRecipient].(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdRecipient)
			}
			label, ok := m[tdLabel].(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdLabel)
			}
			space, ok := m[tdSpace].(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdSpace)
			}
			rproof, ok := m[tdProof].(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdProof)
			}
			proof, err := hexutil.Decode(rproof)
			if err != nil {
				return nil, err
			}
			items = append(items, &BatchItem{
				Recipient: common.HexToAddress(recipient),
				Label:     label,
				Space:     space,
				Proof:     proof,
			})
		}
		return &BatchOp{BaseOp: base, Items: items}, nil
	case Create:
		space, err := parseStringMessage(td, tdSpace)
		if err != nil {
			return nil, err
		}
		price, err := parseUint64Message(td, tdPrice)
		if err != nil {
			return nil, err
		}
		private, ok := td.Message[tdPrivate].(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdPrivate)
		}
		return &CreateOp{BaseOp: base, Space: space, Price: price, Private: private}, nil
	case Bootstrap:
		space, err := parseStringMessage(td, tdSpace)
		if err != nil {
			return nil, err
		}
		price, err := parseUint64Message(td, tdPrice)
		if err != nil {
			return nil, err
		}
		private, ok := td.Message[tdPrivate].(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdPrivate)
		}
		beneficiary, err := parseStringMessage(td, tdBeneficiary)
		if err != nil {
			return nil, err
		}
		return &BootstrapOp{
			BaseOp:      base,
			Space:       space,
			Price:       price,
			Private:     private,
			Beneficiary: common.HexToAddress(beneficiary),
		}, nil
	case Claim:
		recipient, err := parseStringMessage(td, tdRecipient)
		if err != nil {
			return nil, err
		}
		return &ClaimOp{BaseOp: base, Recipient: common.HexToAddress(recipient)}, nil
	default:
		return nil, ErrInvalidType
	}
}
