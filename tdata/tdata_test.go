// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tdata

import (
	"bytes"
	"testing"
)

func testTypedData(magic uint64, label string) *TypedData {
	return CreateTypedData(
		magic, "Authorization",
		[]Type{
			{Name: "recipient", Type: "address"},
			{Name: "label", Type: "string"},
			{Name: "space", Type: "string"},
		},
		TypedDataMessage{
			"recipient": "0x0000000000000000000000000000000000000001",
			"label":     label,
			"space":     "xns",
		},
	)
}

func TestDigestHashDeterministic(t *testing.T) {
	t.Parallel()

	d1, err := DigestHash(testTypedData(7, "alice"))
	if err != nil {
		t.Fatal(err)
	}
	d2, err := DigestHash(testTypedData(7, "alice"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d1, d2) {
		t.Fatal("digest is not deterministic")
	}
	if len(d1) != 32 {
		t.Fatalf("digest length expected 32, got %d", len(d1))
	}
}

func TestDigestHashSeparation(t *testing.T) {
	t.Parallel()

	base, err := DigestHash(testTypedData(7, "alice"))
	if err != nil {
		t.Fatal(err)
	}

	// changed message
	d, err := DigestHash(testTypedData(7, "bob"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(base, d) {
		t.Fatal("different messages produced the same digest")
	}

	// changed domain magic
	d, err = DigestHash(testTypedData(8, "alice"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(base, d) {
		t.Fatal("different domains produced the same digest")
	}
}

func TestEncodeDataStructArray(t *testing.T) {
	t.Parallel()

	td := CreateTypedDataWithTypes(
		7, "RegisterBatch",
		Types{
			"RegisterBatch": {
				{Name: "space", Type: "string"},
				{Name: "items", Type: "BatchItem[]"},
			},
			"BatchItem": {
				{Name: "recipient", Type: "address"},
				{Name: "label", Type: "string"},
			},
		},
		TypedDataMessage{
			"space": "xns",
			"items": []interface{}{
				map[string]interface{}{
					"recipient": "0x0000000000000000000000000000000000000001",
					"label":     "alice",
				},
				map[string]interface{}{
					"recipient": "0x0000000000000000000000000000000000000002",
					"label":     "bob",
				},
			},
		},
	)
	d1, err := DigestHash(td)
	if err != nil {
		t.Fatal(err)
	}

	td.Message["items"].([]interface{})[1].(map[string]interface{})["label"] = "carol"
	d2, err := DigestHash(td)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(d1, d2) {
		t.Fatal("changing an array item did not change the digest")
	}
}
