// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines name and space identifier parsing operations.
package parser

import (
	"errors"
	"regexp"
	"strings"
)

const (
	MaxIdentifierSize      = 20
	Delimiter              = "."
	ByteDelimiter     byte = '.'
)

var (
	ErrInvalidContents = errors.New("labels and spaces must be ^[a-z0-9-]{1,20}$ without leading, trailing, or repeated hyphens")
	ErrInvalidName     = errors.New("name is not of the form label.space")

	reg *regexp.Regexp
)

func init() {
	reg = regexp.MustCompile("^[a-z0-9-]{1,20}$")
}

// CheckContents returns an error if the identifier (label or space) format
// is invalid. It is pure and suitable as a public dry-run check.
func CheckContents(identifier string) error {
	if !reg.MatchString(identifier) {
		return ErrInvalidContents
	}
	if identifier[0] == '-' || identifier[len(identifier)-1] == '-' {
		return ErrInvalidContents
	}
	if strings.Contains(identifier, "--") {
		return ErrInvalidContents
	}
	return nil
}

// ResolveName splits a full name into its label and space. A name without a
// delimiter is a bare name and returns an empty space for the caller to map
// to the root. Splitting is on the last delimiter so the parse is
// deterministic even though labels themselves may never contain one.
func ResolveName(name string) (label string, space string, err error) {
	idx := strings.LastIndex(name, Delimiter)
	if idx < 0 {
		if err := CheckContents(name); err != nil {
			return "", "", err
		}
		return name, "", nil
	}
	label = name[:idx]
	space = name[idx+1:]
	if err := CheckContents(label); err != nil {
		return "", "", err
	}
	if err := CheckContents(space); err != nil {
		return "", "", err
	}
	return label, space, nil
}
