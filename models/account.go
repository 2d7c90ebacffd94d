// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// AccountType is a Rajaongkir subscription tier.
// The tier decides which host and path prefix requests go to, which couriers
// may be quoted or tracked, and which lookups are available at all.
type AccountType string

const (
	// AccountStarter is the free tier: domestic city-to-city costs for a
	// handful of couriers, no waybill, no currency, no subdistricts.
	AccountStarter AccountType = "starter"

	// AccountBasic adds more couriers, international costs, JNE waybill
	// tracking and currency lookups.
	AccountBasic AccountType = "basic"

	// AccountPro unlocks subdistrict granularity, the full courier list and
	// is served from a dedicated host.
	AccountPro AccountType = "pro"
)

// AccountTypes lists every supported tier in ascending order.
var AccountTypes = []AccountType{AccountStarter, AccountBasic, AccountPro}

// ParseAccountType lowercases s and returns the matching [AccountType].
// It returns an error when s does not name a supported tier.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown account type %q", s)
	}
	return t, nil
}

// Valid reports whether t is one of [AccountTypes].
func (t AccountType) Valid() bool {
	switch t {
	case AccountStarter, AccountBasic, AccountPro:
		return true
	}
	return false
}

func (t AccountType) String() string {
	return string(t)
}
