// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package parser

import (
	"math/big"

	"github.com/optakt/rosetta-conformance/rosetta/failure"
)

// checkGroupIndices makes sure every group can be evaluated: it must be large
// enough for its invariant, and it must only reference existing slots. Address
// groups may only reference slots that constrain the account.
func checkGroupIndices(descriptions *Descriptions) error {
	slots := descriptions.OperationDescriptions
	for _, g := range descriptions.groups() {
		for n, indices := range g.indices {
			if len(indices) < g.minimum {
				return failure.InvalidDescriptions{
					Description: failure.NewDescription("group has too few descriptions",
						failure.WithInts("group", indices...),
						failure.WithInt("minimum", g.minimum),
					),
					Group: g.name,
					Index: n,
				}
			}
			for _, index := range indices {
				if index < 0 || index >= len(slots) {
					return failure.InvalidDescriptions{
						Description: failure.NewDescription("group index out of range",
							failure.WithInts("group", indices...),
							failure.WithInt("slot", index),
							failure.WithInt("slots", len(slots)),
						),
						Group: g.name,
						Index: n,
					}
				}
				if g.name == GroupEqualAddresses && slots[index].Account == nil {
					return failure.InvalidDescriptions{
						Description: failure.NewDescription("address group references description without account",
							failure.WithInts("group", indices...),
							failure.WithInt("slot", index),
						),
						Group: g.name,
						Index: n,
					}
				}
			}
		}
	}
	return nil
}

// checkGroups evaluates the invariants of all groups against the matches.
func checkGroups(descriptions *Descriptions, matches []*Match) error {

	for n, indices := range descriptions.EqualAmounts {
		nets, err := groupNets(GroupEqualAmounts, n, indices, matches)
		if err != nil {
			return err
		}
		for i := 1; i < len(nets); i++ {
			if nets[i].Cmp(nets[0]) != 0 {
				return failure.GroupMismatch{
					Description: failure.NewDescription("amounts are not equal",
						failure.WithInts("group", indices...),
						failure.WithString("reference", nets[0].String()),
						failure.WithString("amount", nets[i].String()),
					),
					Group: GroupEqualAmounts,
					Index: n,
				}
			}
		}
	}

	err := checkOpposites(GroupOppositeAmounts, descriptions.OppositeAmounts, matches, false)
	if err != nil {
		return err
	}

	err = checkOpposites(GroupOppositeOrZeroAmounts, descriptions.OppositeOrZeroAmounts, matches, true)
	if err != nil {
		return err
	}

	for n, indices := range descriptions.EqualAddresses {
		err := checkAddresses(n, indices, matches)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkOpposites compares the net amount of every slot in each group to the
// negated net amount of the group's first slot.
func checkOpposites(name string, groups [][]int, matches []*Match, zero bool) error {
	for n, indices := range groups {
		nets, err := groupNets(name, n, indices, matches)
		if err != nil {
			return err
		}
		reference := nets[0]
		negated := new(big.Int).Neg(reference)
		for i := 1; i < len(nets); i++ {
			if zero && (reference.Sign() == 0 || nets[i].Sign() == 0) {
				continue
			}
			if nets[i].Cmp(negated) != 0 {
				return failure.GroupMismatch{
					Description: failure.NewDescription("amounts are not opposites",
						failure.WithInts("group", indices...),
						failure.WithString("reference", reference.String()),
						failure.WithString("amount", nets[i].String()),
					),
					Group: name,
					Index: n,
				}
			}
		}
	}
	return nil
}

func checkAddresses(n int, indices []int, matches []*Match) error {
	var address string
	for i, index := range indices {
		m, err := groupMatch(GroupEqualAddresses, n, index, matches)
		if err != nil {
			return err
		}
		if len(m.Operations) != 1 {
			return failure.GroupMismatch{
				Description: failure.NewDescription("address comparison requires exactly one operation per description",
					failure.WithInt("slot", index),
					failure.WithInt("operations", len(m.Operations)),
				),
				Group: GroupEqualAddresses,
				Index: n,
			}
		}
		account := m.Operations[0].AccountID
		if account == nil {
			return failure.GroupMismatch{
				Description: failure.NewDescription("matched operation has no account",
					failure.WithInt("slot", index),
				),
				Group: GroupEqualAddresses,
				Index: n,
			}
		}
		if i == 0 {
			address = account.Address
			continue
		}
		if account.Address != address {
			return failure.GroupMismatch{
				Description: failure.NewDescription("addresses do not match",
					failure.WithInts("group", indices...),
					failure.WithString("reference", address),
					failure.WithString("address", account.Address),
				),
				Group: GroupEqualAddresses,
				Index: n,
			}
		}
	}
	return nil
}

func groupNets(name string, n int, indices []int, matches []*Match) ([]*big.Int, error) {
	nets := make([]*big.Int, 0, len(indices))
	for _, index := range indices {
		m, err := groupMatch(name, n, index, matches)
		if err != nil {
			return nil, err
		}
		net, err := m.Net()
		if err != nil {
			return nil, err
		}
		nets = append(nets, net)
	}
	return nets, nil
}

// groupMatch returns the match of a slot referenced by a group. A group that
// references an unmatched optional slot can not be evaluated and fails.
func groupMatch(name string, n int, index int, matches []*Match) (*Match, error) {
	m := matches[index]
	if m == nil {
		return nil, failure.GroupMismatch{
			Description: failure.NewDescription("group references unmatched description",
				failure.WithInt("slot", index),
			),
			Group: name,
			Index: n,
		}
	}
	return m, nil
}
