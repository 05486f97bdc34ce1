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
	"sort"

	"github.com/gammazero/deque"

	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/object"
)

// OperationGroup is a set of operations that are connected through their
// related operations. If all operations in a group share a type, the group
// has that type as well.
type OperationGroup struct {
	Type             string
	Operations       []object.Operation
	Currencies       []identifier.Currency
	NilAmountPresent bool
}

// GroupOperations splits the operations of a transaction into groups of
// related operations. Relations are considered in both directions, and
// references to operations that are not part of the transaction are ignored.
// Groups are ordered by their lowest operation index, and operations within a
// group by index.
func GroupOperations(transaction object.Transaction) []OperationGroup {

	ops := transaction.Operations
	positions := make(map[uint]int, len(ops))
	for i, op := range ops {
		positions[op.ID.Index] = i
	}

	edges := make([][]int, len(ops))
	for i, op := range ops {
		for _, related := range op.RelatedIDs {
			j, ok := positions[related.Index]
			if !ok || j == i {
				continue
			}
			edges[i] = append(edges[i], j)
			edges[j] = append(edges[j], i)
		}
	}

	visited := make([]bool, len(ops))
	queue := deque.New()
	var groups []OperationGroup
	for start := range ops {
		if visited[start] {
			continue
		}

		var members []int
		visited[start] = true
		queue.PushBack(start)
		for queue.Len() > 0 {
			current := queue.PopFront().(int)
			members = append(members, current)
			for _, next := range edges[current] {
				if visited[next] {
					continue
				}
				visited[next] = true
				queue.PushBack(next)
			}
		}

		sort.Slice(members, func(a, b int) bool {
			return ops[members[a]].ID.Index < ops[members[b]].ID.Index
		})

		groups = append(groups, newGroup(ops, members))
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Operations[0].ID.Index < groups[b].Operations[0].ID.Index
	})

	return groups
}

func newGroup(ops []object.Operation, members []int) OperationGroup {

	group := OperationGroup{
		Type:       ops[members[0]].Type,
		Operations: make([]object.Operation, 0, len(members)),
	}

	for _, member := range members {
		op := ops[member]
		if op.Type != group.Type {
			group.Type = ""
		}
		group.Operations = append(group.Operations, op)

		if op.Amount == nil {
			group.NilAmountPresent = true
			continue
		}
		if !containsCurrency(group.Currencies, &op.Amount.Currency) {
			group.Currencies = append(group.Currencies, op.Amount.Currency)
		}
	}

	return group
}

func containsCurrency(currencies []identifier.Currency, currency *identifier.Currency) bool {
	for i := range currencies {
		if equalCurrencies(&currencies[i], currency) {
			return true
		}
	}
	return false
}
