// Copyright 2026 Planfuse Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expression

import (
	"strings"
)

// GroupingSetKind tags the flavor of a grouping-set expression.
type GroupingSetKind uint8

// Grouping set flavors.
const (
	GroupingSetRollup GroupingSetKind = iota
	GroupingSetCube
	GroupingSetSets
)

// GroupingSet is a ROLLUP, CUBE or GROUPING SETS expression appearing in an
// aggregation's group-by list. Exprs holds the column list for rollup and
// cube; Sets holds the explicit sets for GROUPING SETS.
type GroupingSet struct {
	Kind  GroupingSetKind
	Exprs []Expression
	Sets  [][]Expression
}

// RollupGroupingSet builds ROLLUP (exprs...).
func RollupGroupingSet(exprs ...Expression) *GroupingSet {
	return &GroupingSet{Kind: GroupingSetRollup, Exprs: exprs}
}

// CubeGroupingSet builds CUBE (exprs...).
func CubeGroupingSet(exprs ...Expression) *GroupingSet {
	return &GroupingSet{Kind: GroupingSetCube, Exprs: exprs}
}

// NewGroupingSets builds GROUPING SETS ((..), (..)).
func NewGroupingSets(sets ...[]Expression) *GroupingSet {
	return &GroupingSet{Kind: GroupingSetSets, Sets: sets}
}

// Equal implements Expression.
func (gs *GroupingSet) Equal(e Expression) bool {
	other, ok := e.(*GroupingSet)
	if !ok || gs.Kind != other.Kind {
		return false
	}
	if !ExprsEqual(gs.Exprs, other.Exprs) {
		return false
	}
	if len(gs.Sets) != len(other.Sets) {
		return false
	}
	for i := range gs.Sets {
		if !ExprsEqual(gs.Sets[i], other.Sets[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (gs *GroupingSet) String() string {
	switch gs.Kind {
	case GroupingSetRollup:
		return "ROLLUP (" + StringifyExprs(gs.Exprs) + ")"
	case GroupingSetCube:
		return "CUBE (" + StringifyExprs(gs.Exprs) + ")"
	default:
		strs := make([]string, 0, len(gs.Sets))
		for _, set := range gs.Sets {
			strs = append(strs, "("+StringifyExprs(set)+")")
		}
		return "GROUPING SETS (" + strings.Join(strs, ", ") + ")"
	}
}
