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

package base

import (
	"cmp"
	"strings"

	"github.com/pingcap/errors"
)

// ErrJoinTypeNotImplemented is returned when ParseJoinType sees a token that
// names no known join type.
var ErrJoinTypeNotImplemented = errors.Normalize(
	"The join type %s does not exist or is not implemented",
	errors.RFCCodeText("planner:1235"),
)

// JoinSide distinguishes the two inputs of a join.
type JoinSide uint8

const (
	// LeftSide is the left input of a join.
	LeftSide JoinSide = iota
	// RightSide is the right input of a join.
	RightSide
)

// Negate flips the side. Negate is an involution: s.Negate().Negate() == s.
func (s JoinSide) Negate() JoinSide {
	if s == LeftSide {
		return RightSide
	}
	return LeftSide
}

// String implements fmt.Stringer.
func (s JoinSide) String() string {
	if s == LeftSide {
		return "left"
	}
	return "right"
}

// JoinConstraint records whether the join predicate came from ON or USING.
// It is informational only.
type JoinConstraint uint8

const (
	// JoinConstraintOn marks a JOIN ... ON predicate.
	JoinConstraintOn JoinConstraint = iota
	// JoinConstraintUsing marks a JOIN ... USING column list.
	JoinConstraintUsing
)

// String implements fmt.Stringer.
func (c JoinConstraint) String() string {
	if c == JoinConstraintUsing {
		return "USING"
	}
	return "ON"
}

// joinKind is the variant tag of JoinType.
type joinKind uint8

const (
	kindInner joinKind = iota
	kindOuter
	kindFull
	kindSemi
	kindAnti
	kindLeftMark
	kindLeftGroup
)

// JoinType identifies the logical shape of a join. Values are immutable,
// comparable and usable as map keys; Compare supplies a total order where
// sorted containers need one. Use only the exported values below: the outer,
// semi and anti shapes carry the side they preserve, the rest carry none.
type JoinType struct {
	kind joinKind
	side JoinSide
}

var (
	// InnerJoin keeps only row pairs matching the join condition.
	InnerJoin = JoinType{kind: kindInner}
	// LeftOuterJoin keeps every left row, filling right columns with NULL
	// when nothing matches.
	LeftOuterJoin = JoinType{kind: kindOuter, side: LeftSide}
	// RightOuterJoin keeps every right row, filling left columns with NULL
	// when nothing matches.
	RightOuterJoin = JoinType{kind: kindOuter, side: RightSide}
	// FullOuterJoin keeps every row of both inputs.
	FullOuterJoin = JoinType{kind: kindFull}
	// LeftSemiJoin keeps left rows that have at least one match; only left
	// columns are produced.
	LeftSemiJoin = JoinType{kind: kindSemi, side: LeftSide}
	// RightSemiJoin keeps right rows that have at least one match; only right
	// columns are produced.
	RightSemiJoin = JoinType{kind: kindSemi, side: RightSide}
	// LeftAntiJoin keeps left rows that have no match.
	LeftAntiJoin = JoinType{kind: kindAnti, side: LeftSide}
	// RightAntiJoin keeps right rows that have no match.
	RightAntiJoin = JoinType{kind: kindAnti, side: RightSide}
	// LeftMarkJoin keeps every left row plus a boolean mark column which is
	// true iff some right row matched; it decorrelates EXISTS subqueries
	// inside disjunctive predicates. The mark is never NULL here; the
	// three-valued semantics wait until ANY subqueries need them.
	LeftMarkJoin = JoinType{kind: kindLeftMark}
	// LeftGroupJoin is the fused group join produced by GroupJoinFusion. The
	// owning join node carries the grouping and aggregate expressions of the
	// aggregation it replaced.
	LeftGroupJoin = JoinType{kind: kindLeftGroup}
)

// Side returns the preserved side of an outer, semi or anti join. The second
// return value is false for the sideless shapes.
func (tp JoinType) Side() (JoinSide, bool) {
	switch tp.kind {
	case kindOuter, kindSemi, kindAnti:
		return tp.side, true
	}
	return LeftSide, false
}

// IsOuter checks whether the join NULL-extends at least one input.
func (tp JoinType) IsOuter() bool {
	return tp.kind == kindOuter || tp.kind == kindFull
}

// SupportsSwap checks whether Swap is defined for this join type.
func (tp JoinType) SupportsSwap() bool {
	switch tp.kind {
	case kindInner, kindFull, kindOuter, kindSemi, kindAnti:
		return true
	}
	return false
}

// Swap returns the join type that keeps the result unchanged when the two
// inputs exchange places. Callers must guard with SupportsSwap: swapping a
// mark or group join is a caller bug and panics.
func (tp JoinType) Swap() JoinType {
	switch tp.kind {
	case kindInner, kindFull:
		return tp
	case kindOuter, kindSemi, kindAnti:
		return JoinType{kind: tp.kind, side: tp.side.Negate()}
	}
	panic("join type " + tp.String() + " does not support swapping")
}

// Compare orders join types lexicographically over (tag, side). The order is
// stable but carries no meaning beyond map and sort use.
func (tp JoinType) Compare(other JoinType) int {
	if c := cmp.Compare(tp.kind, other.kind); c != 0 {
		return c
	}
	return cmp.Compare(tp.side, other.side)
}

// String implements fmt.Stringer. The display forms are the stable external
// representation used in explain plans; ParseJoinType is their inverse.
func (tp JoinType) String() string {
	switch tp.kind {
	case kindInner:
		return "Inner"
	case kindOuter:
		if tp.side == LeftSide {
			return "Left"
		}
		return "Right"
	case kindFull:
		return "Full"
	case kindSemi:
		if tp.side == LeftSide {
			return "LeftSemi"
		}
		return "RightSemi"
	case kindAnti:
		if tp.side == LeftSide {
			return "LeftAnti"
		}
		return "RightAnti"
	case kindLeftMark:
		return "LeftMark"
	default:
		return "LeftGroup"
	}
}

// ParseJoinType parses the canonical display form of a join type, ignoring
// case. Matching is exact: no whitespace trimming, no aliases. Unknown tokens
// fail with ErrJoinTypeNotImplemented carrying the upper-cased token.
func ParseJoinType(s string) (JoinType, error) {
	switch up := strings.ToUpper(s); up {
	case "INNER":
		return InnerJoin, nil
	case "LEFT":
		return LeftOuterJoin, nil
	case "RIGHT":
		return RightOuterJoin, nil
	case "FULL":
		return FullOuterJoin, nil
	case "LEFTSEMI":
		return LeftSemiJoin, nil
	case "RIGHTSEMI":
		return RightSemiJoin, nil
	case "LEFTANTI":
		return LeftAntiJoin, nil
	case "RIGHTANTI":
		return RightAntiJoin, nil
	case "LEFTMARK":
		return LeftMarkJoin, nil
	case "LEFTGROUP":
		return LeftGroupJoin, nil
	default:
		return JoinType{}, ErrJoinTypeNotImplemented.GenWithStackByArgs(up)
	}
}
