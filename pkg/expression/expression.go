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
	"fmt"
	"strings"
)

// Expression is a node of the scalar expression tree the planner consumes.
// Expressions are immutable after construction and may be shared freely
// between plan nodes.
type Expression interface {
	fmt.Stringer

	// Equal checks whether two expressions are syntactically identical.
	Equal(e Expression) bool
}

// StringifyExprs joins the display forms of exprs with ", ".
func StringifyExprs(exprs []Expression) string {
	strs := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		strs = append(strs, expr.String())
	}
	return strings.Join(strs, ", ")
}

// ExprsEqual checks pairwise syntactic equality of two expression lists.
func ExprsEqual(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
