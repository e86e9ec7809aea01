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

package aggregation

import (
	"strings"

	"github.com/planfuse/planfuse/pkg/expression"
	"github.com/planfuse/planfuse/pkg/types"
)

// Names of the aggregate functions the planner recognizes.
const (
	AggFuncCount = "count"
	AggFuncSum   = "sum"
	AggFuncAvg   = "avg"
	AggFuncMax   = "max"
	AggFuncMin   = "min"
)

// AggFuncDesc describes an aggregation function: its name and the argument
// expressions it evaluates per group.
type AggFuncDesc struct {
	Name string
	Args []expression.Expression
}

// NewAggFuncDesc builds an aggregation descriptor.
func NewAggFuncDesc(name string, args ...expression.Expression) *AggFuncDesc {
	return &AggFuncDesc{Name: name, Args: args}
}

// Equal checks whether two descriptors are syntactically identical.
func (a *AggFuncDesc) Equal(other *AggFuncDesc) bool {
	return a.Name == other.Name && expression.ExprsEqual(a.Args, other.Args)
}

// OutputType returns the field type of the aggregate's result column. Count
// yields Int64, avg Float64, the remaining functions keep their argument's
// type when it is a plain column.
func (a *AggFuncDesc) OutputType() *types.FieldType {
	switch a.Name {
	case AggFuncCount:
		return types.NewFieldType(types.KindInt64)
	case AggFuncAvg:
		return types.NewFieldType(types.KindFloat64)
	}
	if len(a.Args) == 1 {
		if col, ok := a.Args[0].(*expression.Column); ok && col.RetType != nil {
			return col.RetType
		}
	}
	return types.NewFieldType(types.KindFloat64)
}

// String implements fmt.Stringer. The display form doubles as the name of the
// output column the aggregate produces.
func (a *AggFuncDesc) String() string {
	var b strings.Builder
	b.WriteString(a.Name)
	b.WriteByte('(')
	b.WriteString(expression.StringifyExprs(a.Args))
	b.WriteByte(')')
	return b.String()
}
