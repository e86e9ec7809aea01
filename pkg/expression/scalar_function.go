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

// Scalar function names the planner builds directly.
const (
	EQ = "eq"
	NE = "ne"
	LT = "lt"
	LE = "le"
	GT = "gt"
	GE = "ge"

	LogicAnd = "and"
	LogicOr  = "or"
)

// infixOps maps binary function names to their operator display form.
var infixOps = map[string]string{
	EQ:       "=",
	NE:       "!=",
	LT:       "<",
	LE:       "<=",
	GT:       ">",
	GE:       ">=",
	LogicAnd: "AND",
	LogicOr:  "OR",
}

// ScalarFunction is a call to a scalar builtin over argument expressions.
type ScalarFunction struct {
	FuncName string
	args     []Expression
}

// NewFunction builds a scalar function call.
func NewFunction(funcName string, args ...Expression) *ScalarFunction {
	return &ScalarFunction{FuncName: funcName, args: args}
}

// GetArgs returns the arguments of the function.
func (sf *ScalarFunction) GetArgs() []Expression {
	return sf.args
}

// Equal implements Expression.
func (sf *ScalarFunction) Equal(e Expression) bool {
	other, ok := e.(*ScalarFunction)
	if !ok {
		return false
	}
	return sf.FuncName == other.FuncName && ExprsEqual(sf.args, other.args)
}

// String implements fmt.Stringer. Binary comparisons and logic operators
// display infix, everything else as a call.
func (sf *ScalarFunction) String() string {
	if op, ok := infixOps[sf.FuncName]; ok && len(sf.args) == 2 {
		return sf.args[0].String() + " " + op + " " + sf.args[1].String()
	}
	var b strings.Builder
	b.WriteString(sf.FuncName)
	b.WriteByte('(')
	b.WriteString(StringifyExprs(sf.args))
	b.WriteByte(')')
	return b.String()
}
