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

	"github.com/planfuse/planfuse/pkg/types"
)

// Constant is a literal value. Value holds a plain Go scalar (bool, integer,
// float or string).
type Constant struct {
	Value   any
	RetType *types.FieldType
}

// NewConstant builds a literal of the given type.
func NewConstant(value any, tp *types.FieldType) *Constant {
	return &Constant{Value: value, RetType: tp}
}

// Equal implements Expression.
func (c *Constant) Equal(e Expression) bool {
	other, ok := e.(*Constant)
	if !ok {
		return false
	}
	return c.Value == other.Value
}

// String implements fmt.Stringer.
func (c *Constant) String() string {
	if c.RetType != nil {
		return fmt.Sprintf("%s(%v)", c.RetType, c.Value)
	}
	return fmt.Sprintf("%v", c.Value)
}
