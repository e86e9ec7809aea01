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
	"github.com/planfuse/planfuse/pkg/types"
)

// Column resolves to one column of a plan node's output schema. Columns
// compare by qualified name; the field type does not take part in equality.
type Column struct {
	TblName string
	ColName string
	RetType *types.FieldType
}

// NewColumn builds a column reference qualified by tbl. An empty tbl leaves
// the column unqualified.
func NewColumn(tbl, col string, tp *types.FieldType) *Column {
	return &Column{TblName: tbl, ColName: col, RetType: tp}
}

// Clone returns a copy of the column. The field type is shared.
func (col *Column) Clone() *Column {
	newCol := *col
	return &newCol
}

// Equal implements Expression.
func (col *Column) Equal(e Expression) bool {
	other, ok := e.(*Column)
	if !ok {
		return false
	}
	return col.TblName == other.TblName && col.ColName == other.ColName
}

// String implements fmt.Stringer.
func (col *Column) String() string {
	if col.TblName == "" {
		return col.ColName
	}
	return col.TblName + "." + col.ColName
}
