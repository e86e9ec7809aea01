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

// Schema stands for the row schema a plan node produces: an ordered list of
// output columns.
type Schema struct {
	Columns []*Column
}

// NewSchema builds a schema over the given columns.
func NewSchema(cols ...*Column) *Schema {
	return &Schema{Columns: cols}
}

// Len returns the number of columns in the schema.
func (s *Schema) Len() int {
	return len(s.Columns)
}

// Contains checks whether the schema has a column equal to col.
func (s *Schema) Contains(col *Column) bool {
	for _, c := range s.Columns {
		if c.Equal(col) {
			return true
		}
	}
	return false
}

// Clone copies the schema. Columns are copied, field types shared.
func (s *Schema) Clone() *Schema {
	cols := make([]*Column, 0, s.Len())
	for _, col := range s.Columns {
		cols = append(cols, col.Clone())
	}
	return NewSchema(cols...)
}

// MergeSchema concatenates the columns of l and r into a fresh schema.
func MergeSchema(l, r *Schema) *Schema {
	cols := make([]*Column, 0, l.Len()+r.Len())
	cols = append(cols, l.Clone().Columns...)
	cols = append(cols, r.Clone().Columns...)
	return NewSchema(cols...)
}

// String implements fmt.Stringer.
func (s *Schema) String() string {
	colStrs := make([]string, 0, s.Len())
	for _, col := range s.Columns {
		colStrs = append(colStrs, col.String())
	}
	return "Column: [" + strings.Join(colStrs, ",") + "]"
}
