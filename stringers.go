// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatgeograph

import (
	"fmt"
	"strings"
)

func (c Column) String() string {
	return fmt.Sprintf("Column{Name:%q,Type:%s}", c.Name, c.Type)
}

func (e Edge) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Edge{From:%d,To:%d,Properties:{", e.From, e.To)
	if e.Properties != nil {
		first := true
		e.Properties.Range(func(k string, v interface{}) {
			if !first {
				b.WriteByte(',')
			}
			first = false
			fmt.Fprintf(&b, "%s:%v", k, v)
		})
	}
	b.WriteString("}}")
	return b.String()
}

func (m GraphHeaderMeta) String() string {
	return fmt.Sprintf("GraphHeaderMeta{EdgeCount:%d,NumColumns:%d}", m.EdgeCount, len(m.EdgeColumns))
}
