// Package typescript renders checked Dragonfly models as TypeScript
// interfaces and enums as string enums.
package typescript

import (
	"strings"

	"github.com/dragonfly-lang/dragonfly/ir"
)

// tabSize is the indentation width of declaration bodies.
const tabSize = 4

func indent(level int) string {
	return strings.Repeat(" ", level*tabSize)
}

// scalarType maps an IR primitive to its TypeScript keyword.
func scalarType(irType ir.Type) string {
	switch irType {
	case ir.Boolean:
		return "boolean"
	case ir.DateTime:
		return "Date"
	case ir.Float, ir.Int:
		return "number"
	case ir.String:
		return "string"
	default:
		return ""
	}
}

func arrayOf(element string) string {
	return "Array<" + element + ">"
}
