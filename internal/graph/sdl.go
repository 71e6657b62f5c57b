package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/graphql-go/graphql"
)

// sdlTypeOrder fixes the rendering order so the derived SDL is stable.
var sdlTypeOrder = []string{"Status", "ShippingAddress", "Item", "Shipment", "Order", "FilterInput"}

// renderSDL prints the compiled schema back out as SDL text. Keeping a single
// executable definition and deriving the text avoids the two copies drifting.
func renderSDL(schema graphql.Schema) string {
	var b strings.Builder
	b.WriteString("scalar DateTime\n\n")

	typeMap := schema.TypeMap()
	for _, name := range sdlTypeOrder {
		writeType(&b, typeMap[name])
	}
	writeType(&b, schema.QueryType())

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeType(b *strings.Builder, t graphql.Type) {
	switch typ := t.(type) {
	case *graphql.Enum:
		fmt.Fprintf(b, "enum %s {\n", typ.Name())
		values := typ.Values()
		names := make([]string, 0, len(values))
		for _, v := range values {
			names = append(names, v.Name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(b, "  %s\n", name)
		}
		b.WriteString("}\n\n")

	case *graphql.Object:
		fmt.Fprintf(b, "type %s {\n", typ.Name())
		fields := typ.Fields()
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			field := fields[name]
			fmt.Fprintf(b, "  %s%s: %v\n", name, renderArgs(field.Args), field.Type)
		}
		b.WriteString("}\n\n")

	case *graphql.InputObject:
		fmt.Fprintf(b, "input %s {\n", typ.Name())
		fields := typ.Fields()
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(b, "  %s: %v\n", name, fields[name].Type)
		}
		b.WriteString("}\n\n")
	}
}

func renderArgs(args []*graphql.Argument) string {
	if len(args) == 0 {
		return ""
	}

	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%s: %v", arg.Name(), arg.Type))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
