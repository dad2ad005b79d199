package prisma

import (
	"fmt"
	"strings"
)

// property is one `key = value` line of a generator or datasource block.
type property struct {
	key   string
	value Value
}

// writeProperties renders `key = value` lines with the keys padded to the
// longest key in the block.
func writeProperties(builder *strings.Builder, level int, properties []property) {
	maxKeyLength := 0

	for _, p := range properties {
		maxKeyLength = max(maxKeyLength, len(p.key))
	}

	indentInner := indent(level + 1)

	for _, p := range properties {
		fmt.Fprintf(builder, "%s%-*s = %s\n", indentInner, maxKeyLength, p.key, p.value)
	}
}

func stringList(values []string) Value {
	elements := make([]Value, 0, len(values))

	for _, value := range values {
		elements = append(elements, Text(value))
	}

	return Array(elements...)
}

// Generator is a Prisma generator block.
type Generator struct {
	Name            string
	Provider        string
	Output          string
	BinaryTargets   []string
	PreviewFeatures []string
	EngineType      string
}

func (g *Generator) write(builder *strings.Builder, level int) {
	properties := []property{{key: "provider", value: Text(g.Provider)}}

	if g.Output != "" {
		properties = append(properties, property{key: "output", value: Text(g.Output)})
	}

	if len(g.BinaryTargets) > 0 {
		properties = append(properties, property{
			key:   "binaryTargets",
			value: stringList(g.BinaryTargets),
		})
	}

	if len(g.PreviewFeatures) > 0 {
		properties = append(properties, property{
			key:   "previewFeatures",
			value: stringList(g.PreviewFeatures),
		})
	}

	if g.EngineType != "" {
		properties = append(properties, property{key: "engineType", value: Text(g.EngineType)})
	}

	indentOuter := indent(level)

	fmt.Fprintf(builder, "%sgenerator %s {\n", indentOuter, g.Name)
	writeProperties(builder, level, properties)
	fmt.Fprintf(builder, "%s}\n", indentOuter)
}

// DataSource is a Prisma datasource block.
type DataSource struct {
	Name              string
	Provider          string
	URL               string
	ShadowDatabaseURL string
	DirectURL         string
	RelationMode      string
	Extensions        []string
}

func (d *DataSource) write(builder *strings.Builder, level int) {
	properties := []property{
		{key: "provider", value: Text(d.Provider)},
		{key: "url", value: Text(d.URL)},
	}

	if d.ShadowDatabaseURL != "" {
		properties = append(properties, property{
			key:   "shadowDatabaseUrl",
			value: Text(d.ShadowDatabaseURL),
		})
	}

	if d.DirectURL != "" {
		properties = append(properties, property{key: "directUrl", value: Text(d.DirectURL)})
	}

	if d.RelationMode != "" {
		properties = append(properties, property{
			key:   "relationMode",
			value: Text(d.RelationMode),
		})
	}

	if d.Extensions != nil {
		properties = append(properties, property{
			key:   "extensions",
			value: stringList(d.Extensions),
		})
	}

	indentOuter := indent(level)

	fmt.Fprintf(builder, "%sdatasource %s {\n", indentOuter, d.Name)
	writeProperties(builder, level, properties)
	fmt.Fprintf(builder, "%s}\n", indentOuter)
}
