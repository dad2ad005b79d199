package typescript

import (
	"testing"

	"github.com/dragonfly-lang/dragonfly/ir"
)

func TestInterfaceFromIR(t *testing.T) {
	model := ir.NewModel("Image")

	if err := model.InsertEnumRelation("countryName", "CountryName"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := model.InsertEnumsRelation("tags", "Tag"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := []ir.Field{
		{Name: "isPublic", Type: ir.Boolean, Cardinality: ir.One},
		{Name: "createdAt", Type: ir.DateTime, Cardinality: ir.One},
		{Name: "latitude", Type: ir.Float, Cardinality: ir.One},
		{Name: "height", Type: ir.Int, Cardinality: ir.One},
		{Name: "title", Type: ir.String, Cardinality: ir.One},
		{Name: "events", Type: ir.DateTime, Cardinality: ir.Many},
		{Name: "names", Type: ir.String, Cardinality: ir.Many},
	}

	for _, field := range fields {
		if err := model.InsertField(field); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := model.InsertManyToOne("owner", "User"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := model.InsertOneToMany("images", "Image"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := model.InsertOneToOne("resource", "Resource"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := model.InsertManyToMany("resources", "Resource"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `interface Image {
    isPublic: boolean;
    createdAt: Date;
    latitude: number;
    height: number;
    title: string;
    events: Array<Date>;
    names: Array<string>;
    countryName: CountryName;
    tags: Array<Tag>;
    owner: User;
    images: Array<Image>;
    resource?: Resource;
    resources: Array<Resource>;
}

`

	if got := InterfaceFromIR(model).String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestInterfaceMinimal(t *testing.T) {
	model := ir.NewModel("Foo")

	if err := model.InsertField(ir.Field{
		Name:        "bar",
		Type:        ir.Int,
		Cardinality: ir.One,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `interface Foo {
    bar: number;
}

`

	if got := InterfaceFromIR(model).String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringEnumFromIR(t *testing.T) {
	declaration := StringEnumFromIR(&ir.Enum{
		Name:   "CountryName",
		Values: []string{"France", "Germany", "Italy"},
	})

	want := `enum CountryName {
    France = "France",
    Germany = "Germany",
    Italy = "Italy",
}

`

	if got := declaration.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
