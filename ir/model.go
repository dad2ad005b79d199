package ir

import "github.com/dragonfly-lang/dragonfly/internal/ordmap"

// Field is a data field holding a primitive value.
type Field struct {
	Name        string
	Type        Type
	Cardinality Cardinality
}

// EnumRelation is a field holding one or many values of an enum.
type EnumRelation struct {
	Name        string
	EnumName    string
	Cardinality Cardinality
}

// ModelRelation is a field connecting the declaring model to another model.
type ModelRelation struct {
	Name      string
	ModelName string
	Kind      RelationKind
}

// Model is a checked model. Data fields, enum relations, and model relations
// live in separate maps but share one field namespace.
type Model struct {
	Name      string
	Fields    *ordmap.Map[Field]
	Enums     *ordmap.Map[EnumRelation]
	Relations *ordmap.Map[ModelRelation]

	keys map[string]struct{}
}

// NewModel returns an empty model.
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Fields:    ordmap.New[Field](),
		Enums:     ordmap.New[EnumRelation](),
		Relations: ordmap.New[ModelRelation](),
		keys:      make(map[string]struct{}),
	}
}

// insertKey claims a field name in the shared namespace.
func (m *Model) insertKey(key string) *TypeError {
	if _, exists := m.keys[key]; exists {
		return DuplicateModelField(m.Name, key)
	}

	m.keys[key] = struct{}{}

	return nil
}

// InsertField inserts a data field.
func (m *Model) InsertField(field Field) *TypeError {
	if err := m.insertKey(field.Name); err != nil {
		return err
	}

	m.Fields.Insert(field.Name, field)

	return nil
}

// InsertEnumRelation inserts a single-valued enum relation.
func (m *Model) InsertEnumRelation(name, enumName string) *TypeError {
	return m.insertEnum(EnumRelation{Name: name, EnumName: enumName, Cardinality: One})
}

// InsertEnumsRelation inserts a many-valued enum relation.
func (m *Model) InsertEnumsRelation(name, enumName string) *TypeError {
	return m.insertEnum(EnumRelation{Name: name, EnumName: enumName, Cardinality: Many})
}

func (m *Model) insertEnum(relation EnumRelation) *TypeError {
	if err := m.insertKey(relation.Name); err != nil {
		return err
	}

	m.Enums.Insert(relation.Name, relation)

	return nil
}

// InsertOneToOne inserts an owned single reference to another model.
func (m *Model) InsertOneToOne(name, modelName string) *TypeError {
	return m.insertRelation(ModelRelation{Name: name, ModelName: modelName, Kind: OneToOne})
}

// InsertOneToMany inserts an owned array reference to another model.
func (m *Model) InsertOneToMany(name, modelName string) *TypeError {
	return m.insertRelation(ModelRelation{Name: name, ModelName: modelName, Kind: OneToMany})
}

// InsertManyToOne inserts a plain single reference to another model.
func (m *Model) InsertManyToOne(name, modelName string) *TypeError {
	return m.insertRelation(ModelRelation{Name: name, ModelName: modelName, Kind: ManyToOne})
}

// InsertManyToMany inserts a plain array reference to another model.
func (m *Model) InsertManyToMany(name, modelName string) *TypeError {
	return m.insertRelation(ModelRelation{Name: name, ModelName: modelName, Kind: ManyToMany})
}

func (m *Model) insertRelation(relation ModelRelation) *TypeError {
	if err := m.insertKey(relation.Name); err != nil {
		return err
	}

	m.Relations.Insert(relation.Name, relation)

	return nil
}

// Field looks up a data field by name.
func (m *Model) Field(name string) (Field, bool) {
	return m.Fields.Get(name)
}

// EnumRelation looks up an enum relation by name.
func (m *Model) EnumRelation(name string) (EnumRelation, bool) {
	return m.Enums.Get(name)
}

// ModelRelation looks up a model relation by name.
func (m *Model) ModelRelation(name string) (ModelRelation, bool) {
	return m.Relations.Get(name)
}

// Enum is a checked enum.
type Enum struct {
	Name   string
	Values []string
}
