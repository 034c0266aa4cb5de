package validation

// Record es la bolsa de atributos de una entidad antes de persistir.
// Conserva el orden de declaración de los atributos y lleva el ID propio
// para que uniqueness pueda excluir al mismo registro en updates.
type Record struct {
	id    string
	names []string
	attrs map[string]Value
}

func NewRecord(id string) *Record {
	return &Record{
		id:    id,
		attrs: make(map[string]Value),
	}
}

// Set agrega o reemplaza un atributo (upsert, conserva el orden original).
func (r *Record) Set(name string, v Value) *Record {
	if _, ok := r.attrs[name]; !ok {
		r.names = append(r.names, name)
	}
	r.attrs[name] = v
	return r
}

// Get devuelve el valor del atributo; ausente => (Null, false).
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.attrs[name]
	if !ok {
		return Null, false
	}
	return v, true
}

func (r *Record) ID() string { return r.id }

func (r *Record) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
