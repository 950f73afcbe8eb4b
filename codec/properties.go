package codec

// Property is a single named value.
type Property struct {
	Name  string
	Value Value
}

// Properties is an insertion-ordered property map with unique names.
type Properties struct {
	entries []Property
	index   map[string]int
}

// NewProperties creates a property map, optionally seeded with properties in order.
func NewProperties(properties ...Property) *Properties {
	ret := &Properties{index: make(map[string]int, len(properties))}
	for _, property := range properties {
		ret.Put(property.Name, property.Value)
	}
	return ret
}

// Put sets a property. An existing name keeps its position.
func (p *Properties) Put(name string, value Value) {
	if p.index == nil {
		p.index = map[string]int{}
	}
	if i, ok := p.index[name]; ok {
		p.entries[i].Value = value
		return
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Property{Name: name, Value: value})
}

// Set converts v with ValueOf and puts it.
func (p *Properties) Set(name string, v any) error {
	value, err := ValueOf(v)
	if err != nil {
		if encErr, ok := err.(*EncodingError); ok {
			encErr.Key = name
		}
		return err
	}
	p.Put(name, value)
	return nil
}

// Get returns the named value.
func (p *Properties) Get(name string) (Value, bool) {
	i, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return p.entries[i].Value, true
}

// Has reports whether name is set.
func (p *Properties) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.entries)
}

// Keys returns property names in insertion order.
func (p *Properties) Keys() []string {
	ret := make([]string, len(p.entries))
	for i, entry := range p.entries {
		ret[i] = entry.Name
	}
	return ret
}

// Range calls fn for each property in insertion order until fn returns false.
func (p *Properties) Range(fn func(name string, value Value) bool) {
	for _, entry := range p.entries {
		if !fn(entry.Name, entry.Value) {
			return
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (p *Properties) MarshalJSON() ([]byte, error) {
	return Encode(p)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Properties) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}
