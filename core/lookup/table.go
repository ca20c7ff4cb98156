package lookup

// Spec describes how to load one lookup table.
type Spec struct {
	Name  string
	Table string
	// KeyColumns form the key, outermost first. Two columns build a two-level
	// table, e.g. {country_id: {city_id: token}}.
	KeyColumns  []string
	TokenColumn string
}

// Table is an immutable id→token map with one or two key levels.
type Table struct {
	name   string
	depth  int
	flat   map[int64]string
	nested map[int64]map[int64]string
}

func newTable(name string, depth int) *Table {
	t := &Table{name: name, depth: depth}
	if depth == 1 {
		t.flat = make(map[int64]string)
	} else {
		t.nested = make(map[int64]map[int64]string)
	}
	return t
}

func (t *Table) put(keys []int64, token string) {
	if t.depth == 1 {
		t.flat[keys[0]] = token
		return
	}
	inner, ok := t.nested[keys[0]]
	if !ok {
		inner = make(map[int64]string)
		t.nested[keys[0]] = inner
	}
	inner[keys[1]] = token
}

// Name returns the lookup name.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of tokens held.
func (t *Table) Len() int {
	if t.depth == 1 {
		return len(t.flat)
	}
	n := 0
	for _, inner := range t.nested {
		n += len(inner)
	}
	return n
}

// Get resolves keys to a token. A wrong number of keys, or an unknown key,
// resolves to ok=false rather than an error.
func (t *Table) Get(keys ...int64) (string, bool) {
	if len(keys) != t.depth {
		return "", false
	}
	if t.depth == 1 {
		token, ok := t.flat[keys[0]]
		return token, ok
	}
	inner, ok := t.nested[keys[0]]
	if !ok {
		return "", false
	}
	token, ok := inner[keys[1]]
	return token, ok
}
