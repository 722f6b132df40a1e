package csgx

// Dict maps a Name's text to the Object bound to it. Keys are plain
// strings rather than Name values because dictionary lookup never
// cares about the literal/executable mode of the name being searched
// for, only of the name being defined.
type Dict map[string]Object

// dictStack is the layered name -> object lookup described in
// SPEC_FULL.md §4.3. Insertion targets the top layer only; lookup
// scans top-to-bottom and returns the first hit. A plain mutable map
// per layer is sufficient because the engine is single-threaded.
type dictStack struct {
	layers []Dict
}

func newDictStack(system Dict) *dictStack {
	return &dictStack{layers: []Dict{system, Dict{}}}
}

// def inserts name -> obj into the topmost dictionary.
func (ds *dictStack) def(name string, obj Object) {
	ds.layers[len(ds.layers)-1][name] = obj
}

// undef removes name from the topmost dictionary, if present there.
// It does not reach into deeper layers: undefining a user binding
// exposes whatever the layer below already holds for that name.
func (ds *dictStack) undef(name string) {
	delete(ds.layers[len(ds.layers)-1], name)
}

// get searches top-to-bottom and returns the first binding found.
func (ds *dictStack) get(name string) (Object, bool) {
	for i := len(ds.layers) - 1; i >= 0; i-- {
		if obj, ok := ds.layers[i][name]; ok {
			return obj, true
		}
	}
	return nil, false
}

func (ds *dictStack) systemDict() Dict {
	return ds.layers[0]
}

func (ds *dictStack) userDict() Dict {
	return ds.layers[1]
}

func (ds *dictStack) depth() int {
	return len(ds.layers)
}
