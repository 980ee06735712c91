package c

import "omibyte.io/quill/strview"

type holder struct {
	line strview.String // want "struct field of type strview.String retains a borrowed view"
	n    int
}

type pointerHolder struct {
	line *strview.String // want "struct field of type strview.String retains a borrowed view"
}

var last strview.String // want "package-level variable last retains a borrowed view"

var anything interface{}

type box struct {
	v interface{}
}

func store(line strview.String, b *box, m map[int]interface{}, ch chan strview.String) {
	anything = line // want "strview.String stored in package-level variable anything outlives the call"
	b.v = line      // want "strview.String stored in field v outlives the call"
	m[0] = line     // want "strview.String stored in a map outlives the call"
	ch <- line      // want "strview.String sent on a channel outlives the call"
}

func fine(line strview.String) int {
	local := line
	copied := []byte(nil)
	_ = copied
	return local.Len()
}

func length() int {
	return strview.FromString("abc").Len()
}
