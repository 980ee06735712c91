package b

import "a"

func use() {
	a.Fatal("from b")
	println("after") // want "unreachable code: Fatal never returns"
}
