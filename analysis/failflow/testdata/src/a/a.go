package a

import (
	"log"
	"os"

	"omibyte.io/quill/rtio"
)

func cleanup() {}

func direct() {
	rtio.Panic("boom")
	cleanup() // want "unreachable code: Panic never returns"
}

func method(c *rtio.Console) {
	c.Println("about to fail")
	c.Abort("boom")
	c.Println("never printed") // want "unreachable code: Abort never returns"
}

func exit() {
	os.Exit(3)
	cleanup() // want "unreachable code: Exit never returns"
}

func inSwitch(x int) {
	switch x {
	case 1:
		log.Fatalf("x=%d", x)
		cleanup() // want "unreachable code: Fatalf never returns"
	}
}

// Fatal always ends in rtio.Panic.
func Fatal(msg string) {
	if len(msg) == 0 {
		rtio.Panic("unknown error")
	}
	rtio.Panic(msg)
}

func wrapped() {
	Fatal("x")
	cleanup() // want "unreachable code: Fatal never returns"
}

func level2() {
	rtio.Panic("deep")
}

func level1() {
	level2()
}

func chain() {
	level1()
	cleanup() // want "unreachable code: level1 never returns"
}

func conditional(ok bool) {
	if !ok {
		rtio.Panic("bad")
	}
	cleanup()
}

func callsConditional() {
	conditional(true)
	cleanup()
}

func recovers() {
	defer func() { recover() }()
	panic("recovered")
}

func callsRecovers() {
	recovers()
	cleanup()
}

func last() {
	cleanup()
	rtio.Panic("end")
}

func fatalWithDefer(msg string) {
	defer cleanup()
	rtio.Panic(msg)
}

func callsFatalWithDefer() {
	fatalWithDefer("x")
	cleanup() // want "unreachable code: fatalWithDefer never returns"
}

func deferredValue(f func()) {
	defer f()
	rtio.Panic("maybe recovered")
}

func callsDeferredValue() {
	deferredValue(cleanup)
	cleanup()
}
