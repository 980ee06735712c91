package rtio

type Console struct{}

func (c *Console) Abort(reason string) {
	panic(reason)
}

func (c *Console) Println(line string) {}

func Panic(reason string) {
	panic(reason)
}
