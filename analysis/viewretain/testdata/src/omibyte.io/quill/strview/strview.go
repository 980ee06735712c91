package strview

type String struct {
	b []byte
}

func FromString(s string) String {
	return String{b: []byte(s)}
}

func (s String) Len() int {
	return len(s.b)
}
