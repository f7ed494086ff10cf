package schema

type String string

func NewString(s string) String {
	return String(s)
}

func (s String) String() string {
	return string(s)
}

func (s *String) Unmarshal(bs []byte) error {
	*s = String(bs)
	return nil
}
