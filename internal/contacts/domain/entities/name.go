package entities

// Name - имя контакта, оно же ключ в адресной книге.
type Name struct {
	Field[string]
}

// NewName создает имя из непустой строки.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, ErrEmptyName
	}
	return Name{Field: NewField(raw)}, nil
}

func (n Name) String() string { return n.Value() }
