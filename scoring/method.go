package scoring

import "fmt"

// Method tells how a checkpoint was satisfied.
type Method int

const (
	// CTP is a course-to-point crossing of the perpendicular plane, inside the radius.
	CTP Method = iota
	// RadiusEntry is the first fix inside the checkpoint radius.
	RadiusEntry
	// PCA is the point of closest approach.
	PCA
)

var methodNames = [...]string{"CTP", "Radius Entry", "PCA"}

func (m Method) String() string {
	if m < CTP || m > PCA {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

func (m Method) MarshalText() ([]byte, error) {
	if m < CTP || m > PCA {
		return nil, fmt.Errorf("unknown method %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(b []byte) error {
	for i, n := range methodNames {
		if n == string(b) {
			*m = Method(i)
			return nil
		}
	}
	return fmt.Errorf("unknown method '%s'", string(b))
}
