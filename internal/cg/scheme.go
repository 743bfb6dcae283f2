package cg

import "fmt"

// Scheme selects the conjugate-direction coefficient formula. It is fixed at
// construction; running a second scheme requires a fresh optimizer instance.
type Scheme int

const (
	FletcherReeves Scheme = iota
	PolakRibiere
	HestenesStiefel
	ConjugateDescent
	DaiYuan
)

var schemeNames = map[Scheme]string{
	FletcherReeves:   "fletcher-reeves",
	PolakRibiere:     "polak-ribiere",
	HestenesStiefel:  "hestenes-stiefel",
	ConjugateDescent: "conjugate-descent",
	DaiYuan:          "dai-yuan",
}

// Schemes lists all supported schemes.
func Schemes() []Scheme {
	return []Scheme{FletcherReeves, PolakRibiere, HestenesStiefel, ConjugateDescent, DaiYuan}
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("scheme(%d)", int(s))
}

// ParseScheme resolves a scheme from its CLI name.
func ParseScheme(name string) (Scheme, error) {
	for s, n := range schemeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scheme %q", name)
}
