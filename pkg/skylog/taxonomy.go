package skylog

// Family groups event kinds that share a payload shape.
type Family struct {
	Name  string // counter, duration, measurement, structured, fallback
	Desc  string
	Kinds []KindInfo
}

// KindInfo describes one event kind.
type KindInfo struct {
	Name string // marker token, e.g. "GuiderSettle"
	Desc string
	Unit string // "s", "arcsec", "px" or empty
}

// Taxonomy returns the catalogue of recognised event kinds, grouped by
// family in classification priority order. The result is a copy.
func (s *Skylog) Taxonomy() []Family {
	roots := s.taxonomy.Roots()
	families := make([]Family, len(roots))
	for i, root := range roots {
		kinds := make([]KindInfo, len(root.Children))
		for j, child := range root.Children {
			kinds[j] = KindInfo{Name: child.Name, Desc: child.Desc, Unit: child.Unit}
		}
		families[i] = Family{Name: root.Name, Desc: root.Desc, Kinds: kinds}
	}
	return families
}
