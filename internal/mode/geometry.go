package mode

// Geometry is the kind of map feature a preset is added as.
type Geometry int

const (
	GeometryNone Geometry = iota
	Point
	Vertex
	Line
	Area

	geometryCount
)

var geometryNames = [geometryCount]string{
	GeometryNone: "",
	Point:        "point",
	Vertex:       "vertex",
	Line:         "line",
	Area:         "area",
}

func (g Geometry) String() string {
	if g < 0 || g >= geometryCount {
		return ""
	}
	return geometryNames[g]
}

// ParseGeometry maps a geometry name onto its Geometry. Unknown names
// report false.
func ParseGeometry(s string) (Geometry, bool) {
	for g := Point; g < geometryCount; g++ {
		if geometryNames[g] == s {
			return g, true
		}
	}
	return GeometryNone, false
}

// Constructor builds an add mode from a partially filled base.
type Constructor func(tr Translator, base *Mode) Mode

// Constructors maps each geometry onto the add mode that draws it. The
// array is sized by the geometry enum so a new geometry without an entry
// is caught at compile time by the keyed literal.
var Constructors = [geometryCount]Constructor{
	GeometryNone: nil,
	Point:        AddPoint,
	Vertex:       AddPoint,
	Line:         AddLine,
	Area:         AddArea,
}

// ConstructorFor returns the constructor for g, or nil if g has none.
func ConstructorFor(g Geometry) Constructor {
	if g < 0 || g >= geometryCount {
		return nil
	}
	return Constructors[g]
}
