package simbad

// Field identifies a measurement carried by a Simbad identifier record.
type Field int

// Measurement fields, in output order.
const (
	FieldProperMotion Field = iota
	FieldParallax
	FieldSpectralType
	FieldMagB
	FieldMagV
	numFields
)

// Fields lists every measurement field.
func Fields() []Field {
	return []Field{FieldProperMotion, FieldParallax, FieldSpectralType, FieldMagB, FieldMagV}
}

// String returns the short field name used in output.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldSpecs[f].Name
}

// Spec returns the extraction rule for f.
func (f Field) Spec() FieldSpec {
	return fieldSpecs[f]
}

// Span is an end-exclusive range of whitespace tokens. A single token i is
// Span{i, i+1}.
type Span struct {
	Start, End int
}

func at(i int) Span { return Span{i, i + 1} }

// FieldSpec says where a field lives in the text record: the first line
// containing Marker holds it, and the token positions are counted after
// splitting that line on whitespace.
type FieldSpec struct {
	Name      string
	Marker    string
	Value     Span
	Error     Span
	Reference int
	Numeric   bool
	Unit      string
}

// fieldSpecs is indexed by Field and never modified.
var fieldSpecs = [numFields]FieldSpec{
	FieldProperMotion: {Name: "pm", Marker: "Proper motions", Value: Span{2, 4}, Error: Span{4, 6}, Reference: 8, Unit: "mas/yr mas/yr"},
	FieldParallax:     {Name: "plx", Marker: "Parallax", Value: at(1), Error: at(2), Reference: 4, Numeric: true, Unit: "mas"},
	FieldSpectralType: {Name: "spec_type", Marker: "Spectral type", Value: at(2), Error: at(3), Reference: 4},
	FieldMagB:         {Name: "magB", Marker: "Flux B", Value: at(3), Error: at(4), Reference: 6, Numeric: true, Unit: "mag"},
	FieldMagV:         {Name: "magV", Marker: "Flux V", Value: at(3), Error: at(4), Reference: 6, Numeric: true, Unit: "mag"},
}

// Catalog names an identifier extracted from the record.
type Catalog int

// Identifier catalogs. MainID is Simbad's own primary identifier; the rest
// are looked up in the Identifiers section in this order.
const (
	MainID Catalog = iota
	CatalogWDS
	CatalogSAO
	CatalogHIP
	CatalogNAME
	CatalogHD
	numCatalogs
)

var catalogNames = [numCatalogs]string{"MAIN_ID", "WDS", "SAO", "HIP", "NAME", "HD"}

// Catalogs lists every identifier catalog, MainID first.
func Catalogs() []Catalog {
	return []Catalog{MainID, CatalogWDS, CatalogSAO, CatalogHIP, CatalogNAME, CatalogHD}
}

// String returns the catalog name as it appears in Simbad output.
func (c Catalog) String() string {
	if c < 0 || c >= numCatalogs {
		return "unknown"
	}
	return catalogNames[c]
}
