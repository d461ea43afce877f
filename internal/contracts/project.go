package contracts

// ProjectType is the closed enumeration of undertakings the rule set knows.
type ProjectType string

const (
	ProjectNegocio     ProjectType = "negocio"     // business / company
	ProjectTienda      ProjectType = "tienda"      // shop / commerce
	ProjectContrato    ProjectType = "contrato"    // contract / agreement
	ProjectInversion   ProjectType = "inversion"   // investment
	ProjectLanzamiento ProjectType = "lanzamiento" // product launch
	ProjectSociedad    ProjectType = "sociedad"    // partnership
	ProjectWeb         ProjectType = "web"         // website / app
	ProjectOtro        ProjectType = "otro"        // anything else
)

// AllProjectTypes lists the supported types in declaration order.
var AllProjectTypes = []ProjectType{
	ProjectNegocio, ProjectTienda, ProjectContrato, ProjectInversion,
	ProjectLanzamiento, ProjectSociedad, ProjectWeb, ProjectOtro,
}

// ParseProjectType maps a request string to a known type. Unknown values
// fall back to the general profile rather than failing the request.
func ParseProjectType(s string) ProjectType {
	t := ProjectType(s)
	if _, ok := profiles[t]; ok {
		return t
	}
	return ProjectOtro
}

// Category groups rules so project types can weight whole families of
// rules by lookup instead of per-rule branching.
type Category string

const (
	CategoryLunar   Category = "lunar"
	CategoryMercury Category = "mercury"
	CategoryBenefic Category = "benefic"
	CategoryMalefic Category = "malefic"
	CategorySign    Category = "sign"
	CategorySolar   Category = "solar"
	CategoryRuler   Category = "ruler"
)

// Profile describes how a project type reads the sky: which planets signify
// it (Robson ch. 8-9) and how heavily each rule category counts.
type Profile struct {
	Description   string               `json:"description"`
	Significators []Body               `json:"significators"`
	Weights       map[Category]float64 `json:"weights,omitempty"` // missing category = 1.0
}

var profiles = map[ProjectType]Profile{
	ProjectNegocio: {
		Description:   "Business / Company",
		Significators: []Body{Jupiter, Sun, Mercury},
		Weights:       map[Category]float64{CategorySolar: 1.25},
	},
	ProjectTienda: {
		Description:   "Shop / Commerce",
		Significators: []Body{Mercury, Jupiter, Venus},
		Weights:       map[Category]float64{CategorySign: 1.25},
	},
	ProjectContrato: {
		Description:   "Contract / Agreement",
		Significators: []Body{Mercury, Jupiter},
		Weights:       map[Category]float64{CategoryMercury: 1.5},
	},
	ProjectInversion: {
		Description:   "Investment",
		Significators: []Body{Jupiter, Venus},
		Weights:       map[Category]float64{CategoryBenefic: 1.25},
	},
	ProjectLanzamiento: {
		Description:   "Product Launch",
		Significators: []Body{Sun, Jupiter, Mars},
		Weights:       map[Category]float64{CategorySolar: 1.5},
	},
	ProjectSociedad: {
		Description:   "Partnership",
		Significators: []Body{Jupiter, Venus},
		Weights:       map[Category]float64{CategoryBenefic: 1.25},
	},
	ProjectWeb: {
		Description:   "Website / App",
		Significators: []Body{Mercury, Uranus},
		Weights:       map[Category]float64{CategoryMercury: 1.25},
	},
	ProjectOtro: {
		Description:   "General Project",
		Significators: []Body{Jupiter, Venus},
	},
}

// Profile returns the project's electional profile.
func (p ProjectType) Profile() Profile {
	if prof, ok := profiles[p]; ok {
		return prof
	}
	return profiles[ProjectOtro]
}

// Description returns the human-readable project description.
func (p ProjectType) Description() string { return p.Profile().Description }

// Significators returns the planets classically governing the project.
func (p ProjectType) Significators() []Body { return p.Profile().Significators }

// CategoryWeight returns the relevance multiplier of a rule category for
// this project type. Categories not listed weigh 1.0.
func (p ProjectType) CategoryWeight(c Category) float64 {
	if w, ok := p.Profile().Weights[c]; ok {
		return w
	}
	return 1.0
}
