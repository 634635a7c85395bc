package entities

// Model is a host-independent description of a structure, used to seed a
// reference host. Enumerated fields (case nature, analysis type...) hold either a
// host member name or an alias; the host decides how to resolve them.
type Model struct {
	ProjectType string           `yaml:"project_type" json:"project_type,omitempty"`
	Nodes       []NodeRecord     `yaml:"nodes" json:"nodes,omitempty" validate:"dive"`
	Bars        []BarRecord      `yaml:"bars" json:"bars,omitempty" validate:"dive"`
	Cases       []CaseRecord     `yaml:"cases" json:"cases,omitempty" validate:"dive"`
	Materials   []MaterialRecord `yaml:"materials" json:"materials,omitempty" validate:"dive"`
	Sections    []SectionRecord  `yaml:"sections" json:"sections,omitempty" validate:"dive"`
	Supports    []SupportRecord  `yaml:"supports" json:"supports,omitempty" validate:"dive"`
	Releases    []ReleaseRecord  `yaml:"releases" json:"releases,omitempty" validate:"dive"`
}

// NodeRecord describes one node.
type NodeRecord struct {
	Support string  `yaml:"support,omitempty" json:"support,omitempty"`
	Number  int     `yaml:"number" json:"number" validate:"gt=0"`
	X       float64 `yaml:"x" json:"x"`
	Y       float64 `yaml:"y" json:"y"`
	Z       float64 `yaml:"z" json:"z"`
}

// BarRecord describes one bar between two existing nodes.
type BarRecord struct {
	Section  string `yaml:"section,omitempty" json:"section,omitempty"`
	Material string `yaml:"material,omitempty" json:"material,omitempty"`
	Release  string `yaml:"release,omitempty" json:"release,omitempty"`
	Number   int    `yaml:"number" json:"number" validate:"gt=0"`
	Start    int    `yaml:"start" json:"start" validate:"gt=0"`
	End      int    `yaml:"end" json:"end" validate:"gt=0,nefield=Start"`
}

// CaseRecord describes a simple load case or, when Factors or CombinationType is
// set, a load combination.
type CaseRecord struct {
	Name            string         `yaml:"name" json:"name" validate:"required"`
	Nature          string         `yaml:"nature" json:"nature" validate:"required"`
	Analysis        string         `yaml:"analysis" json:"analysis" validate:"required"`
	CombinationType string         `yaml:"combination_type,omitempty" json:"combination_type,omitempty"`
	Factors         []FactorRecord `yaml:"factors,omitempty" json:"factors,omitempty" validate:"dive"`
	Number          int            `yaml:"number" json:"number" validate:"gt=0"`
}

// FactorRecord weights one case inside a combination.
type FactorRecord struct {
	Case   int     `yaml:"case" json:"case" validate:"gt=0"`
	Factor float64 `yaml:"factor" json:"factor"`
}

// MaterialRecord describes a material label.
type MaterialRecord struct {
	Name    string  `yaml:"name" json:"name" validate:"required"`
	Type    string  `yaml:"type,omitempty" json:"type,omitempty"`
	E       float64 `yaml:"e" json:"e" validate:"gte=0"`
	G       float64 `yaml:"g" json:"g" validate:"gte=0"`
	NU      float64 `yaml:"nu" json:"nu"`
	RO      float64 `yaml:"ro" json:"ro" validate:"gte=0"`
	RE      float64 `yaml:"re" json:"re" validate:"gte=0"`
	Default bool    `yaml:"default,omitempty" json:"default,omitempty"`
}

// SectionRecord describes a bar section label by its section properties.
type SectionRecord struct {
	Name     string  `yaml:"name" json:"name" validate:"required"`
	Material string  `yaml:"material,omitempty" json:"material,omitempty"`
	IX       float64 `yaml:"ix" json:"ix" validate:"gte=0"`
	IY       float64 `yaml:"iy" json:"iy" validate:"gte=0"`
	IZ       float64 `yaml:"iz" json:"iz" validate:"gte=0"`
	D        float64 `yaml:"d" json:"d" validate:"gte=0"`
	BF       float64 `yaml:"bf" json:"bf" validate:"gte=0"`
	TF       float64 `yaml:"tf" json:"tf" validate:"gte=0"`
	Weight   float64 `yaml:"weight" json:"weight" validate:"gte=0"`
}

// SupportRecord describes a support label by its six fixities, e.g. "111000" for a pin.
type SupportRecord struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	DOF  string `yaml:"dof" json:"dof" validate:"required,len=6,numeric"`
}

// ReleaseRecord describes a bar end release label by the values at each end,
// e.g. start "111000" and end "000111".
type ReleaseRecord struct {
	Name  string `yaml:"name" json:"name" validate:"required"`
	Start string `yaml:"start" json:"start" validate:"required,len=6,numeric"`
	End   string `yaml:"end" json:"end" validate:"required,len=6,numeric"`
}
