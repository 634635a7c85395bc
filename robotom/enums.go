package robotom

import "github.com/robotkit/robotkit-sdk/domain/entities"

type member = entities.EnumMember

// Host enumerations.
var (
	ProjectType = entities.NewEnumType("IRobotProjectType",
		member{Name: "I_PT_FRAME_2D", Code: 1},
		member{Name: "I_PT_TRUSS_2D", Code: 2},
		member{Name: "I_PT_GRILLAGE", Code: 3},
		member{Name: "I_PT_FRAME_3D", Code: 4},
		member{Name: "I_PT_TRUSS_3D", Code: 5},
		member{Name: "I_PT_SHELL", Code: 6},
		member{Name: "I_PT_BUILDING", Code: 7},
	)

	QuitOption = entities.NewEnumType("IRobotQuitOption",
		member{Name: "I_QO_DISCARD_CHANGES", Code: 0},
		member{Name: "I_QO_SAVE_CHANGES", Code: 1},
		member{Name: "I_QO_PROMPT_TO_SAVE_CHANGES", Code: 2},
	)

	ObjectType = entities.NewEnumType("IRobotObjectType",
		member{Name: "I_OT_UNDEFINED", Code: int(DomainUndefined)},
		member{Name: "I_OT_NODE", Code: int(DomainNode)},
		member{Name: "I_OT_BAR", Code: int(DomainBar)},
		member{Name: "I_OT_CASE", Code: int(DomainCase)},
		member{Name: "I_OT_OBJECT", Code: int(DomainObject)},
		member{Name: "I_OT_FAMILY", Code: int(DomainFamily)},
	)

	LabelType = entities.NewEnumType("IRobotLabelType",
		member{Name: "I_LT_UNDEFINED", Code: int(LabelUndefined)},
		member{Name: "I_LT_SUPPORT", Code: int(LabelSupport)},
		member{Name: "I_LT_BAR_SECTION", Code: int(LabelBarSection)},
		member{Name: "I_LT_BAR_RELEASE", Code: int(LabelBarRelease)},
		member{Name: "I_LT_MATERIAL", Code: int(LabelMaterial)},
		member{Name: "I_LT_CASE_COMBINATION", Code: int(LabelCaseCombine)},
	)

	CaseNature = entities.NewEnumType("IRobotCaseNature",
		member{Name: "I_CN_PERMANENT", Code: 0},
		member{Name: "I_CN_EXPLOATATION", Code: 1},
		member{Name: "I_CN_WIND", Code: 2},
		member{Name: "I_CN_SNOW", Code: 3},
		member{Name: "I_CN_TEMPERATURE", Code: 4},
		member{Name: "I_CN_ACCIDENTAL", Code: 5},
		member{Name: "I_CN_SEISMIC", Code: 6},
	)

	CaseType = entities.NewEnumType("IRobotCaseType",
		member{Name: "I_CT_SIMPLE", Code: 0},
		member{Name: "I_CT_COMBINATION", Code: 1},
		member{Name: "I_CT_CODE_COMBINATION", Code: 2},
		member{Name: "I_CT_MOBILE", Code: 3},
	)

	CombinationType = entities.NewEnumType("IRobotCombinationType",
		member{Name: "I_CBT_ULS", Code: 0},
		member{Name: "I_CBT_SLS", Code: 1},
		member{Name: "I_CBT_ACC", Code: 2},
	)

	CaseAnalizeType = entities.NewEnumType("IRobotCaseAnalizeType",
		member{Name: "I_CAT_STATIC_LINEAR", Code: 0},
		member{Name: "I_CAT_STATIC_NONLINEAR", Code: 1},
		member{Name: "I_CAT_COMB", Code: 2},
		member{Name: "I_CAT_COMB_NONLINEAR", Code: 3},
		member{Name: "I_CAT_MODAL", Code: 4},
	)

	LoadRecordType = entities.NewEnumType("IRobotLoadRecordType",
		member{Name: "I_LRT_NODE_FORCE", Code: 0},
		member{Name: "I_LRT_BAR_FORCE_CONCENTRATED", Code: 3},
		member{Name: "I_LRT_BAR_UNIFORM", Code: 5},
		member{Name: "I_LRT_DEAD", Code: 7},
	)

	MaterialType = entities.NewEnumType("IRobotMaterialType",
		member{Name: "I_MT_STEEL", Code: 1},
		member{Name: "I_MT_ALUMINIUM", Code: 2},
		member{Name: "I_MT_TIMBER", Code: 3},
		member{Name: "I_MT_CONCRETE", Code: 4},
		member{Name: "I_MT_OTHER", Code: 5},
	)

	BarEndReleaseValue = entities.NewEnumType("IRobotBarEndReleaseValue",
		member{Name: "I_BERV_NONE", Code: 0},
		member{Name: "I_BERV_STD", Code: 1},
		member{Name: "I_BERV_FIXED", Code: 2},
		member{Name: "I_BERV_ELASTIC", Code: 3},
	)

	DeadRecordValues = entities.NewEnumType("IRobotDeadRecordValues",
		member{Name: "I_DRV_X", Code: 0},
		member{Name: "I_DRV_Y", Code: 1},
		member{Name: "I_DRV_Z", Code: 2},
		member{Name: "I_DRV_COEFF", Code: 3},
		member{Name: "I_DRV_ENTIRE_STRUCTURE", Code: 4},
	)

	BarUniformRecordValues = entities.NewEnumType("IRobotBarUniformRecordValues",
		member{Name: "I_BURV_PX", Code: 0},
		member{Name: "I_BURV_PY", Code: 1},
		member{Name: "I_BURV_PZ", Code: 2},
		member{Name: "I_BURV_ALPHA", Code: 3},
		member{Name: "I_BURV_BETA", Code: 4},
		member{Name: "I_BURV_GAMMA", Code: 5},
		member{Name: "I_BURV_LOCAL", Code: 6},
		member{Name: "I_BURV_PROJECTION", Code: 7},
		member{Name: "I_BURV_RELATIVE", Code: 8},
		member{Name: "I_BURV_OFFSET_Y", Code: 9},
		member{Name: "I_BURV_OFFSET_Z", Code: 10},
	)

	BarForceConcentrateRecordValues = entities.NewEnumType("IRobotBarForceConcentrateRecordValues",
		member{Name: "I_BFCRV_FX", Code: 0},
		member{Name: "I_BFCRV_FY", Code: 1},
		member{Name: "I_BFCRV_FZ", Code: 2},
		member{Name: "I_BFCRV_CX", Code: 3},
		member{Name: "I_BFCRV_CY", Code: 4},
		member{Name: "I_BFCRV_CZ", Code: 5},
		member{Name: "I_BFCRV_X", Code: 6},
		member{Name: "I_BFCRV_ALPHA", Code: 7},
		member{Name: "I_BFCRV_BETA", Code: 8},
		member{Name: "I_BFCRV_GAMMA", Code: 9},
		member{Name: "I_BFCRV_GENERATE_CALC_NODE", Code: 10},
		member{Name: "I_BFCRV_LOC", Code: 11},
		member{Name: "I_BFCRV_REL", Code: 12},
		member{Name: "I_BFCRV_OFFSET_Y", Code: 13},
		member{Name: "I_BFCRV_OFFSET_Z", Code: 14},
	)

	LicenseEntitlement = entities.NewEnumType("IRobotLicenseEntitlement",
		member{Name: "I_LE_LOCAL_SOLVE", Code: 1},
		member{Name: "I_LE_CLOUD_SOLVE", Code: 2},
	)

	LicenseEntitlementStatus = entities.NewEnumType("IRobotLicenseEntitlementStatus",
		member{Name: "I_LES_NOT_ENTITLED", Code: 0},
		member{Name: "I_LES_ENTITLED", Code: 1},
		member{Name: "I_LES_EXPIRED", Code: 2},
	)

	BarSectionDataValue = entities.NewEnumType("IRobotBarSectionDataValue",
		member{Name: "I_BSDV_D", Code: 0},
		member{Name: "I_BSDV_BF", Code: 1},
		member{Name: "I_BSDV_TF", Code: 3},
		member{Name: "I_BSDV_IX", Code: 10},
		member{Name: "I_BSDV_IY", Code: 11},
		member{Name: "I_BSDV_IZ", Code: 12},
		member{Name: "I_BSDV_WEIGHT", Code: 20},
	)

	NodeSupportFixingDirection = entities.NewEnumType("IRobotNodeSupportFixingDirection",
		member{Name: "I_NSFD_UX", Code: 0},
		member{Name: "I_NSFD_UY", Code: 1},
		member{Name: "I_NSFD_UZ", Code: 2},
		member{Name: "I_NSFD_RX", Code: 3},
		member{Name: "I_NSFD_RY", Code: 4},
		member{Name: "I_NSFD_RZ", Code: 5},
	)
)

// Enumerations returns every host enumeration, sorted by name.
func Enumerations() []*entities.EnumType {
	return []*entities.EnumType{
		BarEndReleaseValue,
		BarForceConcentrateRecordValues,
		BarSectionDataValue,
		BarUniformRecordValues,
		CaseAnalizeType,
		CaseNature,
		CaseType,
		CombinationType,
		DeadRecordValues,
		LabelType,
		LicenseEntitlement,
		LicenseEntitlementStatus,
		LoadRecordType,
		MaterialType,
		NodeSupportFixingDirection,
		ObjectType,
		ProjectType,
		QuitOption,
	}
}

// Enumeration returns the host enumeration called name.
func Enumeration(name string) (*entities.EnumType, bool) {
	for _, e := range Enumerations() {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// DOF names the six degrees of freedom, in the order of dof strings such as "111000".
var DOF = [6]string{"UX", "UY", "UZ", "RX", "RY", "RZ"}
