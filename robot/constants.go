package robot

import (
	"github.com/robotkit/robotkit-sdk/alias"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Alias tables over the host enumerations. Every table holds the host member
// names plus the short aliases listed here.
var (
	ProjType = alias.MustNew(robotom.ProjectType, []alias.Alias{
		alias.Named("BUILDING", "I_PT_BUILDING"),
		alias.Named("FRAME_2D", "I_PT_FRAME_2D"),
		alias.Named("FRAME_3D", "I_PT_FRAME_3D"),
		alias.Named("SHELL", "I_PT_SHELL"),
		alias.Named("TRUSS_2D", "I_PT_TRUSS_2D"),
		alias.Named("TRUSS_3D", "I_PT_TRUSS_3D"),
	})

	QuitOpt = alias.MustNew(robotom.QuitOption, []alias.Alias{
		alias.Named("DISCARD", "I_QO_DISCARD_CHANGES"),
		alias.Named("PROMPT", "I_QO_PROMPT_TO_SAVE_CHANGES"),
		alias.Named("SAVE", "I_QO_SAVE_CHANGES"),
	})

	ObjectType = alias.MustNew(robotom.ObjectType, []alias.Alias{
		alias.Named("UNDEFINED", "I_OT_UNDEFINED"),
		alias.Named("BAR", "I_OT_BAR"),
		alias.Named("CASE", "I_OT_CASE"),
		alias.Named("NODE", "I_OT_NODE"),
	})

	LabelType = alias.MustNew(robotom.LabelType, []alias.Alias{
		alias.Named("BAR_SECT", "I_LT_BAR_SECTION"),
		alias.Named("MAT", "I_LT_MATERIAL"),
		alias.Named("SUPPORT", "I_LT_SUPPORT"),
		alias.Named("RELEASE", "I_LT_BAR_RELEASE"),
	})

	CaseNature = alias.MustNew(robotom.CaseNature, []alias.Alias{
		alias.Named("PERM", "I_CN_PERMANENT"),
		alias.Named("IMPOSED", "I_CN_EXPLOATATION"),
		alias.Named("WIND", "I_CN_WIND"),
		alias.Named("SNOW", "I_CN_SNOW"),
		alias.Named("ACC", "I_CN_ACCIDENTAL"),
	})

	CaseType = alias.MustNew(robotom.CaseType, []alias.Alias{
		alias.Named("SIMPLE", "I_CT_SIMPLE"),
		alias.Named("COMB", "I_CT_COMBINATION"),
	})

	CombType = alias.MustNew(robotom.CombinationType, []alias.Alias{
		alias.Named("SLS", "I_CBT_SLS"),
		alias.Named("ULS", "I_CBT_ULS"),
	})

	AnalysisType = alias.MustNew(robotom.CaseAnalizeType, []alias.Alias{
		alias.Named("LINEAR", "I_CAT_STATIC_LINEAR"),
		alias.Named("NON_LIN", "I_CAT_STATIC_NONLINEAR"),
		alias.Named("COMB_LINEAR", "I_CAT_COMB"),
		alias.Named("COMB_NON_LIN", "I_CAT_COMB_NONLINEAR"),
	})

	LoadType = alias.MustNew(robotom.LoadRecordType, []alias.Alias{
		alias.Named("DEAD", "I_LRT_DEAD"),
		alias.Named("NODAL", "I_LRT_NODE_FORCE"),
		alias.Named("BAR_UDL", "I_LRT_BAR_UNIFORM"),
		alias.Named("BAR_PL", "I_LRT_BAR_FORCE_CONCENTRATED"),
	})

	MatType = alias.MustNew(robotom.MaterialType, []alias.Alias{
		alias.Named("STEEL", "I_MT_STEEL"),
		alias.Named("ALUM", "I_MT_ALUMINIUM"),
		alias.Named("TIMBER", "I_MT_TIMBER"),
		alias.Named("CONCRETE", "I_MT_CONCRETE"),
		alias.Named("OTHER", "I_MT_OTHER"),
	})

	ReleaseValues = alias.MustNew(robotom.BarEndReleaseValue, []alias.Alias{
		alias.Named("NONE", "I_BERV_NONE"),
		alias.Named("STD", "I_BERV_STD"),
		alias.Named("FIXED", "I_BERV_FIXED"),
	})

	DeadValues = alias.MustNew(robotom.DeadRecordValues, []alias.Alias{
		alias.Named("X", "I_DRV_X"),
		alias.Named("Y", "I_DRV_Y"),
		alias.Named("Z", "I_DRV_Z"),
		alias.Named("COEFF", "I_DRV_COEFF"),
		alias.Named("ENTIRE_STRUCT", "I_DRV_ENTIRE_STRUCTURE"),
	})

	BarUDLValues = alias.MustNew(robotom.BarUniformRecordValues, []alias.Alias{
		alias.Named("FX", "I_BURV_PX"),
		alias.Named("FY", "I_BURV_PY"),
		alias.Named("FZ", "I_BURV_PZ"),
		alias.Named("ALPHA", "I_BURV_ALPHA"),
		alias.Named("BETA", "I_BURV_BETA"),
		alias.Named("GAMMA", "I_BURV_GAMMA"),
		alias.Named("IS_LOC", "I_BURV_LOCAL"),
		alias.Named("IS_PROJ", "I_BURV_PROJECTION"),
		alias.Named("IS_REL", "I_BURV_RELATIVE"),
		alias.Named("OFFSET_Y", "I_BURV_OFFSET_Y"),
		alias.Named("OFFSET_Z", "I_BURV_OFFSET_Z"),
	})

	BarPLValues = alias.MustNew(robotom.BarForceConcentrateRecordValues, []alias.Alias{
		alias.Named("X", "I_BFCRV_X"),
		alias.Named("FX", "I_BFCRV_FX"),
		alias.Named("FY", "I_BFCRV_FY"),
		alias.Named("FZ", "I_BFCRV_FZ"),
		alias.Named("CX", "I_BFCRV_CX"),
		alias.Named("CY", "I_BFCRV_CY"),
		alias.Named("CZ", "I_BFCRV_CZ"),
		alias.Named("ALPHA", "I_BFCRV_ALPHA"),
		alias.Named("BETA", "I_BFCRV_BETA"),
		alias.Named("GAMMA", "I_BFCRV_GAMMA"),
		alias.Named("GEN_NODE", "I_BFCRV_GENERATE_CALC_NODE"),
		alias.Named("IS_LOC", "I_BFCRV_LOC"),
		alias.Named("IS_REL", "I_BFCRV_REL"),
		alias.Named("OFFSET_Y", "I_BFCRV_OFFSET_Y"),
		alias.Named("OFFSET_Z", "I_BFCRV_OFFSET_Z"),
	})

	License = alias.MustNew(robotom.LicenseEntitlement, []alias.Alias{
		alias.Named("LOCAL", "I_LE_LOCAL_SOLVE"),
		alias.Named("CLOUD", "I_LE_CLOUD_SOLVE"),
	})

	LicenseStatus = alias.MustNew(robotom.LicenseEntitlementStatus, []alias.Alias{
		alias.Named("OK", "I_LES_ENTITLED"),
	})
)

// Synonyms resolves the short keywords accepted wherever a project type, case
// nature, combination type or analysis type is expected.
var Synonyms = alias.NewSynonyms([]*alias.Table{ProjType, CaseNature, CombType, AnalysisType})

// Tables returns every alias table by name.
func Tables() map[string]*alias.Table {
	return map[string]*alias.Table{
		"ProjType":      ProjType,
		"QuitOpt":       QuitOpt,
		"ObjectType":    ObjectType,
		"LabelType":     LabelType,
		"CaseNature":    CaseNature,
		"CaseType":      CaseType,
		"CombType":      CombType,
		"AnalysisType":  AnalysisType,
		"LoadType":      LoadType,
		"MatType":       MatType,
		"ReleaseValues": ReleaseValues,
		"DeadValues":    DeadValues,
		"BarUDLValues":  BarUDLValues,
		"BarPLValues":   BarPLValues,
		"License":       License,
		"LicenseStatus": LicenseStatus,
	}
}
