// Package robotom describes the host's type library as this module sees it:
// interface tags, entity families, label kinds and the host enumerations.
//
// Codes follow one rule the rest of the module relies on: the undefined member
// of IRobotObjectType and IRobotLabelType is zero.
package robotom

import "github.com/robotkit/robotkit-sdk/domain/entities"

// Interface tags of the host object model.
const (
	IRobotApplication      entities.TypeTag = "IRobotApplication"
	IRobotProject          entities.TypeTag = "IRobotProject"
	IRobotStructure        entities.TypeTag = "IRobotStructure"
	IRobotSelectionFactory entities.TypeTag = "IRobotSelectionFactory"
	IRobotSelection        entities.TypeTag = "IRobotSelection"

	IRobotNodeServer entities.TypeTag = "IRobotNodeServer"
	IRobotNode       entities.TypeTag = "IRobotNode"
	IRobotBarServer  entities.TypeTag = "IRobotBarServer"
	IRobotBar        entities.TypeTag = "IRobotBar"

	IRobotCaseServer      entities.TypeTag = "IRobotCaseServer"
	IRobotCase            entities.TypeTag = "IRobotCase"
	IRobotSimpleCase      entities.TypeTag = "IRobotSimpleCase"
	IRobotCaseCombination entities.TypeTag = "IRobotCaseCombination"
	IRobotCaseFactorMngr  entities.TypeTag = "IRobotCaseFactorMngr"
	IRobotCaseFactor      entities.TypeTag = "IRobotCaseFactor"

	IRobotLabelServer       entities.TypeTag = "IRobotLabelServer"
	IRobotLabel             entities.TypeTag = "IRobotLabel"
	IRobotMaterialData      entities.TypeTag = "IRobotMaterialData"
	IRobotBarSectionData    entities.TypeTag = "IRobotBarSectionData"
	IRobotNodeSupportData   entities.TypeTag = "IRobotNodeSupportData"
	IRobotBarReleaseData    entities.TypeTag = "IRobotBarReleaseData"
	IRobotBarEndReleaseData entities.TypeTag = "IRobotBarEndReleaseData"
)

// Entity families, keyed by their IRobotObjectType code.
const (
	DomainUndefined entities.DomainTag = 0
	DomainNode      entities.DomainTag = 1
	DomainBar       entities.DomainTag = 2
	DomainCase      entities.DomainTag = 3
	DomainObject    entities.DomainTag = 4
	DomainFamily    entities.DomainTag = 5
)

// Label kinds, keyed by their IRobotLabelType code.
const (
	LabelUndefined   entities.LabelKind = 0
	LabelSupport     entities.LabelKind = 1
	LabelBarSection  entities.LabelKind = 2
	LabelBarRelease  entities.LabelKind = 3
	LabelMaterial    entities.LabelKind = 4
	LabelCaseCombine entities.LabelKind = 5
)
