package memhost

import (
	"slices"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Concrete host types served by the reference host.
const (
	RobotApplication      entities.TypeTag = "RobotApplication"
	RobotProject          entities.TypeTag = "RobotProject"
	RobotStructure        entities.TypeTag = "RobotStructure"
	RobotSelectionFactory entities.TypeTag = "RobotSelectionFactory"
	RobotSelection        entities.TypeTag = "RobotSelection"

	RobotNodeServer entities.TypeTag = "RobotNodeServer"
	RobotNode       entities.TypeTag = "RobotNode"
	RobotBarServer  entities.TypeTag = "RobotBarServer"
	RobotBar        entities.TypeTag = "RobotBar"

	RobotCaseServer      entities.TypeTag = "RobotCaseServer"
	RobotSimpleCase      entities.TypeTag = "RobotSimpleCase"
	RobotCaseCombination entities.TypeTag = "RobotCaseCombination"
	RobotCaseFactorMngr  entities.TypeTag = "RobotCaseFactorMngr"
	RobotCaseFactor      entities.TypeTag = "RobotCaseFactor"

	RobotLabelServer       entities.TypeTag = "RobotLabelServer"
	RobotLabel             entities.TypeTag = "RobotLabel"
	RobotMaterialData      entities.TypeTag = "RobotMaterialData"
	RobotBarSectionData    entities.TypeTag = "RobotBarSectionData"
	RobotNodeSupportData   entities.TypeTag = "RobotNodeSupportData"
	RobotBarReleaseData    entities.TypeTag = "RobotBarReleaseData"
	RobotBarEndReleaseData entities.TypeTag = "RobotBarEndReleaseData"
)

// hostType implements ports.Instance for every reference host object.
type hostType struct {
	name       entities.TypeTag
	interfaces []entities.TypeTag
}

func (t hostType) HostType() entities.TypeTag {
	return t.name
}

func (t hostType) Satisfies(tag entities.TypeTag) bool {
	return tag == t.name || slices.Contains(t.interfaces, tag)
}

func newType(name entities.TypeTag, interfaces ...entities.TypeTag) hostType {
	return hostType{name: name, interfaces: interfaces}
}

var (
	applicationType = newType(RobotApplication, robotom.IRobotApplication)
	projectType     = newType(RobotProject, robotom.IRobotProject)
	structureType   = newType(RobotStructure, robotom.IRobotStructure)
	factoryType     = newType(RobotSelectionFactory, robotom.IRobotSelectionFactory)
	selectionType   = newType(RobotSelection, robotom.IRobotSelection)

	nodeServerType = newType(RobotNodeServer, robotom.IRobotNodeServer)
	nodeType       = newType(RobotNode, robotom.IRobotNode)
	barServerType  = newType(RobotBarServer, robotom.IRobotBarServer)
	barType        = newType(RobotBar, robotom.IRobotBar)

	caseServerType  = newType(RobotCaseServer, robotom.IRobotCaseServer)
	simpleCaseType  = newType(RobotSimpleCase, robotom.IRobotCase, robotom.IRobotSimpleCase)
	combinationType = newType(RobotCaseCombination, robotom.IRobotCase, robotom.IRobotCaseCombination)
	factorMngrType  = newType(RobotCaseFactorMngr, robotom.IRobotCaseFactorMngr)
	factorType      = newType(RobotCaseFactor, robotom.IRobotCaseFactor)

	labelServerType    = newType(RobotLabelServer, robotom.IRobotLabelServer)
	labelType          = newType(RobotLabel, robotom.IRobotLabel)
	materialDataType   = newType(RobotMaterialData, robotom.IRobotMaterialData)
	sectionDataType    = newType(RobotBarSectionData, robotom.IRobotBarSectionData)
	supportDataType    = newType(RobotNodeSupportData, robotom.IRobotNodeSupportData)
	releaseDataType    = newType(RobotBarReleaseData, robotom.IRobotBarReleaseData)
	endReleaseDataType = newType(RobotBarEndReleaseData, robotom.IRobotBarEndReleaseData)
)
