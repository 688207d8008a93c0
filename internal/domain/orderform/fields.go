// Package orderform holds the editing rules of a service order draft: per
// field input masks, optometric rounding and clamping, advisory warnings and
// the blocking validation that gates saving.
package orderform

import "opticai/internal/domain/entities"

// Field names a form input. Names match the storage columns so a draft can be
// posted by the same keys the list screen reads.
type Field string

const (
	FieldClientName       Field = entities.ColumnClientName
	FieldClientPhone      Field = entities.ColumnClientPhone
	FieldTaxID            Field = entities.ColumnTaxID
	FieldAddress          Field = entities.ColumnAddress
	FieldBirthDate        Field = entities.ColumnBirthDate
	FieldSaleDate         Field = entities.ColumnSaleDate
	FieldDeliveryDate     Field = entities.ColumnDeliveryDate
	FieldSphereRight      Field = entities.ColumnSphereRight
	FieldCylinderRight    Field = entities.ColumnCylinderRight
	FieldAxisRight        Field = entities.ColumnAxisRight
	FieldDNPRight         Field = entities.ColumnDNPRight
	FieldHeightRight      Field = entities.ColumnHeightRight
	FieldSphereLeft       Field = entities.ColumnSphereLeft
	FieldCylinderLeft     Field = entities.ColumnCylinderLeft
	FieldAxisLeft         Field = entities.ColumnAxisLeft
	FieldDNPLeft          Field = entities.ColumnDNPLeft
	FieldHeightLeft       Field = entities.ColumnHeightLeft
	FieldAddition         Field = entities.ColumnAddition
	FieldLensType         Field = entities.ColumnLensType
	FieldLensDescription  Field = entities.ColumnLensDescription
	FieldTotalValue       Field = entities.ColumnTotalValue
	FieldPaymentMethod    Field = entities.ColumnPaymentMethod
	FieldInstallments     Field = entities.ColumnInstallments
	FieldPaymentStatus    Field = entities.ColumnPaymentStatus
	FieldGeneralNote      Field = entities.ColumnGeneralNote
	FieldOrderDescription Field = entities.ColumnOrderDescription
	FieldClientNote       Field = entities.ColumnClientNote
)

var allFields = []Field{
	FieldClientName, FieldClientPhone, FieldTaxID, FieldAddress, FieldBirthDate,
	FieldSaleDate, FieldDeliveryDate,
	FieldSphereRight, FieldCylinderRight, FieldAxisRight, FieldDNPRight, FieldHeightRight,
	FieldSphereLeft, FieldCylinderLeft, FieldAxisLeft, FieldDNPLeft, FieldHeightLeft,
	FieldAddition, FieldLensType, FieldLensDescription,
	FieldTotalValue, FieldPaymentMethod, FieldInstallments, FieldPaymentStatus,
	FieldGeneralNote, FieldOrderDescription, FieldClientNote,
}

var opticalKinds = map[Field]OpticalKind{
	FieldSphereRight:   KindSphere,
	FieldSphereLeft:    KindSphere,
	FieldCylinderRight: KindCylinder,
	FieldCylinderLeft:  KindCylinder,
	FieldAxisRight:     KindAxis,
	FieldAxisLeft:      KindAxis,
	FieldDNPRight:      KindDNP,
	FieldDNPLeft:       KindDNP,
	FieldHeightRight:   KindHeight,
	FieldHeightLeft:    KindHeight,
}

// Fields lists every editable field in form order.
func Fields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

func (f Field) Valid() bool {
	for _, known := range allFields {
		if f == known {
			return true
		}
	}
	return false
}

// OpticalKind returns the rounding policy of f; ok is false for non optical fields.
func (f Field) OpticalKind() (OpticalKind, bool) {
	k, ok := opticalKinds[f]
	return k, ok
}
