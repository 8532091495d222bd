package entity

// Equipment categories.
const (
	CategoryWeapon    = "weapon"
	CategoryVehicle   = "vehicle"
	CategoryAmmo      = "ammunition"
	CategoryEquipment = "equipment"
)

// EquipmentType is a category of trackable asset with a unit of measure.
// Reference data, immutable.
type EquipmentType struct {
	ID            int64
	Name          string
	Category      string
	UnitOfMeasure string
}
