package models

import "gorm.io/gorm"

// BodyMeasurement is a named set of body measurements (cm) a customer can
// select when ordering a garment. The tag is the human-readable selector key
// and must be unique per owner. At most one profile per owner is the default.
type BodyMeasurement struct {
	ID                string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OwnerID           string `json:"ownerId" gorm:"index:idx_owner_tag,unique;type:varchar(36)"`
	Tag               string `json:"tag" gorm:"index:idx_owner_tag,unique;type:varchar(100)" validate:"required,min=1,max=100"`
	IsDefault         bool   `json:"isDefault"`
	MeasurementValues `gorm:"embedded"`
	gorm.Model
}

// MeasurementValues holds the numeric body-measurement fields shared by the
// stored profile and the by-value snapshot captured on each order.
type MeasurementValues struct {
	Neck                float64 `json:"neck" validate:"gt=0"`
	Shoulder            float64 `json:"shoulder" validate:"gt=0"`
	Chest               float64 `json:"chest" validate:"gt=0"`
	Tummy               float64 `json:"tummy" validate:"gt=0"`
	HipWidth            float64 `json:"hipWidth" validate:"gt=0"`
	NeckToHipLength     float64 `json:"neckToHipLength" validate:"gt=0"`
	ShortSleeveAtBiceps float64 `json:"shortSleeveAtBiceps" validate:"gt=0"`
	MidSleeveAtElbow    float64 `json:"midSleeveAtElbow" validate:"gt=0"`
	LongSleeveAtWrist   float64 `json:"longSleeveAtWrist" validate:"gt=0"`
	Waist               float64 `json:"waist" validate:"gt=0"`
	Thigh               float64 `json:"thigh" validate:"gt=0"`
	Knee                float64 `json:"knee" validate:"gt=0"`
	Ankle               float64 `json:"ankle" validate:"gt=0"`
	TrouserLength       float64 `json:"trouserLength" validate:"gt=0"`
}
