package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room.Status is the single source of truth for bookability.
const (
	RoomStatusAvailable   = "available"
	RoomStatusReserved    = "reserved"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	gorm.Model

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;size:50"`
	Status     string `json:"status" gorm:"size:20;default:available;index"`

	Price           float64 `json:"price"`
	Deposit         float64 `json:"deposit"`
	WaterRate       float64 `json:"waterRate" gorm:"column:water_rate;default:18"`
	ElectricityRate float64 `json:"electricityRate" gorm:"column:electricity_rate;default:8"`

	Facilities datatypes.JSON `json:"facilities,omitempty"`
	Images     datatypes.JSON `json:"images,omitempty"`

	Floor        int     `json:"floor"`
	Size         float64 `json:"size"`
	MaxOccupants int     `json:"maxOccupants" gorm:"column:max_occupants;default:1"`
	Description  string  `json:"description,omitempty" gorm:"type:text"`
}
