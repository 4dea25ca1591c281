package model

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleBookingModel struct {
	ScheduleBookingID         uuid.UUID `gorm:"column:schedule_booking_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"schedule_booking_id"`
	ScheduleBookingUserID     uuid.UUID `gorm:"column:schedule_booking_user_id;type:uuid;not null;uniqueIndex:uq_bookings_user_schedule" json:"schedule_booking_user_id"`
	ScheduleBookingScheduleID uuid.UUID `gorm:"column:schedule_booking_schedule_id;type:uuid;not null;uniqueIndex:uq_bookings_user_schedule" json:"schedule_booking_schedule_id"`

	ScheduleBookingCreatedAt time.Time `gorm:"column:schedule_booking_created_at;autoCreateTime" json:"schedule_booking_created_at"`
}

func (ScheduleBookingModel) TableName() string {
	return "schedule_bookings"
}
