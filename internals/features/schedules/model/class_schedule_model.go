package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassScheduleModel struct {
	ClassScheduleID       uuid.UUID `gorm:"column:class_schedule_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"class_schedule_id"`
	ClassScheduleCourseID uuid.UUID `gorm:"column:class_schedule_course_id;type:uuid;not null;index" json:"class_schedule_course_id"`
	ClassScheduleTitle    string    `gorm:"column:class_schedule_title;size:255;not null" json:"class_schedule_title"`

	ClassScheduleStartAt time.Time `gorm:"column:class_schedule_start_at;not null" json:"class_schedule_start_at"`
	ClassScheduleEndAt   time.Time `gorm:"column:class_schedule_end_at;not null" json:"class_schedule_end_at"`

	ClassScheduleSeatQuota  int `gorm:"column:class_schedule_seat_quota;not null;default:0" json:"class_schedule_seat_quota"`
	ClassScheduleSeatBooked int `gorm:"column:class_schedule_seat_booked;not null;default:0" json:"class_schedule_seat_booked"`

	ClassScheduleMeetingURL *string `gorm:"column:class_schedule_meeting_url" json:"class_schedule_meeting_url,omitempty"`

	ClassScheduleCreatedAt time.Time `gorm:"column:class_schedule_created_at;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `gorm:"column:class_schedule_updated_at;autoUpdateTime" json:"class_schedule_updated_at"`
}

func (ClassScheduleModel) TableName() string {
	return "class_schedules"
}
