package booking_event

import (
	bookingModel "lodge-booking/models/booking"

	"gorm.io/gorm"
)

// RecordTransition writes an audit row for one lifecycle transition,
// snapshotting the stay as it looked after the transition applied. It
// must run inside the same transaction that saves the booking so the
// audit trail never diverges from the row.
func RecordTransition(tx *gorm.DB, b *bookingModel.Booking, from bookingModel.BookingStatus, updatedBy string) error {
	ev := bookingModel.BookingStatusEvent{
		BookingID:  b.ID,
		FromStatus: from,
		ToStatus:   b.Status,

		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		CheckInTime:  b.CheckInTime,
		CheckOutTime: b.CheckOutTime,

		CreatedBy: updatedBy,
	}

	return tx.Create(&ev).Error
}
