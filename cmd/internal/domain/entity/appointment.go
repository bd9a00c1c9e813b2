package entity

// ServiceAppointment is a workshop booking for a customer's vehicle.
// Date is the booked day as epoch millis at UTC midnight; Hour is a slot label ("08:00").
type ServiceAppointment struct {
	ID        int    `gorm:"primaryKey"`
	Customer  string `gorm:"not null"`
	VIN       string `gorm:"not null;index"`
	Date      int64  `gorm:"not null;index"`
	Hour      string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}

// SalesAppointment is a showroom visit with a salesman assigned at booking time.
type SalesAppointment struct {
	ID        int    `gorm:"primaryKey"`
	Customer  string `gorm:"not null"`
	Date      int64  `gorm:"not null;index"`
	Hour      string `gorm:"not null"`
	Salesman  string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}
