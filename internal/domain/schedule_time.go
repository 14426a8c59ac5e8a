package domain

// ScheduleTimeSpec is the caller-supplied part of a ScheduleTime.
type ScheduleTimeSpec struct {
	TimeOfDay TimeOfDay
	Quantity  int
}

type ScheduleTime struct {
	id         ScheduleTimeID
	scheduleID ScheduleID
	timeOfDay  TimeOfDay
	quantity   int
}

func NewScheduleTime(scheduleID ScheduleID, timeOfDay TimeOfDay, quantity int) (ScheduleTime, error) {
	if quantity < 1 {
		return ScheduleTime{}, ErrInvalidQuantity
	}

	return ScheduleTime{
		id:         NewScheduleTimeID(),
		scheduleID: scheduleID,
		timeOfDay:  timeOfDay,
		quantity:   quantity,
	}, nil
}

func ReconstituteScheduleTime(
	id ScheduleTimeID,
	scheduleID ScheduleID,
	timeOfDay TimeOfDay,
	quantity int,
) ScheduleTime {
	return ScheduleTime{
		id:         id,
		scheduleID: scheduleID,
		timeOfDay:  timeOfDay,
		quantity:   quantity,
	}
}

func (t ScheduleTime) ID() ScheduleTimeID {
	return t.id
}

func (t ScheduleTime) ScheduleID() ScheduleID {
	return t.scheduleID
}

func (t ScheduleTime) TimeOfDay() TimeOfDay {
	return t.timeOfDay
}

func (t ScheduleTime) Quantity() int {
	return t.quantity
}
