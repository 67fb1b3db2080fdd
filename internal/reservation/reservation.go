package reservation

import "github.com/sirupsen/logrus"

type ReservationLogHook struct{}

func (h *ReservationLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Reservation: " + entry.Message
	return nil
}

func (h *ReservationLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
