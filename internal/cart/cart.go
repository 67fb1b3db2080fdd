package cart

import "github.com/sirupsen/logrus"

type CartLogHook struct{}

func (h *CartLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Cart: " + entry.Message
	return nil
}

func (h *CartLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
