package content

import "github.com/sirupsen/logrus"

type ContentLogHook struct{}

func (h *ContentLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Content: " + entry.Message
	return nil
}

func (h *ContentLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
